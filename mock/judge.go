// Package mock provides function-field mock implementations of llmjudge interfaces.
package mock

import (
	"context"

	"github.com/ctzreddy/llmjudge"
)

// Compile-time interface verification.
var _ llmjudge.ResponseJudge = (*ResponseJudge)(nil)

// ResponseJudge is a mock implementation of llmjudge.ResponseJudge.
type ResponseJudge struct {
	JudgeFn         func(ctx context.Context, prompt, response string, opts llmjudge.JudgeOptions) (llmjudge.Verdict, error)
	JudgeMultipleFn func(ctx context.Context, prompt string, responses []string, opts llmjudge.JudgeOptions) ([]llmjudge.Verdict, error)
	CompareFn       func(ctx context.Context, prompt, response1, response2, criteria string) (llmjudge.ComparisonVerdict, error)
}

func (j *ResponseJudge) Judge(ctx context.Context, prompt, response string, opts llmjudge.JudgeOptions) (llmjudge.Verdict, error) {
	return j.JudgeFn(ctx, prompt, response, opts)
}

func (j *ResponseJudge) JudgeMultiple(ctx context.Context, prompt string, responses []string, opts llmjudge.JudgeOptions) ([]llmjudge.Verdict, error) {
	return j.JudgeMultipleFn(ctx, prompt, responses, opts)
}

func (j *ResponseJudge) Compare(ctx context.Context, prompt, response1, response2, criteria string) (llmjudge.ComparisonVerdict, error) {
	return j.CompareFn(ctx, prompt, response1, response2, criteria)
}
