// Package eval provides test helpers for LLM-as-judge evaluation patterns.
package eval

import (
	"os"
	"testing"

	"github.com/ctzreddy/llmjudge"
)

// Eval provides assertion helpers for LLM-based test evaluation.
type Eval struct {
	judge llmjudge.ResponseJudge
}

// New creates a new Eval with the given judge.
func New(judge llmjudge.ResponseJudge) *Eval {
	return &Eval{judge: judge}
}

// AssertPassed judges the response against the original prompt and marks the
// test as failed when the verdict does not pass.
func (e *Eval) AssertPassed(tb testing.TB, prompt, response string, opts llmjudge.JudgeOptions) {
	tb.Helper()

	verdict, err := e.judge.Judge(tb.Context(), prompt, response, opts)
	if err != nil {
		tb.Errorf("judge configuration error: %v", err)
		return
	}
	if verdict.Error != "" {
		tb.Errorf("judge call failed: %s", verdict.Error)
		return
	}

	if !verdict.Passed {
		tb.Errorf("response did not pass %s judgment (score %.0f)\nFeedback: %s",
			verdict.JudgeType, verdict.Score, verdict.Feedback)
	}
}

// AssertPreferred compares two responses and marks the test as failed unless
// the judge prefers the expected one.
func (e *Eval) AssertPreferred(tb testing.TB, prompt, preferred, other string) {
	tb.Helper()

	verdict, err := e.judge.Compare(tb.Context(), prompt, preferred, other, "")
	if err != nil {
		tb.Errorf("judge configuration error: %v", err)
		return
	}
	if verdict.Error != "" {
		tb.Errorf("comparison failed: %s", verdict.Error)
		return
	}

	if verdict.Winner != llmjudge.WinnerResponse1 {
		tb.Errorf("judge preferred %s (scores: %.0f vs %.0f)",
			verdict.Winner, verdict.Response1Score, verdict.Response2Score)
	}
}

// SkipUnlessEvals skips the test unless GOEVALS environment variable is set.
// Use at the start of eval tests to make them opt-in.
func SkipUnlessEvals(tb testing.TB) {
	tb.Helper()
	if os.Getenv("GOEVALS") == "" {
		tb.Skip("GOEVALS not set")
	}
}
