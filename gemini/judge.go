package gemini

import (
	"context"
	"time"

	"github.com/ctzreddy/llmjudge"
)

// Compile-time interface verification.
var _ llmjudge.ResponseJudge = (*Judge)(nil)

// DefaultJudgeTimeout is the default timeout for a single judge call.
const DefaultJudgeTimeout = 60 * time.Second

// DefaultTemperature keeps judge output consistent across calls.
const DefaultTemperature = float32(0.3)

// Judge implements llmjudge.ResponseJudge using Google Gemini.
type Judge struct {
	client      GenerativeClient
	model       string
	temperature float32
	timeout     time.Duration
}

// JudgeOption configures a Judge.
type JudgeOption func(*Judge)

// WithTimeout sets the timeout for API calls.
func WithTimeout(d time.Duration) JudgeOption {
	return func(j *Judge) {
		j.timeout = d
	}
}

// WithTemperature sets the sampling temperature for judge calls.
func WithTemperature(t float32) JudgeOption {
	return func(j *Judge) {
		j.temperature = t
	}
}

// NewJudge creates a new Judge.
func NewJudge(client GenerativeClient, model string, opts ...JudgeOption) *Judge {
	j := &Judge{
		client:      client,
		model:       model,
		temperature: DefaultTemperature,
		timeout:     DefaultJudgeTimeout,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Judge evaluates a single response against the original prompt.
//
// A failed judge call or unparseable judge output never surfaces as an
// error: it degrades to a verdict with score 0 and passed false. The error
// return is reserved for caller misconfiguration, such as the custom judge
// type without criteria.
func (j *Judge) Judge(ctx context.Context, prompt, response string, opts llmjudge.JudgeOptions) (llmjudge.Verdict, error) {
	opts = opts.Normalize()

	judgePrompt, err := llmjudge.BuildJudgePrompt(prompt, response, opts.Type, opts.Criteria)
	if err != nil {
		return llmjudge.Verdict{}, err
	}

	raw, err := j.generate(ctx, judgePrompt)
	if err != nil {
		return llmjudge.Verdict{
			JudgeType: opts.Type,
			Error:     err.Error(),
		}, nil
	}

	judgment, _ := llmjudge.ParseJudgment(raw)
	score, passed := llmjudge.ReconcileJudgment(judgment, opts.PassingScore)

	return llmjudge.Verdict{
		Score:       score,
		Passed:      passed,
		Feedback:    llmjudge.Feedback(judgment),
		JudgeType:   opts.Type,
		Judgment:    judgment,
		RawResponse: raw,
	}, nil
}

// JudgeMultiple evaluates each response independently, in input order.
func (j *Judge) JudgeMultiple(ctx context.Context, prompt string, responses []string, opts llmjudge.JudgeOptions) ([]llmjudge.Verdict, error) {
	opts = opts.Normalize()

	// Surface configuration errors before judging anything.
	if _, err := llmjudge.BuildJudgePrompt(prompt, "", opts.Type, opts.Criteria); err != nil {
		return nil, err
	}

	verdicts := make([]llmjudge.Verdict, 0, len(responses))
	for _, response := range responses {
		verdict, err := j.Judge(ctx, prompt, response, opts)
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, verdict)
	}
	return verdicts, nil
}

// Compare judges two responses against each other in a single call. Any
// failure yields an undetermined winner with the error recorded, never an
// unhandled fault.
func (j *Judge) Compare(ctx context.Context, prompt, response1, response2, criteria string) (llmjudge.ComparisonVerdict, error) {
	comparisonPrompt := llmjudge.BuildComparisonPrompt(prompt, response1, response2, criteria)

	raw, err := j.generate(ctx, comparisonPrompt)
	if err != nil {
		return llmjudge.ComparisonVerdict{
			Winner: llmjudge.WinnerUndetermined,
			Error:  err.Error(),
		}, nil
	}

	comparison, ok := llmjudge.ParseJudgment(raw)
	if !ok {
		return llmjudge.ComparisonVerdict{
			Winner:      llmjudge.WinnerUndetermined,
			Comparison:  comparison,
			RawResponse: raw,
			Error:       llmjudge.FailedParseFeedback,
		}, nil
	}

	score1, _ := llmjudge.Number(comparison["response1_score"])
	score2, _ := llmjudge.Number(comparison["response2_score"])

	return llmjudge.ComparisonVerdict{
		Winner:         winnerFrom(comparison["winner"]),
		Response1Score: score1,
		Response2Score: score2,
		Comparison:     comparison,
		RawResponse:    raw,
	}, nil
}

// generate issues one judge call with the standard system instruction,
// JSON response type, and per-call timeout.
func (j *Judge) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	contents := []*Content{{
		Parts: []*Part{{Text: prompt}},
	}}

	temp := j.temperature
	config := &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{Text: llmjudge.JudgeSystemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}

	resp, err := j.client.GenerateContent(ctx, j.model, contents, config)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errNilResponse
	}
	return resp.Text, nil
}

// winnerFrom maps the judge's winner selector to a Winner, defaulting to
// undetermined for anything other than 1 or 2.
func winnerFrom(v any) llmjudge.Winner {
	n, ok := llmjudge.Number(v)
	if !ok {
		return llmjudge.WinnerUndetermined
	}
	switch n {
	case 1:
		return llmjudge.WinnerResponse1
	case 2:
		return llmjudge.WinnerResponse2
	default:
		return llmjudge.WinnerUndetermined
	}
}
