package eval_test

import (
	"context"
	"testing"

	"github.com/ctzreddy/llmjudge"
	"github.com/ctzreddy/llmjudge/eval"
	"github.com/ctzreddy/llmjudge/mock"
	"github.com/stretchr/testify/assert"
)

// recordingTB captures Errorf calls without failing the real test.
type recordingTB struct {
	testing.TB
	errors []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, format)
}

func (r *recordingTB) Context() context.Context {
	return context.Background()
}

func TestEval_AssertPassed(t *testing.T) {
	t.Parallel()

	t.Run("passing verdict records no failure", func(t *testing.T) {
		t.Parallel()

		judge := &mock.ResponseJudge{
			JudgeFn: func(ctx context.Context, prompt, response string, opts llmjudge.JudgeOptions) (llmjudge.Verdict, error) {
				return llmjudge.Verdict{Score: 90, Passed: true}, nil
			},
		}

		rec := &recordingTB{TB: t}
		eval.New(judge).AssertPassed(rec, "prompt", "response", llmjudge.JudgeOptions{})

		assert.Empty(t, rec.errors)
	})

	t.Run("failing verdict records failure", func(t *testing.T) {
		t.Parallel()

		judge := &mock.ResponseJudge{
			JudgeFn: func(ctx context.Context, prompt, response string, opts llmjudge.JudgeOptions) (llmjudge.Verdict, error) {
				return llmjudge.Verdict{Score: 40, Passed: false, Feedback: "incomplete"}, nil
			},
		}

		rec := &recordingTB{TB: t}
		eval.New(judge).AssertPassed(rec, "prompt", "response", llmjudge.JudgeOptions{})

		assert.Len(t, rec.errors, 1)
	})

	t.Run("judge call failure records failure", func(t *testing.T) {
		t.Parallel()

		judge := &mock.ResponseJudge{
			JudgeFn: func(ctx context.Context, prompt, response string, opts llmjudge.JudgeOptions) (llmjudge.Verdict, error) {
				return llmjudge.Verdict{Error: "network down"}, nil
			},
		}

		rec := &recordingTB{TB: t}
		eval.New(judge).AssertPassed(rec, "prompt", "response", llmjudge.JudgeOptions{})

		assert.Len(t, rec.errors, 1)
	})
}

func TestEval_AssertPreferred(t *testing.T) {
	t.Parallel()

	t.Run("expected winner records no failure", func(t *testing.T) {
		t.Parallel()

		judge := &mock.ResponseJudge{
			CompareFn: func(ctx context.Context, prompt, r1, r2, criteria string) (llmjudge.ComparisonVerdict, error) {
				return llmjudge.ComparisonVerdict{Winner: llmjudge.WinnerResponse1}, nil
			},
		}

		rec := &recordingTB{TB: t}
		eval.New(judge).AssertPreferred(rec, "prompt", "good", "bad")

		assert.Empty(t, rec.errors)
	})

	t.Run("unexpected winner records failure", func(t *testing.T) {
		t.Parallel()

		judge := &mock.ResponseJudge{
			CompareFn: func(ctx context.Context, prompt, r1, r2, criteria string) (llmjudge.ComparisonVerdict, error) {
				return llmjudge.ComparisonVerdict{Winner: llmjudge.WinnerResponse2}, nil
			},
		}

		rec := &recordingTB{TB: t}
		eval.New(judge).AssertPreferred(rec, "prompt", "good", "bad")

		assert.Len(t, rec.errors, 1)
	})
}

func TestSkipUnlessEvals(t *testing.T) {
	if testing.Short() {
		t.Skip("environment-dependent")
	}

	t.Setenv("GOEVALS", "")
	// With GOEVALS unset the helper skips; exercised indirectly since a
	// skipped subtest cannot assert after the skip.
	t.Run("skips without GOEVALS", func(t *testing.T) {
		eval.SkipUnlessEvals(t)
		t.Error("unreachable when GOEVALS is unset")
	})
}
