package llmjudge_test

import (
	"testing"

	"github.com/ctzreddy/llmjudge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJudgePrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes prompt and response", func(t *testing.T) {
		t.Parallel()

		prompt, err := llmjudge.BuildJudgePrompt("What is Go?", "Go is a language.", llmjudge.JudgeQuality, "")
		require.NoError(t, err)
		assert.Contains(t, prompt, "What is Go?")
		assert.Contains(t, prompt, "Go is a language.")
		assert.Contains(t, prompt, "quality")
	})

	t.Run("each judge type asks for its own fields", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			judgeType llmjudge.JudgeType
			wantField string
		}{
			{llmjudge.JudgeQuality, "strengths"},
			{llmjudge.JudgeCorrectness, "errors_found"},
			{llmjudge.JudgeAppropriateness, "concerns"},
			{llmjudge.JudgeComprehensiveness, "missing_aspects"},
		}

		for _, tt := range tests {
			prompt, err := llmjudge.BuildJudgePrompt("p", "r", tt.judgeType, "")
			require.NoError(t, err)
			assert.Contains(t, prompt, tt.wantField)
			assert.Contains(t, prompt, `"score"`)
			assert.Contains(t, prompt, `"passed"`)
		}
	})

	t.Run("custom requires criteria", func(t *testing.T) {
		t.Parallel()

		_, err := llmjudge.BuildJudgePrompt("p", "r", llmjudge.JudgeCustom, "")
		assert.Error(t, err)

		prompt, err := llmjudge.BuildJudgePrompt("p", "r", llmjudge.JudgeCustom, "Must cite sources.")
		require.NoError(t, err)
		assert.Contains(t, prompt, "Must cite sources.")
	})

	t.Run("unknown type is an error", func(t *testing.T) {
		t.Parallel()

		_, err := llmjudge.BuildJudgePrompt("p", "r", llmjudge.JudgeType("sarcasm"), "")
		assert.Error(t, err)
	})
}

func TestBuildComparisonPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes both responses", func(t *testing.T) {
		t.Parallel()

		prompt := llmjudge.BuildComparisonPrompt("p", "first answer", "second answer", "")
		assert.Contains(t, prompt, "first answer")
		assert.Contains(t, prompt, "second answer")
		assert.Contains(t, prompt, `"winner"`)
	})

	t.Run("default criteria when none supplied", func(t *testing.T) {
		t.Parallel()

		prompt := llmjudge.BuildComparisonPrompt("p", "a", "b", "")
		assert.Contains(t, prompt, "Overall usefulness")
	})

	t.Run("custom criteria replaces default", func(t *testing.T) {
		t.Parallel()

		prompt := llmjudge.BuildComparisonPrompt("p", "a", "b", "Prefer shorter answers.")
		assert.Contains(t, prompt, "Prefer shorter answers.")
		assert.NotContains(t, prompt, "Overall usefulness")
	})
}

func TestJudgeOptions_Normalize(t *testing.T) {
	t.Parallel()

	opts := llmjudge.JudgeOptions{}.Normalize()
	assert.Equal(t, llmjudge.JudgeQuality, opts.Type)
	assert.Equal(t, float64(llmjudge.DefaultPassingScore), opts.PassingScore)

	opts = llmjudge.JudgeOptions{Type: llmjudge.JudgeCorrectness, PassingScore: 90}.Normalize()
	assert.Equal(t, llmjudge.JudgeCorrectness, opts.Type)
	assert.Equal(t, float64(90), opts.PassingScore)
}

func TestJudgeType_AuxKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"strengths", "weaknesses"}, llmjudge.JudgeQuality.AuxKeys())
	assert.Nil(t, llmjudge.JudgeType("unknown").AuxKeys())
}

func TestCase_CaseID(t *testing.T) {
	t.Parallel()

	a := llmjudge.Case{Prompt: "p", Response: "r"}
	b := llmjudge.Case{Prompt: "p", Response: "r"}
	c := llmjudge.Case{Prompt: "p2", Response: "r"}

	assert.Equal(t, a.CaseID(), b.CaseID())
	assert.NotEqual(t, a.CaseID(), c.CaseID())
	assert.Len(t, a.CaseID(), 12)
}

func TestWinner_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "response 1", llmjudge.WinnerResponse1.String())
	assert.Equal(t, "response 2", llmjudge.WinnerResponse2.String())
	assert.Equal(t, "undetermined", llmjudge.WinnerUndetermined.String())
}
