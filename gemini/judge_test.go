package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ctzreddy/llmjudge"
	"github.com/ctzreddy/llmjudge/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudge_Judge_ReturnsReconciledVerdict(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{
				Text: `{"score": 85, "passed": true, "feedback": "Clear and complete.", "strengths": ["clarity"], "weaknesses": []}`,
			}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Judge(context.Background(), "What is Go?", "Go is a language.", llmjudge.JudgeOptions{})

	require.NoError(t, err)
	assert.Equal(t, float64(85), verdict.Score)
	assert.True(t, verdict.Passed)
	assert.Equal(t, "Clear and complete.", verdict.Feedback)
	assert.Equal(t, llmjudge.JudgeQuality, verdict.JudgeType)
	assert.Contains(t, verdict.Judgment, "strengths")
	assert.NotEmpty(t, verdict.RawResponse)
	assert.Empty(t, verdict.Error)
}

func TestJudge_Judge_SendsJudgePromptAndConfig(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	var gotConfig *gemini.GenerateContentConfig

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			gotPrompt = contents[0].Parts[0].Text
			gotConfig = config
			return &gemini.GenerateContentResponse{Text: `{"score": 70, "passed": true, "feedback": ""}`}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	_, err := judge.Judge(context.Background(), "the prompt", "the response", llmjudge.JudgeOptions{Type: llmjudge.JudgeCorrectness})

	require.NoError(t, err)
	assert.Contains(t, gotPrompt, "the prompt")
	assert.Contains(t, gotPrompt, "the response")
	assert.Contains(t, gotPrompt, "errors_found")
	require.NotNil(t, gotConfig)
	assert.Equal(t, "application/json", gotConfig.ResponseMIMEType)
	require.NotNil(t, gotConfig.Temperature)
	assert.Equal(t, gemini.DefaultTemperature, *gotConfig.Temperature)
	require.NotNil(t, gotConfig.SystemInstruction)
	assert.Equal(t, llmjudge.JudgeSystemInstruction, gotConfig.SystemInstruction.Parts[0].Text)
}

func TestJudge_Judge_ClientErrorBecomesFailingVerdict(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return nil, gemini.NewAPIError(429, "quota exceeded")
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Judge(context.Background(), "p", "r", llmjudge.JudgeOptions{})

	require.NoError(t, err, "external failures never propagate as errors")
	assert.Equal(t, float64(0), verdict.Score)
	assert.False(t, verdict.Passed)
	assert.Contains(t, verdict.Error, "quota exceeded")
}

func TestJudge_Judge_UnparseableOutputDegrades(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{Text: "I cannot respond in JSON today."}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Judge(context.Background(), "p", "r", llmjudge.JudgeOptions{})

	require.NoError(t, err)
	assert.Equal(t, float64(0), verdict.Score)
	assert.False(t, verdict.Passed)
	assert.Equal(t, llmjudge.FailedParseFeedback, verdict.Feedback)
	assert.Equal(t, "I cannot respond in JSON today.", verdict.RawResponse)
}

func TestJudge_Judge_FallbackParsing(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{
				Text: `Here is my answer: {"score": 90, "passed": true, "feedback": "ok"} Thanks!`,
			}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Judge(context.Background(), "p", "r", llmjudge.JudgeOptions{})

	require.NoError(t, err)
	assert.Equal(t, float64(90), verdict.Score)
	assert.True(t, verdict.Passed)
}

func TestJudge_Judge_CustomWithoutCriteriaIsError(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			t.Fatal("client must not be called on configuration error")
			return nil, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	_, err := judge.Judge(context.Background(), "p", "r", llmjudge.JudgeOptions{Type: llmjudge.JudgeCustom})

	assert.Error(t, err)
}

func TestJudge_JudgeMultiple_PreservesOrder(t *testing.T) {
	t.Parallel()

	responses := map[string]string{
		"first":  `{"score": 90, "passed": true, "feedback": "strong"}`,
		"second": `{"score": 40, "passed": false, "feedback": "weak"}`,
		"third":  `{"score": 75, "passed": true, "feedback": "fine"}`,
	}

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			prompt := contents[0].Parts[0].Text
			for needle, reply := range responses {
				if strings.Contains(prompt, needle) {
					return &gemini.GenerateContentResponse{Text: reply}, nil
				}
			}
			return &gemini.GenerateContentResponse{Text: `{"score": 0, "passed": false, "feedback": "unknown"}`}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdicts, err := judge.JudgeMultiple(context.Background(), "p", []string{"first", "second", "third"}, llmjudge.JudgeOptions{})

	require.NoError(t, err)
	require.Len(t, verdicts, 3)
	assert.Equal(t, float64(90), verdicts[0].Score)
	assert.Equal(t, float64(40), verdicts[1].Score)
	assert.Equal(t, float64(75), verdicts[2].Score)
}

func TestJudge_JudgeMultiple_CustomWithoutCriteriaFailsBeforeJudging(t *testing.T) {
	t.Parallel()

	callCount := 0
	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			callCount++
			return &gemini.GenerateContentResponse{Text: "{}"}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	_, err := judge.JudgeMultiple(context.Background(), "p", []string{"a", "b"}, llmjudge.JudgeOptions{Type: llmjudge.JudgeCustom})

	assert.Error(t, err)
	assert.Zero(t, callCount)
}

func TestJudge_Compare_ReturnsWinner(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{
				Text: `{"winner": 2, "response1_score": 60, "response2_score": 88, "winner_explanation": "more thorough"}`,
			}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Compare(context.Background(), "p", "answer one", "answer two", "")

	require.NoError(t, err)
	assert.Equal(t, llmjudge.WinnerResponse2, verdict.Winner)
	assert.Equal(t, float64(60), verdict.Response1Score)
	assert.Equal(t, float64(88), verdict.Response2Score)
	assert.Contains(t, verdict.Comparison, "winner_explanation")
	assert.Empty(t, verdict.Error)
}

func TestJudge_Compare_MalformedOutputIsUndetermined(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{Text: "no json here"}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Compare(context.Background(), "p", "a", "b", "")

	require.NoError(t, err)
	assert.Equal(t, llmjudge.WinnerUndetermined, verdict.Winner)
	assert.NotEmpty(t, verdict.Error)
}

func TestJudge_Compare_ClientErrorIsUndetermined(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return nil, gemini.NewAPIError(500, "internal error")
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Compare(context.Background(), "p", "a", "b", "")

	require.NoError(t, err)
	assert.Equal(t, llmjudge.WinnerUndetermined, verdict.Winner)
	assert.Contains(t, verdict.Error, "internal error")
}

func TestJudge_Compare_InvalidWinnerSelectorIsUndetermined(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{
				Text: `{"winner": 3, "response1_score": 50, "response2_score": 50}`,
			}, nil
		},
	}

	judge := gemini.NewJudge(mockClient, gemini.DefaultModel)
	verdict, err := judge.Compare(context.Background(), "p", "a", "b", "")

	require.NoError(t, err)
	assert.Equal(t, llmjudge.WinnerUndetermined, verdict.Winner)
}
