// Package llmjudge provides domain types for validating and judging LLM responses.
package llmjudge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// JudgeType selects the rubric a judge evaluates a response against.
type JudgeType string

// Judge types.
const (
	JudgeQuality           JudgeType = "quality"
	JudgeCorrectness       JudgeType = "correctness"
	JudgeAppropriateness   JudgeType = "appropriateness"
	JudgeComprehensiveness JudgeType = "comprehensiveness"
	JudgeCustom            JudgeType = "custom"
)

// DefaultPassingScore is the minimum score a response must reach to pass.
const DefaultPassingScore = 70

// JudgeOptions configures a single judgment operation.
type JudgeOptions struct {
	Type         JudgeType // Rubric to evaluate against; defaults to JudgeQuality
	Criteria     string    // Evaluation criteria; required for JudgeCustom
	PassingScore float64   // Minimum passing score; defaults to DefaultPassingScore
}

// Normalize fills in defaults for zero-valued option fields.
func (o JudgeOptions) Normalize() JudgeOptions {
	if o.Type == "" {
		o.Type = JudgeQuality
	}
	if o.PassingScore == 0 {
		o.PassingScore = DefaultPassingScore
	}
	return o
}

// Verdict is the reconciled outcome of judging one response.
type Verdict struct {
	Score       float64        `json:"score"`          // Numeric score reported by the judge (0 when absent)
	Passed      bool           `json:"passed"`         // Judge opinion AND score >= passing threshold
	Feedback    string         `json:"feedback"`       // Judge's free-text feedback
	JudgeType   JudgeType      `json:"judge_type"`     // Rubric the verdict was produced under
	Judgment    map[string]any `json:"judgment"`       // Full parsed judgment, including rubric-specific lists
	RawResponse string         `json:"raw_response"`   // Raw judge output, retained for auditability
	Error       string         `json:"error,omitempty"` // Set when the judge call failed; Score is 0 and Passed is false
}

// Winner identifies the preferred response in a comparison.
type Winner int

// Comparison outcomes.
const (
	WinnerUndetermined Winner = 0
	WinnerResponse1    Winner = 1
	WinnerResponse2    Winner = 2
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerResponse1:
		return "response 1"
	case WinnerResponse2:
		return "response 2"
	default:
		return "undetermined"
	}
}

// ComparisonVerdict is the outcome of comparing two responses in a single judgment.
type ComparisonVerdict struct {
	Winner         Winner         `json:"winner"`
	Response1Score float64        `json:"response1_score"`
	Response2Score float64        `json:"response2_score"`
	Comparison     map[string]any `json:"comparison"`
	RawResponse    string         `json:"raw_response"`
	Error          string         `json:"error,omitempty"`
}

// ResponseJudge evaluates LLM responses using a judge model.
// Implementations fold external-call and parse failures into the returned
// verdicts; the error return is reserved for caller misconfiguration.
type ResponseJudge interface {
	// Judge evaluates a single response against the original prompt.
	Judge(ctx context.Context, prompt, response string, opts JudgeOptions) (Verdict, error)
	// JudgeMultiple evaluates each response independently, preserving input order.
	JudgeMultiple(ctx context.Context, prompt string, responses []string, opts JudgeOptions) ([]Verdict, error)
	// Compare judges two responses against each other in a single call.
	Compare(ctx context.Context, prompt, response1, response2, criteria string) (ComparisonVerdict, error)
}

// Case pairs a prompt with a model response, plus its verdict once judged.
type Case struct {
	Prompt   string   `json:"prompt"`
	Response string   `json:"response"`
	Verdict  *Verdict `json:"verdict"` // nil until judged
}

// CaseID returns a stable identifier derived from the prompt and response.
func (c Case) CaseID() string {
	sum := sha256.Sum256([]byte(c.Prompt + "\x00" + c.Response))
	return hex.EncodeToString(sum[:6])
}

// Review records a human reviewer's assessment of a judged case.
type Review struct {
	CaseID     string    `json:"case_id"`     // Links to Case.CaseID()
	Index      int       `json:"index"`       // Position in input file (0-based)
	Reviewed   bool      `json:"reviewed"`    // Whether agree/disagree has been explicitly set
	Agree      bool      `json:"agree"`       // Whether the reviewer agrees with the verdict
	Note       string    `json:"note"`        // Explanation for disagreement (empty if agreed)
	ReviewedAt time.Time `json:"reviewed_at"` // When the review was recorded
}

// CaseLoader loads cases from a source.
type CaseLoader interface {
	Load(path string) ([]Case, error)
}

// CaseSaver appends cases to a destination.
type CaseSaver interface {
	Save(path string, c Case) error
}

// ReviewStore persists and retrieves reviews.
type ReviewStore interface {
	Load(path string) ([]Review, error)
	Save(path string, reviews []Review) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}
