package llmjudge

import (
	"encoding/json"
	"strings"
)

// FailedParseFeedback is the feedback recorded when judge output cannot be parsed.
const FailedParseFeedback = "Failed to parse judge response"

// ParseJudgment parses raw judge output into a judgment map.
//
// It first tries a strict parse of the whole text as a JSON object. On
// failure it falls back to ExtractJSON, since judge models sometimes wrap
// valid JSON in prose despite instructions. If both stages fail, it returns
// a default failing structure carrying the raw text for debugging, and
// ok is false.
func ParseJudgment(raw string) (judgment map[string]any, ok bool) {
	var strict map[string]any
	if err := json.Unmarshal([]byte(raw), &strict); err == nil {
		return strict, true
	}

	if extracted, ok := ExtractJSON(raw); ok {
		return extracted, true
	}

	return map[string]any{
		"score":    float64(0),
		"passed":   false,
		"feedback": FailedParseFeedback,
		"raw_text": raw,
	}, false
}

// ExtractJSON attempts to recover a JSON object embedded in surrounding text
// by parsing the substring between the first '{' and the last '}'.
func ExtractJSON(text string) (map[string]any, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, false
	}

	var extracted map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &extracted); err != nil {
		return nil, false
	}
	return extracted, true
}

// ReconcileJudgment combines a judgment map with a passing threshold into an
// authoritative score and pass/fail decision.
//
// The score defaults to 0 when absent or non-numeric; out-of-range scores are
// passed through unclamped. The judge's own "passed" opinion defaults to the
// threshold comparison when absent. The final decision is the AND of the
// judge's opinion and the threshold check, so an explicit judge "failed"
// vetoes a high score and a sub-threshold score vetoes an explicit "passed".
func ReconcileJudgment(judgment map[string]any, passingScore float64) (score float64, passed bool) {
	score, _ = Number(judgment["score"])

	opinion := score >= passingScore
	if b, ok := judgment["passed"].(bool); ok {
		opinion = b
	}

	return score, opinion && score >= passingScore
}

// Feedback returns the judgment's feedback string, or empty if absent.
func Feedback(judgment map[string]any) string {
	s, _ := judgment["feedback"].(string)
	return s
}

// Number coerces a judgment value to a float64. JSON numbers decode as
// float64, but judgments assembled in code may carry other numeric types.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
