package llmjudge

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements in the review UI.
type Styles struct {
	Passed        ColorPair // Style for passing verdicts
	Failed        ColorPair // Style for failing verdicts
	SectionHeader ColorPair // Style for prompt/response/verdict section headers
	Score         ColorPair // Style for the numeric score
	Muted         ColorPair // Style for help text and secondary info
	Accent        ColorPair // Style for the active element
}

// Theme provides styles for rendering verdicts and judge output.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}

// Palette contains semantic colors used for syntax highlighting of raw
// judge output.
type Palette struct {
	Foreground  string
	Key         string // JSON object keys
	Keyword     string // true/false/null
	String      string
	Number      string
	Punctuation string
	Comment     string
	Operator    string
}
