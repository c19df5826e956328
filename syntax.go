package llmjudge

// Token represents a syntax-highlighted segment of judge output.
type Token struct {
	Text  string // The text content of this token
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a token.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Tokenizer extracts syntax tokens from structured text.
type Tokenizer interface {
	// TokenizeLines splits source into per-line syntax-highlighted tokens
	// for the given language. Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}
