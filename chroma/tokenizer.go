// Package chroma provides syntax highlighting of judge output using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/ctzreddy/llmjudge"
)

// Compile-time interface verification.
var _ llmjudge.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to llmjudge styles.
type StyleFunc func(chromalib.TokenType) llmjudge.Style

// Tokenizer extracts syntax tokens using chroma. Judge output is JSON, so
// "json" is the usual language, but any chroma lexer name works.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a llmjudge.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines tokenizes source with full context, then splits tokens by line.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]llmjudge.Token {
	if source == "" {
		return [][]llmjudge.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var allTokens []llmjudge.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		style := t.styleFunc(token.Type)
		allTokens = append(allTokens, llmjudge.Token{
			Text:  token.Value,
			Style: style,
		})
	}

	return splitTokensByLine(allTokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices.
// Handles tokens that span multiple lines by splitting them at newline boundaries.
func splitTokensByLine(tokens []llmjudge.Token) [][]llmjudge.Token {
	if len(tokens) == 0 {
		return [][]llmjudge.Token{}
	}

	var result [][]llmjudge.Token
	var currentLine []llmjudge.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, llmjudge.Token{
					Text:  part,
					Style: tok.Style,
				})
			}
			// If this isn't the last part, we hit a newline - finalize the line
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}
