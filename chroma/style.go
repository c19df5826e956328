package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/ctzreddy/llmjudge"
)

// StyleFromPalette returns a function that maps chroma token types to
// llmjudge styles based on the provided palette colors. The mapping covers
// the token types JSON lexing produces plus the common ones for other
// structured formats a judge might emit.
func StyleFromPalette(p llmjudge.Palette) StyleFunc {
	return func(tt chromalib.TokenType) llmjudge.Style {
		switch tt {
		// Object keys (the JSON lexer emits these as name tags)
		case chromalib.NameTag, chromalib.NameAttribute, chromalib.NameProperty:
			return llmjudge.Style{Foreground: p.Key}

		// Keywords, including true/false/null
		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordReserved:
			return llmjudge.Style{Foreground: p.Keyword, Bold: true}

		// Strings
		case chromalib.String, chromalib.StringDouble, chromalib.StringSingle,
			chromalib.StringEscape, chromalib.StringBacktick:
			return llmjudge.Style{Foreground: p.String}

		// Numbers
		case chromalib.Number, chromalib.NumberFloat, chromalib.NumberInteger,
			chromalib.NumberHex, chromalib.NumberOct, chromalib.NumberBin:
			return llmjudge.Style{Foreground: p.Number}

		// Comments
		case chromalib.Comment, chromalib.CommentSingle, chromalib.CommentMultiline:
			return llmjudge.Style{Foreground: p.Comment}

		// Operators
		case chromalib.Operator, chromalib.OperatorWord:
			return llmjudge.Style{Foreground: p.Operator}

		// Punctuation
		case chromalib.Punctuation:
			return llmjudge.Style{Foreground: p.Punctuation}

		default:
			return llmjudge.Style{}
		}
	}
}
