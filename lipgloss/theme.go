// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/ctzreddy/llmjudge"

// Compile-time interface verification.
var _ llmjudge.Theme = (*Theme)(nil)

// Theme implements llmjudge.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  llmjudge.Styles
	palette llmjudge.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() llmjudge.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() llmjudge.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds
// (Catppuccin Mocha colors).
func DarkTheme() *Theme {
	return &Theme{
		styles: llmjudge.Styles{
			Passed: llmjudge.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Failed: llmjudge.ColorPair{
				Foreground: "#f38ba8", // Red
			},
			SectionHeader: llmjudge.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Score: llmjudge.ColorPair{
				Foreground: "#fab387", // Peach
			},
			Muted: llmjudge.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Accent: llmjudge.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
		},
		palette: llmjudge.Palette{
			Foreground:  "#cdd6f4",
			Key:         "#89b4fa", // Blue
			Keyword:     "#cba6f7", // Mauve (true/false/null)
			String:      "#a6e3a1", // Green
			Number:      "#fab387", // Peach
			Punctuation: "#9399b2",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds
// (Catppuccin Latte colors).
func LightTheme() *Theme {
	return &Theme{
		styles: llmjudge.Styles{
			Passed: llmjudge.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Failed: llmjudge.ColorPair{
				Foreground: "#d20f39", // Red
			},
			SectionHeader: llmjudge.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Score: llmjudge.ColorPair{
				Foreground: "#fe640b", // Peach
			},
			Muted: llmjudge.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			Accent: llmjudge.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
		},
		palette: llmjudge.Palette{
			Foreground:  "#4c4f69",
			Key:         "#1e66f5",
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Punctuation: "#7c7f93",
			Comment:     "#9ca0b0",
			Operator:    "#179299",
		},
	}
}
