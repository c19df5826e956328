package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ctzreddy/llmjudge"
)

// updateViewportContent rebuilds the viewport for the current case.
func (m *ReviewModel) updateViewportContent() {
	if len(m.cases) == 0 {
		m.viewport.SetContent("No cases loaded")
		return
	}

	c := m.cases[m.currentIndex]

	var s strings.Builder

	s.WriteString(m.renderSectionHeader("PROMPT"))
	s.WriteString("\n")
	s.WriteString(c.Prompt)
	s.WriteString("\n\n")

	s.WriteString(m.renderSectionHeader("RESPONSE"))
	s.WriteString("\n")
	s.WriteString(c.Response)
	s.WriteString("\n\n")

	s.WriteString(m.renderSectionHeader("VERDICT"))
	s.WriteString("\n")
	s.WriteString(m.renderVerdict(c.Verdict))

	if r := m.reviews[c.CaseID()]; r != nil && r.Note != "" {
		s.WriteString("\n\n")
		s.WriteString(m.renderSectionHeader("REVIEW NOTE"))
		s.WriteString("\n")
		s.WriteString(r.Note)
	}

	m.viewport.SetContent(s.String())
	m.viewport.GotoTop()
}

func (m ReviewModel) renderSectionHeader(name string) string {
	style := lipgloss.NewStyle().Bold(true)
	if m.styles.SectionHeader.Foreground != "" {
		style = style.Foreground(lipgloss.Color(m.styles.SectionHeader.Foreground))
	}
	if m.styles.SectionHeader.Background != "" {
		style = style.Background(lipgloss.Color(m.styles.SectionHeader.Background))
	}
	return style.Render(fmt.Sprintf(" %s ", name))
}

func (m ReviewModel) renderVerdict(v *llmjudge.Verdict) string {
	if v == nil {
		return "[not yet judged]"
	}

	var s strings.Builder

	if v.Error != "" {
		fail := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Failed.Foreground))
		s.WriteString(fail.Render(fmt.Sprintf("judge error: %s", v.Error)))
		return s.String()
	}

	status := "FAILED"
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.Failed.Foreground))
	if v.Passed {
		status = "PASSED"
		statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.Passed.Foreground))
	}

	s.WriteString(fmt.Sprintf("%s  score %.0f  [%s]\n", statusStyle.Render(status), v.Score, v.JudgeType))
	if v.Feedback != "" {
		s.WriteString(v.Feedback)
		s.WriteString("\n")
	}

	// Rubric-specific lists (strengths, weaknesses, errors_found, ...)
	for _, key := range v.JudgeType.AuxKeys() {
		items, ok := v.Judgment[key].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		s.WriteString(fmt.Sprintf("\n%s:\n", key))
		for _, item := range items {
			s.WriteString(fmt.Sprintf("  • %v\n", item))
		}
	}

	if v.RawResponse != "" {
		s.WriteString("\nraw judge output:\n")
		s.WriteString(m.renderRaw(v.RawResponse))
	}

	return s.String()
}

// renderRaw highlights raw judge output as JSON when a tokenizer is set.
func (m ReviewModel) renderRaw(raw string) string {
	if m.tokenizer == nil {
		return raw
	}

	lines := m.tokenizer.TokenizeLines("json", raw)
	if lines == nil {
		return raw
	}

	var s strings.Builder
	for i, line := range lines {
		if i > 0 {
			s.WriteString("\n")
		}
		for _, tok := range line {
			style := lipgloss.NewStyle()
			if tok.Style.Foreground != "" {
				style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
			}
			if tok.Style.Bold {
				style = style.Bold(true)
			}
			s.WriteString(style.Render(tok.Text))
		}
	}
	return s.String()
}
