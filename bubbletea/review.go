// Package bubbletea provides the terminal UI for reviewing judge verdicts.
package bubbletea

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ctzreddy/llmjudge"
)

// Mode identifies the current interaction mode.
type Mode int

// Mode constants.
const (
	ModeReview Mode = iota
	ModeNote
)

// ReviewModel is the Bubble Tea model for reviewing judge verdicts.
type ReviewModel struct {
	// Data
	cases        []llmjudge.Case
	reviews      map[string]*llmjudge.Review
	currentIndex int

	// UI components
	viewport     viewport.Model
	noteTextarea textarea.Model

	// State
	mode  Mode
	ready bool

	// Rendering
	width, height int
	styles        llmjudge.Styles
	tokenizer     llmjudge.Tokenizer

	// Persistence
	store      llmjudge.ReviewStore
	outputPath string

	// Export
	clipboard llmjudge.Clipboard

	// Keybindings
	keymap ReviewKeyMap
}

// ReviewModelOption configures a ReviewModel.
type ReviewModelOption func(*ReviewModel)

// WithReviewStore sets the store for persisting reviews.
func WithReviewStore(store llmjudge.ReviewStore, outputPath string) ReviewModelOption {
	return func(m *ReviewModel) {
		m.store = store
		m.outputPath = outputPath
	}
}

// WithExistingReviews loads previously recorded reviews.
func WithExistingReviews(reviews []llmjudge.Review) ReviewModelOption {
	return func(m *ReviewModel) {
		for i := range reviews {
			r := reviews[i]
			m.reviews[r.CaseID] = &r
		}
	}
}

// WithStyles sets the color styles for rendering.
func WithStyles(styles llmjudge.Styles) ReviewModelOption {
	return func(m *ReviewModel) {
		m.styles = styles
	}
}

// WithTokenizer sets the tokenizer used to highlight raw judge output.
func WithTokenizer(tokenizer llmjudge.Tokenizer) ReviewModelOption {
	return func(m *ReviewModel) {
		m.tokenizer = tokenizer
	}
}

// WithClipboard sets the clipboard used to export raw judge output.
func WithClipboard(clipboard llmjudge.Clipboard) ReviewModelOption {
	return func(m *ReviewModel) {
		m.clipboard = clipboard
	}
}

// NewReviewModel creates a new ReviewModel with the given cases.
func NewReviewModel(cases []llmjudge.Case, opts ...ReviewModelOption) ReviewModel {
	m := ReviewModel{
		cases:   cases,
		reviews: make(map[string]*llmjudge.Review),
		mode:    ModeReview,
		keymap:  DefaultReviewKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeReview {
			return m.handleReviewKeys(msg)
		}
		return m.handleNoteKeys(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ReviewModel) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextCase):
		if m.currentIndex < len(m.cases)-1 {
			m.currentIndex++
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevCase):
		if m.currentIndex > 0 {
			m.currentIndex--
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.NextUnreviewed):
		if idx := m.findNextUnreviewed(); idx != -1 && idx != m.currentIndex {
			m.currentIndex = idx
			m.updateViewportContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.ScrollDown):
		m.viewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.ScrollUp):
		m.viewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keymap.GotoTop):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keymap.Agree):
		m.recordReview(true)
		return m, nil

	case key.Matches(msg, m.keymap.Disagree):
		m.recordReview(false)
		return m, nil

	case key.Matches(msg, m.keymap.Note):
		return m.enterNoteMode()

	case key.Matches(msg, m.keymap.CopyRaw):
		m.copyRawResponse()
		return m, nil
	}

	return m, nil
}

func (m ReviewModel) handleNoteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ExitNote):
		return m.exitNoteMode()
	}

	// Pass all other keys to textarea
	var cmd tea.Cmd
	m.noteTextarea, cmd = m.noteTextarea.Update(msg)
	return m, cmd
}

func (m ReviewModel) enterNoteMode() (tea.Model, tea.Cmd) {
	if len(m.cases) == 0 {
		return m, nil
	}

	ta := textarea.New()
	ta.Placeholder = "Why do you disagree with this verdict?"
	ta.ShowLineNumbers = false
	ta.SetWidth(m.width - 4)
	ta.SetHeight(m.height - 6)

	c := m.cases[m.currentIndex]
	if r := m.reviews[c.CaseID()]; r != nil && r.Note != "" {
		ta.SetValue(r.Note)
	}

	ta.Focus()
	m.noteTextarea = ta
	m.mode = ModeNote

	return m, textarea.Blink
}

func (m ReviewModel) exitNoteMode() (tea.Model, tea.Cmd) {
	if len(m.cases) > 0 {
		c := m.cases[m.currentIndex]
		caseID := c.CaseID()
		note := m.noteTextarea.Value()

		r := m.reviews[caseID]
		if r == nil {
			r = &llmjudge.Review{
				CaseID:     caseID,
				Index:      m.currentIndex,
				ReviewedAt: time.Now(),
			}
			m.reviews[caseID] = r
		}
		r.Note = note
		r.ReviewedAt = time.Now()

		m.persistReviews()
		m.updateViewportContent()
	}

	m.mode = ModeReview
	return m, nil
}

func (m *ReviewModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve: title (1), review bar (1), status bar (1)
	usableHeight := msg.Height - 3
	if usableHeight < 2 {
		usableHeight = 2
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, usableHeight)
		m.updateViewportContent()
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = usableHeight
	}

	return m, nil
}

func (m *ReviewModel) recordReview(agree bool) {
	if len(m.cases) == 0 {
		return
	}

	c := m.cases[m.currentIndex]
	caseID := c.CaseID()

	// Preserve existing note when toggling agree/disagree
	var note string
	if existing := m.reviews[caseID]; existing != nil {
		note = existing.Note
	}

	m.reviews[caseID] = &llmjudge.Review{
		CaseID:     caseID,
		Index:      m.currentIndex,
		Reviewed:   true,
		Agree:      agree,
		Note:       note,
		ReviewedAt: time.Now(),
	}

	m.persistReviews()
}

func (m *ReviewModel) copyRawResponse() {
	if m.clipboard == nil || len(m.cases) == 0 {
		return
	}
	c := m.cases[m.currentIndex]
	if c.Verdict == nil {
		return
	}
	// Best-effort copy - errors don't block the UI
	_ = m.clipboard.Copy(c.Verdict.RawResponse)
}

func (m *ReviewModel) persistReviews() {
	if m.store == nil || m.outputPath == "" {
		return
	}
	reviews := make([]llmjudge.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		reviews = append(reviews, *r)
	}
	// Sort by index for deterministic output
	sort.Slice(reviews, func(i, k int) bool {
		return reviews[i].Index < reviews[k].Index
	})
	// Best-effort save - errors are logged but don't block the UI
	_ = m.store.Save(m.outputPath, reviews)
}

// isUnreviewed returns true if the case at the given index hasn't been reviewed.
func (m ReviewModel) isUnreviewed(idx int) bool {
	if idx < 0 || idx >= len(m.cases) {
		return false
	}
	r := m.reviews[m.cases[idx].CaseID()]
	return r == nil || !r.Reviewed
}

// findNextUnreviewed returns the index of the next unreviewed case, wrapping
// around. Returns -1 if no unreviewed cases exist.
func (m ReviewModel) findNextUnreviewed() int {
	n := len(m.cases)
	if n == 0 {
		return -1
	}
	for i := 1; i <= n; i++ {
		idx := (m.currentIndex + i) % n
		if m.isUnreviewed(idx) {
			return idx
		}
	}
	return -1
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.mode == ModeNote {
		return m.renderNoteView()
	}

	var s strings.Builder

	s.WriteString(m.renderTitle())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderReviewBar())
	s.WriteString("\n")
	s.WriteString(m.renderStatusBar())

	return s.String()
}

func (m ReviewModel) renderNoteView() string {
	var s strings.Builder

	header := lipgloss.NewStyle().Bold(true).Render("NOTE")
	s.WriteString(header)
	s.WriteString("\n\n")
	s.WriteString(m.noteTextarea.View())
	s.WriteString("\n\n")
	s.WriteString(lipgloss.NewStyle().Faint(true).Render("[Esc] save and exit"))

	return s.String()
}

func (m ReviewModel) renderTitle() string {
	if len(m.cases) == 0 {
		return lipgloss.NewStyle().Bold(true).Render("VERDICT REVIEW")
	}

	c := m.cases[m.currentIndex]
	verdictLabel := "not judged"
	style := lipgloss.NewStyle().Bold(true)
	if c.Verdict != nil {
		if c.Verdict.Error != "" {
			verdictLabel = "judge error"
			style = style.Foreground(lipgloss.Color(m.styles.Failed.Foreground))
		} else if c.Verdict.Passed {
			verdictLabel = fmt.Sprintf("passed (%.0f)", c.Verdict.Score)
			style = style.Foreground(lipgloss.Color(m.styles.Passed.Foreground))
		} else {
			verdictLabel = fmt.Sprintf("failed (%.0f)", c.Verdict.Score)
			style = style.Foreground(lipgloss.Color(m.styles.Failed.Foreground))
		}
	}

	return fmt.Sprintf("%s  %s",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("CASE %d/%d", m.currentIndex+1, len(m.cases))),
		style.Render(verdictLabel))
}

func (m ReviewModel) renderReviewBar() string {
	if len(m.cases) == 0 {
		return ""
	}

	c := m.cases[m.currentIndex]
	r := m.reviews[c.CaseID()]

	agreeMarker := "○"
	disagreeMarker := "○"
	note := "[not set]"

	if r != nil {
		if r.Reviewed {
			if r.Agree {
				agreeMarker = "●"
			} else {
				disagreeMarker = "●"
			}
		}
		if r.Note != "" {
			note = r.Note
			if len(note) > 30 {
				note = note[:27] + "..."
			}
		}
	}

	return fmt.Sprintf("%s Agree  %s Disagree    Note: %s", agreeMarker, disagreeMarker, note)
}

func (m ReviewModel) renderStatusBar() string {
	if len(m.cases) == 0 {
		return "No cases"
	}

	reviewed := 0
	var indicators []string
	for _, c := range m.cases {
		r, ok := m.reviews[c.CaseID()]
		if !ok || !r.Reviewed {
			indicators = append(indicators, "○")
		} else {
			reviewed++
			if r.Agree {
				indicators = append(indicators, "✓")
			} else {
				indicators = append(indicators, "✗")
			}
		}
	}

	progress := fmt.Sprintf("%d/%d reviewed", reviewed, len(m.cases))
	indicatorBar := strings.Join(indicators, " ")
	help := "[a]gree [d]isagree [e]dit note [y]ank raw [n/N]case [u]nreviewed [j/k]scroll [q]uit"

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Muted.Foreground))
	return fmt.Sprintf("%s │ %s │ %s", progress, indicatorBar, muted.Render(help))
}
