package bubbletea

import "github.com/charmbracelet/bubbles/key"

// ReviewKeyMap defines the key bindings for the verdict reviewer.
type ReviewKeyMap struct {
	// Navigation
	NextCase       key.Binding
	PrevCase       key.Binding
	NextUnreviewed key.Binding

	// Scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Review
	Agree    key.Binding
	Disagree key.Binding
	Note     key.Binding

	// Note mode
	ExitNote key.Binding

	// Export
	CopyRaw key.Binding

	// General
	Quit key.Binding
}

// DefaultReviewKeyMap returns the default key bindings for the verdict reviewer.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		NextCase: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next case"),
		),
		PrevCase: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous case"),
		),
		NextUnreviewed: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "next unreviewed"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Agree: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "agree with verdict"),
		),
		Disagree: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disagree with verdict"),
		),
		Note: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit note"),
		),
		ExitNote: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "save note and exit"),
		),
		CopyRaw: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy raw judge output"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
