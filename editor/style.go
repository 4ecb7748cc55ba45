package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/highlight"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	// Per-classification styles. They are rendered on top of Text.
	Number           lipgloss.Style
	String           lipgloss.Style
	Character        lipgloss.Style
	Comment          lipgloss.Style
	PrimaryKeyword   lipgloss.Style
	SecondaryKeyword lipgloss.Style
	Match            lipgloss.Style

	Status        lipgloss.Style
	StatusMessage lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		Number:           lipgloss.NewStyle().Foreground(lipgloss.Color("#bd93f9")),
		String:           lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c")),
		Character:        lipgloss.NewStyle().Foreground(lipgloss.Color("#6c71c4")),
		Comment:          lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")),
		PrimaryKeyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("#b58900")),
		SecondaryKeyword: lipgloss.NewStyle().Foreground(lipgloss.Color("#2aa198")),
		Match:            lipgloss.NewStyle().Foreground(lipgloss.Color("#268bd2")).Underline(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3f3f3f", Dark: "#eeeeee"}).
			Background(lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#3a3a3a"}),
		StatusMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff79c6")),
	}
}

// forType returns the style for a classification tag.
func (s Style) forType(t highlight.Type) lipgloss.Style {
	var st lipgloss.Style
	switch t {
	case highlight.Number:
		st = s.Number
	case highlight.String:
		st = s.String
	case highlight.Character:
		st = s.Character
	case highlight.LineComment, highlight.BlockComment:
		st = s.Comment
	case highlight.PrimaryKeyword:
		st = s.PrimaryKeyword
	case highlight.SecondaryKeyword:
		st = s.SecondaryKeyword
	case highlight.Match:
		st = s.Match
	default:
		return s.Text
	}
	return st.Inherit(s.Text)
}
