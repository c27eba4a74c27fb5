package printer

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"ttc/pkg/compiler"
)

// Color palette
var (
	colorKeyword    = lipgloss.Color("#8B5CF6") // Violet
	colorIdentifier = lipgloss.Color("#06B6D4") // Cyan
	colorLiteral    = lipgloss.Color("#F59E0B") // Amber
	colorOperator   = lipgloss.Color("#94A3B8") // Slate 400
	colorStructure  = lipgloss.Color("#64748B") // Slate 500
	colorError      = lipgloss.Color("#EF4444") // Red
	colorHeader     = lipgloss.Color("#F8FAFC") // Slate 50
)

// Styles renders each part of a dump. Styles are bound to the renderer of
// the writer they print to, so piping to a file yields plain text.
type Styles struct {
	Header     lipgloss.Style
	Keyword    lipgloss.Style
	Identifier lipgloss.Style
	Literal    lipgloss.Style
	Operator   lipgloss.Style
	Structure  lipgloss.Style
	Guide      lipgloss.Style
	Error      lipgloss.Style
	Snippet    lipgloss.Style
}

// NewStyles builds the palette for output going to w.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Header:     r.NewStyle().Foreground(colorHeader).Bold(true).Underline(true),
		Keyword:    r.NewStyle().Foreground(colorKeyword).Bold(true),
		Identifier: r.NewStyle().Foreground(colorIdentifier),
		Literal:    r.NewStyle().Foreground(colorLiteral),
		Operator:   r.NewStyle().Foreground(colorOperator),
		Structure:  r.NewStyle().Foreground(colorStructure).Italic(true),
		Guide:      r.NewStyle().Foreground(colorStructure).Faint(true),
		Error:      r.NewStyle().Foreground(colorError).Bold(true),
		Snippet:    r.NewStyle().Foreground(colorOperator).Italic(true),
	}
}

// Token picks the style for a token by its category.
func (s *Styles) Token(tt compiler.TokenType) lipgloss.Style {
	switch {
	case tt == compiler.IDENTIFIER:
		return s.Identifier
	case tt.Interned():
		return s.Literal
	case tt >= compiler.IF && tt <= compiler.RETURN:
		return s.Keyword
	case tt == compiler.NEWLINE || tt == compiler.INDENT || tt == compiler.DEDENT:
		return s.Structure
	default:
		return s.Operator
	}
}
