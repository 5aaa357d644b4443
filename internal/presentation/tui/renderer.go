package tui

import (
	"io"
	"os"
	"regexp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

var (
	h2Line     = regexp.MustCompile(`(?m)^== `)
	h1Line     = regexp.MustCompile(`(?m)^= `)
	italicSpan = regexp.MustCompile(`//([^/\n]+?)//`)
)

// DialectToMarkdown rewrites the shell's dialect into CommonMark so it can be
// previewed in a terminal: "== x" and "= x" lines become "## x" and "# x",
// "//x//" becomes "*x*". Bold is already CommonMark.
func DialectToMarkdown(text string) string {
	text = h2Line.ReplaceAllString(text, "## ")
	text = h1Line.ReplaceAllString(text, "# ")
	return italicSpan.ReplaceAllString(text, "*$1*")
}

// NewRenderer returns a function that renders markdown using glamour.
// A positive width wraps output at that column.
func NewRenderer(width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of f, or DefaultWidth when f is not a terminal.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// WidthOf returns the column count of w when it is a terminal file, or DefaultWidth otherwise.
func WidthOf(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	return Width(f)
}
