package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the surveyshell banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Teal to indigo
	s1 := termenv.String("  ┌─┐┬ ┬┬─┐┬  ┬┌─┐┬ ┬  ┌─┐┬ ┬┌─┐┬  ┬  ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  └─┐│ │├┬┘└┐┌┘├┤ └┬┘  └─┐├─┤├┤ │  │  ").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String("  └─┘└─┘┴└─ └┘ └─┘ ┴   └─┘┴ ┴└─┘┴─┘┴─┘").Foreground(p.Color("#818cf8"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w)
}
