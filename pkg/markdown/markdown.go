package markdown

import (
	"html/template"
	"regexp"
	"strings"
)

// FilterName is the name the converter is registered under in template function maps.
const FilterName = "simpleMarkdown"

// Step is a single rewrite applied to the accumulator during Render.
type Step struct {
	Name  string
	apply func(string) string
}

// Apply runs the step against text.
func (s Step) Apply(text string) string {
	return s.apply(text)
}

var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	h2Pattern = regexp.MustCompile(`== ([^<>]*?)\n`)
	h1Pattern = regexp.MustCompile(`= ([^<>]*?)\n`)

	// The first alternative claims complete italic spans so bold markers inside
	// them stay literal; only the second alternative is rewritten.
	boldPattern   = regexp.MustCompile(`//[^<>]*?//|\*\*([^<>]*?)\*\*`)
	italicPattern = regexp.MustCompile(`//([^<>]*?)//`)
)

// steps is the fixed pipeline. Order is load-bearing.
var steps = []Step{
	{Name: "escape", apply: escaper.Replace},
	{Name: "paragraph", apply: func(s string) string {
		return strings.Replace(s, "\n\n", "</p><p>", 1)
	}},
	{Name: "h2", apply: func(s string) string {
		return h2Pattern.ReplaceAllString(s, "<h2>${1}</h2>")
	}},
	{Name: "h1", apply: func(s string) string {
		return h1Pattern.ReplaceAllString(s, "<h1>${1}</h1>")
	}},
	{Name: "bold", apply: rewriteBold},
	{Name: "italic", apply: func(s string) string {
		return italicPattern.ReplaceAllString(s, "<em>${1}</em>")
	}},
	{Name: "wrap", apply: func(s string) string {
		return "<p>" + s + "</p>"
	}},
}

func rewriteBold(s string) string {
	return boldPattern.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "//") {
			return match
		}
		return "<strong>" + match[2:len(match)-2] + "</strong>"
	})
}

// Steps returns a copy of the ordered rewrite pipeline used by Render.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Render converts text in the restricted dialect into HTML wrapped in a single
// paragraph. It is total and safe for concurrent use.
func Render(markdown string) string {
	out := markdown
	for _, step := range steps {
		out = step.apply(out)
	}
	return out
}

// HTML is Render typed for html/template, which would otherwise escape the result again.
func HTML(markdown string) template.HTML {
	return template.HTML(Render(markdown))
}

// FuncMap exposes the converter as the simpleMarkdown template filter.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		FilterName: HTML,
	}
}
