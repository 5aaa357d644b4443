package markdown

import (
	"bytes"
	"go/parser"
	"go/token"
	"html/template"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", "<p></p>"},
		{"Plain Text", "hello world", "<p>hello world</p>"},
		{"Bold", "**bold**", "<p><strong>bold</strong></p>"},
		{"Italic", "//italic//", "<p><em>italic</em></p>"},
		{"Bold Then Italic", "**a** and //b//", "<p><strong>a</strong> and <em>b</em></p>"},
		{"Italic Then Bold", "//a// and **b**", "<p><em>a</em> and <strong>b</strong></p>"},
		{"H2", "== Title\n", "<p><h2>Title</h2></p>"},
		{"H1", "= Title\n", "<p><h1>Title</h1></p>"},
		{"Header Without Newline", "= Title", "<p>= Title</p>"},
		{"Header Then Body", "= Welcome\nPlease answer.", "<p><h1>Welcome</h1>Please answer.</p>"},
		{"Bold In Header", "= A **big** deal\n", "<p><h1>A <strong>big</strong> deal</h1></p>"},
		{"Paragraph", "a\n\nb", "<p>a</p><p>b</p>"},
		{"First Paragraph Break Only", "a\n\nb\n\nc", "<p>a</p><p>b\n\nc</p>"},
		{"Unmatched Bold", "**open", "<p>**open</p>"},
		{"Unmatched Italic", "//open", "<p>//open</p>"},
		{"Only Markers", "****", "<p><strong></strong></p>"},
		{"Escapes Quotes", `say "hi" & 'bye'`, "<p>say &quot;hi&quot; &amp; &#39;bye&#39;</p>"},
		{"Bold Over Overlapping Italic", "**//nesting**//", "<p><strong>//nesting</strong>//</p>"},
		{"Slashes Shield Bold Between URLs", "see http://a.com and **b** at http://c.com", "<p>see http:<em>a.com and **b** at http:</em>c.com</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input))
		})
	}
}

func TestRender_NestingTieBreak(t *testing.T) {
	assert.Equal(t, "<p><strong><em>nesting</em></strong></p>", Render("**//nesting//**"))
	assert.Equal(t, "<p><em>**nesting**</em></p>", Render("//**nesting**//"))
}

func TestRender_HeaderPrecedence(t *testing.T) {
	// A "==" line must never be partially matched as "=".
	got := Render("== Sub\n= Main\n")
	assert.Equal(t, "<p><h2>Sub</h2><h1>Main</h1></p>", got)
	assert.NotContains(t, got, "=")
}

func TestRender_EscapesMarkup(t *testing.T) {
	inputs := []string{
		"<script>alert('x')</script>",
		"a < b && c > d",
		"**<b>**",
		"= <h1>\n",
		"//</em>//",
		"&lt;already&gt;",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got := Render(in)
			require.True(t, strings.HasPrefix(got, "<p>"))
			require.True(t, strings.HasSuffix(got, "</p>"))

			stripped := got
			for _, tag := range []string{"<p>", "</p>", "<h1>", "</h1>", "<h2>", "</h2>", "<strong>", "</strong>", "<em>", "</em>"} {
				stripped = strings.ReplaceAll(stripped, tag, "")
			}
			assert.NotContains(t, stripped, "<")
			assert.NotContains(t, stripped, ">")

			withoutEntities := stripped
			for _, entity := range []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#39;"} {
				withoutEntities = strings.ReplaceAll(withoutEntities, entity, "")
			}
			assert.NotContains(t, withoutEntities, "&")
		})
	}
}

func TestRender_WrapsExactlyOnce(t *testing.T) {
	for _, in := range []string{"", "x", "\n\n", "== a\n", "**a**//b//", "a\n\nb\n\nc"} {
		got := Render(in)
		breaks := strings.Count(got, "</p><p>")
		assert.True(t, strings.HasPrefix(got, "<p>"), got)
		assert.True(t, strings.HasSuffix(got, "</p>"), got)
		assert.LessOrEqual(t, breaks, 1, got)
		assert.Equal(t, 1+breaks, strings.Count(got, "<p>"), got)
		assert.Equal(t, 1+breaks, strings.Count(got, "</p>"), got)
	}
}

func TestSteps_Order(t *testing.T) {
	var names []string
	for _, s := range Steps() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"escape", "paragraph", "h2", "h1", "bold", "italic", "wrap"}, names)
}

func TestSteps_FoldMatchesRender(t *testing.T) {
	in := "= Hi\n**//x//** & y\n\nz"
	out := in
	for _, s := range Steps() {
		out = s.Apply(out)
	}
	assert.Equal(t, Render(in), out)
}

func TestFuncMap(t *testing.T) {
	tmpl := template.Must(template.New("page").Funcs(FuncMap()).Parse(`<div>{{ simpleMarkdown .Body }}</div>`))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]string{"Body": "**hi** <there>"})
	require.NoError(t, err)
	assert.Equal(t, "<div><p><strong>hi</strong> &lt;there&gt;</p></div>", buf.String())
}

func TestRender_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Render("**//a//**"); got != "<p><strong><em>a</em></strong></p>" {
					t.Errorf("unexpected output %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPackageDoc(t *testing.T) {
	// Dialect samples contain "*/", so the doc must stay in line comments.
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "doc.go", nil, parser.ParseComments)
	require.NoError(t, err)
	require.NotNil(t, f.Doc)

	doc := f.Doc.Text()
	assert.True(t, strings.HasPrefix(doc, "Package markdown converts"))
	assert.Contains(t, doc, `"**//x//**"`)
	assert.Contains(t, doc, "Lists, links and multi-paragraph splitting are not supported.")
}
