// Package markdown converts the shell's restricted markdown dialect into HTML.
//
// The dialect has four patterns and one paragraph break:
//
//	== Subtitle\n   ->  <h2>Subtitle</h2>
//	= Title\n       ->  <h1>Title</h1>
//	**bold**        ->  <strong>bold</strong>
//	//italic//      ->  <em>italic</em>
//	\n\n            ->  </p><p>   (first occurrence only)
//
// Conversion is a fixed, ordered list of rewrite steps applied to an accumulator
// string. The input is escaped before any pattern runs, so produced tags never
// collide with user text, and no step re-opens a span produced by an earlier one.
//
// Nesting is deliberately shallow. Bold may contain italic, so "**//x//**"
// becomes "<strong><em>x</em></strong>". An italic span shields its contents, so
// "//**x**//" becomes "<em>**x**</em>". Malformed input such as "**//x**//"
// degrades to "<strong>//x</strong>//" instead of producing unbalanced tags.
//
// The shield applies to any text between two "//", so bold between two URLs
// ("http://a and **b** at http://c") stays literal inside the resulting italic span.
//
// Lists, links and multi-paragraph splitting are not supported.
package markdown
