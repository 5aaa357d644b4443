/*
Package surveyshell is a small host for a survey-first web application.

Its only non-trivial logic lives in two leaf packages:

  - markdown: a restricted markdown-to-HTML converter with fixed, ordered
    rewrite rules and explicit escaping.
  - navigation: a guard consulted before every route transition that sends
    users to the intro survey until the shell is marked initialized.

The rest of the module wires those two into an HTTP server (chi), a CLI
(cobra), an MCP tool server, and optional Redis caching of survey sources.

# Usage

Render the dialect directly:

	html := markdown.Render("= Hello\n**world**")
	// <p><h1>Hello</h1><strong>world</strong></p>

Gate a navigation:

	state := navigation.NewState(false)
	action := navigation.Guard(navigation.Target{Path: "/"}, state)
	if action.IsRedirect() {
		// send the user to action.Path
	}

Or run the full shell:

	surveyshell serve --config surveyshell.yaml
*/
package surveyshell
