package surveyshell

import _ "embed"

// Version is the release of the shell, taken from the VERSION file.
//
//go:embed VERSION
var Version string
