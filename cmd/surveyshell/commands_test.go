package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	out := execute(t, "**//nesting//**", "render")
	assert.Equal(t, "<p><strong><em>nesting</em></strong></p>\n", out)
}

func TestPreviewCommand(t *testing.T) {
	out := execute(t, "= Welcome\nPlease //answer//.", "preview", "--width", "30")
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "answer")
	assert.NotContains(t, out, "//")
}

func TestCheckCommand(t *testing.T) {
	t.Setenv("SURVEYSHELL_INITIALIZED", "false")

	out := execute(t, "", "check", "/survey")
	assert.Equal(t, "proceed\n", out)

	out = execute(t, "", "check", "--json", "/")
	var action navigation.Action
	require.NoError(t, json.Unmarshal([]byte(out), &action))
	assert.Equal(t, navigation.Redirect(navigation.DefaultRedirect), action)
}

func TestCheckCommand_Initialized(t *testing.T) {
	t.Setenv("SURVEYSHELL_INITIALIZED", "true")

	out := execute(t, "", "check", "--json=false", "/")
	assert.Equal(t, "proceed\n", out)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "", "version")
	assert.True(t, strings.HasPrefix(out, "surveyshell version "))
}
