package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/surveyshell/pkg/adapters/memory"
	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRender(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"markdown": "//**nesting**//",
	})
	require.NoError(t, err)
	assert.Equal(t, "<p><em>**nesting**</em></p>", resp.HTML)
}

func TestHandleRender_Rejects(t *testing.T) {
	s := NewServer(nil, WithMaxInputSize(4))

	_, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"markdown": strings.Repeat("x", 5),
	})
	assert.ErrorContains(t, err, "input rejected")

	_, err = s.handleRender(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"markdown": 42,
	})
	assert.Error(t, err)
}

func TestHandleCheck(t *testing.T) {
	state := navigation.NewState(false)
	s := NewServer(navigation.NewGate(state))
	ctx := context.Background()

	action, err := s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{"path": "/"})
	require.NoError(t, err)
	assert.Equal(t, navigation.Redirect(navigation.DefaultRedirect), action)

	action, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{"path": "/survey?x=1"})
	require.NoError(t, err)
	assert.Equal(t, navigation.Proceed(), action)

	action, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{"path": "/", "initialized": true})
	require.NoError(t, err)
	assert.Equal(t, navigation.Proceed(), action)
	assert.False(t, state.Initialized(), "an override must not touch the shared state")

	_, err = s.handleCheck(ctx, mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)
}

func TestHandleCheck_ResultShape(t *testing.T) {
	s := NewServer(nil)

	action, err := s.handleCheck(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"path": "/"})
	require.NoError(t, err)

	data, err := json.Marshal(action)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "redirect", "path": "/survey?source=/static/intro.json"}`, string(data))
}

func TestNewServer_WithSources(t *testing.T) {
	src := memory.NewSource(map[string]string{"intro.json": `{"title": "x"}`})
	s := NewServer(nil, WithSources(src))
	assert.NotNil(t, s.mcpServer)
}
