package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/surveyshell"
	"github.com/aretw0/surveyshell/pkg/input"
	"github.com/aretw0/surveyshell/pkg/markdown"
	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/aretw0/surveyshell/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SourcesURI is the resource listing the available survey sources.
const SourcesURI = "surveyshell://sources"

// RenderResponse is the structured result of the render_markdown tool.
type RenderResponse struct {
	HTML string `json:"html" jsonschema_description:"The rendered HTML, always wrapped in <p>...</p>"`
}

// Server exposes the converter and the guard as MCP tools.
type Server struct {
	gate         *navigation.Gate
	sources      ports.SourceLoader
	maxInputSize int
	logger       *slog.Logger
	mcpServer    *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithSources exposes a source listing resource when loader is a ports.SourceLister.
func WithSources(loader ports.SourceLoader) Option {
	return func(s *Server) {
		s.sources = loader
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxInputSize limits the markdown accepted by render_markdown.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.maxInputSize = n
	}
}

// NewServer creates a new MCP Server instance around gate.
func NewServer(gate *navigation.Gate, opts ...Option) *Server {
	if gate == nil {
		gate = navigation.NewGate(nil)
	}
	s := &Server{
		gate:         gate,
		maxInputSize: input.DefaultMaxSize,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer:    server.NewMCPServer("surveyshell-mcp", strings.TrimSpace(surveyshell.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: render_markdown
	renderTool := mcp.NewTool("render_markdown",
		mcp.WithDescription("Convert text in the shell's restricted markdown dialect (**bold**, //italic//, = h1, == h2) to HTML."),
		mcp.WithString("markdown", mcp.Required(), mcp.Description("The text to convert")),
		mcp.WithOutputSchema[RenderResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))

	// TOOL: check_navigation
	checkTool := mcp.NewTool("check_navigation",
		mcp.WithDescription("Ask the navigation guard whether a path may proceed or is redirected to the intro survey."),
		mcp.WithString("path", mcp.Required(), mcp.Description("The requested route path, e.g. / or /survey")),
		mcp.WithBoolean("initialized", mcp.Description("Override the shell's completion flag for this check (optional)")),
		mcp.WithOutputSchema[navigation.Action](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheck))
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RenderResponse, error) {
	text, ok := args["markdown"].(string)
	if !ok {
		return RenderResponse{}, fmt.Errorf("markdown must be a string")
	}

	clean, err := input.Sanitize(text, s.maxInputSize)
	if err != nil {
		s.logger.Warn("MCP Render: Input rejected", "error", err, "size", len(text))
		return RenderResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	return RenderResponse{HTML: markdown.Render(clean)}, nil
}

// handleCheck returns the guard decision as {kind, path}.
func (s *Server) handleCheck(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (navigation.Action, error) {
	path, ok := args["path"].(string)
	if !ok {
		return navigation.Action{}, fmt.Errorf("path must be a string")
	}
	target := navigation.Target{Path: path}

	// An explicit override is evaluated against a throwaway state so the
	// shared one is never mutated from a tool call.
	if override, ok := args["initialized"].(bool); ok {
		return navigation.Guard(target, navigation.NewState(override)), nil
	}
	return s.gate.Check(target), nil
}

func (s *Server) registerResources() {
	lister, ok := s.sources.(ports.SourceLister)
	if !ok {
		return
	}

	// EXPOSE: surveyshell://sources
	s.mcpServer.AddResource(mcp.NewResource(SourcesURI, "Survey Sources",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := lister.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list sources: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SourcesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
