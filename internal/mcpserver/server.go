// Package mcpserver exposes the decorator's resolution and metadata tools
// over MCP (Model Context Protocol) via stdio transport, so LLM clients can
// query the same pipeline the popups use.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/decorator"
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/settings"
	"github.com/starford/ansuz/internal/vault"
)

// Server wraps the MCP server with Ansuz tools.
type Server struct {
	mcp   *server.MCPServer
	dec   *decorator.Decorator
	store vault.Provider
	st    *settings.Store
}

// New creates a new MCP server with all Ansuz tools registered.
func New(dec *decorator.Decorator, store vault.Provider, st *settings.Store) *Server {
	s := &Server{dec: dec, store: store, st: st}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("resolve_suggestion",
		mcp.WithDescription("Resolve a suggestion's displayed title and note text to a vault file "+
			"and return the decoration verdict (hide flag, resolved path, rendered rows)."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Displayed suggestion title")),
		mcp.WithString("note", mcp.Description("Displayed note/path text (may be empty)")),
	), s.resolveSuggestion)

	s.mcp.AddTool(mcp.NewTool("file_properties",
		mcp.WithDescription("Return the configured frontmatter properties of a vault file, "+
			"rendered the same way the popups show them."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative vault path (e.g. folder/note.md)")),
	), s.fileProperties)

	s.mcp.AddTool(mcp.NewTool("get_settings",
		mcp.WithDescription("Return the current decorator settings record."),
	), s.getSettings)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) resolveSuggestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note := ""
	if n, err := req.RequireString("note"); err == nil {
		note = n
	}

	v := s.dec.Evaluate(decorator.Suggestion{Title: title, Note: note})
	out, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) fileProperties(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}

	cfg := s.st.Current()
	props := frontmatter.Extract(data)

	type entry struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}
	var out []entry
	for _, sel := range props.Select(cfg.PropertyNames()) {
		out = append(out, entry{Name: sel.Name, Items: sel.Value.Items()})
	}
	text, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(text)), nil
}

func (s *Server) getSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.st.Current(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
