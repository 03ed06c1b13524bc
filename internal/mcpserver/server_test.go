package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/ansuz/internal/decorator"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()

	vaultDir, store := testutil.TestVault(t)
	db := testutil.TestDB(t)
	st := testutil.TestSettings(t)
	logger := testutil.QuietLogger()

	cfg := st.Current()
	cfg.Properties = "status"
	if err := st.Update(cfg); err != nil {
		t.Fatal(err)
	}

	seed := "---\nstatus: draft\n---\nbody\n"
	if err := os.WriteFile(filepath.Join(vaultDir, "Foo.md"), []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := index.Sync(db, store, logger); err != nil {
		t.Fatal(err)
	}

	dec := decorator.New(db, store, st, decorator.NewHostMarkup(), logger)
	return New(dec, store, st), vaultDir
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "resolve_suggestion":
		result, err = srv.resolveSuggestion(ctx, req)
	case "file_properties":
		result, err = srv.fileProperties(ctx, req)
	case "get_settings":
		result, err = srv.getSettings(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestResolveSuggestion(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "resolve_suggestion", map[string]interface{}{
		"title": "Foo",
		"note":  "",
	})
	text := resultText(r)
	if !strings.Contains(text, `"Foo.md"`) {
		t.Errorf("resolve result = %q, want path Foo.md", text)
	}
}

func TestResolveSuggestionMissingTitle(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "resolve_suggestion", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error result for missing title")
	}
}

func TestFileProperties(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "file_properties", map[string]interface{}{
		"path": "Foo.md",
	})
	text := resultText(r)
	if !strings.Contains(text, "status") || !strings.Contains(text, "draft") {
		t.Errorf("properties result = %q", text)
	}
}

func TestFilePropertiesMissing(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "file_properties", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error result for missing file")
	}
}

func TestGetSettings(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "get_settings", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "date_format") {
		t.Errorf("settings result = %q", text)
	}
}
