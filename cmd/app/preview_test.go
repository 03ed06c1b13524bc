package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/ansuz/internal/decorator"
	"github.com/starford/ansuz/internal/dom"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/settings"
	"github.com/starford/ansuz/internal/testutil"
)

func previewEnv(t *testing.T, rel, content string) (*decorator.Decorator, *decorator.HostMarkup, *settings.Store) {
	t.Helper()

	vaultDir, store := testutil.TestVault(t)
	if err := os.WriteFile(filepath.Join(vaultDir, rel), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	db := testutil.TestDB(t)
	logger := testutil.QuietLogger()
	if err := index.Sync(db, store, logger); err != nil {
		t.Fatal(err)
	}

	st := testutil.TestSettings(t)
	markup := decorator.NewHostMarkup()
	return decorator.New(db, store, st, markup, logger), markup, st
}

func TestDecorateSuggestion_ZeroRowsCompletes(t *testing.T) {
	dec, markup, _ := previewEnv(t, "Foo.md", "plain body, no frontmatter\n")

	doc, err := decorateSuggestion(dec, markup, "Foo", "", 2*time.Second, testutil.QuietLogger())
	if err != nil {
		t.Fatalf("decorateSuggestion: %v", err)
	}

	item := doc.Body().First(dom.ByClass(markup.ItemClass))
	if item == nil {
		t.Fatal("resolvable suggestion should keep its item")
	}
	if n := len(item.FindAll(dom.ByClass(decorator.MarkerClass))); n != 0 {
		t.Errorf("marker rows = %d, want 0 with default settings", n)
	}
}

func TestDecorateSuggestion_RowsRendered(t *testing.T) {
	dec, markup, st := previewEnv(t, "Foo.md", "---\nstatus: active\n---\nbody\n")

	cfg := st.Current()
	cfg.Properties = "status"
	if err := st.Update(cfg); err != nil {
		t.Fatal(err)
	}

	doc, err := decorateSuggestion(dec, markup, "Foo", "", 2*time.Second, testutil.QuietLogger())
	if err != nil {
		t.Fatalf("decorateSuggestion: %v", err)
	}

	rows := doc.Body().FindAll(dom.ByClass(decorator.MarkerClass))
	if len(rows) != 1 {
		t.Fatalf("marker rows = %d, want 1", len(rows))
	}
	if got := rows[0].TextContent(); got != "active " {
		t.Errorf("row text = %q, want \"active \"", got)
	}
}
