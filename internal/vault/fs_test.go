package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func tempVault(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs, dir
}

func TestReadAndList(t *testing.T) {
	v, dir := tempVault(t)
	content := []byte("# Hello\nWorld\n")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "note.md"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := v.Read("sub/note.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}

	metas, err := v.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("len(metas) = %d, want 1", len(metas))
	}
	if metas[0].Path != "sub/note.md" {
		t.Errorf("path = %q, want sub/note.md", metas[0].Path)
	}
	if metas[0].Name != "note.md" {
		t.Errorf("name = %q, want note.md", metas[0].Name)
	}
	if metas[0].Checksum != Checksum(content) {
		t.Errorf("checksum mismatch")
	}
}

func TestListSkipsNonMarkdown(t *testing.T) {
	v, dir := tempVault(t)
	_ = os.WriteFile(filepath.Join(dir, "image.png"), []byte{0x89}, 0o644)
	_ = os.WriteFile(filepath.Join(dir, "note.md"), []byte("hi"), 0o644)

	metas, err := v.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].Path != "note.md" {
		t.Errorf("metas = %v, want only note.md", metas)
	}
}

func TestStat(t *testing.T) {
	v, dir := tempVault(t)
	_ = os.WriteFile(filepath.Join(dir, "note.md"), []byte("hi"), 0o644)

	st, err := v.Stat("note.md")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if st.UpdatedAt.IsZero() || st.CreatedAt.IsZero() {
		t.Errorf("expected non-zero timestamps, got %+v", st)
	}
}

func TestPathTraversalRejected(t *testing.T) {
	v, _ := tempVault(t)
	if _, err := v.Read("../outside.md"); err == nil {
		t.Error("expected error for path escaping root")
	}
	if _, err := v.Read("/etc/passwd"); err == nil {
		t.Error("expected error for absolute path")
	}
}
