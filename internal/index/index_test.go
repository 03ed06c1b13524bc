package index

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM files`).Scan(&count); err != nil {
		t.Fatalf("files table missing: %v", err)
	}
}

func TestUpsertAndGetByPath(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	fi := models.FileInfo{
		Path:      "topics/hello.md",
		Name:      "hello.md",
		Title:     "Hello World",
		Checksum:  "abc123",
		UpdatedAt: now,
	}
	if err := db.UpsertFile(fi); err != nil {
		t.Fatalf("UpsertFile: %v", err)
	}

	got, err := db.GetByPath("topics/hello.md")
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if got.Name != "hello.md" || got.Title != "Hello World" || got.Checksum != "abc123" {
		t.Errorf("got = %+v", got)
	}
}

func TestGetByPath_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.GetByPath("missing.md")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFirstByName_InsertionOrderWins(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	_ = db.UpsertFile(models.FileInfo{Path: "a/Foo.md", Name: "Foo.md", UpdatedAt: now})
	_ = db.UpsertFile(models.FileInfo{Path: "b/Foo.md", Name: "Foo.md", UpdatedAt: now})

	got, err := db.FirstByName("Foo.md")
	if err != nil {
		t.Fatalf("FirstByName: %v", err)
	}
	if got.Path != "a/Foo.md" {
		t.Errorf("path = %q, want first indexed a/Foo.md", got.Path)
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	db := testDB(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_ = db.UpsertFile(models.FileInfo{Path: "n.md", Name: "n.md", CreatedAt: created, UpdatedAt: created})
	_ = db.UpsertFile(models.FileInfo{Path: "n.md", Name: "n.md", Checksum: "v2", CreatedAt: later, UpdatedAt: later})

	got, err := db.GetByPath("n.md")
	if err != nil {
		t.Fatal(err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want first-seen %v", got.CreatedAt, created)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("updated_at = %v, want %v", got.UpdatedAt, later)
	}
	if got.Checksum != "v2" {
		t.Errorf("checksum = %q, want v2", got.Checksum)
	}
}

func TestDeleteFile(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertFile(models.FileInfo{Path: "x.md", Name: "x.md", UpdatedAt: time.Now()})
	if err := db.DeleteFile("x.md"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := db.GetByPath("x.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}

func TestAllChecksumsAndPaths(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertFile(models.FileInfo{Path: "a.md", Name: "a.md", Checksum: "1", UpdatedAt: time.Now()})
	_ = db.UpsertFile(models.FileInfo{Path: "b.md", Name: "b.md", Checksum: "2", UpdatedAt: time.Now()})

	sums, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 2 || sums["a.md"] != "1" || sums["b.md"] != "2" {
		t.Errorf("sums = %v", sums)
	}

	paths, err := db.AllPaths()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := paths["a.md"]; !ok || len(paths) != 2 {
		t.Errorf("paths = %v", paths)
	}
}
