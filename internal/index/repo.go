package index

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

// UpsertFile inserts or replaces a file row. The created_at instant is set
// on first insert only and preserved across later upserts, so it records
// when the file was first seen in the vault.
func (db *DB) UpsertFile(f models.FileInfo) error {
	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = f.UpdatedAt
	}
	_, err := db.conn.Exec(`
		INSERT INTO files (path, name, title, checksum, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name       = excluded.name,
			title      = excluded.title,
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
	`, f.Path, f.Name, f.Title, f.Checksum, createdAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert file: %w", err)
	}
	return nil
}

// DeleteFile removes a file row.
func (db *DB) DeleteFile(path string) error {
	if _, err := db.conn.Exec(`DELETE FROM files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete file: %w", err)
	}
	return nil
}

// GetByPath returns the file at the exact path, or apperr.ErrNotFound.
func (db *DB) GetByPath(path string) (*models.FileInfo, error) {
	row := db.conn.QueryRow(`
		SELECT path, name, title, checksum, created_at, updated_at
		FROM files WHERE path = ?
	`, path)
	return scanFile(row)
}

// FirstByName returns the first file whose base name equals name, in rowid
// order. When several files share a name the winner is whichever was indexed
// first; callers treating the result as canonical accept that ambiguity.
func (db *DB) FirstByName(name string) (*models.FileInfo, error) {
	row := db.conn.QueryRow(`
		SELECT path, name, title, checksum, created_at, updated_at
		FROM files WHERE name = ? ORDER BY rowid LIMIT 1
	`, name)
	return scanFile(row)
}

func scanFile(row *sql.Row) (*models.FileInfo, error) {
	var f models.FileInfo
	err := row.Scan(&f.Path, &f.Name, &f.Title, &f.Checksum, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("index: scan file: %w", err)
	}
	return &f, nil
}

// GetChecksum returns the stored checksum for a file, or empty string if not found.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM files WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// AllPaths returns every indexed file path.
func (db *DB) AllPaths() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT path FROM files`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out[p] = struct{}{}
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed file.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM files`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}
