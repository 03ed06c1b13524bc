// Package vault defines read access to the host application's document vault.
package vault

import (
	"time"

	"github.com/starford/ansuz/internal/models"
)

// Stat holds the timestamps the decorator renders for a file.
type Stat struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Provider is the interface for vault file access. The decorator never
// writes to the vault; it only lists, reads, and stats.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to vault root).
	List(dir string) ([]models.FileMeta, error)
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
	// Stat returns timestamps for the file at path (relative to vault root).
	Stat(path string) (Stat, error)
}
