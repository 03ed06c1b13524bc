package index

import "github.com/starford/ansuz/internal/models"

// FileIndex defines the lookup operations the decorator depends on.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type FileIndex interface {
	UpsertFile(f models.FileInfo) error
	DeleteFile(path string) error
	GetByPath(path string) (*models.FileInfo, error)
	FirstByName(name string) (*models.FileInfo, error)
	GetChecksum(path string) (string, error)
	AllPaths() (map[string]struct{}, error)
	AllChecksums() (map[string]string, error)
	Close() error
}

// Verify *DB satisfies FileIndex at compile time.
var _ FileIndex = (*DB)(nil)
