// Package models defines the domain types for Ansuz.
package models

import "time"

// FileInfo is the index's view of one vault file.
type FileInfo struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Title     string    `json:"title,omitempty"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileMeta is the lightweight representation returned by vault listings.
type FileMeta struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
