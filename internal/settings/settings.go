// Package settings holds the mutable decorator configuration: which
// frontmatter properties to show, date formatting, and the hide filters.
package settings

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Settings is the flat decorator configuration record. The list-valued
// fields are stored comma-separated, matching how users type them into the
// settings panel.
type Settings struct {
	Properties          string `yaml:"properties" json:"properties"`
	DateFormat          string `yaml:"date_format" json:"date_format"`
	ExcludedFolders     string `yaml:"excluded_folders" json:"excluded_folders"`
	ShowCreated         bool   `yaml:"show_created" json:"show_created"`
	ShowModified        bool   `yaml:"show_modified" json:"show_modified"`
	HideMissing         bool   `yaml:"hide_missing" json:"hide_missing"`
	CommandHidePatterns string `yaml:"command_hide_patterns" json:"command_hide_patterns"`
}

// NewDefault returns the built-in defaults loaded settings are merged over.
func NewDefault() Settings {
	return Settings{
		DateFormat: "yyyy-MM-dd HH:mm",
	}
}

// Validate validates the settings record.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.DateFormat, validation.Required),
		validation.Field(&s.Properties, validation.Length(0, 4096)),
		validation.Field(&s.ExcludedFolders, validation.Length(0, 4096)),
		validation.Field(&s.CommandHidePatterns, validation.Length(0, 4096)),
	)
}

// PropertyNames returns the configured property names in order, trimmed,
// duplicates kept, empty entries dropped.
func (s *Settings) PropertyNames() []string {
	return splitCSV(s.Properties)
}

// ExcludedFolderList returns the configured folder prefixes, trimmed of
// whitespace and any trailing separator.
func (s *Settings) ExcludedFolderList() []string {
	folders := splitCSV(s.ExcludedFolders)
	for i, f := range folders {
		folders[i] = strings.TrimSuffix(f, "/")
	}
	return folders
}

// CommandPatternList returns the raw command-hide pattern entries.
func (s *Settings) CommandPatternList() []string {
	return splitCSV(s.CommandHidePatterns)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
