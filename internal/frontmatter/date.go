package frontmatter

import (
	"strings"
	"time"
)

// isoLayouts are the accepted ISO-8601 shapes, most specific first.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseISO attempts to parse s as an ISO-8601 date or datetime.
func ParseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// patternTokens maps date-pattern tokens (the yyyy-MM-dd style users
// configure) to Go reference-layout fragments. Longest tokens first so the
// scanner never splits a token.
var patternTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"MMMM", "January"},
	{"EEEE", "Monday"},
	{"MMM", "Jan"},
	{"EEE", "Mon"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"d", "2"},
	{"h", "3"},
	{"m", "4"},
	{"s", "5"},
	{"a", "pm"},
	{"A", "PM"},
}

// FormatPattern renders t using a yyyy-MM-dd style pattern string.
// Unrecognised runes pass through as literals.
func FormatPattern(t time.Time, pattern string) string {
	var layout strings.Builder
	i := 0
scan:
	for i < len(pattern) {
		for _, pt := range patternTokens {
			if strings.HasPrefix(pattern[i:], pt.token) {
				layout.WriteString(pt.layout)
				i += len(pt.token)
				continue scan
			}
		}
		layout.WriteByte(pattern[i])
		i++
	}
	return t.Format(layout.String())
}
