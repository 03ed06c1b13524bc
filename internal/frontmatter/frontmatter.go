// Package frontmatter extracts YAML frontmatter from Markdown content and
// models its values as a tagged union suitable for rendering.
package frontmatter

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// blockRe matches the leading frontmatter block: a line of three hyphens,
// a non-greedy body, and a closing line of three hyphens. First match only.
var blockRe = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n---(?:\r?\n|\z)`)

// Properties holds the parsed key-value pairs of one frontmatter block.
type Properties struct {
	values map[string]Value
}

// Selected pairs a configured property name with its value.
type Selected struct {
	Name  string
	Value Value
}

// Extract locates and parses the leading frontmatter block of data.
// A missing or malformed block yields an empty property set; that is the
// expected "no frontmatter" case, never an error.
func Extract(data []byte) Properties {
	trimmed := strings.TrimLeft(string(data), "\n\r")
	m := blockRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Properties{}
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(m[1]), &raw); err != nil || raw == nil {
		return Properties{}
	}

	values := make(map[string]Value, len(raw))
	for k, v := range raw {
		values[k] = coerce(v)
	}
	return Properties{values: values}
}

// Len reports the number of parsed keys.
func (p Properties) Len() int { return len(p.values) }

// Get returns the value for key, or the absent value.
func (p Properties) Get(key string) Value {
	if v, ok := p.values[key]; ok {
		return v
	}
	return Absent()
}

// Select returns the values for each configured name, trimmed, in the
// configured order, duplicates kept. Names missing from the block are
// skipped entirely.
func (p Properties) Select(names []string) []Selected {
	var out []Selected
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		v := p.Get(name)
		if v.IsAbsent() {
			continue
		}
		out = append(out, Selected{Name: name, Value: v})
	}
	return out
}
