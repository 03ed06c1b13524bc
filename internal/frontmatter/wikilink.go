package frontmatter

import (
	"regexp"
	"strings"
)

var wikilinkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)

// Segment is one span of a rendered value: either plain text or the display
// text of a wikilink (brackets stripped, alias preferred over the target).
type Segment struct {
	Text string
	Link bool
}

// HasWikilink reports whether s contains at least one [[...]] reference.
func HasWikilink(s string) bool {
	return wikilinkRe.MatchString(s)
}

// Segments splits s into plain and link spans. [[target]] renders the
// target, [[target|alias]] renders the alias; multiple occurrences within
// one value are all stripped.
func Segments(s string) []Segment {
	var out []Segment
	rest := s
	for {
		loc := wikilinkRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if before := rest[:loc[0]]; before != "" {
			out = append(out, Segment{Text: before})
		}
		out = append(out, Segment{Text: linkText(rest[loc[2]:loc[3]]), Link: true})
		rest = rest[loc[1]:]
	}
	if rest != "" {
		out = append(out, Segment{Text: rest})
	}
	return out
}

// linkText strips the alias separator: [[target|alias]] prefers the alias.
func linkText(inner string) string {
	if i := strings.Index(inner, "|"); i >= 0 {
		if alias := strings.TrimSpace(inner[i+1:]); alias != "" {
			return alias
		}
		return strings.TrimSpace(inner[:i])
	}
	return strings.TrimSpace(inner)
}
