package decorator

import (
	"time"

	"github.com/starford/ansuz/internal/frontmatter"
)

// Span is one styled run of text in a decoration row. Link spans render in
// the host's link color with an underline.
type Span struct {
	Text string `json:"text"`
	Link bool   `json:"link,omitempty"`
}

// Row is one decoration line appended beneath a suggestion title. Property
// is empty for the Created/Modified metadata rows.
type Row struct {
	Property string `json:"property,omitempty"`
	Spans    []Span `json:"spans"`
}

// Text returns the row's concatenated text.
func (r Row) Text() string {
	var out string
	for _, s := range r.Spans {
		out += s.Text
	}
	return out
}

// propertyRows renders the selected frontmatter values. Each value becomes
// one or more spans (wikilinks stripped to their display text, ISO dates
// reformatted with the configured pattern, everything else passed through),
// and every rendered value is followed by a single separating space.
func propertyRows(props frontmatter.Properties, names []string, dateFormat string) []Row {
	var rows []Row
	for _, sel := range props.Select(names) {
		row := Row{Property: sel.Name}
		for _, item := range sel.Value.Items() {
			row.Spans = append(row.Spans, valueSpans(item, dateFormat)...)
			row.Spans = append(row.Spans, Span{Text: " "})
		}
		rows = append(rows, row)
	}
	return rows
}

func valueSpans(item, dateFormat string) []Span {
	if frontmatter.HasWikilink(item) {
		segs := frontmatter.Segments(item)
		spans := make([]Span, len(segs))
		for i, seg := range segs {
			spans[i] = Span{Text: seg.Text, Link: seg.Link}
		}
		return spans
	}
	if t, ok := frontmatter.ParseISO(item); ok {
		return []Span{{Text: frontmatter.FormatPattern(t, dateFormat)}}
	}
	return []Span{{Text: item}}
}

// metaRow renders a "Created:" or "Modified:" line.
func metaRow(label string, t time.Time, dateFormat string) Row {
	return Row{Spans: []Span{{Text: label + ": " + frontmatter.FormatPattern(t, dateFormat)}}}
}
