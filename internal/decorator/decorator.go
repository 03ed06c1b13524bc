// Package decorator implements the suggestion decoration pipeline:
// resolve a displayed suggestion back to a vault file, apply the hide
// filters, and render frontmatter metadata rows beneath the title.
package decorator

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/dom"
	"github.com/starford/ansuz/internal/frontmatter"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/settings"
	"github.com/starford/ansuz/internal/vault"
)

// MarkerClass tags every decoration node so a later pass can find and
// remove the previous run's output before appending fresh rows.
const MarkerClass = "ansuz-meta"

// LinkClass tags link spans for host-side styling.
const LinkClass = "ansuz-link"

// Suggestion is the decorator's view of one popup entry, extracted from the
// markup by the adapter.
type Suggestion struct {
	Title   string `json:"title"`
	Note    string `json:"note"`
	Palette bool   `json:"palette,omitempty"`
	Label   string `json:"label,omitempty"`
}

// Verdict is the outcome of evaluating one suggestion.
type Verdict struct {
	Hide bool   `json:"hide"`
	Path string `json:"path,omitempty"`
	Rows []Row  `json:"rows,omitempty"`
}

// Decorator evaluates suggestions against the vault index and the live
// settings. It is safe for concurrent use.
type Decorator struct {
	idx    index.FileIndex
	store  vault.Provider
	st     *settings.Store
	markup Markup
	logger *slog.Logger
}

// New creates a Decorator.
func New(idx index.FileIndex, store vault.Provider, st *settings.Store, markup Markup, logger *slog.Logger) *Decorator {
	return &Decorator{idx: idx, store: store, st: st, markup: markup, logger: logger}
}

// Markup returns the markup adapter in use.
func (d *Decorator) Markup() Markup { return d.markup }

// Evaluate resolves and renders one suggestion. It never returns an error:
// any per-file failure degrades to fewer rows for that one suggestion.
func (d *Decorator) Evaluate(s Suggestion) Verdict {
	if s.Palette {
		return d.evaluateCommand(s)
	}

	cfg := d.st.Current()

	file := d.resolve(s.Title, s.Note)
	if file == nil {
		return Verdict{Hide: cfg.HideMissing}
	}

	for _, folder := range cfg.ExcludedFolderList() {
		if strings.HasPrefix(file.Path, folder+"/") {
			return Verdict{Hide: true, Path: file.Path}
		}
	}

	v := Verdict{Path: file.Path}
	if cfg.ShowCreated {
		v.Rows = append(v.Rows, metaRow("Created", file.CreatedAt, cfg.DateFormat))
	}
	if cfg.ShowModified {
		v.Rows = append(v.Rows, metaRow("Modified", file.UpdatedAt, cfg.DateFormat))
	}

	data, err := d.store.Read(file.Path)
	if err != nil {
		// Degrade to "no properties shown" for this suggestion.
		d.logger.Debug("decorator: read failed", slog.String("path", file.Path), slog.String("error", err.Error()))
		return v
	}
	props := frontmatter.Extract(data)
	v.Rows = append(v.Rows, propertyRows(props, cfg.PropertyNames(), cfg.DateFormat)...)
	return v
}

// evaluateCommand tests a command-palette label against the configured hide
// patterns; the first match hides the entry. No file decoration applies.
func (d *Decorator) evaluateCommand(s Suggestion) Verdict {
	for _, re := range d.st.Patterns() {
		if re.MatchString(s.Label) {
			return Verdict{Hide: true}
		}
	}
	return Verdict{}
}

// resolve derives the candidate vault path from the displayed title and
// note text and looks it up, falling back to a name-only scan.
//
// The candidate rules mirror the host's popup layout: an empty note means
// the file sits at the vault root; a note ending in a separator is the
// containing folder; otherwise the note itself already encodes the full
// path and supplies the base name.
func (d *Decorator) resolve(title, note string) *models.FileInfo {
	var candidate string
	switch {
	case note == "":
		candidate = title + ".md"
	case strings.HasSuffix(note, "/"):
		candidate = note + title + ".md"
	default:
		candidate = note + ".md"
	}

	file, err := d.idx.GetByPath(candidate)
	if err == nil {
		return file
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		d.logger.Warn("decorator: path lookup failed", slog.String("path", candidate), slog.String("error", err.Error()))
		return nil
	}

	// Name-only fallback: first indexed file with a matching base name.
	file, err = d.idx.FirstByName(title + ".md")
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			d.logger.Warn("decorator: name lookup failed", slog.String("name", title), slog.String("error", err.Error()))
		}
		return nil
	}
	return file
}

// Apply decorates one suggestion-content element in place. It is idempotent:
// the previous run's decoration nodes are removed before new ones are
// appended, so repeated mutation events for the same element never stack rows.
func (d *Decorator) Apply(el *dom.Node) {
	for _, old := range el.FindAll(dom.ByClass(MarkerClass)) {
		old.Detach()
	}

	s := Suggestion{}
	if d.markup.IsCommandPalette(el) {
		s.Palette = true
		s.Label = d.markup.CommandLabel(el)
	} else {
		s.Title = d.markup.Title(el)
		s.Note = d.markup.Note(el)
	}

	v := d.Evaluate(s)
	if v.Hide {
		if item := d.markup.Item(el); item != nil {
			item.Detach()
		} else {
			el.Detach()
		}
		return
	}

	for _, row := range v.Rows {
		el.AppendChild(materializeRow(row))
	}
}

// materializeRow builds the decoration element for one row.
func materializeRow(row Row) *dom.Node {
	div := dom.NewElement("div", MarkerClass)
	if row.Property != "" {
		div.SetAttr("data-property", row.Property)
	}
	for _, span := range row.Spans {
		s := dom.NewElement("span").SetText(span.Text)
		if span.Link {
			s.AddClass(LinkClass)
			s.SetStyle("color", "var(--link-color)")
			s.SetStyle("text-decoration", "underline")
		}
		div.AppendChild(s)
	}
	return div
}
