package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/starford/ansuz/internal/decorator"
	"github.com/starford/ansuz/internal/dom"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/settings"
	"github.com/starford/ansuz/internal/vault"
	"github.com/starford/ansuz/internal/watch"
)

var (
	boxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	titleStyle = lipgloss.NewStyle().Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Underline(true)

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// runPreview decorates a single synthetic suggestion through the same
// observer pipeline the sidecar uses and prints the result.
func runPreview(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := vault.NewFS(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("init vault: %w", err)
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if err := index.Sync(db, store, logger); err != nil {
		return fmt.Errorf("sync index: %w", err)
	}

	st, err := settings.NewStore(cfg.Settings.Path, logger)
	if err != nil {
		return fmt.Errorf("init settings: %w", err)
	}

	markup := decorator.NewHostMarkup()
	dec := decorator.New(db, store, st, markup, logger)

	doc, err := decorateSuggestion(dec, markup, cmd.String("title"), cmd.String("note"), 2*time.Second, logger)
	if err != nil {
		return err
	}

	fmt.Println(render(doc, markup, cmd.String("title"), cmd.String("note")))
	return nil
}

// decorateSuggestion runs one synthetic suggestion through the observer
// pipeline and returns once the decorator has applied its verdict. The
// handler itself signals completion, so a valid zero-row decoration (no
// properties configured, toggles off) finishes immediately instead of being
// inferred from the tree shape.
func decorateSuggestion(dec *decorator.Decorator, markup *decorator.HostMarkup, title, note string, timeout time.Duration, logger *slog.Logger) (*dom.Document, error) {
	doc := dom.NewDocument()

	applied := make(chan struct{}, 1)
	obs := watch.Observe(doc, markup, func(el *dom.Node) {
		dec.Apply(el)
		select {
		case applied <- struct{}{}:
		default:
		}
	}, logger)
	defer obs.Close()

	item := dom.NewElement("div", markup.ItemClass)
	item.AppendChild(buildSuggestion(title, note, markup))
	doc.Body().AppendChild(item)

	select {
	case <-applied:
		return doc, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("decoration did not complete")
	}
}

func buildSuggestion(title, note string, markup *decorator.HostMarkup) *dom.Node {
	content := dom.NewElement("div", markup.ContentClass)
	content.AppendChild(dom.NewElement("div", markup.TitleClass).SetText(title))
	content.AppendChild(dom.NewElement("div", markup.NoteClass).SetText(note))
	return content
}

func render(doc *dom.Document, markup *decorator.HostMarkup, title, note string) string {
	item := doc.Body().First(dom.ByClass(markup.ItemClass))
	if item == nil {
		return hiddenStyle.Render("suggestion hidden: " + title)
	}

	lines := []string{titleStyle.Render(title)}
	if note != "" {
		lines = append(lines, noteStyle.Render(note))
	}
	for _, row := range item.FindAll(dom.ByClass(decorator.MarkerClass)) {
		lines = append(lines, renderRow(row))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderRow(row *dom.Node) string {
	out := ""
	for _, span := range row.FindAll(dom.ByTag("span")) {
		text := span.TextContent()
		if span.HasClass(decorator.LinkClass) {
			out += linkStyle.Render(text)
		} else {
			out += rowStyle.Render(text)
		}
	}
	return out
}
