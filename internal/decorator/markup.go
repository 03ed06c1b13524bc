package decorator

import (
	"strings"

	"github.com/starford/ansuz/internal/dom"
)

// Markup isolates the selector strings of the host's suggestion popups.
// The host markup is an external wire format that can change without
// notice, so the decoration pipeline only ever goes through this interface.
type Markup interface {
	// Matches reports whether el is a suggestion-content element.
	Matches(el *dom.Node) bool
	// FindNested returns suggestion-content descendants of el.
	FindNested(el *dom.Node) []*dom.Node
	// Title returns the suggestion's displayed title text.
	Title(el *dom.Node) string
	// Note returns the suggestion's note/path text.
	Note(el *dom.Node) string
	// Item returns the enclosing suggestion item, or nil.
	Item(el *dom.Node) *dom.Node
	// IsCommandPalette reports whether el sits beneath a command-palette input.
	IsCommandPalette(el *dom.Node) bool
	// CommandLabel returns the combined command label (prefix plus remaining text).
	CommandLabel(el *dom.Node) string
}

// HostMarkup is the adapter for the known host popup markup.
type HostMarkup struct {
	ContentClass       string
	TitleClass         string
	NoteClass          string
	ItemClass          string
	PromptClass        string
	PalettePlaceholder string
}

// NewHostMarkup returns the adapter with the host's current class names.
func NewHostMarkup() *HostMarkup {
	return &HostMarkup{
		ContentClass:       "suggestion-content",
		TitleClass:         "suggestion-title",
		NoteClass:          "suggestion-note",
		ItemClass:          "suggestion-item",
		PromptClass:        "prompt",
		PalettePlaceholder: "Select a command...",
	}
}

// Matches reports whether el itself is a suggestion-content element.
func (m *HostMarkup) Matches(el *dom.Node) bool {
	return el.HasClass(m.ContentClass)
}

// FindNested returns suggestion-content elements inside el.
func (m *HostMarkup) FindNested(el *dom.Node) []*dom.Node {
	return el.FindAll(dom.ByClass(m.ContentClass))
}

// Title returns the text of the title child region.
func (m *HostMarkup) Title(el *dom.Node) string {
	return m.childText(el, m.TitleClass)
}

// Note returns the text of the note/path child region.
func (m *HostMarkup) Note(el *dom.Node) string {
	return m.childText(el, m.NoteClass)
}

func (m *HostMarkup) childText(el *dom.Node, class string) string {
	child := el.First(dom.ByClass(class))
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.TextContent())
}

// Item returns the enclosing suggestion item element, or nil.
func (m *HostMarkup) Item(el *dom.Node) *dom.Node {
	return el.Closest(dom.ByClass(m.ItemClass))
}

// IsCommandPalette reports whether el's popup carries the command-palette
// input (identified by its placeholder text).
func (m *HostMarkup) IsCommandPalette(el *dom.Node) bool {
	prompt := el.Closest(dom.ByClass(m.PromptClass))
	if prompt == nil {
		return false
	}
	input := prompt.First(func(n *dom.Node) bool {
		return dom.ByTag("input")(n) && dom.WithAttr("placeholder", m.PalettePlaceholder)(n)
	})
	return input != nil
}

// CommandLabel returns the concatenated text of the suggestion element:
// the prefix region followed by the remaining label, as displayed.
func (m *HostMarkup) CommandLabel(el *dom.Node) string {
	return strings.TrimSpace(el.TextContent())
}
