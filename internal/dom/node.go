// Package dom models the host UI's suggestion markup as a small mutable
// element tree with subtree mutation notifications. The decorator only ever
// talks to this tree, so its logic is testable against synthetic structures
// instead of a live host.
package dom

import "strings"

// Node is one element: a tag, CSS-like classes, attributes, inline style
// properties, optional text, and children. Nodes attached to a Document are
// guarded by the document's lock; detached subtrees are owned by their builder.
type Node struct {
	tag      string
	doc      *Document
	parent   *Node
	children []*Node
	classes  []string
	attrs    map[string]string
	styles   map[string]string
	text     string
}

// NewElement creates a detached element with the given tag and classes.
func NewElement(tag string, classes ...string) *Node {
	return &Node{tag: tag, classes: append([]string(nil), classes...)}
}

// Tag returns the element tag.
func (n *Node) Tag() string { return n.tag }

// Parent returns the parent element, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	d := n.lock()
	defer unlock(d)
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	d := n.lock()
	defer unlock(d)
	return append([]*Node(nil), n.children...)
}

// AddClass adds a class if not already present.
func (n *Node) AddClass(class string) *Node {
	d := n.lock()
	defer unlock(d)
	for _, c := range n.classes {
		if c == class {
			return n
		}
	}
	n.classes = append(n.classes, class)
	return n
}

// HasClass reports whether the element carries the class.
func (n *Node) HasClass(class string) bool {
	d := n.lock()
	defer unlock(d)
	return hasClass(n, class)
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(key, value string) *Node {
	d := n.lock()
	defer unlock(d)
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return n
}

// Attr returns an attribute value, or empty string.
func (n *Node) Attr(key string) string {
	d := n.lock()
	defer unlock(d)
	return n.attrs[key]
}

// SetStyle sets an inline style property.
func (n *Node) SetStyle(prop, value string) *Node {
	d := n.lock()
	defer unlock(d)
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[prop] = value
	return n
}

// Style returns an inline style property value, or empty string.
func (n *Node) Style(prop string) string {
	d := n.lock()
	defer unlock(d)
	return n.styles[prop]
}

// SetText sets the element's own text.
func (n *Node) SetText(text string) *Node {
	d := n.lock()
	defer unlock(d)
	n.text = text
	return n
}

// TextContent returns the element's own text followed by the text of all
// descendants, in tree order.
func (n *Node) TextContent() string {
	d := n.lock()
	defer unlock(d)
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	b.WriteString(n.text)
	for _, c := range n.children {
		c.collectText(b)
	}
}

// AppendChild attaches child (detaching it from any previous parent first)
// and publishes a mutation record when the tree belongs to a document.
func (n *Node) AppendChild(child *Node) *Node {
	child.Detach()

	d := n.lock()
	n.children = append(n.children, child)
	child.parent = n
	child.setDoc(d)
	unlock(d)

	if d != nil {
		d.publish(Mutation{Added: []*Node{child}})
	}
	return n
}

// Detach removes the node from its parent, if any. The subtree keeps its
// internal structure but no longer belongs to a document.
func (n *Node) Detach() {
	d := n.lock()
	defer unlock(d)
	p := n.parent
	if p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
	n.setDoc(nil)
}

// Closest walks from the node itself up through its ancestors and returns
// the first one matching pred, or nil. Predicates run under the document
// lock and must use the lock-free helpers (ByClass, ByTag, WithAttr) or
// read no node state.
func (n *Node) Closest(pred func(*Node) bool) *Node {
	d := n.lock()
	defer unlock(d)
	for cur := n; cur != nil; cur = cur.parent {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// FindAll returns every descendant (excluding the node itself) matching
// pred, in tree order. The same predicate constraint as Closest applies.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	d := n.lock()
	defer unlock(d)
	var out []*Node
	for _, c := range n.children {
		c.findAll(pred, &out)
	}
	return out
}

func (n *Node) findAll(pred func(*Node) bool, out *[]*Node) {
	if pred(n) {
		*out = append(*out, n)
	}
	for _, c := range n.children {
		c.findAll(pred, out)
	}
}

// First returns the first descendant matching pred, or nil.
func (n *Node) First(pred func(*Node) bool) *Node {
	matches := n.FindAll(pred)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// ByClass is a lock-free predicate matching elements carrying the class.
func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool { return hasClass(n, class) }
}

// ByTag is a lock-free predicate matching elements by tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.tag == tag }
}

// WithAttr is a lock-free predicate matching elements by attribute value.
func WithAttr(key, value string) func(*Node) bool {
	return func(n *Node) bool { return n.attrs[key] == value }
}

func hasClass(n *Node, class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// setDoc assigns the owning document recursively. Caller holds the lock.
func (n *Node) setDoc(d *Document) {
	n.doc = d
	for _, c := range n.children {
		c.setDoc(d)
	}
}

// lock acquires the owning document's tree lock, if attached, and returns
// the locked document so the caller can release the same one.
func (n *Node) lock() *Document {
	d := n.doc
	if d != nil {
		d.mu.Lock()
	}
	return d
}

func unlock(d *Document) {
	if d != nil {
		d.mu.Unlock()
	}
}
