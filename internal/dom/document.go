package dom

import "sync"

// Mutation records elements newly inserted anywhere under the document root.
type Mutation struct {
	Added []*Node
}

// Document owns a tree root and publishes a Mutation to every subscriber on
// each child-list insertion in the subtree.
//
// Concurrency model: one tree lock guards all attached nodes; mutation
// records are delivered on buffered channels outside the lock. A subscriber
// that falls behind loses records rather than blocking mutators, mirroring
// how a host UI drops work for closed popups.
type Document struct {
	mu   sync.Mutex
	body *Node

	subMu sync.Mutex
	subs  map[chan Mutation]struct{}
}

// NewDocument creates a document with an empty body root.
func NewDocument() *Document {
	d := &Document{
		subs: make(map[chan Mutation]struct{}),
	}
	d.body = &Node{tag: "body", doc: d}
	return d
}

// Body returns the root element.
func (d *Document) Body() *Node { return d.body }

// Subscribe registers a mutation listener.
func (d *Document) Subscribe() chan Mutation {
	ch := make(chan Mutation, 256)
	d.subMu.Lock()
	d.subs[ch] = struct{}{}
	d.subMu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel. No further records
// are delivered after Unsubscribe returns.
func (d *Document) Unsubscribe(ch chan Mutation) {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	if _, ok := d.subs[ch]; ok {
		delete(d.subs, ch)
		close(ch)
	}
}

func (d *Document) publish(m Mutation) {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	for ch := range d.subs {
		select {
		case ch <- m:
		default:
			// Subscriber buffer full; drop rather than block mutators.
		}
	}
}
