// Package watch forwards document mutations to the decorator for the
// plugin's active lifetime.
package watch

import (
	"log/slog"
	"sync/atomic"

	"github.com/starford/ansuz/internal/dom"
)

// Target selects which inserted elements are forwarded: an element matching
// the suggestion selector directly, or its matching descendants.
type Target interface {
	Matches(el *dom.Node) bool
	FindNested(el *dom.Node) []*dom.Node
}

// Observer subscribes to subtree mutations of a document and forwards every
// newly inserted suggestion element to a handler, one at a time. It is a
// scoped resource: acquired by Observe, released by Close, with the hard
// guarantee that no handler call runs after Close returns.
type Observer struct {
	doc    *dom.Document
	ch     chan dom.Mutation
	stop   chan struct{}
	done   chan struct{}
	closed atomic.Bool
	logger *slog.Logger
}

// Observe starts observing doc and returns the running Observer.
func Observe(doc *dom.Document, target Target, handle func(*dom.Node), logger *slog.Logger) *Observer {
	o := &Observer{
		doc:    doc,
		ch:     doc.Subscribe(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		logger: logger,
	}
	go o.run(target, handle)
	return o
}

func (o *Observer) run(target Target, handle func(*dom.Node)) {
	defer close(o.done)
	o.logger.Debug("observer: started")
	for {
		select {
		case <-o.stop:
			o.logger.Debug("observer: stopped")
			return
		case m, ok := <-o.ch:
			if !ok {
				return
			}
			for _, added := range m.Added {
				if target.Matches(added) {
					handle(added)
				}
				for _, nested := range target.FindNested(added) {
					handle(nested)
				}
			}
		}
	}
}

// Close tears the observer down and waits for the loop to exit. Buffered
// mutations are discarded; the handler never runs again after Close returns.
func (o *Observer) Close() {
	if o.closed.CompareAndSwap(false, true) {
		close(o.stop)
	}
	<-o.done
	o.doc.Unsubscribe(o.ch)
}
