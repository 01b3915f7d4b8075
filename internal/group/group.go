// Package group tracks sets of goroutines which can be waited on together.
package group

import (
	"slices"
	"sync"
)

// Handle identifies a unit of work. It is done once Finish is called.
type Handle struct {
	once sync.Once
	done chan struct{}
}

// NewHandle returns a handle which is not yet done.
func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Finish marks the handle as done. Later calls are no-ops.
func (h *Handle) Finish() {
	h.once.Do(func() { close(h.done) })
}

// Done returns a channel closed once the handle is finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Group is a set of handles. Its zero value is an empty group, safe for concurrent use.
type Group struct {
	mu      sync.RWMutex
	handles []*Handle
}

// Go runs fn in a new goroutine whose handle is added to the group.
func (g *Group) Go(fn func()) *Handle {
	h := NewHandle()
	g.Add(h)
	go func() {
		defer h.Finish()
		fn()
	}()
	return h
}

// Add adds a handle to the group. Nil handles are ignored.
func (g *Group) Add(h *Handle) {
	if h == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handles = append(g.handles, h)
}

// Remove removes a handle from the group, returning true if it was present.
func (g *Group) Remove(h *Handle) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := slices.Index(g.handles, h)
	if i < 0 {
		return false
	}
	g.handles = slices.Delete(g.handles, i, i+1)
	return true
}

// Contains returns true if the handle belongs to the group.
func (g *Group) Contains(h *Handle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Contains(g.handles, h)
}

// Len returns the number of handles in the group.
func (g *Group) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.handles)
}

// Wait blocks until every handle in the group at the time of the call is finished. Handles added
// concurrently are not waited on.
func (g *Group) Wait() {
	g.mu.RLock()
	handles := slices.Clone(g.handles)
	g.mu.RUnlock()
	for _, h := range handles {
		<-h.done
	}
}
