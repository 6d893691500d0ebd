// Package task runs requests on behalf of a view and applies their results
// only while that view is still active.
package task

import (
	"context"
	"sync"
	"sync/atomic"
)

// View is an explicit "still active" token owned by a screen.
type View struct {
	closed atomic.Bool
}

func NewView() *View {
	return &View{}
}

func (v *View) Active() bool {
	return v != nil && !v.closed.Load()
}

// Close marks the view torn down. Results arriving later are dropped.
func (v *View) Close() {
	if v != nil {
		v.closed.Store(true)
	}
}

// Handle is the in-flight result of Run.
type Handle struct {
	done    chan struct{}
	applied bool
	err     error
}

// Wait blocks until fn returned and apply (if any) ran. It reports whether
// the result was applied and the error fn returned.
func (h *Handle) Wait() (applied bool, err error) {
	<-h.done
	return h.applied, h.err
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Run executes fn on its own goroutine. fn is never cancelled once started;
// apply sees its result only if view is still active at that point.
func Run[T any](ctx context.Context, view *View, fn func(context.Context) (T, error), apply func(T, error)) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		v, err := fn(context.WithoutCancel(ctx))
		h.err = err
		if apply != nil && view.Active() {
			apply(v, err)
			h.applied = true
		}
	}()
	return h
}

// Group tracks the handles a view started so teardown can wait for them.
type Group struct {
	mu      sync.Mutex
	handles []*Handle
}

func (g *Group) Add(h *Handle) *Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handles = append(g.handles, h)
	return h
}

// Wait blocks until every tracked handle finished.
func (g *Group) Wait() {
	g.mu.Lock()
	hs := append([]*Handle(nil), g.handles...)
	g.handles = nil
	g.mu.Unlock()

	for _, h := range hs {
		<-h.done
	}
}
