package router

import (
	"sync"

	"github.com/Kaleth2216/FadeApp/internal/session"
)

const (
	RootGuest = "guest"
	RootAuth  = "auth"
)

// Mount identifies one mounted navigation root. Generation grows on every
// remount so views can tell a fresh root from the one they were built for.
type Mount struct {
	Root       string
	Generation uint64
	Stack      Stack
}

// Navigator keeps the mounted root and the in-stack history. The root is
// remounted only when session presence flips.
type Navigator struct {
	mu      sync.Mutex
	mount   Mount
	history []Screen
	synced  bool
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Sync reconciles the navigator with s and reports whether it remounted.
// Within the same root the history is kept, even if other session fields
// changed.
func (n *Navigator) Sync(s session.Session) (Mount, bool, error) {
	stack, err := Route(s)
	if err != nil {
		return n.Mount(), false, err
	}

	root := RootGuest
	if s.Present() {
		root = RootAuth
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.synced && n.mount.Root == root {
		n.mount.Stack = stack
		return n.mount, false, nil
	}

	n.synced = true
	n.mount = Mount{Root: root, Generation: n.mount.Generation + 1, Stack: stack}
	n.history = []Screen{stack.Initial()}
	return n.mount, true, nil
}

func (n *Navigator) Mount() Mount {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mount
}

// Push opens sc on top of the history. Screens outside the mounted stack
// are ignored.
func (n *Navigator) Push(sc Screen) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.synced || !n.mount.Stack.Has(sc) {
		return false
	}
	n.history = append(n.history, sc)
	return true
}

// Pop returns to the previous screen. The root screen is never popped.
func (n *Navigator) Pop() (Screen, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) <= 1 {
		return n.current(), false
	}
	n.history = n.history[:len(n.history)-1]
	return n.current(), true
}

func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current()
}

func (n *Navigator) current() Screen {
	if len(n.history) == 0 {
		return ""
	}
	return n.history[len(n.history)-1]
}

func (n *Navigator) History() []Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Screen(nil), n.history...)
}
