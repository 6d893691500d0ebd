package session

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/audit"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/sessionstore"
)

var ErrAlreadyAuthenticated = errors.New("session: already authenticated, logout first")

// Manager owns the in-memory session. The store is only a mirror of it.
//
// Login and Logout are expected to be driven by one user-facing loop; the
// mutex keeps reads coherent for other goroutines but does not order
// concurrent transitions (last write wins).
type Manager struct {
	store sessionstore.Store
	log   zerolog.Logger
	audit *audit.Dispatcher

	mu       sync.RWMutex
	state    State
	hydrated bool

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(State)
}

func NewManager(store sessionstore.Store, log zerolog.Logger, dispatcher *audit.Dispatcher) *Manager {
	return &Manager{
		store: store,
		log:   log.With().Str("component", "session").Logger(),
		audit: dispatcher,
		state: State{Phase: PhaseHydrating},
		subs:  make(map[int]func(State)),
	}
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) Session() Session {
	return m.State().Session
}

// Subscribe registers fn for every future state change. Calls happen
// synchronously on the goroutine that performed the transition.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// Hydrate loads the persisted triple once. Anything short of all three
// valid fields leaves the manager anonymous; errors are logged only.
func (m *Manager) Hydrate(ctx context.Context) State {
	m.mu.Lock()
	if m.hydrated {
		st := m.state
		m.mu.Unlock()
		return st
	}
	m.hydrated = true
	m.mu.Unlock()

	sess, err := m.readPersisted(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("error loading session")
	}

	next := State{Phase: PhaseAnonymous}
	if err == nil && sess.Present() {
		next = State{Phase: PhaseAuthenticated, Session: sess}
	}

	// A login or logout that finished while storage was being read wins.
	if cur := m.State(); cur.Phase != PhaseHydrating {
		return cur
	}

	m.set(next)
	if next.Authenticated() {
		m.audit.Dispatch(audit.Event{
			UserID: audit.ID(sess.UserID),
			Action: "session_hydrated",
			Entity: "session",
		})
	}
	return next
}

func (m *Manager) readPersisted(ctx context.Context) (Session, error) {
	values := make(map[string]string, len(sessionstore.SessionKeys))
	for _, key := range sessionstore.SessionKeys {
		v, ok, err := m.store.Get(ctx, key)
		if err != nil {
			return Session{}, err
		}
		if !ok || v == "" {
			m.log.Debug().Str("key", key).Msg("persisted session incomplete")
			return Session{}, nil
		}
		values[key] = v
	}

	role, err := ParseRole(values[sessionstore.KeyRole])
	if err != nil {
		return Session{}, err
	}
	id, err := strconv.ParseInt(values[sessionstore.KeyUserID], 10, 64)
	if err != nil || id <= 0 {
		return Session{}, errors.New("persisted userId is not a positive integer")
	}

	return Session{Token: values[sessionstore.KeyToken], Role: role, UserID: id}, nil
}

// Login persists the triple and then transitions to authenticated. A
// failed write is logged; the in-memory transition still happens.
func (m *Manager) Login(ctx context.Context, token string, role Role, userID int64) error {
	if token == "" || userID <= 0 {
		return httperr.ErrValidation("invalid_session", "Sesión inválida.")
	}
	role, err := ParseRole(string(role))
	if err != nil {
		return err
	}
	want := Session{Token: token, Role: role, UserID: userID}
	if cur := m.State(); cur.Authenticated() {
		if cur.Session == want {
			return nil
		}
		return ErrAlreadyAuthenticated
	}

	err = m.store.MultiSet(ctx, []sessionstore.KV{
		{Key: sessionstore.KeyToken, Value: token},
		{Key: sessionstore.KeyRole, Value: string(role)},
		{Key: sessionstore.KeyUserID, Value: strconv.FormatInt(userID, 10)},
	})
	if err != nil {
		m.log.Error().Err(err).Msg("error saving session")
	}

	m.mu.Lock()
	m.hydrated = true
	m.mu.Unlock()

	m.set(State{Phase: PhaseAuthenticated, Session: want})

	m.log.Info().Str("role", string(role)).Int64("user_id", userID).Msg("session saved")
	m.audit.Dispatch(audit.Event{UserID: audit.ID(userID), Action: "login", Entity: "session"})
	return nil
}

// Logout removes the persisted keys and always ends anonymous.
func (m *Manager) Logout(ctx context.Context) {
	prev := m.State().Session

	if err := m.store.MultiRemove(ctx, sessionstore.SessionKeys...); err != nil {
		m.log.Error().Err(err).Msg("error closing session")
	}

	m.mu.Lock()
	m.hydrated = true
	m.mu.Unlock()

	m.set(State{Phase: PhaseAnonymous})

	m.log.Info().Msg("session closed")
	if prev.Present() {
		m.audit.Dispatch(audit.Event{UserID: audit.ID(prev.UserID), Action: "logout", Entity: "session"})
	}
}

func (m *Manager) set(next State) {
	m.mu.Lock()
	m.state = next
	m.mu.Unlock()

	m.subMu.Lock()
	subs := make([]func(State), 0, len(m.subs))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	m.subMu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
