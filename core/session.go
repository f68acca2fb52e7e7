package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/leapbw/leapauth/pkg/crypto"
)

// Manager is the single source of truth for "who is signed in". It owns the
// current-session slot and is the only writer of the user table.
//
// Lifecycle: construct at process start, call Resolve once, then use for the
// lifetime of the process. Until Resolve completes, State().Loading is true
// and the navigation gate shows the loading graph.
//
// All mutating operations (Register, Login, Logout, UpdateProfile,
// DeleteAccount, progress updates) are serialized by an internal mutex so the
// duplicate-omang check and the subsequent insert cannot interleave across a
// double-submitted form.
type Manager struct {
	storage   Storage
	passwords crypto.PasswordHandler
	ids       *crypto.NanoIDGenerator
	log       *zap.Logger

	mu       sync.Mutex // serializes mutating operations
	resolved bool

	stateMu sync.RWMutex
	state   State

	subMu   sync.Mutex
	subs    map[int]chan State
	nextSub int
}

// NewManager builds a Manager. passwords and log may be nil, in which case
// argon2id defaults and a no-op logger are used.
func NewManager(storage Storage, passwords crypto.PasswordHandler, log *zap.Logger) *Manager {
	if passwords == nil {
		passwords = crypto.NewArgon2()
	}
	if log == nil {
		log = zap.NewNop()
	}
	ids, _ := crypto.NewNanoID()
	return &Manager{
		storage:   storage,
		passwords: passwords,
		ids:       ids,
		log:       log,
		state:     State{Loading: true},
		subs:      make(map[int]chan State),
	}
}

// Resolve restores any persisted session. It transitions the manager out of
// the loading state exactly once; later calls are no-ops.
//
// A persisted session must correspond to a record in the user table. A
// dangling session (its user was deleted) is cleared rather than restored,
// and the restored record is re-read from the table so profile fields are
// never stale.
func (m *Manager) Resolve(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.resolved {
		return nil
	}

	current, err := m.storage.LoadCurrent(ctx)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		m.finishResolve(nil)
		return nil
	case err != nil:
		// Storage failure is not "no session"; resolve to anonymous so the
		// process can proceed, but report the failure to the caller.
		m.log.Warn("session restore failed", zap.Error(err))
		m.finishResolve(nil)
		return fmt.Errorf("failed to restore session: %w", err)
	}

	stored, err := m.storage.GetUserByID(ctx, current.ID)
	switch {
	case errors.Is(err, ErrUserNotFound):
		m.log.Warn("clearing dangling session", zap.String("user_id", current.ID))
		if clearErr := m.storage.ClearCurrent(ctx); clearErr != nil {
			m.log.Warn("failed to clear dangling session", zap.Error(clearErr))
		}
		m.finishResolve(nil)
		return nil
	case err != nil:
		m.log.Warn("session restore failed", zap.Error(err))
		m.finishResolve(nil)
		return fmt.Errorf("failed to restore session: %w", err)
	}

	sanitized := stored.Sanitized()
	m.finishResolve(sanitized)
	m.log.Info("session restored", zap.String("user_id", sanitized.ID))
	return nil
}

func (m *Manager) finishResolve(user *User) {
	m.resolved = true
	m.setState(State{User: user, Loading: false})
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state
}

// Current returns the signed-in user, or nil while anonymous or loading.
func (m *Manager) Current() *User {
	return m.State().User
}

// Subscribe registers an observer of session state changes. The returned
// channel receives the snapshot produced by every transition, starting with
// the current one. Slow consumers may miss intermediate snapshots; the latest
// state is always observable via State(). The returned func unsubscribes and
// closes the channel.
func (m *Manager) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 8)

	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.subMu.Unlock()

	ch <- m.State()

	cancel := func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (m *Manager) setState(s State) {
	m.stateMu.Lock()
	m.state = s
	m.stateMu.Unlock()

	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- s:
		default:
			// consumer is lagging, drop the snapshot
		}
	}
}

// currentLocked returns the signed-in user. Callers must hold m.mu.
func (m *Manager) currentLocked() *User {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state.User
}
