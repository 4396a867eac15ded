// Package session tracks the authenticated identity and drives the record
// store lifecycle: entering the authenticated state reloads the store,
// leaving it clears the store. This is the only coupling between
// authentication and the ledger.
package session

import (
	"context"
	"sync"

	"github.com/Yashuu213/MoneyViewer/internal/logger"
)

// State is the gate's position in the session lifecycle.
type State string

const (
	// StateUnknown is the initial state before the first session check.
	StateUnknown State = "unknown"
	// StateChecking is transient while the startup session check runs.
	StateChecking State = "checking"
	// StateAuthenticated means a valid identity is established.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no identity: the store stays empty.
	StateAnonymous State = "anonymous"
)

// AuthService is the authentication backend the gate consults. The remote
// ledger client satisfies it.
type AuthService interface {
	CheckSession(ctx context.Context) (username string, authenticated bool, err error)
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
}

// RecordStore is the slice of the ledger store the gate drives.
type RecordStore interface {
	Reload(ctx context.Context) error
	Clear()
}

// Gate owns the session state machine.
type Gate struct {
	auth  AuthService
	store RecordStore

	mu       sync.Mutex
	state    State
	identity string
}

// NewGate creates a gate in StateUnknown. Call CheckSession once at startup
// to resolve it.
func NewGate(auth AuthService, store RecordStore) *Gate {
	return &Gate{auth: auth, store: store, state: StateUnknown}
}

// State returns the current lifecycle state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Identity returns the authenticated username, or false when anonymous or
// unresolved.
func (g *Gate) Identity() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.identity, g.state == StateAuthenticated
}

// Loading reports whether the session state is still unresolved.
func (g *Gate) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == StateUnknown || g.state == StateChecking
}

// CheckSession queries the auth service once and resolves the gate to
// Authenticated or Anonymous. A failed or negative check lands in Anonymous;
// the gate never stays in Checking.
func (g *Gate) CheckSession(ctx context.Context) error {
	g.setState(StateChecking, "")

	username, authenticated, err := g.auth.CheckSession(ctx)
	if err != nil || !authenticated {
		if err != nil {
			logger.Get().Warnw("session check failed", "error", err)
		}
		g.becomeAnonymous()
		return err
	}
	return g.becomeAuthenticated(ctx, username)
}

// Login authenticates with the given credentials. On success the gate
// transitions to Authenticated and the store reloads; on failure the state
// is unchanged and the service error is returned.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	identity, err := g.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return g.becomeAuthenticated(ctx, identity)
}

// Register creates a new account. Registration is not auto-login: the gate's
// state does not change.
func (g *Gate) Register(ctx context.Context, username, password string) error {
	return g.auth.Register(ctx, username, password)
}

// Logout ends the session. The gate transitions to Anonymous and the store
// is cleared regardless of the service's response.
func (g *Gate) Logout(ctx context.Context) error {
	err := g.auth.Logout(ctx)
	g.becomeAnonymous()
	return err
}

func (g *Gate) becomeAuthenticated(ctx context.Context, identity string) error {
	g.setState(StateAuthenticated, identity)
	if err := g.store.Reload(ctx); err != nil {
		logger.Get().Warnw("record reload failed after login", "username", identity, "error", err)
		return err
	}
	return nil
}

func (g *Gate) becomeAnonymous() {
	g.setState(StateAnonymous, "")
	g.store.Clear()
}

func (g *Gate) setState(state State, identity string) {
	g.mu.Lock()
	g.state = state
	g.identity = identity
	g.mu.Unlock()
}
