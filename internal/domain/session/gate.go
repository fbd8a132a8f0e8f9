package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Momin010/MominOS-9u/internal/shared/id"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

var (
	// ErrUnknownIdentity is returned when the identity id is not in the
	// gate's fixed list.
	ErrUnknownIdentity = errors.New("unknown identity")
	// ErrEmptyCredential is returned for an empty credential string.
	ErrEmptyCredential = errors.New("credential must not be empty")
	// ErrSessionActive is returned when a login arrives while a session
	// is already running.
	ErrSessionActive = errors.New("a session is already active")
	// ErrNoSession is returned by Logout without an active session.
	ErrNoSession = errors.New("no active session")
)

// Gate owns the identity list and the single active session.
type Gate struct {
	mu         sync.RWMutex
	identities []types.Identity
	active     *types.Session
	onSelect   func(types.Identity)
	onLogout   func()
}

// New creates a gate over a fixed identity list.
func New(identities []types.Identity) *Gate {
	list := make([]types.Identity, len(identities))
	copy(list, identities)
	return &Gate{identities: list}
}

// DefaultIdentities returns the identities the shell ships with.
func DefaultIdentities() []types.Identity {
	return []types.Identity{
		{ID: "momin", Name: "Momin", Avatar: "M", Role: "admin"},
		{ID: "guest", Name: "Guest", Avatar: "G", Role: "guest"},
	}
}

// OnSelect registers the callback invoked once per successful login.
func (g *Gate) OnSelect(fn func(types.Identity)) *Gate {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSelect = fn
	return g
}

// OnLogout registers the callback invoked when the desktop requests logout.
func (g *Gate) OnLogout(fn func()) *Gate {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onLogout = fn
	return g
}

// Identities returns the selectable identities.
func (g *Gate) Identities() []types.Identity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]types.Identity, len(g.identities))
	copy(out, g.identities)
	return out
}

// Login starts a session for the identity. The credential is never
// compared against anything; it only has to be non-empty.
func (g *Gate) Login(identityID, credential string) (*types.Session, error) {
	if credential == "" {
		return nil, ErrEmptyCredential
	}

	g.mu.Lock()

	if g.active != nil {
		g.mu.Unlock()
		return nil, ErrSessionActive
	}

	var identity *types.Identity
	for i := range g.identities {
		if g.identities[i].ID == identityID {
			identity = &g.identities[i]
			break
		}
	}
	if identity == nil {
		g.mu.Unlock()
		return nil, ErrUnknownIdentity
	}

	sess := &types.Session{
		ID:        id.NewSessionID().String(),
		Token:     uuid.New().String(),
		Identity:  *identity,
		StartedAt: time.Now(),
	}
	g.active = sess
	onSelect := g.onSelect
	g.mu.Unlock()

	// Fire outside the lock; the callback mounts the desktop.
	if onSelect != nil {
		onSelect(sess.Identity)
	}

	sc := *sess
	return &sc, nil
}

// Active returns a copy of the running session, or nil.
func (g *Gate) Active() *types.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.active == nil {
		return nil
	}
	sc := *g.active
	return &sc
}

// Logout ends the active session and fires the logout callback.
func (g *Gate) Logout() error {
	g.mu.Lock()

	if g.active == nil {
		g.mu.Unlock()
		return ErrNoSession
	}
	g.active = nil
	onLogout := g.onLogout
	g.mu.Unlock()

	if onLogout != nil {
		onLogout()
	}
	return nil
}
