package session

import (
	"context"
	"sync"

	pkgevent "github.com/atulub35/outsider-client-go/pkg/event"
	pkglog "github.com/atulub35/outsider-client-go/pkg/log"
	pkgtime "github.com/atulub35/outsider-client-go/pkg/time"
)

// Manager owns the session state machine. It starts initializing,
// settles into authenticated or unauthenticated during Initialize and
// afterwards transitions only through Login, Logout and the
// invalidation broadcast.
type Manager struct {
	store     TokenStore
	gateway   AuthGateway
	navigator Navigator
	clock     pkgtime.Clock
	logger    pkglog.Logger

	mu          sync.Mutex
	state       State
	user        *User
	subscribers []func(Session)
}

func NewManager(
	store TokenStore,
	gateway AuthGateway,
	navigator Navigator,
	clock pkgtime.Clock,
	logger pkglog.Logger,
) *Manager {
	return &Manager{
		store:     store,
		gateway:   gateway,
		navigator: navigator,
		clock:     clock,
		logger:    logger,
		state:     StateInitializing,
	}
}

// Initialize settles the startup state: no stored token means
// unauthenticated without any network call, a locally expired token is
// cleared without any network call, otherwise the token is validated
// against the backend. Validation failures of any kind are swallowed
// into the unauthenticated transition, never surfaced as errors.
func (m *Manager) Initialize(ctx context.Context) {
	token, ok := m.store.Token()
	if !ok {
		m.setState(StateUnauthenticated, nil)
		return
	}

	claims, err := DecodeClaims(token)
	if err != nil || claims.Expired(m.clock.Now(ctx)) {
		m.logger.WithError(err).Debug(ctx, "stored token is expired or malformed, clearing")
		m.clearToken(ctx)
		m.setState(StateUnauthenticated, nil)
		return
	}

	_, err = m.gateway.Me(ctx)
	if err != nil {
		m.logger.WithError(err).Debug(ctx, "stored token rejected by backend, clearing")
		m.clearToken(ctx)
		m.setState(StateUnauthenticated, nil)
		return
	}

	user := claims.User()
	m.setState(StateAuthenticated, &user)
}

// Login trusts the caller: credentials were already validated
// server-side by the register or login call that produced the token.
func (m *Manager) Login(user User, token string) error {
	err := m.store.Save(token)
	if err != nil {
		return err
	}

	m.setState(StateAuthenticated, &user)
	return nil
}

// Logout is idempotent.
func (m *Manager) Logout(ctx context.Context) {
	m.clearToken(ctx)
	m.setState(StateUnauthenticated, nil)
}

// Invalidate applies the global invalidation broadcast: clear the
// token, drop to unauthenticated and force navigation to the login
// entry point. Concurrent invalidations collapse into a single
// navigation, clearing an already-cleared token is a no-op.
func (m *Manager) Invalidate(ctx context.Context) {
	m.clearToken(ctx)

	m.mu.Lock()
	alreadySettled := m.state == StateUnauthenticated
	m.state = StateUnauthenticated
	m.user = nil
	snapshot := Session{State: StateUnauthenticated}
	subscribers := make([]func(Session), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	if !alreadySettled {
		m.navigator.ToLogin(ctx)
	}
}

// InvalidationHandler subscribes the manager to the invalidation
// broadcast, decoupling it from whichever request handler noticed the
// authorization failure.
func (m *Manager) InvalidationHandler() pkgevent.Handler {
	return pkgevent.NewTypedHandler(func(ctx context.Context, _ EventSessionInvalidated) error {
		m.Invalidate(ctx)
		return nil
	})
}

func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Session{State: m.state, User: m.user}
}

// Subscribe registers a session change observer, called after every
// settled transition.
func (m *Manager) Subscribe(fn func(Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subscribers = append(m.subscribers, fn)
}

func (m *Manager) setState(state State, user *User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	snapshot := Session{State: state, User: user}
	subscribers := make([]func(Session), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

func (m *Manager) clearToken(ctx context.Context) {
	err := m.store.Clear()
	if err != nil {
		m.logger.WithError(err).Warn(ctx, "failed to clear stored token")
	}
}
