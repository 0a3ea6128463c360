package session

import (
	"context"
	"log"
	"sync"

	"github.com/mobilecarebd/off-white/internal/authclient"
	"github.com/mobilecarebd/off-white/internal/model"
)

// Result is the outcome of a login or register attempt. Mutators never
// return a raw error for credential problems; the message is always ready
// for display.
type Result struct {
	Success bool
	IsAdmin bool
	Error   string
}

// Store holds the best-known current-user state for one client session and
// exposes it to presentation code. It is constructed once per client process
// and passed around explicitly; there is no package-level instance.
//
// State machine: uninitialized -> loading -> authenticated(user) | anonymous.
// Only Initialize toggles the loading flag; until it clears, readers must
// treat the state as unknown rather than anonymous.
type Store struct {
	mu      sync.RWMutex
	user    *model.User
	loading bool

	api authclient.AuthAPI
}

// New builds a store over the given auth API client. The client should keep
// a cookie jar so login sessions persist across calls.
func New(api authclient.AuthAPI) *Store {
	return &Store{api: api, loading: true}
}

// Initialize resolves the ambient session into a user, or into anonymous on
// any failure. The loading flag clears on every exit path. Safe to call
// again; each call re-queries.
func (s *Store) Initialize(ctx context.Context) {
	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.user = nil
	} else {
		s.user = user
	}
	s.loading = false
}

// Login authenticates and stores the returned user. On failure the previous
// user value, if any, is left untouched: a bad re-login must not destroy a
// working session.
func (s *Store) Login(ctx context.Context, phone, password string) Result {
	user, err := s.api.Login(ctx, phone, password)
	if err != nil {
		return Result{Error: errorMessage(err, "login failed")}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return Result{Success: true, IsAdmin: user.IsAdmin}
}

// Logout revokes the session server-side and forgets the user only when the
// server confirmed. A failed call leaves the user in place, since the cookie
// may still be valid on the other end.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		log.Printf("session: logout not confirmed, keeping local state: %v", err)
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Register creates an account and stores the returned user. Failure leaves
// the store unchanged.
func (s *Store) Register(ctx context.Context, name, phone, email, password string) Result {
	user, err := s.api.Register(ctx, name, phone, email, password)
	if err != nil {
		return Result{Error: errorMessage(err, "registration failed")}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return Result{Success: true, IsAdmin: user.IsAdmin}
}

// User returns the current user, nil when anonymous or still loading.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Loading reports whether Initialize has yet to complete.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated reports whether a user is present.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// IsAdmin reports whether the current user is an admin.
func (s *Store) IsAdmin() bool {
	u := s.User()
	return u != nil && u.IsAdmin
}

func errorMessage(err error, fallback string) string {
	if apiErr, ok := err.(*authclient.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
