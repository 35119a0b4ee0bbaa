package client

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pawplanet/pawplanet-go/client/internal/api"
	"github.com/pawplanet/pawplanet-go/client/internal/apierr"
	"github.com/pawplanet/pawplanet-go/client/internal/job"
)

// Session tracks the authenticated user and bearer token for a Client.
// All methods are safe for concurrent use. Registered OnChange listeners
// are invoked synchronously after every login, logout, and restore.
type Session struct {
	c *Client

	mu         sync.RWMutex
	user       *User
	token      string
	listeners  map[int]func(*User)
	listenerID int
}

// CurrentUser returns the authenticated user, or nil.
func (s *Session) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the active bearer token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool { return s.CurrentUser() != nil }

// IsAdmin reports whether the authenticated user has the admin role.
func (s *Session) IsAdmin() bool {
	u := s.CurrentUser()
	return u != nil && u.Role == RoleAdmin
}

// Require returns the authenticated user or ErrNoSession.
func (s *Session) Require() (*User, error) {
	u := s.CurrentUser()
	if u == nil {
		return nil, ErrNoSession
	}
	return u, nil
}

// OnChange registers a listener invoked with the new user (nil on logout)
// whenever the session changes. The returned func removes the listener;
// calling it more than once is harmless.
func (s *Session) OnChange(fn func(*User)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	if s.listeners == nil {
		s.listeners = make(map[int]func(*User))
	}
	id := s.listenerID
	s.listenerID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Login authenticates with email/password, stores the token and user, and
// notifies listeners.
func (s *Session) Login(ctx context.Context, creds Credentials) (*User, error) {
	resp, err := api.Login(ctx, s.c.http, s.c.baseURL, creds)
	if err != nil {
		return nil, err
	}
	s.set(&resp.User, resp.Token)
	return &resp.User, nil
}

// Register creates an account and starts a session with the returned token.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := api.Register(ctx, s.c.http, s.c.baseURL, req)
	if err != nil {
		return nil, err
	}
	s.set(&resp.User, resp.Token)
	return &resp.User, nil
}

// Logout clears the session immediately and notifies the backend via the
// async executor. Local state never waits on the network.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	hadToken := s.token != ""
	s.mu.RUnlock()

	s.set(nil, "")

	if !hadToken {
		return nil
	}
	notify := job.New(func(jobCtx context.Context) error {
		return api.Logout(jobCtx, s.c.http, s.c.baseURL)
	})
	if err := s.c.exec.Submit(ctx, "session", notify); err != nil {
		// Local logout already happened; the backend token simply
		// expires on its own.
		log.Warn().Err(err).Msg("logout notification not enqueued")
	}
	return nil
}

// Restore validates a persisted token against the backend and rebuilds the
// session from it. A rejected or missing token leaves the session empty
// without error; transport failures are returned.
func (s *Session) Restore(ctx context.Context) (*User, error) {
	token, err := s.c.tokens.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	u, err := api.Me(ctx, s.c.http, s.c.baseURL)
	if err != nil {
		s.mu.Lock()
		s.token = ""
		s.mu.Unlock()
		if errors.Is(err, apierr.ErrUnauthorized) || errors.Is(err, apierr.ErrNotFound) {
			_ = s.c.tokens.Clear()
			return nil, nil
		}
		return nil, err
	}
	s.set(u, token)
	return u, nil
}

// invalidate drops the session in response to a backend 401.
func (s *Session) invalidate() {
	if s.CurrentUser() == nil && s.Token() == "" {
		return
	}
	log.Debug().Msg("session invalidated by backend 401")
	s.set(nil, "")
}

func (s *Session) set(u *User, token string) {
	s.mu.Lock()
	s.user = u
	s.token = token
	listeners := make([]func(*User), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	if token == "" {
		_ = s.c.tokens.Clear()
	} else {
		_ = s.c.tokens.Save(token)
	}
	for _, fn := range listeners {
		fn(u)
	}
}
