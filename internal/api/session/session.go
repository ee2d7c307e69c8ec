// Package session binds the gorilla/sessions store to echo requests and
// derives the per-request Actor from it.
package session

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/core/domain"
)

const (
	CookieName = "showcase_session"

	keyUserID   = "user_id"
	keyUsername = "username"
	keyRole     = "role"

	actorContextKey = "actor"
)

func init() {
	// flash messages are stored as []interface{} inside session values
	gob.Register([]interface{}{})
}

// Manager reads and writes the login session and its flash messages.
type Manager struct {
	store sessions.Store
}

func NewManager(store sessions.Store) *Manager {
	return &Manager{store: store}
}

// NewCookieStore returns a signed cookie store used when no server-side
// store is configured.
func NewCookieStore(secret []byte, ttl time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.MaxAge(int(ttl.Seconds()))
	return store
}

// revoker is implemented by server-side stores that can drop a session ID.
type revoker interface {
	Revoke(ctx context.Context, id string) error
}

// rotate saves s under a fresh ID and drops the previous one.
func (m *Manager) rotate(c echo.Context, s *sessions.Session) error {
	old := s.ID
	s.ID = ""
	if err := s.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	if r, ok := m.store.(revoker); ok && old != "" && old != s.ID {
		if err := r.Revoke(c.Request().Context(), old); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
	}
	return nil
}

func (m *Manager) get(c echo.Context) (*sessions.Session, error) {
	s, err := m.store.Get(c.Request(), CookieName)
	if err != nil {
		// a cookie that fails to decode is replaced by a fresh session
		var cerr securecookie.Error
		if s != nil && errors.As(err, &cerr) && cerr.IsDecode() {
			return s, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

// Actor reads the identity stored in the session. Missing or malformed
// values yield the anonymous Actor.
func (m *Manager) Actor(c echo.Context) (domain.Actor, error) {
	s, err := m.get(c)
	if err != nil {
		return domain.Actor{}, err
	}
	id, _ := s.Values[keyUserID].(int64)
	username, _ := s.Values[keyUsername].(string)
	role, _ := s.Values[keyRole].(string)
	if id == 0 {
		return domain.Actor{}, nil
	}
	return domain.Actor{UserID: id, Username: username, Role: domain.Role(role)}, nil
}

// SignIn stores the user's identity in the session under a new session ID.
func (m *Manager) SignIn(c echo.Context, user *domain.User) error {
	s, err := m.get(c)
	if err != nil {
		return err
	}
	s.Values[keyUserID] = user.ID
	s.Values[keyUsername] = user.Username
	s.Values[keyRole] = string(user.Role)
	SetActor(c, domain.Actor{UserID: user.ID, Username: user.Username, Role: user.Role})
	return m.rotate(c, s)
}

// SignOut clears every session value and rotates the session ID. The cookie
// itself survives so a follow-up flash message can still be delivered.
func (m *Manager) SignOut(c echo.Context) error {
	s, err := m.get(c)
	if err != nil {
		return err
	}
	for k := range s.Values {
		delete(s.Values, k)
	}
	SetActor(c, domain.Actor{})
	return m.rotate(c, s)
}

// Flash queues a message for the next rendered page.
func (m *Manager) Flash(c echo.Context, msg string) error {
	s, err := m.get(c)
	if err != nil {
		return err
	}
	s.AddFlash(msg)
	return s.Save(c.Request(), c.Response())
}

// Flashes pops every queued message.
func (m *Manager) Flashes(c echo.Context) ([]string, error) {
	s, err := m.get(c)
	if err != nil {
		return nil, err
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out, s.Save(c.Request(), c.Response())
}

// SetActor attaches the request's Actor to the echo context.
func SetActor(c echo.Context, actor domain.Actor) {
	c.Set(actorContextKey, actor)
}

// ActorFrom returns the Actor attached by the session middleware, or the
// anonymous Actor.
func ActorFrom(c echo.Context) domain.Actor {
	actor, _ := c.Get(actorContextKey).(domain.Actor)
	return actor
}
