package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/infrastructure/db/redis"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// roundTrip runs fn on a fresh request carrying cookie and returns the
// cookie the response leaves behind.
func roundTrip(t *testing.T, m *Manager, cookie *http.Cookie, fn func(c echo.Context)) *http.Cookie {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	fn(e.NewContext(req, rec))

	var last *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName {
			last = ck
		}
	}
	if last == nil {
		return cookie
	}
	return last
}

func TestManager_SignInAndActor(t *testing.T) {
	m := NewManager(NewCookieStore(testSecret, time.Hour, false))

	cookie := roundTrip(t, m, nil, func(c echo.Context) {
		if err := m.SignIn(c, &domain.User{ID: 7, Username: "alice", Role: domain.RoleStudent}); err != nil {
			t.Fatalf("sign in: %v", err)
		}
		if got := ActorFrom(c); got.UserID != 7 {
			t.Fatalf("sign in must update the request actor, got %+v", got)
		}
	})
	if cookie == nil || !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}

	roundTrip(t, m, cookie, func(c echo.Context) {
		actor, err := m.Actor(c)
		if err != nil {
			t.Fatalf("actor: %v", err)
		}
		want := domain.Actor{UserID: 7, Username: "alice", Role: domain.RoleStudent}
		if actor != want {
			t.Fatalf("expected %+v, got %+v", want, actor)
		}
	})
}

func TestManager_FlashesArePoppedOnce(t *testing.T) {
	m := NewManager(NewCookieStore(testSecret, time.Hour, false))

	cookie := roundTrip(t, m, nil, func(c echo.Context) {
		_ = m.Flash(c, "first")
		_ = m.Flash(c, "second")
	})

	cookie = roundTrip(t, m, cookie, func(c echo.Context) {
		got, err := m.Flashes(c)
		if err != nil {
			t.Fatalf("flashes: %v", err)
		}
		if len(got) != 2 || got[0] != "first" || got[1] != "second" {
			t.Fatalf("unexpected flashes: %v", got)
		}
	})

	roundTrip(t, m, cookie, func(c echo.Context) {
		if got, _ := m.Flashes(c); len(got) != 0 {
			t.Fatalf("flashes delivered twice: %v", got)
		}
	})
}

func TestManager_SignOutKeepsLaterFlash(t *testing.T) {
	m := NewManager(NewCookieStore(testSecret, time.Hour, false))

	cookie := roundTrip(t, m, nil, func(c echo.Context) {
		_ = m.SignIn(c, &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin})
	})
	cookie = roundTrip(t, m, cookie, func(c echo.Context) {
		if err := m.SignOut(c); err != nil {
			t.Fatalf("sign out: %v", err)
		}
		_ = m.Flash(c, "bye")
	})

	roundTrip(t, m, cookie, func(c echo.Context) {
		actor, _ := m.Actor(c)
		if actor.Authenticated() {
			t.Fatalf("expected anonymous actor after sign out, got %+v", actor)
		}
		if got, _ := m.Flashes(c); len(got) != 1 || got[0] != "bye" {
			t.Fatalf("expected flash to survive sign out, got %v", got)
		}
	})
}

func TestManager_SignInAndSignOutRotateServerSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	m := NewManager(redis.NewSessionStore(client, time.Hour, testSecret))

	anonymous := roundTrip(t, m, nil, func(c echo.Context) {
		_ = m.Flash(c, "welcome")
	})
	before := mr.Keys()
	if len(before) != 1 {
		t.Fatalf("expected one stored session, got %v", before)
	}

	signedIn := roundTrip(t, m, anonymous, func(c echo.Context) {
		if err := m.SignIn(c, &domain.User{ID: 7, Username: "alice", Role: domain.RoleStudent}); err != nil {
			t.Fatalf("sign in: %v", err)
		}
	})
	after := mr.Keys()
	if len(after) != 1 || after[0] == before[0] {
		t.Fatalf("expected the pre-login session to be replaced, before %v after %v", before, after)
	}
	if signedIn.Value == anonymous.Value {
		t.Fatalf("session cookie was not rotated on sign in")
	}

	roundTrip(t, m, anonymous, func(c echo.Context) {
		if actor, _ := m.Actor(c); actor.Authenticated() {
			t.Fatalf("pre-login cookie must not carry the login, got %+v", actor)
		}
	})

	signedOut := roundTrip(t, m, signedIn, func(c echo.Context) {
		if err := m.SignOut(c); err != nil {
			t.Fatalf("sign out: %v", err)
		}
	})
	if signedOut.Value == signedIn.Value {
		t.Fatalf("session cookie was not rotated on sign out")
	}
	for _, k := range mr.Keys() {
		if k == after[0] {
			t.Fatalf("signed-in session still stored after sign out")
		}
	}
}

func TestManager_ForeignCookieIsAnonymous(t *testing.T) {
	signed := NewManager(NewCookieStore(testSecret, time.Hour, false))
	cookie := roundTrip(t, signed, nil, func(c echo.Context) {
		_ = signed.SignIn(c, &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin})
	})

	other := NewManager(NewCookieStore([]byte("another-secret-of-32-bytes-long!"), time.Hour, false))
	roundTrip(t, other, cookie, func(c echo.Context) {
		actor, err := other.Actor(c)
		if err != nil {
			t.Fatalf("actor: %v", err)
		}
		if actor.Authenticated() {
			t.Fatalf("cookie signed with another key was trusted: %+v", actor)
		}
	})
}

func TestActorFrom_Default(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if ActorFrom(c).Authenticated() {
		t.Fatalf("expected anonymous actor by default")
	}
}
