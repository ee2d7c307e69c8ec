package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/core/domain"
	"github.com/studentworks/showcase/internal/core/ports"
)

type stubSessions struct {
	signedIn  *domain.User
	signedOut bool
	flashes   []string
	pending   []string
}

func (s *stubSessions) SignIn(c echo.Context, user *domain.User) error {
	s.signedIn = user
	return nil
}

func (s *stubSessions) SignOut(c echo.Context) error {
	s.signedOut = true
	return nil
}

func (s *stubSessions) Flash(c echo.Context, msg string) error {
	s.flashes = append(s.flashes, msg)
	return nil
}

func (s *stubSessions) Flashes(c echo.Context) ([]string, error) {
	out := s.pending
	s.pending = nil
	return out, nil
}

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubProjectService struct {
	listApprovedFn func(ctx context.Context, query string) ([]*domain.Project, error)
	createFn       func(ctx context.Context, actor domain.Actor, in ports.CreateProjectInput) (*domain.Project, error)
	getFn          func(ctx context.Context, id int64) (*domain.Project, error)
	editFn         func(ctx context.Context, actor domain.Actor, id int64, title, description string) (*domain.Project, error)
	deleteFn       func(ctx context.Context, actor domain.Actor, id int64) error
	approveFn      func(ctx context.Context, actor domain.Actor, id int64) error
	listAllFn      func(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)
}

func (s *stubProjectService) ListApproved(ctx context.Context, query string) ([]*domain.Project, error) {
	return s.listApprovedFn(ctx, query)
}

func (s *stubProjectService) Create(ctx context.Context, actor domain.Actor, in ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) Edit(ctx context.Context, actor domain.Actor, id int64, title, description string) (*domain.Project, error) {
	return s.editFn(ctx, actor, id, title, description)
}

func (s *stubProjectService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubProjectService) Approve(ctx context.Context, actor domain.Actor, id int64) error {
	return s.approveFn(ctx, actor, id)
}

func (s *stubProjectService) ListAll(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	return s.listAllFn(ctx, actor)
}

var (
	alice = domain.Actor{UserID: 1, Username: "alice", Role: domain.RoleStudent}
	root  = domain.Actor{UserID: 9, Username: "root", Role: domain.RoleAdmin}
)

// newEcho returns an echo instance with the form validator installed.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// formContext builds a POST form request context for actor.
func formContext(e *echo.Echo, target, body string, actor domain.Actor) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	session.SetActor(c, actor)
	return c, rec
}
