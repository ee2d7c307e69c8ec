package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studentworks/showcase/internal/api/session"
	"github.com/studentworks/showcase/internal/core/domain"
)

func TestAdminHandler_Dashboard(t *testing.T) {
	e := newEcho()
	pending := sampleProject()
	pending.Status = domain.StatusPending
	stub := &stubProjectService{
		listAllFn: func(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
			if !actor.IsAdmin() {
				t.Fatalf("expected admin actor, got %+v", actor)
			}
			return []*domain.Project{pending}, nil
		},
	}
	handler := NewAdminHandler(stub, &stubSessions{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin", nil), rec)
	session.SetActor(c, root)
	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listPage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.View != "admin" || len(resp.Projects) != 1 || resp.Projects[0].Status != "pending" {
		t.Fatalf("unexpected page: %+v", resp)
	}
}

func TestAdminHandler_Dashboard_ServiceRejects(t *testing.T) {
	e := newEcho()
	stub := &stubProjectService{
		listAllFn: func(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	handler := NewAdminHandler(stub, &stubSessions{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin", nil), httptest.NewRecorder())
	session.SetActor(c, alice)
	if err := handler.Dashboard(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAdminHandler_Approve(t *testing.T) {
	cases := []struct {
		name   string
		svcErr error
		flash  string
	}{
		{"approved", nil, "Project approved."},
		{"missing", domain.ErrNotFound, "Project not found."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			sessions := &stubSessions{}
			stub := &stubProjectService{
				approveFn: func(ctx context.Context, actor domain.Actor, id int64) error {
					if actor != root || id != 3 {
						t.Fatalf("unexpected args %+v %d", actor, id)
					}
					return tc.svcErr
				},
			}
			handler := NewAdminHandler(stub, sessions)

			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/approve/3", nil), rec)
			session.SetActor(c, root)
			if err := handler.Approve(withID(c, "3")); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			expectRedirect(t, rec, "/admin")
			expectFlashes(t, sessions, tc.flash)
		})
	}
}
