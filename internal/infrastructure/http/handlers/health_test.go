package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func readiness(t *testing.T, h *HealthDependenciesHandler) (int, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := NewHealthHandler().Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_DatabaseOnly(t *testing.T) {
	code, resp := readiness(t, NewHealthDependenciesHandler(stubPinger{}, nil))
	if code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected ok, got %d %+v", code, resp)
	}
	if _, ok := resp.Dependencies["redis"]; ok {
		t.Fatalf("redis reported although not configured")
	}
}

func TestReadiness_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	code, resp := readiness(t, NewHealthDependenciesHandler(stubPinger{}, rdb))
	if code != http.StatusOK || resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("expected redis ok, got %d %+v", code, resp)
	}

	mr.Close()
	code, resp = readiness(t, NewHealthDependenciesHandler(stubPinger{}, rdb))
	if code != http.StatusServiceUnavailable || resp.Dependencies["redis"].Status != "unhealthy" {
		t.Fatalf("expected redis unhealthy, got %d %+v", code, resp)
	}
}

func TestReadiness_DatabaseDown(t *testing.T) {
	code, resp := readiness(t, NewHealthDependenciesHandler(stubPinger{err: errors.New("no such file")}, nil))
	if code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected degraded, got %d %+v", code, resp)
	}
	if resp.Dependencies["database"].Error != "no such file" {
		t.Fatalf("unexpected dependency report: %+v", resp.Dependencies["database"])
	}
}
