package sites

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"workhours/internal/platform/apperr"
	"workhours/internal/platform/config"
	"workhours/internal/platform/db"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	conn, err := db.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := db.ApplyMigrations(ctx, conn, config.DriverSQLite); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return NewService(NewSQLStore(conn))
}

func TestFindOrCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, created, err := svc.FindOrCreate(ctx, CreateSiteRequest{Name: "Office"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if !created {
		t.Fatal("expected first call to create")
	}
	second, created, err := svc.FindOrCreate(ctx, CreateSiteRequest{Name: "Office"})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created || second.ID != first.ID {
		t.Fatalf("expected existing site %s, got created=%v id=%s", first.ID, created, second.ID)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 site, got %d", len(all))
	}
}

func TestFindOrCreateIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	a, _, err := svc.FindOrCreate(ctx, CreateSiteRequest{Name: "Office"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, _, err := svc.FindOrCreate(ctx, CreateSiteRequest{Name: "office"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("names differing in case must be distinct sites")
	}
}

func TestListSortedByName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for _, n := range []string{"Warehouse", "Depot", "Office"} {
		if _, _, err := svc.FindOrCreate(ctx, CreateSiteRequest{Name: n}); err != nil {
			t.Fatalf("create %s: %v", n, err)
		}
	}
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Depot", "Office", "Warehouse"}
	for i := range want {
		if all[i].Name != want[i] {
			t.Fatalf("List()[%d] = %s, want %s", i, all[i].Name, want[i])
		}
	}
}

func TestServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, _, err := svc.FindOrCreate(ctx, CreateSiteRequest{Name: "   "}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.Delete(ctx, ""); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
}

func TestSitesHTTP(t *testing.T) {
	r := gin.New()
	RegisterRoutes(r.Group("/api"), newTestService(t))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/sites", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status = %d", rec.Code)
	}
	var msg map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &msg)
	if msg["message"] != "name is required" {
		t.Fatalf("message = %q", msg["message"])
	}

	var a, b SiteResponse
	rec = post(`{"name":"Office"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status = %d", rec.Code)
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &a)
	rec = post(`{"name":"Office"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate create: status = %d", rec.Code)
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &b)
	if a.ID == "" || a.ID != b.ID {
		t.Fatalf("expected same id twice, got %q and %q", a.ID, b.ID)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/sites?id="+a.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/sites", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("delete without id: status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/sites", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var list []SiteResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list) != 0 {
		t.Fatalf("expected no sites after delete, got %d", len(list))
	}
}
