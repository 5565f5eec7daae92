package workdays

import (
	"context"
	"testing"
	"time"

	"workhours/internal/hours"
	"workhours/internal/platform/config"
	"workhours/internal/platform/db"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) *SQLStore {
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
	return NewSQLStore(conn)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(newTestStore(t), hours.DefaultBreakMinutes)
	svc.clock = fixedClock{now: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)}
	return svc
}

func strPtr(s string) *string { return &s }
