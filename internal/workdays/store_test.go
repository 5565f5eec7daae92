package workdays

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

var t0 = time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

func TestSQLStoreUpsertKeepsOneRecordPerDate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, created, err := store.Upsert(ctx, "01A", Fields{
		DateString: "2024-03-04", StartTime: "08:00", EndTime: "17:00", NetHours: 8.6,
		Site: strPtr("Office"), Note: strPtr("first"),
	}, t0)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !created || first.ID != "01A" {
		t.Fatalf("expected created record 01A, got created=%v id=%s", created, first.ID)
	}

	second, created, err := store.Upsert(ctx, "01B", Fields{
		DateString: "2024-03-04", StartTime: "09:00", EndTime: "15:00", NetHours: 5.6,
	}, t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Fatal("second upsert should replace, not create")
	}
	if second.ID != "01A" {
		t.Fatalf("id changed on replace: %s", second.ID)
	}
	if second.StartTime != "09:00" || second.NetHours != 5.6 {
		t.Fatalf("fields not replaced: %+v", second)
	}
	if second.Site != nil || second.Note != nil {
		t.Fatalf("optional fields should be cleared, got site=%v note=%v", second.Site, second.Note)
	}
	if !second.CreatedAt.Equal(t0) || !second.UpdatedAt.Equal(t0.Add(time.Hour)) {
		t.Fatalf("timestamps: created=%s updated=%s", second.CreatedAt, second.UpdatedAt)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
}

func TestSQLStoreListOrdering(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	for i, d := range []string{"2024-03-05", "2024-02-28", "2024-03-11", "2024-03-04"} {
		id := string(rune('A' + i))
		if _, _, err := store.Upsert(ctx, id, Fields{DateString: d, StartTime: "08:00", EndTime: "17:00", NetHours: 8.6}, t0); err != nil {
			t.Fatalf("upsert %s: %v", d, err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-03-11", "2024-03-05", "2024-03-04", "2024-02-28"}
	for i := range want {
		if all[i].DateString != want[i] {
			t.Fatalf("List()[%d] = %s, want %s", i, all[i].DateString, want[i])
		}
	}

	ranged, err := store.ListRange(ctx, "2024-03-04", "2024-03-10")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(ranged) != 2 || ranged[0].DateString != "2024-03-04" || ranged[1].DateString != "2024-03-05" {
		t.Fatalf("unexpected range result %+v", ranged)
	}
}

func TestSQLStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	if _, _, err := store.Upsert(ctx, "A", Fields{DateString: "2024-03-04", StartTime: "08:00", EndTime: "17:00", NetHours: 8.6}, t0); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, _, err := store.Upsert(ctx, "B", Fields{DateString: "2024-03-05", StartTime: "08:00", EndTime: "17:00", NetHours: 8.6}, t0); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.Update(ctx, "A", Fields{DateString: "2024-03-06", StartTime: "07:00", EndTime: "16:00", NetHours: 8.6, Note: strPtr("moved")}, t0)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DateString != "2024-03-06" || got.Note == nil || *got.Note != "moved" {
		t.Fatalf("update not applied: %+v", got)
	}

	if _, err := store.Update(ctx, "missing", Fields{DateString: "2024-03-07", StartTime: "08:00", EndTime: "17:00"}, t0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Update(ctx, "A", Fields{DateString: "2024-03-05", StartTime: "08:00", EndTime: "17:00"}, t0); !errors.Is(err, ErrDuplicateDate) {
		t.Fatalf("expected ErrDuplicateDate, got %v", err)
	}
}

func TestSQLStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	if _, _, err := store.Upsert(ctx, "A", Fields{DateString: "2024-03-04", StartTime: "08:00", EndTime: "17:00", NetHours: 8.6}, t0); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Delete(ctx, "A"); err != nil {
			t.Fatalf("delete #%d: %v", i+1, err)
		}
	}
	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d", len(all))
	}
}

func TestReplaceDocUnsetsMissingOptionals(t *testing.T) {
	doc := replaceDoc(Fields{DateString: "2024-03-04", StartTime: "08:00", EndTime: "17:00", NetHours: 8.6, Site: strPtr("Office")}, t0)
	set, ok := doc["$set"].(bson.M)
	if !ok {
		t.Fatalf("unexpected $set type %T", doc["$set"])
	}
	if set["site"] != "Office" {
		t.Fatalf("site not set: %v", set)
	}
	unset, ok := doc["$unset"].(bson.M)
	if !ok {
		t.Fatalf("expected $unset, got %v", doc)
	}
	if _, ok := unset["note"]; !ok {
		t.Fatalf("note should be unset: %v", unset)
	}
}
