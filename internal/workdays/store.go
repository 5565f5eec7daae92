package workdays

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"workhours/internal/platform/db"
)

var (
	ErrNotFound      = errors.New("workday not found")
	ErrDuplicateDate = errors.New("another workday already uses this dateString")
)

// Store persists WorkDays. Implementations: SQLStore, MongoStore.
type Store interface {
	// Upsert creates or replaces the WorkDay keyed by f.DateString. newID is
	// only used when a record is created. created reports which happened.
	Upsert(ctx context.Context, newID string, f Fields, now time.Time) (w WorkDay, created bool, err error)
	// Update replaces the fields of the WorkDay with id. ErrNotFound if absent,
	// ErrDuplicateDate if f.DateString belongs to another record.
	Update(ctx context.Context, id string, f Fields, now time.Time) (WorkDay, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
	// List returns every WorkDay, dateString descending.
	List(ctx context.Context) ([]WorkDay, error)
	// ListRange returns WorkDays with from <= dateString <= to, ascending.
	ListRange(ctx context.Context, from, to string) ([]WorkDay, error)
}

// ===== SQL (mysql / sqlite) =====

var workDayColumns = []string{
	"id", "date_string", "start_time", "end_time", "net_hours", "site", "note", "created_at", "updated_at",
}

// SQLStore builds its statements with squirrel; "?" placeholders suit both
// mysql and sqlite.
type SQLStore struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

func NewSQLStore(conn *sql.DB) *SQLStore {
	return &SQLStore{db: conn, sq: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func (s *SQLStore) selectWorkDays() sq.SelectBuilder {
	return s.sq.Select(workDayColumns...).From("workdays")
}

func scanWorkDay(sc interface{ Scan(dest ...any) error }) (WorkDay, error) {
	var r workDayRow
	if err := sc.Scan(&r.ID, &r.DateString, &r.StartTime, &r.EndTime, &r.NetHours, &r.Site, &r.Note, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return WorkDay{}, err
	}
	return r.toModel(), nil
}

func (s *SQLStore) getOne(ctx context.Context, tx db.DBTX, where sq.Eq) (WorkDay, error) {
	q, args, err := s.selectWorkDays().Where(where).ToSql()
	if err != nil {
		return WorkDay{}, err
	}
	return scanWorkDay(tx.QueryRowContext(ctx, q, args...))
}

func exec(ctx context.Context, tx db.DBTX, b sq.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

// Upsert: read-then-write in one transaction. If a concurrent insert wins the
// unique index, the second attempt takes the update path (last write wins).
func (s *SQLStore) Upsert(ctx context.Context, newID string, f Fields, now time.Time) (WorkDay, bool, error) {
	var (
		out     WorkDay
		created bool
		err     error
	)
	for attempt := 0; attempt < 2; attempt++ {
		err = db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
			existing, err := s.getOne(ctx, tx, sq.Eq{"date_string": f.DateString})
			switch {
			case errors.Is(err, sql.ErrNoRows):
				created = true
				ins := s.sq.Insert("workdays").Columns(workDayColumns...).Values(
					newID, f.DateString, f.StartTime, f.EndTime, f.NetHours, nullable(f.Site), nullable(f.Note),
					formatStamp(now), formatStamp(now))
				if err := exec(ctx, tx, ins); err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				created = false
				if err := exec(ctx, tx, s.updateRow(existing.ID, f, now)); err != nil {
					return err
				}
			}
			out, err = s.getOne(ctx, tx, sq.Eq{"date_string": f.DateString})
			return err
		})
		if err == nil || !db.IsDuplicateKey(err) {
			break
		}
	}
	if err != nil {
		return WorkDay{}, false, err
	}
	return out, created, nil
}

func (s *SQLStore) updateRow(id string, f Fields, now time.Time) sq.UpdateBuilder {
	return s.sq.Update("workdays").SetMap(map[string]any{
		"date_string": f.DateString,
		"start_time":  f.StartTime,
		"end_time":    f.EndTime,
		"net_hours":   f.NetHours,
		"site":        nullable(f.Site),
		"note":        nullable(f.Note),
		"updated_at":  formatStamp(now),
	}).Where(sq.Eq{"id": id})
}

func (s *SQLStore) Update(ctx context.Context, id string, f Fields, now time.Time) (WorkDay, error) {
	var out WorkDay
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		if _, err := s.getOne(ctx, tx, sq.Eq{"id": id}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if err := exec(ctx, tx, s.updateRow(id, f, now)); err != nil {
			if db.IsDuplicateKey(err) {
				return ErrDuplicateDate
			}
			return err
		}
		var err error
		out, err = s.getOne(ctx, tx, sq.Eq{"id": id})
		return err
	})
	return out, err
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	return exec(ctx, s.db, s.sq.Delete("workdays").Where(sq.Eq{"id": id}))
}

func (s *SQLStore) List(ctx context.Context) ([]WorkDay, error) {
	return s.query(ctx, s.selectWorkDays().OrderBy("date_string DESC"))
}

func (s *SQLStore) ListRange(ctx context.Context, from, to string) ([]WorkDay, error) {
	return s.query(ctx, s.selectWorkDays().
		Where(sq.And{sq.GtOrEq{"date_string": from}, sq.LtOrEq{"date_string": to}}).
		OrderBy("date_string ASC"))
}

func (s *SQLStore) query(ctx context.Context, b sq.SelectBuilder) ([]WorkDay, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]WorkDay, 0, 32)
	for rows.Next() {
		w, err := scanWorkDay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
