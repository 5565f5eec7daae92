package sites

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"workhours/internal/platform/db"
)

type Store interface {
	// FindOrCreate returns the site named name (exact, case-sensitive match),
	// creating it with newID when absent.
	FindOrCreate(ctx context.Context, newID, name string, now time.Time) (s Site, created bool, err error)
	// List returns all sites ordered by name.
	List(ctx context.Context) ([]Site, error)
	// Delete is a no-op for unknown ids. WorkDays are not touched.
	Delete(ctx context.Context, id string) error
}

// ===== SQL (mysql / sqlite) =====

var siteColumns = []string{"id", "name", "created_at", "updated_at"}

type SQLStore struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

func NewSQLStore(conn *sql.DB) *SQLStore {
	return &SQLStore{db: conn, sq: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func (s *SQLStore) FindOrCreate(ctx context.Context, newID, name string, now time.Time) (Site, bool, error) {
	var (
		out     Site
		created bool
		err     error
	)
	for attempt := 0; attempt < 2; attempt++ {
		err = db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
			found, err := s.getByName(ctx, tx, name)
			if err == nil {
				out, created = found, false
				return nil
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			q, args, err := s.sq.Insert("sites").Columns(siteColumns...).
				Values(newID, name, formatStamp(now), formatStamp(now)).ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return err
			}
			out, err = s.getByName(ctx, tx, name)
			created = err == nil
			return err
		})
		// lost an insert race: the next pass finds the winner
		if err == nil || !db.IsDuplicateKey(err) {
			break
		}
	}
	if err != nil {
		return Site{}, false, err
	}
	return out, created, nil
}

func scanSite(sc interface{ Scan(dest ...any) error }) (Site, error) {
	var r siteRow
	if err := sc.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Site{}, err
	}
	return r.toModel(), nil
}

func (s *SQLStore) getByName(ctx context.Context, tx db.DBTX, name string) (Site, error) {
	q, args, err := s.sq.Select(siteColumns...).From("sites").Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return Site{}, err
	}
	return scanSite(tx.QueryRowContext(ctx, q, args...))
}

func (s *SQLStore) List(ctx context.Context) ([]Site, error) {
	q, args, err := s.sq.Select(siteColumns...).From("sites").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Site, 0, 16)
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, site)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	q, args, err := s.sq.Delete("sites").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, q, args...)
	return err
}
