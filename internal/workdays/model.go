package workdays

import (
	"database/sql"
	"time"
)

// WorkDay is one logged day. DateString is the natural key.
type WorkDay struct {
	ID         string
	DateString string
	StartTime  string
	EndTime    string
	NetHours   float64
	Site       *string
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (w WorkDay) RecordDate() string   { return w.DateString }
func (w WorkDay) RecordHours() float64 { return w.NetHours }

// Fields is everything a write replaces. NetHours is already computed.
type Fields struct {
	DateString string
	StartTime  string
	EndTime    string
	NetHours   float64
	Site       *string
	Note       *string
}

// scan target for the SQL store
type workDayRow struct {
	ID         string
	DateString string
	StartTime  string
	EndTime    string
	NetHours   float64
	Site       sql.NullString
	Note       sql.NullString
	CreatedAt  string
	UpdatedAt  string
}

func (r workDayRow) toModel() WorkDay {
	return WorkDay{
		ID:         r.ID,
		DateString: r.DateString,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		NetHours:   r.NetHours,
		Site:       nullableString(r.Site),
		Note:       nullableString(r.Note),
		CreatedAt:  parseStamp(r.CreatedAt),
		UpdatedAt:  parseStamp(r.UpdatedAt),
	}
}

func (w WorkDay) toDTO() WorkDayResponse {
	return WorkDayResponse{
		ID:         w.ID,
		DateString: w.DateString,
		StartTime:  w.StartTime,
		EndTime:    w.EndTime,
		NetHours:   w.NetHours,
		Site:       w.Site,
		Note:       w.Note,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

const stampLayout = time.RFC3339Nano

func formatStamp(t time.Time) string { return t.UTC().Format(stampLayout) }

func parseStamp(s string) time.Time {
	t, err := time.Parse(stampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
