package hours

import (
	"fmt"
	"strings"
	"time"
)

type PeriodKind string

const (
	Week  PeriodKind = "week"
	Month PeriodKind = "month"
)

func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(strings.ToLower(strings.TrimSpace(s))) {
	case Week, "":
		return Week, nil
	case Month:
		return Month, nil
	default:
		return "", fmt.Errorf("invalid period %q, expected week or month", s)
	}
}

// Period is the half-open day range [Start, End) of an ISO week or a calendar month.
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the ISO week containing day.
func WeekStart(day time.Time) time.Time {
	d := dayOf(day)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func PeriodFor(kind PeriodKind, anchor time.Time) Period {
	if kind == Month {
		y, m, _ := anchor.Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return Period{Kind: Month, Start: start, End: start.AddDate(0, 1, 0)}
	}
	start := WeekStart(anchor)
	return Period{Kind: Week, Start: start, End: start.AddDate(0, 0, 7)}
}

func (p Period) Contains(day time.Time) bool {
	d := dayOf(day)
	return !d.Before(p.Start) && d.Before(p.End)
}

// Last is the final day inside the period.
func (p Period) Last() time.Time { return p.End.AddDate(0, 0, -1) }

func (p Period) Prev() Period {
	if p.Kind == Month {
		return PeriodFor(Month, p.Start.AddDate(0, -1, 0))
	}
	return PeriodFor(Week, p.Start.AddDate(0, 0, -7))
}

func (p Period) Next() Period { return PeriodFor(p.Kind, p.End) }

// Weeks lists the ISO weeks that share at least one day with p.
func (p Period) Weeks() []Period {
	var out []Period
	for w := PeriodFor(Week, p.Start); w.Start.Before(p.End); w = w.Next() {
		out = append(out, w)
	}
	return out
}

func (p Period) String() string {
	if p.Kind == Month {
		return p.Start.Format("2006-01")
	}
	y, w := p.Start.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// Record is anything carrying a calendar day and a net-hours value.
type Record interface {
	RecordDate() string
	RecordHours() float64
}

// FilterByPeriod keeps the records whose date falls in the period of kind that
// contains anchor. Order is preserved; unparseable dates are dropped.
func FilterByPeriod[R Record](records []R, kind PeriodKind, anchor time.Time) []R {
	return FilterIn(records, PeriodFor(kind, anchor))
}

func FilterIn[R Record](records []R, p Period) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		day, err := ParseDate(r.RecordDate())
		if err != nil {
			continue
		}
		if p.Contains(day) {
			out = append(out, r)
		}
	}
	return out
}

// SumHours adds up net hours, rounded to 2 decimals.
func SumHours[R Record](records []R) float64 {
	var total float64
	for _, r := range records {
		total += r.RecordHours()
	}
	return Round2(total)
}
