package hours

import (
	"fmt"
	"strings"
	"time"
)

// MonthPolicy decides how overtime accumulates over a calendar month.
type MonthPolicy string

const (
	// MonthFlat compares the month total with a single monthly target.
	MonthFlat MonthPolicy = "flat"
	// MonthWeekly sums the overtime of every ISO week that touches the month.
	// Boundary weeks count in full, including days of the adjacent month.
	MonthWeekly MonthPolicy = "weekly"
)

func ParseMonthPolicy(s string) (MonthPolicy, error) {
	switch MonthPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case MonthFlat, "":
		return MonthFlat, nil
	case MonthWeekly:
		return MonthWeekly, nil
	default:
		return "", fmt.Errorf("invalid month policy %q, expected flat or weekly", s)
	}
}

type Targets struct {
	Weekly      float64
	Monthly     float64
	MonthPolicy MonthPolicy
}

// DefaultTargets: a 40 hour contract week, 40*52/12 hours a month.
func DefaultTargets() Targets {
	return Targets{
		Weekly:      40,
		Monthly:     Round2(40 * 52.0 / 12),
		MonthPolicy: MonthFlat,
	}
}

func (t Targets) For(kind PeriodKind) float64 {
	if kind == Month {
		return t.Monthly
	}
	return t.Weekly
}

// Overtime is total minus the flat target of kind.
func Overtime(total float64, kind PeriodKind, t Targets) float64 {
	return Round2(total - t.For(kind))
}

// PeriodOvertime computes overtime for the period of kind containing anchor.
// records may span more than the period; weekly month accounting needs the
// full boundary weeks.
func PeriodOvertime[R Record](records []R, kind PeriodKind, anchor time.Time, t Targets) float64 {
	p := PeriodFor(kind, anchor)
	if kind == Month && t.MonthPolicy == MonthWeekly {
		var sum float64
		for _, w := range p.Weeks() {
			sum += SumHours(FilterIn(records, w)) - t.Weekly
		}
		return Round2(sum)
	}
	return Overtime(SumHours(FilterIn(records, p)), kind, t)
}

// Span is the day range PeriodOvertime needs records for.
func Span(kind PeriodKind, anchor time.Time, t Targets) (from, to time.Time) {
	p := PeriodFor(kind, anchor)
	if kind == Month && t.MonthPolicy == MonthWeekly {
		weeks := p.Weeks()
		return weeks[0].Start, weeks[len(weeks)-1].Last()
	}
	return p.Start, p.Last()
}
