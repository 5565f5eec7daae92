// Package overview aggregates WorkDays over an ISO week or calendar month:
// totals, overtime against the configured targets, and navigation anchors.
package overview

import (
	"context"
	"strings"
	"time"

	"workhours/internal/hours"
	"workhours/internal/platform/apperr"
	"workhours/internal/platform/ids"
	"workhours/internal/workdays"
)

// Source is the slice of workdays.Service the overview reads from.
type Source interface {
	Between(ctx context.Context, from, to time.Time) ([]workdays.WorkDay, error)
}

type Day struct {
	ID         string  `json:"id"`
	DateString string  `json:"dateString"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	NetHours   float64 `json:"netHours"`
	Site       *string `json:"site,omitempty"`
	Note       *string `json:"note,omitempty"`
}

type Week struct {
	Label         string  `json:"label"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
}

type Summary struct {
	Period        hours.PeriodKind  `json:"period"`
	Label         string            `json:"label"`
	From          string            `json:"from"`
	To            string            `json:"to"`
	PrevDate      string            `json:"prevDate"`
	NextDate      string            `json:"nextDate"`
	Days          []Day             `json:"days"`
	TotalHours    float64           `json:"totalHours"`
	TargetHours   float64           `json:"targetHours"`
	OvertimeHours float64           `json:"overtimeHours"`
	Policy        hours.MonthPolicy `json:"policy,omitempty"`
	// month view only: the ISO weeks touching the month, counted in full
	Weeks []Week `json:"weeks,omitempty"`
}

type Service struct {
	src     Source
	targets hours.Targets
	clock   ids.Clock
}

func NewService(src Source, targets hours.Targets) *Service {
	return &Service{src: src, targets: targets, clock: ids.RealClock{}}
}

func (s *Service) Targets() hours.Targets { return s.targets }

// Today is the default anchor.
func (s *Service) Today() time.Time { return s.clock.Now() }

// ParseQuery turns the raw period/date query values into a kind and anchor.
// An empty date means today.
func (s *Service) ParseQuery(period, date string) (hours.PeriodKind, time.Time, error) {
	kind, err := hours.ParsePeriodKind(period)
	if err != nil {
		return "", time.Time{}, apperr.Invalid(err.Error())
	}
	if strings.TrimSpace(date) == "" {
		return kind, s.Today(), nil
	}
	anchor, err := hours.ParseDate(date)
	if err != nil {
		return "", time.Time{}, apperr.Invalid("date must match YYYY-MM-DD")
	}
	return kind, anchor, nil
}

func (s *Service) Summarize(ctx context.Context, kind hours.PeriodKind, anchor time.Time) (Summary, error) {
	p := hours.PeriodFor(kind, anchor)
	from, to := s.span(kind, anchor)
	records, err := s.src.Between(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}

	inPeriod := hours.FilterIn(records, p)
	days := make([]Day, 0, len(inPeriod))
	for _, w := range inPeriod {
		days = append(days, Day{
			ID:         w.ID,
			DateString: w.DateString,
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
			NetHours:   w.NetHours,
			Site:       w.Site,
			Note:       w.Note,
		})
	}

	sum := Summary{
		Period:        kind,
		Label:         p.String(),
		From:          p.Start.Format(hours.DateLayout),
		To:            p.Last().Format(hours.DateLayout),
		PrevDate:      p.Prev().Start.Format(hours.DateLayout),
		NextDate:      p.Next().Start.Format(hours.DateLayout),
		Days:          days,
		TotalHours:    hours.SumHours(inPeriod),
		TargetHours:   s.targets.For(kind),
		OvertimeHours: hours.PeriodOvertime(records, kind, anchor, s.targets),
	}
	if kind == hours.Month {
		sum.Policy = s.targets.MonthPolicy
		for _, w := range p.Weeks() {
			total := hours.SumHours(hours.FilterIn(records, w))
			sum.Weeks = append(sum.Weeks, Week{
				Label:         w.String(),
				From:          w.Start.Format(hours.DateLayout),
				To:            w.Last().Format(hours.DateLayout),
				TotalHours:    total,
				OvertimeHours: hours.Overtime(total, hours.Week, s.targets),
			})
		}
	}
	return sum, nil
}

// span always covers the boundary weeks in month view, so the per-week
// breakdown is complete whatever the policy.
func (s *Service) span(kind hours.PeriodKind, anchor time.Time) (time.Time, time.Time) {
	t := s.targets
	t.MonthPolicy = hours.MonthWeekly
	return hours.Span(kind, anchor, t)
}
