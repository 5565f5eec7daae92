package workdays

import (
	"context"
	"errors"
	"strings"
	"time"

	"workhours/internal/hours"
	"workhours/internal/platform/apperr"
	"workhours/internal/platform/ids"
)

type Service struct {
	store        Store
	clock        ids.Clock
	id           ids.Generator
	breakMinutes int
}

func NewService(store Store, breakMinutes int) *Service {
	return &Service{
		store:        store,
		clock:        ids.RealClock{},
		id:           ids.NewULID(),
		breakMinutes: breakMinutes,
	}
}

// fields validates the payload and derives netHours. Handlers have already
// run binding validation; the CLI and page forms come through here directly.
func (s *Service) fields(dateString, start, end string, site, note *string) (Fields, error) {
	dateString = strings.TrimSpace(dateString)
	if dateString == "" {
		return Fields{}, apperr.Invalid("dateString is required")
	}
	if _, err := hours.ParseDate(dateString); err != nil {
		return Fields{}, apperr.Invalid("dateString must match YYYY-MM-DD")
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return Fields{}, apperr.Invalid("startTime and endTime are required")
	}
	net, err := hours.NetHours(start, end, s.breakMinutes)
	if err != nil {
		return Fields{}, apperr.Invalid(err.Error())
	}
	return Fields{
		DateString: dateString,
		StartTime:  start,
		EndTime:    end,
		NetHours:   net,
		Site:       optional(site),
		Note:       optional(note),
	}, nil
}

// POST /workdays
func (s *Service) Upsert(ctx context.Context, in UpsertWorkDayRequest) (WorkDayResponse, bool, error) {
	f, err := s.fields(in.DateString, in.StartTime, in.EndTime, in.Site, in.Note)
	if err != nil {
		return WorkDayResponse{}, false, err
	}
	newID, err := s.id.New()
	if err != nil {
		return WorkDayResponse{}, false, apperr.Internal("failed to allocate id")
	}
	w, created, err := s.store.Upsert(ctx, newID, f, s.clock.Now())
	if err != nil {
		return WorkDayResponse{}, false, apperr.Unavailable(err)
	}
	return w.toDTO(), created, nil
}

// PUT /workdays
func (s *Service) Update(ctx context.Context, in UpdateWorkDayRequest) (WorkDayResponse, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return WorkDayResponse{}, apperr.Invalid("id is required")
	}
	f, err := s.fields(in.DateString, in.StartTime, in.EndTime, in.Site, in.Note)
	if err != nil {
		return WorkDayResponse{}, err
	}
	w, err := s.store.Update(ctx, id, f, s.clock.Now())
	switch {
	case errors.Is(err, ErrNotFound):
		return WorkDayResponse{}, apperr.NotFound("workday not found")
	case errors.Is(err, ErrDuplicateDate):
		return WorkDayResponse{}, apperr.Conflict("another workday already exists for " + f.DateString)
	case err != nil:
		return WorkDayResponse{}, apperr.Unavailable(err)
	}
	return w.toDTO(), nil
}

// DELETE /workdays?id=
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.Invalid("id is required")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// GET /workdays
func (s *Service) List(ctx context.Context) ([]WorkDayResponse, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	out := make([]WorkDayResponse, 0, len(rows))
	for i := 0; i < len(rows); i++ {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// Between returns the WorkDays of the inclusive day range, ascending.
func (s *Service) Between(ctx context.Context, from, to time.Time) ([]WorkDay, error) {
	rows, err := s.store.ListRange(ctx, from.Format(hours.DateLayout), to.Format(hours.DateLayout))
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return rows, nil
}

// optional maps blank strings to nil, so "" never gets stored.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
