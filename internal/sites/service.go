package sites

import (
	"context"
	"strings"

	"workhours/internal/platform/apperr"
	"workhours/internal/platform/ids"
)

type Service struct {
	store Store
	clock ids.Clock
	id    ids.Generator
}

func NewService(store Store) *Service {
	return &Service{store: store, clock: ids.RealClock{}, id: ids.NewULID()}
}

// POST /sites: creating an existing name returns the stored site.
func (s *Service) FindOrCreate(ctx context.Context, in CreateSiteRequest) (SiteResponse, bool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SiteResponse{}, false, apperr.Invalid("name is required")
	}
	newID, err := s.id.New()
	if err != nil {
		return SiteResponse{}, false, apperr.Internal("failed to allocate id")
	}
	site, created, err := s.store.FindOrCreate(ctx, newID, name, s.clock.Now())
	if err != nil {
		return SiteResponse{}, false, apperr.Unavailable(err)
	}
	return site.toDTO(), created, nil
}

// GET /sites
func (s *Service) List(ctx context.Context) ([]SiteResponse, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	out := make([]SiteResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDTO())
	}
	return out, nil
}

// DELETE /sites?id=
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
