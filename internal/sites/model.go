package sites

import "time"

// Site is a named work location. WorkDays refer to it by name only.
type Site struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type siteRow struct {
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

func (r siteRow) toModel() Site {
	return Site{ID: r.ID, Name: r.Name, CreatedAt: parseStamp(r.CreatedAt), UpdatedAt: parseStamp(r.UpdatedAt)}
}

func (s Site) toDTO() SiteResponse {
	return SiteResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func formatStamp(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
