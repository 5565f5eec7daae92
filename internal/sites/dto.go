package sites

import "time"

// POST /sites
type CreateSiteRequest struct {
	Name string `json:"name" binding:"required"`
}

type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
