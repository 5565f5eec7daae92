package workdays

import "time"

// POST /workdays
type UpsertWorkDayRequest struct {
	DateString string  `json:"dateString" binding:"required,datetime=2006-01-02"`
	StartTime  string  `json:"startTime" binding:"required,datetime=15:04"`
	EndTime    string  `json:"endTime" binding:"required,datetime=15:04"`
	Site       *string `json:"site,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// PUT /workdays
type UpdateWorkDayRequest struct {
	ID         string  `json:"id" binding:"required"`
	DateString string  `json:"dateString" binding:"required,datetime=2006-01-02"`
	StartTime  string  `json:"startTime" binding:"required,datetime=15:04"`
	EndTime    string  `json:"endTime" binding:"required,datetime=15:04"`
	Site       *string `json:"site,omitempty"`
	Note       *string `json:"note,omitempty"`
}

type WorkDayResponse struct {
	ID         string    `json:"id"`
	DateString string    `json:"dateString"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	NetHours   float64   `json:"netHours"`
	Site       *string   `json:"site,omitempty"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
