package workdays

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/workdays", h.ListWorkDays)
	r.POST("/workdays", h.UpsertWorkDay)
	r.PUT("/workdays", h.UpdateWorkDay)
	r.DELETE("/workdays", h.DeleteWorkDay)
}

// ListWorkDays godoc
// @Summary  List all workdays, newest first
// @Tags     workdays
// @Produce  json
// @Success  200 {array} WorkDayResponse
// @Failure  500 {object} httpx.Message
// @Router   /workdays [get]
func (h *Handler) ListWorkDays(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpsertWorkDay godoc
// @Summary  Create or replace the workday of a date
// @Tags     workdays
// @Accept   json
// @Produce  json
// @Param    body body UpsertWorkDayRequest true "workday"
// @Success  200 {object} WorkDayResponse
// @Failure  400 {object} httpx.Message
// @Router   /workdays [post]
func (h *Handler) UpsertWorkDay(c *gin.Context) {
	var req UpsertWorkDayRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}
	res, created, err := h.svc.Upsert(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	if created {
		log.Printf("[INFO] workday %s created for %s", res.ID, res.DateString)
	}
	c.JSON(http.StatusOK, res)
}

// UpdateWorkDay godoc
// @Summary  Update a workday by id
// @Tags     workdays
// @Accept   json
// @Produce  json
// @Param    body body UpdateWorkDayRequest true "workday"
// @Success  200 {object} WorkDayResponse
// @Failure  400 {object} httpx.Message
// @Failure  404 {object} httpx.Message
// @Failure  409 {object} httpx.Message
// @Router   /workdays [put]
func (h *Handler) UpdateWorkDay(c *gin.Context) {
	var req UpdateWorkDayRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}
	res, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteWorkDay godoc
// @Summary  Delete a workday; unknown ids are a no-op
// @Tags     workdays
// @Produce  json
// @Param    id query string true "workday id"
// @Success  200 {object} httpx.Message
// @Failure  400 {object} httpx.Message
// @Router   /workdays [delete]
func (h *Handler) DeleteWorkDay(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, httpx.Message{Message: "Deleted"})
}
