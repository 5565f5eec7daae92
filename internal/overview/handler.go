package overview

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/overview", h.GetOverview)
	r.GET("/overview/export", h.ExportOverview)
}

// GetOverview godoc
// @Summary  Totals and overtime for the week or month containing date
// @Tags     overview
// @Produce  json
// @Param    period query string false "week (default) or month"
// @Param    date   query string false "YYYY-MM-DD, default today"
// @Success  200 {object} Summary
// @Failure  400 {object} httpx.Message
// @Router   /overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	kind, anchor, err := h.svc.ParseQuery(c.Query("period"), c.Query("date"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	sum, err := h.svc.Summarize(c.Request.Context(), kind, anchor)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// ExportOverview godoc
// @Summary  Download the period as an Excel workbook or CSV file
// @Tags     overview
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param    period query string false "week (default) or month"
// @Param    date   query string false "YYYY-MM-DD, default today"
// @Param    format query string false "xlsx (default) or csv"
// @Success  200 {file} file
// @Router   /overview/export [get]
func (h *Handler) ExportOverview(c *gin.Context) {
	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	kind, anchor, err := h.svc.ParseQuery(c.Query("period"), c.Query("date"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	sum, err := h.svc.Summarize(c.Request.Context(), kind, anchor)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := Export(&buf, sum, format); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+FileName(sum, format)+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
