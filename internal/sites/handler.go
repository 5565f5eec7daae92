package sites

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"workhours/internal/platform/httpx"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/sites", h.ListSites)
	r.POST("/sites", h.CreateSite)
	r.DELETE("/sites", h.DeleteSite)
}

// ListSites godoc
// @Summary  List sites by name
// @Tags     sites
// @Produce  json
// @Success  200 {array} SiteResponse
// @Router   /sites [get]
func (h *Handler) ListSites(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateSite godoc
// @Summary  Create a site, or return the existing one with that name
// @Tags     sites
// @Accept   json
// @Produce  json
// @Param    body body CreateSiteRequest true "site"
// @Success  200 {object} SiteResponse
// @Failure  400 {object} httpx.Message
// @Router   /sites [post]
func (h *Handler) CreateSite(c *gin.Context) {
	var req CreateSiteRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.Fail(c, err)
		return
	}
	res, created, err := h.svc.FindOrCreate(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	if created {
		log.Printf("[INFO] site %q created (%s)", res.Name, res.ID)
	}
	c.JSON(http.StatusOK, res)
}

// DeleteSite godoc
// @Summary  Delete a site; workdays keep the name
// @Tags     sites
// @Produce  json
// @Param    id query string true "site id"
// @Success  200 {object} httpx.Message
// @Failure  400 {object} httpx.Message
// @Router   /sites [delete]
func (h *Handler) DeleteSite(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, httpx.Message{Message: "Deleted"})
}
