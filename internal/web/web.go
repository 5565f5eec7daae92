// Package web renders the three pages of the tracker: the daily entry form,
// the week/month overview and the site settings.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"workhours/internal/hours"
	"workhours/internal/overview"
	"workhours/internal/platform/apperr"
	"workhours/internal/sites"
	"workhours/internal/workdays"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Deps struct {
	WorkDays     *workdays.Service
	Sites        *sites.Service
	Overview     *overview.Service
	BreakMinutes int
}

type Handler struct{ Deps }

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(funcMap()).ParseFS(templatesFS, "templates/*.html")
}

func Register(r *gin.Engine, d Deps) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)

	h := &Handler{Deps: d}
	r.GET("/", h.EntryPage)
	r.POST("/", h.SubmitEntry)
	r.GET("/overzicht", h.OverviewPage)
	r.POST("/overzicht/update", h.UpdateDay)
	r.POST("/overzicht/delete", h.DeleteDay)
	r.GET("/instellingen", h.SettingsPage)
	r.POST("/instellingen/sites", h.CreateSite)
	r.POST("/instellingen/sites/delete", h.DeleteSite)
	return nil
}

type entryForm struct {
	Date  string `form:"date"`
	Start string `form:"start"`
	End   string `form:"end"`
	Site  string `form:"site"`
	Note  string `form:"note"`
}

type entryPage struct {
	Nav          string
	Form         entryForm
	Sites        []sites.SiteResponse
	BreakMinutes int
	Message      string
	Error        string
}

func (h *Handler) sitesOrEmpty(c *gin.Context) []sites.SiteResponse {
	list, err := h.Sites.List(c.Request.Context())
	if err != nil {
		log.Printf("[WARN] list sites: %v", err)
		return nil
	}
	return list
}

func (h *Handler) EntryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "entry.html", entryPage{
		Nav: "entry",
		Form: entryForm{
			Date:  h.Overview.Today().Format(hours.DateLayout),
			Start: "08:00",
			End:   "17:00",
		},
		Sites:        h.sitesOrEmpty(c),
		BreakMinutes: h.BreakMinutes,
	})
}

func (h *Handler) SubmitEntry(c *gin.Context) {
	var f entryForm
	_ = c.ShouldBind(&f)
	page := entryPage{Nav: "entry", Form: f, Sites: h.sitesOrEmpty(c), BreakMinutes: h.BreakMinutes}

	res, _, err := h.WorkDays.Upsert(c.Request.Context(), workdays.UpsertWorkDayRequest{
		DateString: f.Date,
		StartTime:  f.Start,
		EndTime:    f.End,
		Site:       &f.Site,
		Note:       &f.Note,
	})
	if err != nil {
		page.Error = apperr.BodyOf(err).Message
		c.HTML(apperr.HTTPStatus(err), "entry.html", page)
		return
	}
	page.Message = "Opgeslagen! Je hebt " + formatHours(res.NetHours) + " uur gewerkt."
	c.HTML(http.StatusOK, "entry.html", page)
}

type overviewPage struct {
	Nav     string
	View    hours.PeriodKind
	Date    string
	Title   string
	Summary overview.Summary
	Sites   []sites.SiteResponse
	Error   string
}

func (h *Handler) renderOverview(c *gin.Context, view, date, errMsg string) {
	ctx := c.Request.Context()
	kind, anchor, err := h.Overview.ParseQuery(view, date)
	if err != nil {
		// unusable query: fall back to this week
		kind, anchor = hours.Week, h.Overview.Today()
		errMsg = apperr.BodyOf(err).Message
	}
	page := overviewPage{
		Nav:   "overview",
		View:  kind,
		Date:  anchor.Format(hours.DateLayout),
		Sites: h.sitesOrEmpty(c),
		Error: errMsg,
	}
	status := http.StatusOK
	sum, err := h.Overview.Summarize(ctx, kind, anchor)
	if err != nil {
		page.Error = apperr.BodyOf(err).Message
		status = apperr.HTTPStatus(err)
	}
	page.Summary = sum
	page.Title = periodTitle(kind, hours.PeriodFor(kind, anchor).Start.Format(hours.DateLayout))
	c.HTML(status, "overview.html", page)
}

func (h *Handler) OverviewPage(c *gin.Context) {
	h.renderOverview(c, c.Query("view"), c.Query("date"), "")
}

func overviewURL(view, date string) string {
	q := url.Values{}
	if view != "" {
		q.Set("view", view)
	}
	if date != "" {
		q.Set("date", date)
	}
	if len(q) == 0 {
		return "/overzicht"
	}
	return "/overzicht?" + q.Encode()
}

type updateForm struct {
	entryForm
	ID   string `form:"id"`
	View string `form:"view"`
	Back string `form:"back"`
}

func (h *Handler) UpdateDay(c *gin.Context) {
	var f updateForm
	_ = c.ShouldBind(&f)
	_, err := h.WorkDays.Update(c.Request.Context(), workdays.UpdateWorkDayRequest{
		ID:         f.ID,
		DateString: f.Date,
		StartTime:  f.Start,
		EndTime:    f.End,
		Site:       &f.Site,
		Note:       &f.Note,
	})
	if err != nil {
		h.renderOverview(c, f.View, f.Back, apperr.BodyOf(err).Message)
		return
	}
	c.Redirect(http.StatusSeeOther, overviewURL(f.View, f.Back))
}

func (h *Handler) DeleteDay(c *gin.Context) {
	id := c.PostForm("id")
	view, back := c.PostForm("view"), c.PostForm("back")
	if err := h.WorkDays.Delete(c.Request.Context(), id); err != nil {
		h.renderOverview(c, view, back, apperr.BodyOf(err).Message)
		return
	}
	c.Redirect(http.StatusSeeOther, overviewURL(view, back))
}

type settingsPage struct {
	Nav   string
	Sites []sites.SiteResponse
	Error string
}

func (h *Handler) SettingsPage(c *gin.Context) {
	h.renderSettings(c, http.StatusOK, "")
}

func (h *Handler) renderSettings(c *gin.Context, status int, errMsg string) {
	list, err := h.Sites.List(c.Request.Context())
	if err != nil && errMsg == "" {
		errMsg = apperr.BodyOf(err).Message
		status = apperr.HTTPStatus(err)
	}
	c.HTML(status, "settings.html", settingsPage{Nav: "settings", Sites: list, Error: errMsg})
}

func (h *Handler) CreateSite(c *gin.Context) {
	_, _, err := h.Sites.FindOrCreate(c.Request.Context(), sites.CreateSiteRequest{Name: c.PostForm("name")})
	if err != nil {
		h.renderSettings(c, apperr.HTTPStatus(err), apperr.BodyOf(err).Message)
		return
	}
	c.Redirect(http.StatusSeeOther, "/instellingen")
}

func (h *Handler) DeleteSite(c *gin.Context) {
	err := h.Sites.Delete(c.Request.Context(), c.PostForm("id"))
	if err != nil {
		h.renderSettings(c, apperr.HTTPStatus(err), apperr.BodyOf(err).Message)
		return
	}
	c.Redirect(http.StatusSeeOther, "/instellingen")
}
