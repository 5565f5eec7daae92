package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "workhours/docs"
	"workhours/internal/hours"
	"workhours/internal/overview"
	"workhours/internal/platform/config"
	"workhours/internal/platform/db"
	"workhours/internal/platform/httpx"
	"workhours/internal/sites"
	"workhours/internal/web"
	"workhours/internal/workdays"
)

// App owns the database handle and the services built on it.
type App struct {
	cfg      *config.Config
	handle   *db.Handle
	workDays *workdays.Service
	sites    *sites.Service
	overview *overview.Service
}

func targetsFrom(h config.HoursConfig) (hours.Targets, error) {
	policy, err := hours.ParseMonthPolicy(h.MonthPolicy)
	if err != nil {
		return hours.Targets{}, err
	}
	return hours.Targets{Weekly: h.WeeklyTarget, Monthly: h.MonthlyTarget, MonthPolicy: policy}, nil
}

// NewApp connects to the configured store and brings its schema up to date.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	targets, err := targetsFrom(cfg.Hours)
	if err != nil {
		return nil, err
	}

	h, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := h.Migrate(ctx); err != nil {
		_ = h.Close(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Printf("[INFO] connected to DB: %s", h.Name())

	var (
		wdStore   workdays.Store
		siteStore sites.Store
	)
	if h.Mongo != nil {
		wdStore, siteStore = workdays.NewMongoStore(h.Mongo), sites.NewMongoStore(h.Mongo)
	} else {
		wdStore, siteStore = workdays.NewSQLStore(h.SQL), sites.NewSQLStore(h.SQL)
	}

	wd := workdays.NewService(wdStore, cfg.Hours.BreakMinutes)
	return &App{
		cfg:      cfg,
		handle:   h,
		workDays: wd,
		sites:    sites.NewService(siteStore),
		overview: overview.NewService(wd, targets),
	}, nil
}

func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.handle.Close(ctx); err != nil {
		log.Printf("[WARN] close db: %v", err)
	}
}

func (a *App) Router() (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if a.cfg.Mode == config.ModeDev {
		// CORS for a separately served frontend during development
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	workdays.RegisterRoutes(api, a.workDays)
	sites.RegisterRoutes(api, a.sites)
	overview.RegisterRoutes(api, a.overview)

	err := web.Register(r, web.Deps{
		WorkDays:     a.workDays,
		Sites:        a.sites,
		Overview:     a.overview,
		BreakMinutes: a.cfg.Hours.BreakMinutes,
	})
	if err != nil {
		return nil, err
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, httpx.Message{Message: "Not found"})
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	})
	return r, nil
}

// Serve runs the HTTP server until ctx is cancelled, then drains it.
func (a *App) Serve(ctx context.Context) error {
	r, err := a.Router()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		var err error
		if a.cfg.Server.Cert != "" && a.cfg.Server.Key != "" {
			log.Printf("[INFO] listening on https://%s", a.cfg.Server.Addr)
			err = srv.ListenAndServeTLS(a.cfg.Server.Cert, a.cfg.Server.Key)
		} else {
			log.Printf("[INFO] listening on http://%s", a.cfg.Server.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("[INFO] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
