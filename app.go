// Package portfolio serves a personal portfolio and blog: a prebuilt static
// site plus the machine-readable routes derived from the blog's content
// directory (sitemap.xml, sitemap.json, robots.txt).
//
// Blog entries are never stored. Every sitemap request walks the content
// directory again, so new posts appear as soon as their page.mdx exists.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/mortenator/portfolio/routes"
	"github.com/mortenator/portfolio/views"
)

// ViewFuncs holds the templ components the server renders. Nil fields fall
// back to the defaults in package views.
type ViewFuncs struct {
	BlogIndex   func(site views.Site, entries []views.Entry) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.BlogIndex == nil {
		v.BlogIndex = views.BlogIndex
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App wires the route builder, handlers, middleware and views together.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Views  ViewFuncs

	metrics      *siteMetrics
	customRoutes []func(*App)
	staticDir    string
	contentFS    fs.FS
}

// New creates an App with the given configuration and views. Routes and
// middleware are registered immediately, so the App is ready to serve
// through a.Echo without calling Start.
func New(cfg SiteConfig, vf ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	vf.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     vf,
		metrics:   newSiteMetrics(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// RouteConfig returns the discovery configuration derived from the site
// settings.
func (a *App) RouteConfig() routes.Config {
	return a.Config.RouteConfig()
}

// Start listens on Config.Addr until the server is shut down.
func (a *App) Start() error {
	if _, err := os.Stat(a.Config.ContentDir); err != nil && a.contentFS == nil {
		a.Echo.Logger.Warnf("content directory %s unavailable, sitemap will list static routes only: %v", a.Config.ContentDir, err)
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("portfolio: start server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/sitemap.json", a.handleSitemapJSON)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/metrics", a.metrics.handler())

	e.GET("/blog", a.handleBlogIndex)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/*", a.handleBlogPage)

	// The prebuilt site: homepage, blog pages, fonts and styles.
	e.Static("/", a.staticDir)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
