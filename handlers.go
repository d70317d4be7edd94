package portfolio

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/mortenator/portfolio/routes"
	"github.com/mortenator/portfolio/views"
)

func (a *App) handleBlogIndex(c echo.Context) error {
	cfg := a.RouteConfig()
	seq := cfg.Slugs()
	if a.contentFS != nil {
		seq = routes.Slugs(a.contentFS, cfg.IndexFile)
	}
	var entries []views.Entry
	for slug := range seq {
		entries = append(entries, views.Entry{
			Title: views.EntryTitle(slug),
			URL:   cfg.PostURL(slug),
		})
	}
	site := views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
	return Render(c, a.Views.BlogIndex(site, entries))
}

// handleBlogPage serves an exported post page for a slug URL without a
// trailing slash: <static>/blog/<slug>.html or <static>/blog/<slug>/index.html.
// Directories are never redirected, so every sitemap <loc> answers 200.
func (a *App) handleBlogPage(c echo.Context) error {
	rel := path.Clean("/" + c.Param("*"))
	if rel == "/" {
		return a.handleBlogIndex(c)
	}
	base := filepath.Join(a.staticDir, "blog", filepath.FromSlash(rel))
	for _, candidate := range []string{base, base + ".html", filepath.Join(base, "index.html")} {
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			return c.File(candidate)
		}
	}
	return echo.ErrNotFound
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		renderErrorPage(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		renderErrorPage(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
