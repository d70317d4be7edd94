package portfolio

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mortenator/portfolio/routes"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap encodes rs as a sitemaps.org urlset document.
func WriteSitemap(w io.Writer, rs []routes.Route) error {
	urls := make([]sitemapURL, 0, len(rs))
	for _, r := range rs {
		urls = append(urls, sitemapURL{Loc: r.URL, LastMod: r.Timestamp()})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemapURLSet{XMLNS: sitemapNS, URLs: urls}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteRoutesJSON writes rs as an indented JSON array of {url, lastModified}.
func WriteRoutesJSON(w io.Writer, rs []routes.Route) error {
	if rs == nil {
		rs = []routes.Route{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs)
}

// WriteRobots writes a robots.txt allowing everything and pointing crawlers
// at the sitemap.
func WriteRobots(w io.Writer, siteURL string) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", siteURL)
	return err
}

// currentRoutes recomputes the route set. Nothing is cached: content may
// change between requests.
func (a *App) currentRoutes() []routes.Route {
	cfg := a.RouteConfig()
	var rs []routes.Route
	if a.contentFS != nil {
		rs = cfg.RoutesFS(a.contentFS, time.Now())
	} else {
		rs = cfg.Routes(time.Now())
	}
	a.metrics.observe(len(rs) - len(cfg.StaticPaths))
	return rs
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.currentRoutes())
}

func (a *App) handleSitemapJSON(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return WriteRoutesJSON(c.Response(), a.currentRoutes())
}

func (a *App) handleRobots(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return WriteRobots(c.Response(), a.Config.URL)
}
