package portfolio

import (
	"io/fs"
	"strings"

	"github.com/mortenator/portfolio/routes"
)

// DefaultDescription is the site description used in meta tags and JSON-LD.
const DefaultDescription = "Danish founder and builder based in New York. Co-Founder of FlashDocs (acq. by Hebbia). Forbes 30 under 30. Ex-McKinsey, Ex-Google."

// SiteConfig holds all configuration for the site server.
type SiteConfig struct {
	Name        string // Site name (default "Morten Bruun")
	URL         string // Canonical URL (default routes.DefaultSiteURL)
	Description string // Site description for meta tags (default DefaultDescription)
	Author      string

	Addr       string // Listen address (default ":3000")
	ContentDir string // Blog content root (default "app/blog")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Morten Bruun"
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	if c.URL == "" {
		c.URL = routes.DefaultSiteURL
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = routes.DefaultContentDir
	}
}

// RouteConfig returns the discovery configuration for c with defaults applied.
func (c SiteConfig) RouteConfig() routes.Config {
	c.setDefaults()
	cfg := routes.DefaultConfig()
	cfg.SiteURL = c.URL
	cfg.ContentDir = c.ContentDir
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory holding the prebuilt site (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentFS discovers blog entries in fsys instead of Config.ContentDir.
// fsys must be rooted at the content directory.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
