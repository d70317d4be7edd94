// Package routes discovers published blog entries in a content directory and
// expands them, together with a fixed set of static paths, into the absolute
// timestamped URLs that make up the site's sitemap.
//
// A content entry is any directory holding the content-index file
// (page.mdx by default). The entry's slug is that directory's path relative
// to the content root, always slash-separated.
package routes

import (
	"encoding/json"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path"
	"time"
)

const (
	DefaultSiteURL    = "https://mortenbbruun.com"
	DefaultBlogPath   = "/blog"
	DefaultIndexFile  = "page.mdx"
	DefaultContentDir = "app/blog"
)

// TimeFormat is the ISO-8601 layout used for lastModified values.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config describes where content lives and how slugs become URLs.
// It is passed by value and never mutated by this package.
type Config struct {
	SiteURL     string   // base URL, no trailing slash
	BlogPath    string   // prefix for blog entries, e.g. "/blog"
	IndexFile   string   // filename that marks a directory as an entry
	ContentDir  string   // content root, relative to the working directory
	StaticPaths []string // non-content paths always present, "" is the root

	Logger *slog.Logger
}

// DefaultConfig returns the site's built-in configuration.
func DefaultConfig() Config {
	return Config{
		SiteURL:     DefaultSiteURL,
		BlogPath:    DefaultBlogPath,
		IndexFile:   DefaultIndexFile,
		ContentDir:  DefaultContentDir,
		StaticPaths: []string{""},
	}
}

// Route is a single sitemap record.
type Route struct {
	URL          string
	LastModified time.Time
}

// Timestamp renders LastModified in UTC with millisecond precision.
func (r Route) Timestamp() string {
	return r.LastModified.UTC().Format(TimeFormat)
}

// MarshalJSON encodes r as {"url": ..., "lastModified": ...}.
func (r Route) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		URL          string `json:"url"`
		LastModified string `json:"lastModified"`
	}{r.URL, r.Timestamp()})
}

// Slugs returns the slugs of every regular file named indexFile beneath the
// root of fsys, in lexical walk order. Each range over the sequence walks the
// tree again.
//
// A missing or unreadable root yields nothing. Unreadable subdirectories are
// skipped. Symlinks are neither followed nor treated as entries.
func Slugs(fsys fs.FS, indexFile string) iter.Seq[string] {
	return slugs(fsys, indexFile, slog.Default())
}

func slugs(fsys fs.FS, indexFile string, logger *slog.Logger) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug("skipping unreadable content path", slog.String("path", p), slog.Any("error", err))
				return fs.SkipDir
			}
			if !d.Type().IsRegular() || d.Name() != indexFile {
				return nil
			}
			slug := path.Dir(p)
			if slug == "." {
				slug = ""
			}
			if !yield(slug) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// Slugs walks c.ContentDir on the local filesystem.
func (c Config) Slugs() iter.Seq[string] {
	return slugs(os.DirFS(c.ContentDir), c.IndexFile, c.logger())
}

// PostURL maps a slug to its absolute URL. The empty slug is the blog root.
func (c Config) PostURL(slug string) string {
	if slug == "" {
		return c.SiteURL + c.BlogPath
	}
	return c.SiteURL + c.BlogPath + "/" + slug
}

// StaticURL maps a static path to its absolute URL.
func (c Config) StaticURL(p string) string {
	return c.SiteURL + p
}

// Routes builds the full route set from c.ContentDir, stamping every record
// with now.
func (c Config) Routes(now time.Time) []Route {
	return c.build(c.Slugs(), now)
}

// RoutesFS is Routes over an arbitrary filesystem rooted at the content
// directory.
func (c Config) RoutesFS(fsys fs.FS, now time.Time) []Route {
	return c.build(slugs(fsys, c.IndexFile, c.logger()), now)
}

func (c Config) build(seq iter.Seq[string], now time.Time) []Route {
	out := make([]Route, 0, len(c.StaticPaths))
	for _, p := range c.StaticPaths {
		out = append(out, Route{URL: c.StaticURL(p), LastModified: now})
	}
	for slug := range seq {
		out = append(out, Route{URL: c.PostURL(slug), LastModified: now})
	}
	return out
}

// Log returns c.Logger, or slog.Default when unset.
func (c Config) Log() *slog.Logger {
	return c.logger()
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
