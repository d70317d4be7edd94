package views

import (
	"encoding/json"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EntryTitle derives a display title from the last segment of a slug,
// e.g. "2024/hello-world" -> "Hello World". The empty slug is "Blog".
func EntryTitle(slug string) string {
	base := path.Base(slug)
	if slug == "" || base == "." || base == "/" {
		return "Blog"
	}
	parts := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	if len(parts) == 0 {
		return base
	}
	return strings.Join(parts, " ")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for site.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.URL,
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
