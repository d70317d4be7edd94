package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// BlogIndex lists every discovered blog entry.
func BlogIndex(site Site, entries []Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, "Writing | "+site.Name, site.Description, site.URL+"/blog/")
		b.WriteString(`<script type="application/ld+json">`)
		b.WriteString(WebsiteJsonLD(site))
		b.WriteString("</script>\n</head>\n<body>\n<main>\n<article>\n<h1>Writing</h1>\n")
		if len(entries) == 0 {
			b.WriteString("<p>No posts yet.</p>\n")
		} else {
			b.WriteString("<ul>\n")
			for _, e := range entries {
				b.WriteString(`<li><a href="`)
				b.WriteString(templ.EscapeString(e.URL))
				b.WriteString(`">`)
				b.WriteString(templ.EscapeString(e.Title))
				b.WriteString("</a></li>\n")
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString(`<p><a href="/">Home</a></p>`)
		b.WriteString("\n</article>\n</main>\n</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// NotFound is the 404 page.
func NotFound() templ.Component {
	return errorPage("Not found", "The page you are looking for does not exist.")
}

// ServerError is the 5xx page.
func ServerError() templ.Component {
	return errorPage("Something went wrong", "Please try again in a moment.")
}

func errorPage(title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, title, "", "")
		b.WriteString("</head>\n<body>\n<main>\n<h1>")
		b.WriteString(templ.EscapeString(title))
		b.WriteString("</h1>\n<p>")
		b.WriteString(templ.EscapeString(message))
		b.WriteString("</p>\n<p><a href=\"/\">Home</a></p>\n</main>\n</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeHead opens the document up to, but not including, </head>.
func writeHead(b *strings.Builder, title, description, canonical string) {
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString("\n<title>")
	b.WriteString(templ.EscapeString(title))
	b.WriteString("</title>\n")
	if description != "" {
		b.WriteString(`<meta name="description" content="`)
		b.WriteString(templ.EscapeString(description))
		b.WriteString("\">\n")
	}
	if canonical != "" {
		b.WriteString(`<link rel="canonical" href="`)
		b.WriteString(templ.EscapeString(canonical))
		b.WriteString("\">\n")
	}
}
