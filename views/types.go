package views

// Site carries site-wide settings into page templates.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Entry is one discovered blog post as shown on the blog index.
type Entry struct {
	Title string
	URL   string
}
