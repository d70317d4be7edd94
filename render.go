package portfolio

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a view as an HTTP 200 HTML page.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus renders cmp into a buffer and only then commits the response,
// so a view that fails halfway leaves the response untouched for the error
// handler.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// renderErrorPage writes one of the error views, falling back to plain text
// when the view itself fails.
func renderErrorPage(c echo.Context, code int, cmp templ.Component) {
	if err := RenderStatus(c, code, cmp); err != nil {
		c.Logger().Errorf("render %d page: %v", code, err)
		if !c.Response().Committed {
			_ = c.String(code, http.StatusText(code))
		}
	}
}
