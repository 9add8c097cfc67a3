// Package views renders the HTML pages of the client.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageLogin      = "login.html"
	PageCallback   = "callback.html"
	PageLoading    = "loading.html"
	PageCalendar   = "calendar.html"
	PageCreatePost = "create_post.html"
	PageNotFound   = "not_found.html"
	PageError      = "error.html"

	layoutFile = "layout.html"
)

// Page is what every template receives.
type Page struct {
	Title string
	UI    *UIState
	Data  interface{}
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"lower": strings.ToLower,
	}

	layout, err := template.New(layoutFile).Funcs(funcs).ParseFS(templatesFS, "templates/"+layoutFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing layout: %w", err)
	}

	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range names {
		base := strings.TrimPrefix(name, "templates/")
		if base == layoutFile {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templatesFS, name)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", base, err)
		}
		r.pages[base] = t
	}
	return r, nil
}

// Render writes page inside the layout with the given status.
func (r *Renderer) Render(c *fiber.Ctx, status int, page, title string, data interface{}) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutFile, Page{Title: title, UI: UI(c), Data: data}); err != nil {
		return fmt.Errorf("error rendering %s: %w", page, err)
	}

	c.Status(status)
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
