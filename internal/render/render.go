// Package render emits markup for a projected dashboard.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Houeta/shelf-watch/internal/accordion"
	"github.com/Houeta/shelf-watch/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Stylesheet is the page stylesheet served under /static/style.css.
//
//go:embed templates/style.css
var Stylesheet []byte

// Renderer holds the parsed page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Dashboard writes the dashboard page. Referenced panels are opened through
// the accordion coordinator before the markup is written.
func (r *Renderer) Dashboard(w io.Writer, view *models.DashboardView, open ...accordion.Ref) error {
	if len(open) == 0 {
		if err := r.tmpl.ExecuteTemplate(w, "dashboard", view); err != nil {
			return fmt.Errorf("failed to execute dashboard template: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "dashboard", view); err != nil {
		return fmt.Errorf("failed to execute dashboard template: %w", err)
	}

	return accordion.OpenInMarkup(&buf, w, open...)
}

// Failure writes the single failure page.
func (r *Renderer) Failure(w io.Writer, message string) error {
	if err := r.tmpl.ExecuteTemplate(w, "failure", struct{ Message string }{message}); err != nil {
		return fmt.Errorf("failed to execute failure template: %w", err)
	}

	return nil
}
