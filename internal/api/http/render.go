package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"relief-backoffice/internal/domain"

	"github.com/gorilla/csrf"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer writes a named server-rendered view. Handlers depend on the
// interface so tests can swap in a stub.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, name string, data any) error
}

// page is the envelope every template receives.
type page struct {
	Data      any
	Principal *domain.Principal
	CSRFField template.HTML
}

type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
		"money": func(cents int64) string {
			return fmt.Sprintf("R %d.%02d", cents/100, cents%100)
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) error {
	principal, _ := PrincipalFromContext(r.Context())
	p := page{
		Data:      data,
		Principal: principal,
		CSRFField: csrf.TemplateField(r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.templates.ExecuteTemplate(w, name, p)
}
