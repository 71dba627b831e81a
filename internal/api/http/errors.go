package http

import (
	"net/http"

	"relief-backoffice/internal/logger"
)

// ErrorPages renders the terminal error responses. In development the
// internal page carries the underlying failure; production gets a generic
// page only.
type ErrorPages struct {
	renderer    Renderer
	development bool
}

func NewErrorPages(renderer Renderer, development bool) *ErrorPages {
	return &ErrorPages{renderer: renderer, development: development}
}

func (e *ErrorPages) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := e.renderer.Render(w, r, "error/404", nil); err != nil {
		logger.Error("Failed to render not-found page", "error", err)
	}
}

func (e *ErrorPages) Internal(w http.ResponseWriter, r *http.Request, cause error) {
	logger.Error("Request failed", "path", r.URL.Path, "method", r.Method, "error", cause)
	detail := ""
	if e.development && cause != nil {
		detail = cause.Error()
	}
	w.WriteHeader(http.StatusInternalServerError)
	if err := e.renderer.Render(w, r, "error/500", detail); err != nil {
		logger.Error("Failed to render error page", "error", err)
	}
}

// Recover converts a panicking request into the generic error page instead of
// tearing down the connection without a response.
func (e *ErrorPages) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic in request handler", "path", r.URL.Path, "panic", rec)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
