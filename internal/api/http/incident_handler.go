package http

import (
	"errors"
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// IncidentHandler is the public-facing intake surface. Every action requires
// an authenticated principal; anonymous callers are redirected to the login
// entry point rather than rejected.
type IncidentHandler struct {
	incidentSvc service.IncidentService
	auth        *AuthMiddleware
	renderer    Renderer
	errs        *ErrorPages
}

func NewIncidentHandler(incidentSvc service.IncidentService, auth *AuthMiddleware, renderer Renderer, errs *ErrorPages) *IncidentHandler {
	return &IncidentHandler{incidentSvc: incidentSvc, auth: auth, renderer: renderer, errs: errs}
}

func (h *IncidentHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/IncidentReports", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/IncidentReports/Details/{id:[0-9]+}", h.Details).Methods(http.MethodGet)
	r.HandleFunc("/IncidentReports/Create", h.CreateForm).Methods(http.MethodGet)
	r.HandleFunc("/IncidentReports/Create", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/IncidentReports/Edit/{id:[0-9]+}", h.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/IncidentReports/Edit/{id:[0-9]+}", h.Edit).Methods(http.MethodPost)
	r.HandleFunc("/IncidentReports/Delete/{id:[0-9]+}", h.DeleteForm).Methods(http.MethodGet)
	r.HandleFunc("/IncidentReports/Delete/{id:[0-9]+}", h.Delete).Methods(http.MethodPost)
}

type incidentCreateView struct {
	Form   IncidentCreateForm
	Errors map[string]string
}

type incidentEditView struct {
	Form   IncidentEditForm
	Errors map[string]string
}

func (h *IncidentHandler) Index(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	reports, err := h.incidentSvc.ListMyReports(r.Context(), principal.UserID)
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "incidents/index", reports); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *IncidentHandler) Details(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requirePrincipal(w, r); !ok {
		return
	}
	report, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "incidents/details", report); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *IncidentHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requirePrincipal(w, r); !ok {
		return
	}
	if err := h.renderer.Render(w, r, "incidents/create", incidentCreateView{}); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *IncidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.requirePrincipal(w, r)
	if !ok {
		return
	}
	form, ferrs := parseIncidentCreateForm(r)
	if len(ferrs) > 0 {
		view := incidentCreateView{Form: form, Errors: ferrs}
		if err := h.renderer.Render(w, r, "incidents/create", view); err != nil {
			h.errs.Internal(w, r, err)
		}
		return
	}
	// The reporter, timestamp, and initial status come from the server side
	// only; the form cannot supply them.
	_, err := h.incidentSvc.CreateReport(r.Context(), principal.UserID, form.Title, form.Location, form.Description, domain.IncidentSeverity(form.Severity))
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/IncidentReports", http.StatusFound)
}

func (h *IncidentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requirePrincipal(w, r); !ok {
		return
	}
	report, ok := h.fetch(w, r)
	if !ok {
		return
	}
	form := IncidentEditForm{
		ID:          report.ID,
		Title:       report.Title,
		Location:    report.Location,
		Description: report.Description,
		Severity:    string(report.Severity),
		Status:      string(report.Status),
	}
	if err := h.renderer.Render(w, r, "incidents/edit", incidentEditView{Form: form}); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *IncidentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requirePrincipal(w, r); !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	form, ferrs := parseIncidentEditForm(r)
	if form.ID != id {
		h.errs.NotFound(w, r)
		return
	}
	if len(ferrs) > 0 {
		view := incidentEditView{Form: form, Errors: ferrs}
		if err := h.renderer.Render(w, r, "incidents/edit", view); err != nil {
			h.errs.Internal(w, r, err)
		}
		return
	}
	if err := h.incidentSvc.UpdateReport(r.Context(), form.ToDomain()); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errs.NotFound(w, r)
		} else {
			h.errs.Internal(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/IncidentReports", http.StatusFound)
}

func (h *IncidentHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requirePrincipal(w, r); !ok {
		return
	}
	report, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "incidents/delete", report); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *IncidentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requirePrincipal(w, r); !ok {
		return
	}
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	if err := h.incidentSvc.DeleteReport(r.Context(), id); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/IncidentReports", http.StatusFound)
}

func (h *IncidentHandler) requirePrincipal(w http.ResponseWriter, r *http.Request) (*domain.Principal, bool) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.auth.RedirectToLogin(w, r)
		return nil, false
	}
	return principal, true
}

func (h *IncidentHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.IncidentReport, bool) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return nil, false
	}
	report, err := h.incidentSvc.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errs.NotFound(w, r)
		} else {
			h.errs.Internal(w, r, err)
		}
		return nil, false
	}
	return report, true
}
