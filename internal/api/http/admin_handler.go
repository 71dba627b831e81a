package http

import (
	"errors"
	"fmt"
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler is the administrator review surface over incident reports.
// Routing mounts it behind RequireRole(RoleAdministrator).
type AdminHandler struct {
	adminSvc service.AdminService
	renderer Renderer
	flash    *FlashStore
	errs     *ErrorPages
}

func NewAdminHandler(adminSvc service.AdminService, renderer Renderer, flash *FlashStore, errs *ErrorPages) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, renderer: renderer, flash: flash, errs: errs}
}

func (h *AdminHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/EditIncidentReport/{id:[0-9]+}", h.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/EditIncidentReport/{id:[0-9]+}", h.Edit).Methods(http.MethodPost)
	r.HandleFunc("/DeleteIncidentReport/{id:[0-9]+}", h.DeleteForm).Methods(http.MethodGet)
	r.HandleFunc("/DeleteIncidentReport/{id:[0-9]+}", h.Delete).Methods(http.MethodPost)
}

type adminIndexView struct {
	Reports []domain.IncidentReport
	Success string
}

// adminReviewView pairs the editable field set with the read-only context the
// reviewer sees alongside it.
type adminReviewView struct {
	Form          AdminReviewForm
	Errors        map[string]string
	Title         string
	Location      string
	ReporterEmail string
	Timestamp     string
}

func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	reports, err := h.adminSvc.ListAllReports(r.Context())
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	success, _ := h.flash.Consume(w, r)
	view := adminIndexView{Reports: reports, Success: success}
	if err := h.renderer.Render(w, r, "admin/index", view); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *AdminHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	report, ok := h.fetch(w, r)
	if !ok {
		return
	}
	view := reviewViewFor(report)
	view.Form = AdminReviewForm{
		ReportID:    report.ID,
		Status:      string(report.Status),
		Severity:    string(report.Severity),
		Description: report.Description,
	}
	if err := h.renderer.Render(w, r, "admin/edit", view); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	form, ferrs := parseAdminReviewForm(r)
	if form.ReportID != id {
		h.errs.NotFound(w, r)
		return
	}
	if len(ferrs) > 0 {
		// Re-fetch to restore the read-only context lost in the round trip.
		report, ok := h.fetch(w, r)
		if !ok {
			return
		}
		view := reviewViewFor(report)
		view.Form = form
		view.Errors = ferrs
		if err := h.renderer.Render(w, r, "admin/edit", view); err != nil {
			h.errs.Internal(w, r, err)
		}
		return
	}
	err := h.adminSvc.UpdateReview(r.Context(), id, domain.IncidentStatus(form.Status), domain.IncidentSeverity(form.Severity), form.Description)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errs.NotFound(w, r)
		} else {
			h.errs.Internal(w, r, err)
		}
		return
	}
	h.flash.SetSuccess(w, r, fmt.Sprintf("Incident Report #%d successfully updated.", id))
	http.Redirect(w, r, "/Admin", http.StatusFound)
}

func (h *AdminHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	report, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "admin/delete", report); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	// An already-deleted report is a silent no-op; the acknowledgment is only
	// shown when a row was actually removed.
	_, err := h.adminSvc.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Redirect(w, r, "/Admin", http.StatusFound)
			return
		}
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.adminSvc.DeleteReport(r.Context(), id); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	h.flash.SetSuccess(w, r, fmt.Sprintf("Incident Report #%d successfully deleted.", id))
	http.Redirect(w, r, "/Admin", http.StatusFound)
}

func (h *AdminHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.IncidentReport, bool) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return nil, false
	}
	report, err := h.adminSvc.GetReport(r.Context(), id)
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

func reviewViewFor(report *domain.IncidentReport) adminReviewView {
	view := adminReviewView{
		Title:     report.Title,
		Location:  report.Location,
		Timestamp: report.Timestamp.Format("2006-01-02 15:04"),
	}
	if report.ReportedBy != nil {
		view.ReporterEmail = report.ReportedBy.Email
	}
	return view
}
