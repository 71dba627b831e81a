package http

import (
	"errors"
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
	userSvc       service.UserService
	projectSvc    service.ProjectService
	renderer      Renderer
	errs          *ErrorPages
}

func NewAssignmentHandler(assignmentSvc service.AssignmentService, userSvc service.UserService, projectSvc service.ProjectService, renderer Renderer, errs *ErrorPages) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentSvc: assignmentSvc,
		userSvc:       userSvc,
		projectSvc:    projectSvc,
		renderer:      renderer,
		errs:          errs,
	}
}

func (h *AssignmentHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/VolunteerAssignments", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/VolunteerAssignments/Details/{id:[0-9]+}", h.Details).Methods(http.MethodGet)
	r.HandleFunc("/VolunteerAssignments/Create", h.CreateForm).Methods(http.MethodGet)
	r.HandleFunc("/VolunteerAssignments/Create", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/VolunteerAssignments/Edit/{id:[0-9]+}", h.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/VolunteerAssignments/Edit/{id:[0-9]+}", h.Edit).Methods(http.MethodPost)
	r.HandleFunc("/VolunteerAssignments/Delete/{id:[0-9]+}", h.DeleteForm).Methods(http.MethodGet)
	r.HandleFunc("/VolunteerAssignments/Delete/{id:[0-9]+}", h.Delete).Methods(http.MethodPost)
}

type assignmentFormView struct {
	Form     AssignmentForm
	Errors   map[string]string
	Users    []domain.User
	Projects []domain.ReliefProject
}

func (h *AssignmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentSvc.ListAssignments(r.Context())
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "assignments/index", assignments); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *AssignmentHandler) Details(w http.ResponseWriter, r *http.Request) {
	assignment, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "assignments/details", assignment); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *AssignmentHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "assignments/create", AssignmentForm{}, nil)
}

func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ferrs := parseAssignmentForm(r)
	if len(ferrs) > 0 {
		h.renderForm(w, r, "assignments/create", form, ferrs)
		return
	}
	// An empty assigned date is filled with the current time by the service.
	if err := h.assignmentSvc.CreateAssignment(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/VolunteerAssignments", http.StatusFound)
}

func (h *AssignmentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	assignment, ok := h.fetch(w, r)
	if !ok {
		return
	}
	form := AssignmentForm{
		ID:           assignment.ID,
		Role:         string(assignment.Role),
		Status:       string(assignment.Status),
		AssignedDate: assignment.AssignedDate.Format(dateLayout),
		UserID:       assignment.UserID,
		ProjectID:    assignment.ProjectID,
	}
	h.renderForm(w, r, "assignments/edit", form, nil)
}

func (h *AssignmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	form, ferrs := parseAssignmentForm(r)
	if form.ID != id {
		h.errs.NotFound(w, r)
		return
	}
	if len(ferrs) > 0 {
		h.renderForm(w, r, "assignments/edit", form, ferrs)
		return
	}
	if err := h.assignmentSvc.UpdateAssignment(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/VolunteerAssignments", http.StatusFound)
}

func (h *AssignmentHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	assignment, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "assignments/delete", assignment); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	if err := h.assignmentSvc.DeleteAssignment(r.Context(), id); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/VolunteerAssignments", http.StatusFound)
}

func (h *AssignmentHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.VolunteerAssignment, bool) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return nil, false
	}
	assignment, err := h.assignmentSvc.GetAssignment(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errs.NotFound(w, r)
		} else {
			h.errs.Internal(w, r, err)
		}
		return nil, false
	}
	return assignment, true
}

func (h *AssignmentHandler) renderForm(w http.ResponseWriter, r *http.Request, view string, form AssignmentForm, ferrs map[string]string) {
	ctx := r.Context()
	users, err := h.userSvc.ListUsers(ctx)
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	projects, err := h.projectSvc.ListProjectsByTitle(ctx)
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	data := assignmentFormView{Form: form, Errors: ferrs, Users: users, Projects: projects}
	if err := h.renderer.Render(w, r, view, data); err != nil {
		h.errs.Internal(w, r, err)
	}
}
