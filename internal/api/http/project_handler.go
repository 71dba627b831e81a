package http

import (
	"errors"
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	projectSvc service.ProjectService
	userSvc    service.UserService
	renderer   Renderer
	errs       *ErrorPages
}

func NewProjectHandler(projectSvc service.ProjectService, userSvc service.UserService, renderer Renderer, errs *ErrorPages) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc, userSvc: userSvc, renderer: renderer, errs: errs}
}

func (h *ProjectHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/ReliefProjects", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/ReliefProjects/Details/{id:[0-9]+}", h.Details).Methods(http.MethodGet)
	r.HandleFunc("/ReliefProjects/Create", h.CreateForm).Methods(http.MethodGet)
	r.HandleFunc("/ReliefProjects/Create", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/ReliefProjects/Edit/{id:[0-9]+}", h.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/ReliefProjects/Edit/{id:[0-9]+}", h.Edit).Methods(http.MethodPost)
	r.HandleFunc("/ReliefProjects/Delete/{id:[0-9]+}", h.DeleteForm).Methods(http.MethodGet)
	r.HandleFunc("/ReliefProjects/Delete/{id:[0-9]+}", h.Delete).Methods(http.MethodPost)
}

type projectFormView struct {
	Form   ProjectForm
	Errors map[string]string
	Users  []domain.User
}

func (h *ProjectHandler) Index(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.ListProjects(r.Context())
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "projects/index", projects); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *ProjectHandler) Details(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "projects/details", project); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *ProjectHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "projects/create", ProjectForm{}, nil)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ferrs := parseProjectForm(r)
	if len(ferrs) > 0 {
		h.renderForm(w, r, "projects/create", form, ferrs)
		return
	}
	if err := h.projectSvc.CreateProject(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/ReliefProjects", http.StatusFound)
}

func (h *ProjectHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetch(w, r)
	if !ok {
		return
	}
	form := ProjectForm{
		ID:            project.ID,
		Title:         project.Title,
		Location:      project.Location,
		Description:   project.Description,
		Status:        string(project.Status),
		StartDate:     project.StartDate.Format(dateLayout),
		CoordinatorID: project.CoordinatorID,
	}
	if project.EndDate != nil {
		form.EndDate = project.EndDate.Format(dateLayout)
	}
	h.renderForm(w, r, "projects/edit", form, nil)
}

func (h *ProjectHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	form, ferrs := parseProjectForm(r)
	if form.ID != id {
		h.errs.NotFound(w, r)
		return
	}
	if len(ferrs) > 0 {
		h.renderForm(w, r, "projects/edit", form, ferrs)
		return
	}
	// Any status may follow any other; completion does not imply an end date.
	if err := h.projectSvc.UpdateProject(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/ReliefProjects", http.StatusFound)
}

func (h *ProjectHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "projects/delete", project); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	if err := h.projectSvc.DeleteProject(r.Context(), id); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/ReliefProjects", http.StatusFound)
}

func (h *ProjectHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.ReliefProject, bool) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return nil, false
	}
	project, err := h.projectSvc.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errs.NotFound(w, r)
		} else {
			h.errs.Internal(w, r, err)
		}
		return nil, false
	}
	return project, true
}

func (h *ProjectHandler) renderForm(w http.ResponseWriter, r *http.Request, view string, form ProjectForm, ferrs map[string]string) {
	users, err := h.userSvc.ListUsers(r.Context())
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	data := projectFormView{Form: form, Errors: ferrs, Users: users}
	if err := h.renderer.Render(w, r, view, data); err != nil {
		h.errs.Internal(w, r, err)
	}
}
