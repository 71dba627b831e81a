package http

import (
	"errors"
	"net/http"
	"strconv"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type DonorHandler struct {
	donorSvc service.DonorService
	renderer Renderer
	errs     *ErrorPages
}

func NewDonorHandler(donorSvc service.DonorService, renderer Renderer, errs *ErrorPages) *DonorHandler {
	return &DonorHandler{donorSvc: donorSvc, renderer: renderer, errs: errs}
}

func (h *DonorHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/Donors", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/Donors/Details/{id:[0-9]+}", h.Details).Methods(http.MethodGet)
	r.HandleFunc("/Donors/Create", h.CreateForm).Methods(http.MethodGet)
	r.HandleFunc("/Donors/Create", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/Donors/Edit/{id:[0-9]+}", h.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/Donors/Edit/{id:[0-9]+}", h.Edit).Methods(http.MethodPost)
	r.HandleFunc("/Donors/Delete/{id:[0-9]+}", h.DeleteForm).Methods(http.MethodGet)
	r.HandleFunc("/Donors/Delete/{id:[0-9]+}", h.Delete).Methods(http.MethodPost)
}

type donorFormView struct {
	Form   DonorForm
	Errors map[string]string
}

func (h *DonorHandler) Index(w http.ResponseWriter, r *http.Request) {
	donors, err := h.donorSvc.ListDonors(r.Context())
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "donors/index", donors); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonorHandler) Details(w http.ResponseWriter, r *http.Request) {
	donor, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "donors/details", donor); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonorHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "donors/create", donorFormView{}); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonorHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ferrs := parseDonorForm(r)
	if len(ferrs) > 0 {
		h.renderForm(w, r, "donors/create", form, ferrs)
		return
	}
	if err := h.donorSvc.CreateDonor(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/Donors", http.StatusFound)
}

func (h *DonorHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	donor, ok := h.fetch(w, r)
	if !ok {
		return
	}
	form := DonorForm{
		ID:            donor.ID,
		FirstName:     donor.FirstName,
		LastName:      donor.LastName,
		ContactNumber: donor.ContactNumber,
		Email:         donor.Email,
	}
	h.renderForm(w, r, "donors/edit", form, nil)
}

func (h *DonorHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	form, ferrs := parseDonorForm(r)
	if form.ID != id {
		h.errs.NotFound(w, r)
		return
	}
	if len(ferrs) > 0 {
		h.renderForm(w, r, "donors/edit", form, ferrs)
		return
	}
	if err := h.donorSvc.UpdateDonor(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/Donors", http.StatusFound)
}

func (h *DonorHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	donor, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "donors/delete", donor); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	// A donor with donations fails the RESTRICT constraint; that failure
	// propagates to the generic error page rather than cascading the ledger
	// away.
	if err := h.donorSvc.DeleteDonor(r.Context(), id); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/Donors", http.StatusFound)
}

func (h *DonorHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.Donor, bool) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return nil, false
	}
	donor, err := h.donorSvc.GetDonor(r.Context(), id)
	if err != nil {
		h.respondFetchError(w, r, err)
		return nil, false
	}
	return donor, true
}

func (h *DonorHandler) respondFetchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrNotFound) {
		h.errs.NotFound(w, r)
		return
	}
	h.errs.Internal(w, r, err)
}

func (h *DonorHandler) renderForm(w http.ResponseWriter, r *http.Request, view string, form DonorForm, ferrs map[string]string) {
	if err := h.renderer.Render(w, r, view, donorFormView{Form: form, Errors: ferrs}); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func idParam(r *http.Request) (int32, bool) {
	v, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int32(v), true
}
