package http

import (
	"errors"
	"fmt"
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

type DonationHandler struct {
	donationSvc service.DonationService
	donorSvc    service.DonorService
	userSvc     service.UserService
	projectSvc  service.ProjectService
	renderer    Renderer
	flash       *FlashStore
	errs        *ErrorPages
}

func NewDonationHandler(
	donationSvc service.DonationService,
	donorSvc service.DonorService,
	userSvc service.UserService,
	projectSvc service.ProjectService,
	renderer Renderer,
	flash *FlashStore,
	errs *ErrorPages,
) *DonationHandler {
	return &DonationHandler{
		donationSvc: donationSvc,
		donorSvc:    donorSvc,
		userSvc:     userSvc,
		projectSvc:  projectSvc,
		renderer:    renderer,
		flash:       flash,
		errs:        errs,
	}
}

func (h *DonationHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/Donations", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/Donations/Details/{id:[0-9]+}", h.Details).Methods(http.MethodGet)
	r.HandleFunc("/Donations/Create", h.CreateForm).Methods(http.MethodGet)
	r.HandleFunc("/Donations/Create", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/Donations/Edit/{id:[0-9]+}", h.EditForm).Methods(http.MethodGet)
	r.HandleFunc("/Donations/Edit/{id:[0-9]+}", h.Edit).Methods(http.MethodPost)
	r.HandleFunc("/Donations/Delete/{id:[0-9]+}", h.DeleteForm).Methods(http.MethodGet)
	r.HandleFunc("/Donations/Delete/{id:[0-9]+}", h.Delete).Methods(http.MethodPost)
}

// donationFormView carries the form plus the reference pickers the view
// renders as dropdowns.
type donationFormView struct {
	Form     DonationForm
	Errors   map[string]string
	Donors   []domain.Donor
	Users    []domain.User
	Projects []domain.ReliefProject
}

type donationDeleteView struct {
	Donation *domain.Donation
	Error    string
}

func (h *DonationHandler) Index(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationSvc.ListDonations(r.Context())
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "donations/index", donations); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonationHandler) Details(w http.ResponseWriter, r *http.Request) {
	donation, ok := h.fetch(w, r)
	if !ok {
		return
	}
	if err := h.renderer.Render(w, r, "donations/details", donation); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonationHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "donations/create", DonationForm{}, nil)
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ferrs := parseDonationForm(r)
	if len(ferrs) > 0 {
		h.renderForm(w, r, "donations/create", form, ferrs)
		return
	}
	if err := h.donationSvc.CreateDonation(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/Donations", http.StatusFound)
}

func (h *DonationHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	donation, ok := h.fetch(w, r)
	if !ok {
		return
	}
	form := DonationForm{
		ID:               donation.ID,
		Type:             string(donation.Type),
		Amount:           fmt.Sprintf("%d.%02d", donation.AmountCents/100, donation.AmountCents%100),
		Description:      donation.Description,
		DateReceived:     donation.DateReceived.Format(dateLayout),
		Status:           string(donation.Status),
		DonorID:          donation.DonorID,
		RecordedByUserID: donation.RecordedByUserID,
	}
	if donation.ProjectID != nil {
		form.ProjectID = fmt.Sprintf("%d", *donation.ProjectID)
	}
	h.renderForm(w, r, "donations/edit", form, nil)
}

func (h *DonationHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	form, ferrs := parseDonationForm(r)
	if form.ID != id {
		h.errs.NotFound(w, r)
		return
	}
	if len(ferrs) > 0 {
		h.renderForm(w, r, "donations/edit", form, ferrs)
		return
	}
	if err := h.donationSvc.UpdateDonation(r.Context(), form.ToDomain()); err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/Donations", http.StatusFound)
}

func (h *DonationHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	donation, ok := h.fetch(w, r)
	if !ok {
		return
	}
	_, errMsg := h.flash.Consume(w, r)
	view := donationDeleteView{Donation: donation, Error: errMsg}
	if err := h.renderer.Render(w, r, "donations/delete", view); err != nil {
		h.errs.Internal(w, r, err)
	}
}

func (h *DonationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return
	}
	if err := h.donationSvc.DeleteDonation(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrRestricted) {
			// Surfaced on the confirmation view, not the generic error page.
			h.flash.SetError(w, r, "The donation could not be deleted because other records still reference it.")
			http.Redirect(w, r, fmt.Sprintf("/Donations/Delete/%d", id), http.StatusFound)
			return
		}
		h.errs.Internal(w, r, err)
		return
	}
	http.Redirect(w, r, "/Donations", http.StatusFound)
}

func (h *DonationHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.Donation, bool) {
	id, ok := idParam(r)
	if !ok {
		h.errs.NotFound(w, r)
		return nil, false
	}
	donation, err := h.donationSvc.GetDonation(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.errs.NotFound(w, r)
		} else {
			h.errs.Internal(w, r, err)
		}
		return nil, false
	}
	return donation, true
}

func (h *DonationHandler) renderForm(w http.ResponseWriter, r *http.Request, view string, form DonationForm, ferrs map[string]string) {
	ctx := r.Context()
	donors, err := h.donorSvc.ListDonors(ctx)
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
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
	data := donationFormView{
		Form:     form,
		Errors:   ferrs,
		Donors:   donors,
		Users:    users,
		Projects: projects,
	}
	if err := h.renderer.Render(w, r, view, data); err != nil {
		h.errs.Internal(w, r, err)
	}
}
