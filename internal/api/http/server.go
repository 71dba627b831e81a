package http

import (
	"net/http"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Users       service.UserService
	Donors      service.DonorService
	Donations   service.DonationService
	Projects    service.ProjectService
	Assignments service.AssignmentService
	Incidents   service.IncidentService
	Admin       service.AdminService

	Auth     *AuthMiddleware
	Flash    *FlashStore
	Renderer Renderer
	Errors   *ErrorPages
}

const homeRecentDonations = 5

// NewRouter builds the full route table. The admin subtree sits behind the
// administrator role check; everything else resolves authorization per action.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(deps.Errors.Recover)
	r.Use(deps.Auth.Attach)
	r.NotFoundHandler = deps.Auth.Attach(http.HandlerFunc(deps.Errors.NotFound))

	home := &HomeHandler{donationSvc: deps.Donations, renderer: deps.Renderer, errs: deps.Errors}
	r.HandleFunc("/", home.Index).Methods(http.MethodGet)

	NewDonorHandler(deps.Donors, deps.Renderer, deps.Errors).RegisterRoutes(r)
	NewDonationHandler(deps.Donations, deps.Donors, deps.Users, deps.Projects, deps.Renderer, deps.Flash, deps.Errors).RegisterRoutes(r)
	NewProjectHandler(deps.Projects, deps.Users, deps.Renderer, deps.Errors).RegisterRoutes(r)
	NewAssignmentHandler(deps.Assignments, deps.Users, deps.Projects, deps.Renderer, deps.Errors).RegisterRoutes(r)
	NewIncidentHandler(deps.Incidents, deps.Auth, deps.Renderer, deps.Errors).RegisterRoutes(r)

	admin := r.PathPrefix("/Admin").Subrouter()
	admin.Use(deps.Auth.RequireRole(domain.RoleAdministrator))
	NewAdminHandler(deps.Admin, deps.Renderer, deps.Flash, deps.Errors).RegisterRoutes(admin)

	return r
}

// HomeHandler renders the dashboard with the latest received donations.
type HomeHandler struct {
	donationSvc service.DonationService
	renderer    Renderer
	errs        *ErrorPages
}

type homeView struct {
	RecentDonations []domain.Donation
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	recent, err := h.donationSvc.RecentReceived(r.Context(), homeRecentDonations)
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}
	if err := h.renderer.Render(w, r, "home/index", homeView{RecentDonations: recent}); err != nil {
		h.errs.Internal(w, r, err)
	}
}
