package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDonorTestRouter(svc *MockDonorService) (*mux.Router, *stubRenderer) {
	renderer := &stubRenderer{}
	errs := NewErrorPages(renderer, false)
	router := mux.NewRouter()
	NewDonorHandler(svc, renderer, errs).RegisterRoutes(router)
	return router, renderer
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDonorHandler_Details(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockDonorService)
		router, renderer := newDonorTestRouter(svc)

		svc.On("GetDonor", mock.Anything, int32(5)).Return(&domain.Donor{ID: 5, FirstName: "Thandi"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Donors/Details/5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "donors/details", renderer.lastName)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockDonorService)
		router, renderer := newDonorTestRouter(svc)

		svc.On("GetDonor", mock.Anything, int32(99)).Return(nil, service.ErrNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Donors/Details/99", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "error/404", renderer.lastName)
	})
}

func TestDonorHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockDonorService)
		router, _ := newDonorTestRouter(svc)

		svc.On("CreateDonor", mock.Anything, mock.AnythingOfType("*domain.Donor")).Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/Donors/Create", url.Values{
			"FirstName":     {"Thandi"},
			"LastName":      {"Mokoena"},
			"ContactNumber": {"0821234567"},
			"Email":         {"thandi@example.com"},
		}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/Donors", rec.Header().Get("Location"))
	})

	t.Run("ValidationFailureRedisplaysForm", func(t *testing.T) {
		svc := new(MockDonorService)
		router, renderer := newDonorTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/Donors/Create", url.Values{
			"FirstName": {"Thandi"},
			"Email":     {"not-an-email"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "donors/create", renderer.lastName)
		view := renderer.lastData.(donorFormView)
		assert.Equal(t, "Thandi", view.Form.FirstName)
		assert.Contains(t, view.Errors, "LastName")
		assert.Contains(t, view.Errors, "Email")
		svc.AssertNotCalled(t, "CreateDonor", mock.Anything, mock.Anything)
	})
}

func TestDonorHandler_Edit(t *testing.T) {
	t.Run("IDMismatchIsNotFound", func(t *testing.T) {
		svc := new(MockDonorService)
		router, _ := newDonorTestRouter(svc)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/Donors/Edit/5", url.Values{
			"ID":            {"6"},
			"FirstName":     {"Thandi"},
			"LastName":      {"Mokoena"},
			"ContactNumber": {"0821234567"},
			"Email":         {"thandi@example.com"},
		}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertNotCalled(t, "UpdateDonor", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc := new(MockDonorService)
		router, _ := newDonorTestRouter(svc)

		svc.On("UpdateDonor", mock.Anything, mock.AnythingOfType("*domain.Donor")).Return(nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/Donors/Edit/5", url.Values{
			"ID":            {"5"},
			"FirstName":     {"Thandi"},
			"LastName":      {"Mokoena"},
			"ContactNumber": {"0821234567"},
			"Email":         {"thandi@example.com"},
		}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/Donors", rec.Header().Get("Location"))
	})
}
