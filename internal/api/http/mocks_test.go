package http

import (
	"context"
	"net/http"

	"relief-backoffice/internal/domain"

	"github.com/stretchr/testify/mock"
)

// stubRenderer records the last rendered view so handler tests can assert on
// routing decisions without parsing HTML.
type stubRenderer struct {
	lastName string
	lastData any
}

func (s *stubRenderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) error {
	s.lastName = name
	s.lastData = data
	return nil
}

// MockDonorService
type MockDonorService struct {
	mock.Mock
}

func (m *MockDonorService) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Donor), args.Error(1)
}
func (m *MockDonorService) GetDonor(ctx context.Context, id int32) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockDonorService) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorService) UpdateDonor(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorService) DeleteDonor(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIncidentService
type MockIncidentService struct {
	mock.Mock
}

func (m *MockIncidentService) ListMyReports(ctx context.Context, userID string) ([]domain.IncidentReport, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentService) GetReport(ctx context.Context, id int32) (*domain.IncidentReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentService) CreateReport(ctx context.Context, reporterID, title, location, description string, severity domain.IncidentSeverity) (*domain.IncidentReport, error) {
	args := m.Called(ctx, reporterID, title, location, description, severity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentService) UpdateReport(ctx context.Context, report *domain.IncidentReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockIncidentService) DeleteReport(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListAllReports(ctx context.Context) ([]domain.IncidentReport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockAdminService) GetReport(ctx context.Context, id int32) (*domain.IncidentReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentReport), args.Error(1)
}
func (m *MockAdminService) UpdateReview(ctx context.Context, id int32, status domain.IncidentStatus, severity domain.IncidentSeverity, description string) error {
	args := m.Called(ctx, id, status, severity, description)
	return args.Error(0)
}
func (m *MockAdminService) DeleteReport(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
