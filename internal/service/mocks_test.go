package service

import (
	"context"

	"relief-backoffice/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDonationRepo
type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) Create(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}
func (m *MockDonationRepo) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) List(ctx context.Context) ([]domain.Donation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) ListRecentReceived(ctx context.Context, limit int32) ([]domain.Donation, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) Update(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}
func (m *MockDonationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIncidentRepo
type MockIncidentRepo struct {
	mock.Mock
}

func (m *MockIncidentRepo) Create(ctx context.Context, report *domain.IncidentReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockIncidentRepo) GetByID(ctx context.Context, id int32) (*domain.IncidentReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentRepo) ListByReporter(ctx context.Context, userID string) ([]domain.IncidentReport, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentRepo) ListAll(ctx context.Context) ([]domain.IncidentReport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentRepo) Update(ctx context.Context, report *domain.IncidentReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockIncidentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssignmentRepo
type MockAssignmentRepo struct {
	mock.Mock
}

func (m *MockAssignmentRepo) Create(ctx context.Context, assignment *domain.VolunteerAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}
func (m *MockAssignmentRepo) GetByID(ctx context.Context, id int32) (*domain.VolunteerAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VolunteerAssignment), args.Error(1)
}
func (m *MockAssignmentRepo) List(ctx context.Context) ([]domain.VolunteerAssignment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VolunteerAssignment), args.Error(1)
}
func (m *MockAssignmentRepo) Update(ctx context.Context, assignment *domain.VolunteerAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}
func (m *MockAssignmentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDonorRepo
type MockDonorRepo struct {
	mock.Mock
}

func (m *MockDonorRepo) Create(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorRepo) GetByID(ctx context.Context, id int32) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockDonorRepo) List(ctx context.Context) ([]domain.Donor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Donor), args.Error(1)
}
func (m *MockDonorRepo) Update(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
