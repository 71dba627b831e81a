package service

import (
	"context"

	"relief-backoffice/internal/domain"
)

type UserService interface {
	// ListUsers returns all accounts ordered by email, for form pickers.
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type DonorService interface {
	ListDonors(ctx context.Context) ([]domain.Donor, error)
	GetDonor(ctx context.Context, id int32) (*domain.Donor, error)
	CreateDonor(ctx context.Context, donor *domain.Donor) error
	UpdateDonor(ctx context.Context, donor *domain.Donor) error
	// DeleteDonor reports ErrRestricted when donations still reference the donor.
	DeleteDonor(ctx context.Context, id int32) error
}

type DonationService interface {
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	// GetDonation reports ErrNotFound for a zero, negative, or absent id.
	GetDonation(ctx context.Context, id int32) (*domain.Donation, error)
	// RecentReceived returns at most count donations with status RECEIVED,
	// newest first. A non-positive count falls back to the default of 5.
	RecentReceived(ctx context.Context, count int32) ([]domain.Donation, error)
	CreateDonation(ctx context.Context, donation *domain.Donation) error
	UpdateDonation(ctx context.Context, donation *domain.Donation) error
	// DeleteDonation is idempotent; an absent id is a no-op.
	DeleteDonation(ctx context.Context, id int32) error
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.ReliefProject, error)
	ListProjectsByTitle(ctx context.Context) ([]domain.ReliefProject, error)
	GetProject(ctx context.Context, id int32) (*domain.ReliefProject, error)
	CreateProject(ctx context.Context, project *domain.ReliefProject) error
	UpdateProject(ctx context.Context, project *domain.ReliefProject) error
	DeleteProject(ctx context.Context, id int32) error
}

type AssignmentService interface {
	ListAssignments(ctx context.Context) ([]domain.VolunteerAssignment, error)
	GetAssignment(ctx context.Context, id int32) (*domain.VolunteerAssignment, error)
	// CreateAssignment substitutes the current time when AssignedDate is the
	// zero value.
	CreateAssignment(ctx context.Context, assignment *domain.VolunteerAssignment) error
	UpdateAssignment(ctx context.Context, assignment *domain.VolunteerAssignment) error
	DeleteAssignment(ctx context.Context, id int32) error
}

type IncidentService interface {
	// ListMyReports returns the given user's reports, newest first.
	ListMyReports(ctx context.Context, userID string) ([]domain.IncidentReport, error)
	GetReport(ctx context.Context, id int32) (*domain.IncidentReport, error)
	// CreateReport pins the reporter, timestamp, and initial REPORTED status;
	// the caller supplies only title, location, description, and severity.
	CreateReport(ctx context.Context, reporterID, title, location, description string, severity domain.IncidentSeverity) (*domain.IncidentReport, error)
	// UpdateReport overwrites the mutable fields while keeping the stored
	// timestamp and reporter, whatever the caller supplied for those.
	UpdateReport(ctx context.Context, report *domain.IncidentReport) error
	DeleteReport(ctx context.Context, id int32) error
}

type AdminService interface {
	ListAllReports(ctx context.Context) ([]domain.IncidentReport, error)
	GetReport(ctx context.Context, id int32) (*domain.IncidentReport, error)
	// UpdateReview applies the admin-editable field set only. A row deleted
	// underneath the review surfaces as ErrNotFound.
	UpdateReview(ctx context.Context, id int32, status domain.IncidentStatus, severity domain.IncidentSeverity, description string) error
	DeleteReport(ctx context.Context, id int32) error
}
