package repository

import (
	"context"
	"relief-backoffice/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users ordered by email, for form pickers.
	List(ctx context.Context) ([]domain.User, error)
}

type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) error
	GetByID(ctx context.Context, id int32) (*domain.Donor, error)
	List(ctx context.Context) ([]domain.Donor, error)
	Update(ctx context.Context, donor *domain.Donor) error
	// Delete fails with a foreign-key violation when the donor still has
	// donations (RESTRICT at the schema level).
	Delete(ctx context.Context, id int32) error
}

type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) error
	// GetByID joins the donor, recording user, and project (if allocated).
	GetByID(ctx context.Context, id int32) (*domain.Donation, error)
	// List joins the donor and recording user for display.
	List(ctx context.Context) ([]domain.Donation, error)
	// ListRecentReceived returns donations with status RECEIVED joined with
	// donor and project, ordered by date received descending with the
	// identifier as tiebreak, truncated to limit rows.
	ListRecentReceived(ctx context.Context, limit int32) ([]domain.Donation, error)
	Update(ctx context.Context, donation *domain.Donation) error
	Delete(ctx context.Context, id int32) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.ReliefProject) error
	GetByID(ctx context.Context, id int32) (*domain.ReliefProject, error)
	List(ctx context.Context) ([]domain.ReliefProject, error)
	// ListByTitle returns all projects ordered by title, for form pickers.
	ListByTitle(ctx context.Context) ([]domain.ReliefProject, error)
	Update(ctx context.Context, project *domain.ReliefProject) error
	Delete(ctx context.Context, id int32) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.VolunteerAssignment) error
	GetByID(ctx context.Context, id int32) (*domain.VolunteerAssignment, error)
	// List joins the volunteer and project, ordered by project title.
	List(ctx context.Context) ([]domain.VolunteerAssignment, error)
	Update(ctx context.Context, assignment *domain.VolunteerAssignment) error
	Delete(ctx context.Context, id int32) error
}

type IncidentRepository interface {
	Create(ctx context.Context, report *domain.IncidentReport) error
	GetByID(ctx context.Context, id int32) (*domain.IncidentReport, error)
	// ListByReporter returns one user's reports, newest first.
	ListByReporter(ctx context.Context, userID string) ([]domain.IncidentReport, error)
	// ListAll returns every report joined with its reporter, for admin review.
	ListAll(ctx context.Context) ([]domain.IncidentReport, error)
	// Update reports sql.ErrNoRows when the row no longer exists.
	Update(ctx context.Context, report *domain.IncidentReport) error
	Delete(ctx context.Context, id int32) error
}
