package postgres

import (
	"database/sql"

	"relief-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.DonorRepository
	repository.DonationRepository
	repository.ProjectRepository
	repository.AssignmentRepository
	repository.IncidentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		DonorRepository:      NewDonorRepository(db),
		DonationRepository:   NewDonationRepository(db),
		ProjectRepository:    NewProjectRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		IncidentRepository:   NewIncidentRepository(db),
	}
}
