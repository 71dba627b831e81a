package postgres

import (
	"context"
	"database/sql"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *domain.ReliefProject) error {
	query := `INSERT INTO relief_projects (title, location, description, status, start_date, end_date, coordinator_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.Title, p.Location, p.Description, p.Status, p.StartDate, p.EndDate, p.CoordinatorID).Scan(&p.ID)
}

func (r *projectRepository) GetByID(ctx context.Context, id int32) (*domain.ReliefProject, error) {
	query := `SELECT p.id, p.title, p.location, p.description, p.status, p.start_date, p.end_date, p.coordinator_id,
	                 u.email, u.first_name, u.last_name
	          FROM relief_projects p
	          JOIN users u ON u.id = p.coordinator_id
	          WHERE p.id = $1`
	p := &domain.ReliefProject{Coordinator: &domain.User{}}
	var endDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Location, &p.Description, &p.Status, &p.StartDate, &endDate, &p.CoordinatorID,
		&p.Coordinator.Email, &p.Coordinator.FirstName, &p.Coordinator.LastName,
	)
	if err != nil {
		return nil, err
	}
	p.Coordinator.ID = p.CoordinatorID
	if endDate.Valid {
		p.EndDate = &endDate.Time
	}
	return p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]domain.ReliefProject, error) {
	return r.list(ctx, `SELECT id, title, location, description, status, start_date, end_date, coordinator_id FROM relief_projects`)
}

func (r *projectRepository) ListByTitle(ctx context.Context) ([]domain.ReliefProject, error) {
	return r.list(ctx, `SELECT id, title, location, description, status, start_date, end_date, coordinator_id FROM relief_projects ORDER BY title`)
}

func (r *projectRepository) list(ctx context.Context, query string) ([]domain.ReliefProject, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.ReliefProject
	for rows.Next() {
		var p domain.ReliefProject
		var endDate sql.NullTime
		if err := rows.Scan(&p.ID, &p.Title, &p.Location, &p.Description, &p.Status, &p.StartDate, &endDate, &p.CoordinatorID); err != nil {
			return nil, err
		}
		if endDate.Valid {
			p.EndDate = &endDate.Time
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, p *domain.ReliefProject) error {
	query := `UPDATE relief_projects SET title=$1, location=$2, description=$3, status=$4, start_date=$5, end_date=$6, coordinator_id=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.Title, p.Location, p.Description, p.Status, p.StartDate, p.EndDate, p.CoordinatorID, p.ID)
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id int32) error {
	// Donations and assignments reference projects with ON DELETE RESTRICT.
	_, err := r.db.ExecContext(ctx, `DELETE FROM relief_projects WHERE id=$1`, id)
	return err
}
