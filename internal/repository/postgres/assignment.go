package postgres

import (
	"context"
	"database/sql"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, a *domain.VolunteerAssignment) error {
	query := `INSERT INTO volunteer_assignments (role, status, assigned_date, user_id, project_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Role, a.Status, a.AssignedDate, a.UserID, a.ProjectID).Scan(&a.ID)
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int32) (*domain.VolunteerAssignment, error) {
	query := `SELECT a.id, a.role, a.status, a.assigned_date, a.user_id, a.project_id,
	                 u.email, u.first_name, u.last_name,
	                 p.title
	          FROM volunteer_assignments a
	          JOIN users u ON u.id = a.user_id
	          JOIN relief_projects p ON p.id = a.project_id
	          WHERE a.id = $1`
	a := &domain.VolunteerAssignment{User: &domain.User{}, Project: &domain.ReliefProject{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Role, &a.Status, &a.AssignedDate, &a.UserID, &a.ProjectID,
		&a.User.Email, &a.User.FirstName, &a.User.LastName,
		&a.Project.Title,
	)
	if err != nil {
		return nil, err
	}
	a.User.ID = a.UserID
	a.Project.ID = a.ProjectID
	return a, nil
}

func (r *assignmentRepository) List(ctx context.Context) ([]domain.VolunteerAssignment, error) {
	query := `SELECT a.id, a.role, a.status, a.assigned_date, a.user_id, a.project_id,
	                 u.email, u.first_name, u.last_name,
	                 p.title
	          FROM volunteer_assignments a
	          JOIN users u ON u.id = a.user_id
	          JOIN relief_projects p ON p.id = a.project_id
	          ORDER BY p.title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.VolunteerAssignment
	for rows.Next() {
		var a domain.VolunteerAssignment
		a.User = &domain.User{}
		a.Project = &domain.ReliefProject{}
		if err := rows.Scan(
			&a.ID, &a.Role, &a.Status, &a.AssignedDate, &a.UserID, &a.ProjectID,
			&a.User.Email, &a.User.FirstName, &a.User.LastName,
			&a.Project.Title,
		); err != nil {
			return nil, err
		}
		a.User.ID = a.UserID
		a.Project.ID = a.ProjectID
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepository) Update(ctx context.Context, a *domain.VolunteerAssignment) error {
	query := `UPDATE volunteer_assignments SET role=$1, status=$2, assigned_date=$3, user_id=$4, project_id=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, a.Role, a.Status, a.AssignedDate, a.UserID, a.ProjectID, a.ID)
	return err
}

func (r *assignmentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM volunteer_assignments WHERE id=$1`, id)
	return err
}
