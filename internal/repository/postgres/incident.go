package postgres

import (
	"context"
	"database/sql"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type incidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) repository.IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, rep *domain.IncidentReport) error {
	query := `INSERT INTO incident_reports (title, location, description, severity, status, timestamp, reported_by_user_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rep.Title, rep.Location, rep.Description, rep.Severity, rep.Status, rep.Timestamp, rep.ReportedByUserID).Scan(&rep.ID)
}

func (r *incidentRepository) GetByID(ctx context.Context, id int32) (*domain.IncidentReport, error) {
	query := `SELECT i.id, i.title, i.location, i.description, i.severity, i.status, i.timestamp, i.reported_by_user_id,
	                 u.email, u.first_name, u.last_name
	          FROM incident_reports i
	          JOIN users u ON u.id = i.reported_by_user_id
	          WHERE i.id = $1`
	rep := &domain.IncidentReport{ReportedBy: &domain.User{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rep.ID, &rep.Title, &rep.Location, &rep.Description, &rep.Severity, &rep.Status, &rep.Timestamp, &rep.ReportedByUserID,
		&rep.ReportedBy.Email, &rep.ReportedBy.FirstName, &rep.ReportedBy.LastName,
	)
	if err != nil {
		return nil, err
	}
	rep.ReportedBy.ID = rep.ReportedByUserID
	return rep, nil
}

func (r *incidentRepository) ListByReporter(ctx context.Context, userID string) ([]domain.IncidentReport, error) {
	query := `SELECT i.id, i.title, i.location, i.description, i.severity, i.status, i.timestamp, i.reported_by_user_id,
	                 u.email, u.first_name, u.last_name
	          FROM incident_reports i
	          JOIN users u ON u.id = i.reported_by_user_id
	          WHERE i.reported_by_user_id = $1
	          ORDER BY i.timestamp DESC`
	return r.listReports(ctx, query, userID)
}

func (r *incidentRepository) ListAll(ctx context.Context) ([]domain.IncidentReport, error) {
	query := `SELECT i.id, i.title, i.location, i.description, i.severity, i.status, i.timestamp, i.reported_by_user_id,
	                 u.email, u.first_name, u.last_name
	          FROM incident_reports i
	          JOIN users u ON u.id = i.reported_by_user_id`
	return r.listReports(ctx, query)
}

func (r *incidentRepository) listReports(ctx context.Context, query string, args ...any) ([]domain.IncidentReport, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.IncidentReport
	for rows.Next() {
		var rep domain.IncidentReport
		rep.ReportedBy = &domain.User{}
		if err := rows.Scan(
			&rep.ID, &rep.Title, &rep.Location, &rep.Description, &rep.Severity, &rep.Status, &rep.Timestamp, &rep.ReportedByUserID,
			&rep.ReportedBy.Email, &rep.ReportedBy.FirstName, &rep.ReportedBy.LastName,
		); err != nil {
			return nil, err
		}
		rep.ReportedBy.ID = rep.ReportedByUserID
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// Update never touches timestamp or reported_by_user_id; those columns are
// fixed at insert time. A vanished row is reported as sql.ErrNoRows so the
// caller can answer not-found after a lost concurrent delete.
func (r *incidentRepository) Update(ctx context.Context, rep *domain.IncidentReport) error {
	query := `UPDATE incident_reports SET title=$1, location=$2, description=$3, severity=$4, status=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, rep.Title, rep.Location, rep.Description, rep.Severity, rep.Status, rep.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *incidentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM incident_reports WHERE id=$1`, id)
	return err
}
