package postgres

import (
	"context"
	"database/sql"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (type, amount_cents, description, date_received, status, donor_id, recorded_by_user_id, project_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, d.Type, d.AmountCents, d.Description, d.DateReceived, d.Status, d.DonorID, d.RecordedByUserID, d.ProjectID).Scan(&d.ID)
}

func (r *donationRepository) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	query := `SELECT d.id, d.type, d.amount_cents, d.description, d.date_received, d.status, d.donor_id, d.recorded_by_user_id, d.project_id,
	                 dn.first_name, dn.last_name, dn.email,
	                 u.email, u.first_name, u.last_name,
	                 p.id, p.title
	          FROM donations d
	          JOIN donors dn ON dn.id = d.donor_id
	          JOIN users u ON u.id = d.recorded_by_user_id
	          LEFT JOIN relief_projects p ON p.id = d.project_id
	          WHERE d.id = $1`

	d := &domain.Donation{Donor: &domain.Donor{}, RecordedBy: &domain.User{}}
	var projectID sql.NullInt32
	var pID sql.NullInt32
	var pTitle sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Type, &d.AmountCents, &d.Description, &d.DateReceived, &d.Status, &d.DonorID, &d.RecordedByUserID, &projectID,
		&d.Donor.FirstName, &d.Donor.LastName, &d.Donor.Email,
		&d.RecordedBy.Email, &d.RecordedBy.FirstName, &d.RecordedBy.LastName,
		&pID, &pTitle,
	)
	if err != nil {
		return nil, err
	}
	d.Donor.ID = d.DonorID
	d.RecordedBy.ID = d.RecordedByUserID
	if projectID.Valid {
		v := projectID.Int32
		d.ProjectID = &v
	}
	if pID.Valid {
		d.Project = &domain.ReliefProject{ID: pID.Int32, Title: pTitle.String}
	}
	return d, nil
}

func (r *donationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	query := `SELECT d.id, d.type, d.amount_cents, d.description, d.date_received, d.status, d.donor_id, d.recorded_by_user_id, d.project_id,
	                 dn.first_name, dn.last_name,
	                 u.email
	          FROM donations d
	          JOIN donors dn ON dn.id = d.donor_id
	          JOIN users u ON u.id = d.recorded_by_user_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		d.Donor = &domain.Donor{}
		d.RecordedBy = &domain.User{}
		var projectID sql.NullInt32
		if err := rows.Scan(
			&d.ID, &d.Type, &d.AmountCents, &d.Description, &d.DateReceived, &d.Status, &d.DonorID, &d.RecordedByUserID, &projectID,
			&d.Donor.FirstName, &d.Donor.LastName,
			&d.RecordedBy.Email,
		); err != nil {
			return nil, err
		}
		d.Donor.ID = d.DonorID
		d.RecordedBy.ID = d.RecordedByUserID
		if projectID.Valid {
			v := projectID.Int32
			d.ProjectID = &v
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) ListRecentReceived(ctx context.Context, limit int32) ([]domain.Donation, error) {
	// Ties on date_received fall back to insertion order via the id.
	query := `SELECT d.id, d.type, d.amount_cents, d.description, d.date_received, d.status, d.donor_id, d.recorded_by_user_id, d.project_id,
	                 dn.first_name, dn.last_name,
	                 p.title
	          FROM donations d
	          JOIN donors dn ON dn.id = d.donor_id
	          LEFT JOIN relief_projects p ON p.id = d.project_id
	          WHERE d.status = $1
	          ORDER BY d.date_received DESC, d.id ASC
	          LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, domain.DonationStatusReceived, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		d.Donor = &domain.Donor{}
		var projectID sql.NullInt32
		var pTitle sql.NullString
		if err := rows.Scan(
			&d.ID, &d.Type, &d.AmountCents, &d.Description, &d.DateReceived, &d.Status, &d.DonorID, &d.RecordedByUserID, &projectID,
			&d.Donor.FirstName, &d.Donor.LastName,
			&pTitle,
		); err != nil {
			return nil, err
		}
		d.Donor.ID = d.DonorID
		if projectID.Valid {
			v := projectID.Int32
			d.ProjectID = &v
			d.Project = &domain.ReliefProject{ID: v, Title: pTitle.String}
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) Update(ctx context.Context, d *domain.Donation) error {
	query := `UPDATE donations SET type=$1, amount_cents=$2, description=$3, date_received=$4, status=$5, donor_id=$6, recorded_by_user_id=$7, project_id=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, d.Type, d.AmountCents, d.Description, d.DateReceived, d.Status, d.DonorID, d.RecordedByUserID, d.ProjectID, d.ID)
	return err
}

func (r *donationRepository) Delete(ctx context.Context, id int32) error {
	// Deleting an absent id is a no-op.
	_, err := r.db.ExecContext(ctx, `DELETE FROM donations WHERE id=$1`, id)
	return err
}
