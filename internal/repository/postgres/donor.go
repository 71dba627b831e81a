package postgres

import (
	"context"
	"database/sql"
	"time"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type donorRepository struct {
	db *sql.DB
}

func NewDonorRepository(db *sql.DB) repository.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, d *domain.Donor) error {
	query := `INSERT INTO donors (first_name, last_name, contact_number, email, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	d.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, d.FirstName, d.LastName, d.ContactNumber, d.Email, d.CreatedOn).Scan(&d.ID)
}

func (r *donorRepository) GetByID(ctx context.Context, id int32) (*domain.Donor, error) {
	d := &domain.Donor{}
	query := `SELECT id, first_name, last_name, contact_number, email, created_on FROM donors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.FirstName, &d.LastName, &d.ContactNumber, &d.Email, &d.CreatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *donorRepository) List(ctx context.Context) ([]domain.Donor, error) {
	query := `SELECT id, first_name, last_name, contact_number, email, created_on FROM donors`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []domain.Donor
	for rows.Next() {
		var d domain.Donor
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.ContactNumber, &d.Email, &d.CreatedOn); err != nil {
			return nil, err
		}
		donors = append(donors, d)
	}
	return donors, rows.Err()
}

func (r *donorRepository) Update(ctx context.Context, d *domain.Donor) error {
	query := `UPDATE donors SET first_name=$1, last_name=$2, contact_number=$3, email=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, d.FirstName, d.LastName, d.ContactNumber, d.Email, d.ID)
	return err
}

func (r *donorRepository) Delete(ctx context.Context, id int32) error {
	// donations.donor_id is ON DELETE RESTRICT; deleting a donor with
	// donations surfaces a foreign-key violation from the driver.
	_, err := r.db.ExecContext(ctx, `DELETE FROM donors WHERE id=$1`, id)
	return err
}
