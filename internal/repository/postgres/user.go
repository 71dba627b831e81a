package postgres

import (
	"context"
	"database/sql"
	"time"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, first_name, last_name, national_id, date_of_birth, gender, user_type, roles, created_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, first_name, last_name, national_id, date_of_birth, gender, user_type, roles, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	u.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.FirstName, u.LastName, u.NationalID, u.DateOfBirth, u.Gender, u.UserType, pq.Array(u.Roles), u.CreatedOn)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY email`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser tolerates NULLs in the optional extension columns; the identity
// provider fills them in only for some account types.
func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var nationalID, gender, userType sql.NullString
	var dob sql.NullTime
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &nationalID, &dob, &gender, &userType, pq.Array(&u.Roles), &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	u.NationalID = nationalID.String
	u.Gender = gender.String
	u.UserType = domain.UserType(userType.String)
	if dob.Valid {
		u.DateOfBirth = &dob.Time
	}
	return u, nil
}
