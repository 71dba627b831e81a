package postgres

import (
	"context"
	"testing"
	"time"

	"relief-backoffice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDonorRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		donor := &domain.Donor{
			FirstName:     "Thandi",
			LastName:      "Mokoena",
			ContactNumber: "0821234567",
			Email:         "thandi@example.com",
		}

		mock.ExpectQuery("INSERT INTO donors").
			WithArgs(donor.FirstName, donor.LastName, donor.ContactNumber, donor.Email, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		err := repo.Create(ctx, donor)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), donor.ID)
		assert.False(t, donor.CreatedOn.IsZero())
	})
}

func TestDonorRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "contact_number", "email", "created_on"}).
			AddRow(5, "Thandi", "Mokoena", "0821234567", "thandi@example.com", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM donors WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		donor, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Mokoena", donor.LastName)
	})
}

func TestDonorRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorRepository(db)
	ctx := context.Background()

	t.Run("RestrictedByDonations", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM donors WHERE id=\\$1").
			WithArgs(int32(5)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(ctx, 5)
		assert.Error(t, err)
		var pqErr *pq.Error
		assert.ErrorAs(t, err, &pqErr)
		assert.Equal(t, pq.ErrorCode("23503"), pqErr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM donors WHERE id=\\$1").
			WithArgs(int32(6)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 6)
		assert.NoError(t, err)
	})
}
