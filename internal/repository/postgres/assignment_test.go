package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAssignmentRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	t.Run("OrderedByProjectTitle", func(t *testing.T) {
		assigned := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{
			"id", "role", "status", "assigned_date", "user_id", "project_id",
			"email", "first_name", "last_name",
			"title",
		}).
			AddRow(6, "SORTER", "ACTIVE", assigned, "user-2", 4, "vol2@example.com", "Pieter", "van Wyk", "Cape Storm Shelter").
			AddRow(2, "LOGISTICS", "PENDING", assigned, "user-1", 3, "vol@example.com", "Lebo", "Nkosi", "KZN Flood Response")

		mock.ExpectQuery("SELECT (.+) FROM volunteer_assignments a (.+) JOIN relief_projects p ON p.id = a.project_id (.+) ORDER BY p.title").
			WillReturnRows(rows)

		assignments, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, assignments, 2)
		assert.Equal(t, "Cape Storm Shelter", assignments[0].Project.Title)
		assert.Equal(t, "KZN Flood Response", assignments[1].Project.Title)
		assert.Equal(t, "vol@example.com", assignments[1].User.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
