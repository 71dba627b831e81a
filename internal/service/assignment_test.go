package service

import (
	"context"
	"testing"
	"time"

	"relief-backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAssignmentService_CreateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsAssignedDateToNow", func(t *testing.T) {
		repo := new(MockAssignmentRepo)
		svc := NewAssignmentService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.VolunteerAssignment")).Return(nil)

		assignment := &domain.VolunteerAssignment{
			Role:      domain.VolunteerRoleLogistics,
			Status:    domain.AssignmentStatusPending,
			UserID:    "user-1",
			ProjectID: 3,
		}

		before := time.Now().UTC()
		err := svc.CreateAssignment(ctx, assignment)
		after := time.Now().UTC()

		assert.NoError(t, err)
		assert.False(t, assignment.AssignedDate.Before(before))
		assert.False(t, assignment.AssignedDate.After(after))
	})

	t.Run("KeepsExplicitAssignedDate", func(t *testing.T) {
		repo := new(MockAssignmentRepo)
		svc := NewAssignmentService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.VolunteerAssignment")).Return(nil)

		explicit := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
		assignment := &domain.VolunteerAssignment{
			Role:         domain.VolunteerRoleSorter,
			Status:       domain.AssignmentStatusActive,
			AssignedDate: explicit,
			UserID:       "user-2",
			ProjectID:    4,
		}

		err := svc.CreateAssignment(ctx, assignment)
		assert.NoError(t, err)
		assert.Equal(t, explicit, assignment.AssignedDate)
	})
}
