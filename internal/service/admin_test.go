package service

import (
	"context"
	"database/sql"
	"testing"

	"relief-backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminService_UpdateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("AppliesReviewFieldsOnly", func(t *testing.T) {
		repo := new(MockIncidentRepo)
		svc := NewAdminService(repo)

		stored := &domain.IncidentReport{
			ID:               3,
			Title:            "Bridge washed out",
			Location:         "Umlazi",
			Description:      "Original description",
			Severity:         domain.IncidentSeverityModerate,
			Status:           domain.IncidentStatusReported,
			ReportedByUserID: "owner-1",
		}
		repo.On("GetByID", ctx, int32(3)).Return(stored, nil)

		var updated *domain.IncidentReport
		repo.On("Update", ctx, mock.AnythingOfType("*domain.IncidentReport")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*domain.IncidentReport)
			}).
			Return(nil)

		err := svc.UpdateReview(ctx, 3, domain.IncidentStatusActiveRelief, domain.IncidentSeverityCritical, "Relief teams dispatched")
		assert.NoError(t, err)
		assert.Equal(t, domain.IncidentStatusActiveRelief, updated.Status)
		assert.Equal(t, domain.IncidentSeverityCritical, updated.Severity)
		assert.Equal(t, "Relief teams dispatched", updated.Description)
		// Fields outside the review set stay as stored.
		assert.Equal(t, "Bridge washed out", updated.Title)
		assert.Equal(t, "owner-1", updated.ReportedByUserID)
	})

	t.Run("AbsentRow", func(t *testing.T) {
		repo := new(MockIncidentRepo)
		svc := NewAdminService(repo)

		repo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		err := svc.UpdateReview(ctx, 99, domain.IncidentStatusResolved, domain.IncidentSeverityMinor, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("RowVanishedDuringUpdate", func(t *testing.T) {
		repo := new(MockIncidentRepo)
		svc := NewAdminService(repo)

		repo.On("GetByID", ctx, int32(4)).Return(&domain.IncidentReport{ID: 4}, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.IncidentReport")).Return(sql.ErrNoRows)

		err := svc.UpdateReview(ctx, 4, domain.IncidentStatusResolved, domain.IncidentSeverityMinor, "desc")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAdminService_DeleteReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		repo := new(MockIncidentRepo)
		svc := NewAdminService(repo)

		repo.On("Delete", ctx, int32(7)).Return(nil)

		assert.NoError(t, svc.DeleteReport(ctx, 7))
	})
}
