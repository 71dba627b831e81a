package service

import (
	"context"
	"database/sql"
	"testing"

	"relief-backoffice/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDonationService_GetDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("NonPositiveID", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		_, err := svc.GetDonation(ctx, 0)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.GetDonation(ctx, -4)
		assert.ErrorIs(t, err, ErrNotFound)

		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("AbsentRow", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		repo.On("GetByID", ctx, int32(42)).Return(nil, sql.ErrNoRows)

		_, err := svc.GetDonation(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		repo.On("GetByID", ctx, int32(1)).Return(&domain.Donation{ID: 1, AmountCents: 5000}, nil)

		donation, err := svc.GetDonation(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(5000), donation.AmountCents)
	})
}

func TestDonationService_RecentReceived(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToFive", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		repo.On("ListRecentReceived", ctx, int32(5)).Return([]domain.Donation{}, nil)

		_, err := svc.RecentReceived(ctx, 0)
		assert.NoError(t, err)
		repo.AssertCalled(t, "ListRecentReceived", ctx, int32(5))
	})

	t.Run("ExplicitCount", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		repo.On("ListRecentReceived", ctx, int32(3)).Return([]domain.Donation{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

		donations, err := svc.RecentReceived(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, donations, 3)
	})
}

func TestDonationService_DeleteDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("Restricted", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		repo.On("Delete", ctx, int32(1)).Return(&pq.Error{Code: "23503"})

		err := svc.DeleteDonation(ctx, 1)
		assert.ErrorIs(t, err, ErrRestricted)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockDonationRepo)
		svc := NewDonationService(repo)

		repo.On("Delete", ctx, int32(2)).Return(nil)

		assert.NoError(t, svc.DeleteDonation(ctx, 2))
	})
}
