package service

import (
	"context"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

// defaultRecentCount is the landing-page window for recent received donations.
const defaultRecentCount = 5

type donationService struct {
	donationRepo repository.DonationRepository
}

func NewDonationService(donationRepo repository.DonationRepository) DonationService {
	return &donationService{donationRepo: donationRepo}
}

func (s *donationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.donationRepo.List(ctx)
}

func (s *donationService) GetDonation(ctx context.Context, id int32) (*domain.Donation, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return donation, nil
}

func (s *donationService) RecentReceived(ctx context.Context, count int32) ([]domain.Donation, error) {
	if count <= 0 {
		count = defaultRecentCount
	}
	return s.donationRepo.ListRecentReceived(ctx, count)
}

func (s *donationService) CreateDonation(ctx context.Context, donation *domain.Donation) error {
	return s.donationRepo.Create(ctx, donation)
}

func (s *donationService) UpdateDonation(ctx context.Context, donation *domain.Donation) error {
	return s.donationRepo.Update(ctx, donation)
}

func (s *donationService) DeleteDonation(ctx context.Context, id int32) error {
	return translate(s.donationRepo.Delete(ctx, id))
}
