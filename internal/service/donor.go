package service

import (
	"context"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type donorService struct {
	donorRepo repository.DonorRepository
}

func NewDonorService(donorRepo repository.DonorRepository) DonorService {
	return &donorService{donorRepo: donorRepo}
}

func (s *donorService) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	return s.donorRepo.List(ctx)
}

func (s *donorService) GetDonor(ctx context.Context, id int32) (*domain.Donor, error) {
	donor, err := s.donorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return donor, nil
}

func (s *donorService) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	return s.donorRepo.Create(ctx, donor)
}

func (s *donorService) UpdateDonor(ctx context.Context, donor *domain.Donor) error {
	return s.donorRepo.Update(ctx, donor)
}

func (s *donorService) DeleteDonor(ctx context.Context, id int32) error {
	return translate(s.donorRepo.Delete(ctx, id))
}
