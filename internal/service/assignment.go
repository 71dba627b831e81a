package service

import (
	"context"
	"time"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository) AssignmentService {
	return &assignmentService{assignmentRepo: assignmentRepo}
}

func (s *assignmentService) ListAssignments(ctx context.Context) ([]domain.VolunteerAssignment, error) {
	return s.assignmentRepo.List(ctx)
}

func (s *assignmentService) GetAssignment(ctx context.Context, id int32) (*domain.VolunteerAssignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return assignment, nil
}

func (s *assignmentService) CreateAssignment(ctx context.Context, a *domain.VolunteerAssignment) error {
	if a.AssignedDate.IsZero() {
		a.AssignedDate = time.Now().UTC()
	}
	return s.assignmentRepo.Create(ctx, a)
}

func (s *assignmentService) UpdateAssignment(ctx context.Context, a *domain.VolunteerAssignment) error {
	return s.assignmentRepo.Update(ctx, a)
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, id int32) error {
	return translate(s.assignmentRepo.Delete(ctx, id))
}
