package service

import (
	"context"
	"errors"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.ReliefProject, error) {
	return s.projectRepo.List(ctx)
}

func (s *projectService) ListProjectsByTitle(ctx context.Context) ([]domain.ReliefProject, error) {
	return s.projectRepo.ListByTitle(ctx)
}

func (s *projectService) GetProject(ctx context.Context, id int32) (*domain.ReliefProject, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return project, nil
}

func (s *projectService) CreateProject(ctx context.Context, project *domain.ReliefProject) error {
	if project.CoordinatorID == "" {
		return errors.New("coordinator is required")
	}
	return s.projectRepo.Create(ctx, project)
}

func (s *projectService) UpdateProject(ctx context.Context, project *domain.ReliefProject) error {
	return s.projectRepo.Update(ctx, project)
}

func (s *projectService) DeleteProject(ctx context.Context, id int32) error {
	return translate(s.projectRepo.Delete(ctx, id))
}
