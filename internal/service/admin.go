package service

import (
	"context"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/logger"
	"relief-backoffice/internal/repository"
)

type adminService struct {
	incidentRepo repository.IncidentRepository
}

func NewAdminService(incidentRepo repository.IncidentRepository) AdminService {
	return &adminService{incidentRepo: incidentRepo}
}

func (s *adminService) ListAllReports(ctx context.Context) ([]domain.IncidentReport, error) {
	return s.incidentRepo.ListAll(ctx)
}

func (s *adminService) GetReport(ctx context.Context, id int32) (*domain.IncidentReport, error) {
	report, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return report, nil
}

func (s *adminService) UpdateReview(ctx context.Context, id int32, status domain.IncidentStatus, severity domain.IncidentSeverity, description string) error {
	report, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return translate(err)
	}

	report.Status = status
	report.Severity = severity
	report.Description = description

	if err := s.incidentRepo.Update(ctx, report); err != nil {
		// The row can vanish between the load above and the update when a
		// concurrent delete wins; that resolves to not-found. Anything else
		// propagates as fatal.
		logger.Warn("Incident review update failed", "report_id", id, "error", err)
		return translate(err)
	}
	return nil
}

func (s *adminService) DeleteReport(ctx context.Context, id int32) error {
	return translate(s.incidentRepo.Delete(ctx, id))
}
