package service

import (
	"context"
	"fmt"
	"time"

	"relief-backoffice/internal/domain"
	"relief-backoffice/internal/repository"
)

type incidentService struct {
	incidentRepo repository.IncidentRepository
}

func NewIncidentService(incidentRepo repository.IncidentRepository) IncidentService {
	return &incidentService{incidentRepo: incidentRepo}
}

func (s *incidentService) ListMyReports(ctx context.Context, userID string) ([]domain.IncidentReport, error) {
	return s.incidentRepo.ListByReporter(ctx, userID)
}

func (s *incidentService) GetReport(ctx context.Context, id int32) (*domain.IncidentReport, error) {
	report, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return report, nil
}

func (s *incidentService) CreateReport(ctx context.Context, reporterID, title, location, description string, severity domain.IncidentSeverity) (*domain.IncidentReport, error) {
	// The reporter, timestamp, and initial status never come from the caller's
	// payload.
	report := &domain.IncidentReport{
		Title:            title,
		Location:         location,
		Description:      description,
		Severity:         severity,
		Status:           domain.IncidentStatusReported,
		Timestamp:        time.Now().UTC(),
		ReportedByUserID: reporterID,
	}
	if err := s.incidentRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create incident report: %w", err)
	}
	return report, nil
}

func (s *incidentService) UpdateReport(ctx context.Context, report *domain.IncidentReport) error {
	// Re-pin the stored timestamp and reporter so a forged payload cannot
	// alter them. The repository update skips those columns as well.
	stored, err := s.incidentRepo.GetByID(ctx, report.ID)
	if err != nil {
		return translate(err)
	}
	report.Timestamp = stored.Timestamp
	report.ReportedByUserID = stored.ReportedByUserID
	return translate(s.incidentRepo.Update(ctx, report))
}

func (s *incidentService) DeleteReport(ctx context.Context, id int32) error {
	return translate(s.incidentRepo.Delete(ctx, id))
}
