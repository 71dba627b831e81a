package domain

import "time"

type IncidentSeverity string

const (
	IncidentSeverityMinor    IncidentSeverity = "MINOR"
	IncidentSeverityModerate IncidentSeverity = "MODERATE"
	IncidentSeverityHigh     IncidentSeverity = "HIGH"
	IncidentSeverityCritical IncidentSeverity = "CRITICAL"
)

type IncidentStatus string

const (
	IncidentStatusReported      IncidentStatus = "REPORTED"
	IncidentStatusInvestigating IncidentStatus = "INVESTIGATING"
	IncidentStatusActiveRelief  IncidentStatus = "ACTIVE_RELIEF"
	IncidentStatusResolved      IncidentStatus = "RESOLVED"
	IncidentStatusFalseReport   IncidentStatus = "FALSE_REPORT"
)

// IncidentReport is a citizen- or staff-submitted incident. Timestamp and
// ReportedByUserID are fixed at creation; edits must never overwrite them
// with caller-supplied values.
type IncidentReport struct {
	ID               int32            `json:"id"`
	Title            string           `json:"title"`
	Location         string           `json:"location"`
	Description      string           `json:"description"`
	Severity         IncidentSeverity `json:"severity"`
	Status           IncidentStatus   `json:"status"`
	Timestamp        time.Time        `json:"timestamp"`
	ReportedByUserID string           `json:"reported_by_user_id"`

	// Populated by joined queries when needed.
	ReportedBy *User `json:"reported_by,omitempty"`
}
