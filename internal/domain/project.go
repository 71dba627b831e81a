package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "PLANNING"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

// ReliefProject groups donations and volunteer assignments under one relief
// effort. Any status may be set via edit; the end date is independent of the
// status and must be set by the caller.
type ReliefProject struct {
	ID            int32         `json:"id"`
	Title         string        `json:"title"`
	Location      string        `json:"location"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	CoordinatorID string        `json:"coordinator_id"`

	// Populated by joined queries when needed.
	Coordinator *User `json:"coordinator,omitempty"`
}
