package domain

import "time"

type VolunteerRole string

const (
	VolunteerRoleLogistics    VolunteerRole = "LOGISTICS"
	VolunteerRoleFieldSupport VolunteerRole = "FIELD_SUPPORT"
	VolunteerRoleAdminSupport VolunteerRole = "ADMIN_SUPPORT"
	VolunteerRoleSorter       VolunteerRole = "SORTER"
	VolunteerRoleOutreach     VolunteerRole = "OUTREACH"
)

type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "PENDING"
	AssignmentStatusActive    AssignmentStatus = "ACTIVE"
	AssignmentStatusCompleted AssignmentStatus = "COMPLETED"
	AssignmentStatusOnHold    AssignmentStatus = "ON_HOLD"
	AssignmentStatusCancelled AssignmentStatus = "CANCELLED"
)

// VolunteerAssignment links one volunteer user to one relief project.
type VolunteerAssignment struct {
	ID           int32            `json:"id"`
	Role         VolunteerRole    `json:"role"`
	Status       AssignmentStatus `json:"status"`
	AssignedDate time.Time        `json:"assigned_date"`
	UserID       string           `json:"user_id"`
	ProjectID    int32            `json:"project_id"`

	// Populated by joined queries when needed.
	User    *User          `json:"user,omitempty"`
	Project *ReliefProject `json:"project,omitempty"`
}
