package domain

import "time"

type DonationType string

const (
	DonationTypeFinancial DonationType = "FINANCIAL"
	DonationTypeInKind    DonationType = "IN_KIND"
	DonationTypeService   DonationType = "SERVICE"
)

type DonationStatus string

const (
	DonationStatusReceived    DonationStatus = "RECEIVED"
	DonationStatusProcessing  DonationStatus = "PROCESSING"
	DonationStatusAllocated   DonationStatus = "ALLOCATED"
	DonationStatusDistributed DonationStatus = "DISTRIBUTED"
)

// Donation is one recorded contribution. AmountCents is zero for purely
// in-kind or service donations. ProjectID is nil until the donation is
// allocated to a relief project.
type Donation struct {
	ID              int32          `json:"id"`
	Type            DonationType   `json:"type"`
	AmountCents     int64          `json:"amount_cents"`
	Description     string         `json:"description"`
	DateReceived    time.Time      `json:"date_received"`
	Status          DonationStatus `json:"status"`
	DonorID         int32          `json:"donor_id"`
	RecordedByUserID string        `json:"recorded_by_user_id"`
	ProjectID       *int32         `json:"project_id,omitempty"`

	// Populated by joined queries when needed.
	Donor      *Donor         `json:"donor,omitempty"`
	RecordedBy *User          `json:"recorded_by,omitempty"`
	Project    *ReliefProject `json:"project,omitempty"`
}
