package domain

import "time"

// Donor is an external contributing party, independent of any user account.
type Donor struct {
	ID            int32     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	CreatedOn     time.Time `json:"created_on"`
}

func (d *Donor) FullName() string {
	if d.FirstName == "" {
		return d.LastName
	}
	return d.FirstName + " " + d.LastName
}
