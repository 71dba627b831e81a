package domain

import "time"

// Role names as issued by the identity provider.
const (
	RoleAdministrator = "Administrator"
	RoleStaff         = "Staff"
	RoleVolunteer     = "Volunteer"
)

type UserType string

const (
	UserTypeStaff     UserType = "STAFF"
	UserTypeVolunteer UserType = "VOLUNTEER"
	UserTypeCitizen   UserType = "CITIZEN"
)

// User mirrors the identity provider's account table plus the extension
// columns this application reads. The ID is the provider's opaque key and is
// stable for the lifetime of the account.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	NationalID  string     `json:"national_id"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender"`
	UserType    UserType   `json:"user_type"`
	Roles       []string   `json:"roles,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Principal is the authenticated caller, passed explicitly through the
// request context rather than read from ambient state.
type Principal struct {
	UserID string
	Email  string
	Name   string
	Roles  []string
}

func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
