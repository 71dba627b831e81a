package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"relief-backoffice/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Form parsing is the overposting boundary: each operation deserializes only
// the scalar fields whitelisted here, so reference objects and pinned columns
// can never arrive from a payload no matter what the form submits.

var validate = validator.New(validator.WithRequiredStructEnabled())

const dateLayout = "2006-01-02"

type DonorForm struct {
	ID            int32
	FirstName     string `validate:"required"`
	LastName      string `validate:"required"`
	ContactNumber string `validate:"required"`
	Email         string `validate:"required,email"`
}

func parseDonorForm(r *http.Request) (DonorForm, map[string]string) {
	form := DonorForm{
		ID:            formInt32(r, "ID"),
		FirstName:     r.PostFormValue("FirstName"),
		LastName:      r.PostFormValue("LastName"),
		ContactNumber: r.PostFormValue("ContactNumber"),
		Email:         r.PostFormValue("Email"),
	}
	return form, fieldErrors(validate.Struct(form))
}

func (f DonorForm) ToDomain() *domain.Donor {
	return &domain.Donor{
		ID:            f.ID,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		ContactNumber: f.ContactNumber,
		Email:         f.Email,
	}
}

type DonationForm struct {
	ID               int32
	Type             string `validate:"required,oneof=FINANCIAL IN_KIND SERVICE"`
	Amount           string
	Description      string `validate:"required"`
	DateReceived     string `validate:"required"`
	Status           string `validate:"required,oneof=RECEIVED PROCESSING ALLOCATED DISTRIBUTED"`
	DonorID          int32  `validate:"gt=0"`
	RecordedByUserID string `validate:"required"`
	ProjectID        string // empty means unallocated
}

func parseDonationForm(r *http.Request) (DonationForm, map[string]string) {
	form := DonationForm{
		ID:               formInt32(r, "ID"),
		Type:             r.PostFormValue("Type"),
		Amount:           r.PostFormValue("Amount"),
		Description:      r.PostFormValue("Description"),
		DateReceived:     r.PostFormValue("DateReceived"),
		Status:           r.PostFormValue("Status"),
		DonorID:          formInt32(r, "DonorID"),
		RecordedByUserID: r.PostFormValue("RecordedByUserID"),
		ProjectID:        r.PostFormValue("ProjectID"),
	}
	errs := fieldErrors(validate.Struct(form))
	if _, err := parseAmountCents(form.Amount); err != nil {
		errs["Amount"] = err.Error()
	}
	if _, err := time.Parse(dateLayout, form.DateReceived); form.DateReceived != "" && err != nil {
		errs["DateReceived"] = "date received must be a valid date"
	}
	if form.ProjectID != "" {
		if v, err := strconv.ParseInt(form.ProjectID, 10, 32); err != nil || v <= 0 {
			errs["ProjectID"] = "project must be a valid selection"
		}
	}
	return form, errs
}

func (f DonationForm) ToDomain() *domain.Donation {
	cents, _ := parseAmountCents(f.Amount)
	date, _ := time.Parse(dateLayout, f.DateReceived)
	d := &domain.Donation{
		ID:               f.ID,
		Type:             domain.DonationType(f.Type),
		AmountCents:      cents,
		Description:      f.Description,
		DateReceived:     date,
		Status:           domain.DonationStatus(f.Status),
		DonorID:          f.DonorID,
		RecordedByUserID: f.RecordedByUserID,
	}
	if f.ProjectID != "" {
		if v, err := strconv.ParseInt(f.ProjectID, 10, 32); err == nil {
			id := int32(v)
			d.ProjectID = &id
		}
	}
	return d
}

type ProjectForm struct {
	ID            int32
	Title         string `validate:"required"`
	Location      string `validate:"required"`
	Description   string `validate:"required"`
	Status        string `validate:"required,oneof=PLANNING ACTIVE ON_HOLD COMPLETED"`
	StartDate     string `validate:"required"`
	EndDate       string // optional, independent of status
	CoordinatorID string `validate:"required"`
}

func parseProjectForm(r *http.Request) (ProjectForm, map[string]string) {
	form := ProjectForm{
		ID:            formInt32(r, "ID"),
		Title:         r.PostFormValue("Title"),
		Location:      r.PostFormValue("Location"),
		Description:   r.PostFormValue("Description"),
		Status:        r.PostFormValue("Status"),
		StartDate:     r.PostFormValue("StartDate"),
		EndDate:       r.PostFormValue("EndDate"),
		CoordinatorID: r.PostFormValue("CoordinatorID"),
	}
	errs := fieldErrors(validate.Struct(form))
	if _, err := time.Parse(dateLayout, form.StartDate); form.StartDate != "" && err != nil {
		errs["StartDate"] = "start date must be a valid date"
	}
	if form.EndDate != "" {
		if _, err := time.Parse(dateLayout, form.EndDate); err != nil {
			errs["EndDate"] = "end date must be a valid date"
		}
	}
	return form, errs
}

func (f ProjectForm) ToDomain() *domain.ReliefProject {
	start, _ := time.Parse(dateLayout, f.StartDate)
	p := &domain.ReliefProject{
		ID:            f.ID,
		Title:         f.Title,
		Location:      f.Location,
		Description:   f.Description,
		Status:        domain.ProjectStatus(f.Status),
		StartDate:     start,
		CoordinatorID: f.CoordinatorID,
	}
	if f.EndDate != "" {
		if end, err := time.Parse(dateLayout, f.EndDate); err == nil {
			p.EndDate = &end
		}
	}
	return p
}

type AssignmentForm struct {
	ID           int32
	Role         string `validate:"required,oneof=LOGISTICS FIELD_SUPPORT ADMIN_SUPPORT SORTER OUTREACH"`
	Status       string `validate:"required,oneof=PENDING ACTIVE COMPLETED ON_HOLD CANCELLED"`
	AssignedDate string // optional; the service substitutes now when empty
	UserID       string `validate:"required"`
	ProjectID    int32  `validate:"gt=0"`
}

func parseAssignmentForm(r *http.Request) (AssignmentForm, map[string]string) {
	form := AssignmentForm{
		ID:           formInt32(r, "ID"),
		Role:         r.PostFormValue("Role"),
		Status:       r.PostFormValue("Status"),
		AssignedDate: r.PostFormValue("AssignedDate"),
		UserID:       r.PostFormValue("UserID"),
		ProjectID:    formInt32(r, "ProjectID"),
	}
	errs := fieldErrors(validate.Struct(form))
	if form.AssignedDate != "" {
		if _, err := time.Parse(dateLayout, form.AssignedDate); err != nil {
			errs["AssignedDate"] = "assigned date must be a valid date"
		}
	}
	return form, errs
}

func (f AssignmentForm) ToDomain() *domain.VolunteerAssignment {
	a := &domain.VolunteerAssignment{
		ID:        f.ID,
		Role:      domain.VolunteerRole(f.Role),
		Status:    domain.AssignmentStatus(f.Status),
		UserID:    f.UserID,
		ProjectID: f.ProjectID,
	}
	if f.AssignedDate != "" {
		if date, err := time.Parse(dateLayout, f.AssignedDate); err == nil {
			a.AssignedDate = date
		}
	}
	return a
}

// IncidentCreateForm deliberately has no status, timestamp, or reporter
// fields; those are pinned by the service.
type IncidentCreateForm struct {
	Title       string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
	Severity    string `validate:"required,oneof=MINOR MODERATE HIGH CRITICAL"`
}

func parseIncidentCreateForm(r *http.Request) (IncidentCreateForm, map[string]string) {
	form := IncidentCreateForm{
		Title:       r.PostFormValue("Title"),
		Location:    r.PostFormValue("Location"),
		Description: r.PostFormValue("Description"),
		Severity:    r.PostFormValue("Severity"),
	}
	return form, fieldErrors(validate.Struct(form))
}

type IncidentEditForm struct {
	ID          int32
	Title       string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
	Severity    string `validate:"required,oneof=MINOR MODERATE HIGH CRITICAL"`
	Status      string `validate:"required,oneof=REPORTED INVESTIGATING ACTIVE_RELIEF RESOLVED FALSE_REPORT"`
}

func parseIncidentEditForm(r *http.Request) (IncidentEditForm, map[string]string) {
	form := IncidentEditForm{
		ID:          formInt32(r, "ID"),
		Title:       r.PostFormValue("Title"),
		Location:    r.PostFormValue("Location"),
		Description: r.PostFormValue("Description"),
		Severity:    r.PostFormValue("Severity"),
		Status:      r.PostFormValue("Status"),
	}
	return form, fieldErrors(validate.Struct(form))
}

func (f IncidentEditForm) ToDomain() *domain.IncidentReport {
	// Timestamp and reporter are intentionally absent here; the service pins
	// them to their stored values.
	return &domain.IncidentReport{
		ID:          f.ID,
		Title:       f.Title,
		Location:    f.Location,
		Description: f.Description,
		Severity:    domain.IncidentSeverity(f.Severity),
		Status:      domain.IncidentStatus(f.Status),
	}
}

// AdminReviewForm is the reduced field set the admin review surface accepts.
type AdminReviewForm struct {
	ReportID    int32
	Status      string `validate:"required,oneof=REPORTED INVESTIGATING ACTIVE_RELIEF RESOLVED FALSE_REPORT"`
	Severity    string `validate:"required,oneof=MINOR MODERATE HIGH CRITICAL"`
	Description string `validate:"required,max=5000"`
}

func parseAdminReviewForm(r *http.Request) (AdminReviewForm, map[string]string) {
	form := AdminReviewForm{
		ReportID:    formInt32(r, "ReportID"),
		Status:      r.PostFormValue("Status"),
		Severity:    r.PostFormValue("Severity"),
		Description: r.PostFormValue("Description"),
	}
	return form, fieldErrors(validate.Struct(form))
}

func formInt32(r *http.Request, field string) int32 {
	v, err := strconv.ParseInt(r.PostFormValue(field), 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}

// parseAmountCents converts a decimal amount like "123.45" into cents.
// An empty amount is zero, which in-kind and service donations use. Signs are
// rejected outright, in the whole and fraction parts alike, and more than two
// fraction digits is an error rather than a silent truncation.
func parseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, errors.New("amount must be a non-negative number")
	}
	cents := int64(units) * 100
	if frac != "" {
		if len(frac) > 2 {
			return 0, errors.New("amount must use at most two decimal places")
		}
		for len(frac) < 2 {
			frac += "0"
		}
		part, err := strconv.ParseUint(frac, 10, 8)
		if err != nil {
			return 0, errors.New("amount must be a non-negative number")
		}
		cents += int64(part)
	}
	return cents, nil
}

// fieldErrors flattens validator output into per-field messages for the view.
func fieldErrors(err error) map[string]string {
	errs := map[string]string{}
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["Form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			errs[fe.Field()] = fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "oneof":
			errs[fe.Field()] = fmt.Sprintf("%s must be one of the listed values", fe.Field())
		case "max":
			errs[fe.Field()] = fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
		case "gt":
			errs[fe.Field()] = fmt.Sprintf("%s must be selected", fe.Field())
		default:
			errs[fe.Field()] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return errs
}
