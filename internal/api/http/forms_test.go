package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"123.45", 12345, true},
		{"123", 12300, true},
		{"0.5", 50, true},
		{"0.05", 5, true},
		{"", 0, true},
		{" 250.00 ", 25000, true},
		{"-5", 0, false},
		{"+5", 0, false},
		{"0.-9", 0, false},
		{"0.+9", 0, false},
		{"-0.50", 0, false},
		{"1.999", 0, false},
		{"abc", 0, false},
		{"1.x", 0, false},
	}
	for _, c := range cases {
		got, err := parseAmountCents(c.in)
		if c.ok {
			assert.NoError(t, err, "input %q", c.in)
			assert.Equal(t, c.want, got, "input %q", c.in)
		} else {
			assert.Error(t, err, "input %q", c.in)
		}
	}
}

func TestParseDonationForm_IgnoresUnknownFields(t *testing.T) {
	req := postForm("/Donations/Create", url.Values{
		"Type":             {"FINANCIAL"},
		"Amount":           {"100.00"},
		"Description":      {"Pledge"},
		"DateReceived":     {"2025-03-10"},
		"Status":           {"RECEIVED"},
		"DonorID":          {"7"},
		"RecordedByUserID": {"user-1"},
		// Only whitelisted scalars are read; anything else is dropped.
		"Donor.FirstName": {"Forged"},
		"ID.Extra":        {"junk"},
	})

	form, errs := parseDonationForm(req)
	assert.Empty(t, errs)

	d := form.ToDomain()
	assert.Equal(t, int64(10000), d.AmountCents)
	assert.Equal(t, int32(7), d.DonorID)
	assert.Nil(t, d.ProjectID)
	assert.Nil(t, d.Donor)
}

func TestParseIncidentEditForm_HasNoPinnedFields(t *testing.T) {
	req := postForm("/IncidentReports/Edit/3", url.Values{
		"ID":          {"3"},
		"Title":       {"Edited"},
		"Location":    {"Umlazi"},
		"Description": {"d"},
		"Severity":    {"HIGH"},
		"Status":      {"INVESTIGATING"},
		// Submitted values for pinned columns never reach the domain object.
		"Timestamp":        {"2030-01-01"},
		"ReportedByUserID": {"attacker"},
	})

	form, errs := parseIncidentEditForm(req)
	assert.Empty(t, errs)

	report := form.ToDomain()
	assert.True(t, report.Timestamp.IsZero())
	assert.Empty(t, report.ReportedByUserID)
}

func TestParseAdminReviewForm_Validation(t *testing.T) {
	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		req := postForm("/Admin/EditIncidentReport/3", url.Values{
			"ReportID":    {"3"},
			"Status":      {"NOT_A_STATUS"},
			"Severity":    {"HIGH"},
			"Description": {"d"},
		})
		_, errs := parseAdminReviewForm(req)
		assert.Contains(t, errs, "Status")
	})

	t.Run("RejectsOverlongDescription", func(t *testing.T) {
		long := make([]byte, 5001)
		for i := range long {
			long[i] = 'x'
		}
		req := postForm("/Admin/EditIncidentReport/3", url.Values{
			"ReportID":    {"3"},
			"Status":      {"RESOLVED"},
			"Severity":    {"HIGH"},
			"Description": {string(long)},
		})
		_, errs := parseAdminReviewForm(req)
		assert.Contains(t, errs, "Description")
	})
}
