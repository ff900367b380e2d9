package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validReport() Report {
	return Report{
		Description: "Flood on Main St",
		Latitude:    40.7,
		Longitude:   -74.0,
		Category:    CategoryNaturalDisaster,
		Status:      StatusReported,
	}
}

func TestValidate_ValidReport(t *testing.T) {
	report := validReport()
	assert.NoError(t, report.Validate())
}

func TestValidate_DescriptionRequired(t *testing.T) {
	report := validReport()
	report.Description = "   "

	err := report.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Description is required")
}

func TestValidate_DescriptionMaxLength(t *testing.T) {
	report := validReport()
	report.Description = strings.Repeat("x", 501)

	err := report.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Description cannot be more than 500 characters")

	report.Description = strings.Repeat("x", 500)
	assert.NoError(t, report.Validate())
}

func TestValidate_CoordinateBounds(t *testing.T) {
	report := validReport()
	report.Latitude = -90
	report.Longitude = 180
	assert.NoError(t, report.Validate(), "bounds are inclusive")

	report.Latitude = 90.0001
	err := report.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Latitude must be between -90 and 90")

	report = validReport()
	report.Longitude = -180.0001
	err = report.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Longitude must be between -180 and 180")
}

func TestValidate_EnumMembership(t *testing.T) {
	report := validReport()
	report.Category = "Sorcery"
	report.Status = "Closed"
	report.Urgency = "Meh"

	err := report.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Sorcery is not a valid category")
	assert.Contains(t, err.Error(), "Closed is not a valid status")
	assert.Contains(t, err.Error(), "Meh is not a valid urgency")
}

func TestValidate_UrgencyOptional(t *testing.T) {
	report := validReport()
	report.Urgency = ""
	assert.NoError(t, report.Validate())

	report.Urgency = UrgencyCritical
	assert.NoError(t, report.Validate())
}

func TestValidate_JoinsAllViolations(t *testing.T) {
	report := Report{
		Latitude:  100,
		Longitude: 200,
		Category:  "Nope",
		Status:    StatusReported,
	}

	err := report.Validate()
	assert.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, 4, len(validationErr.Messages))
	assert.Equal(t, strings.Join(validationErr.Messages, ", "), err.Error())
}

func TestBeforeCreate_AppliesDefaults(t *testing.T) {
	report := Report{
		Description: "  Streetlight down  ",
		Latitude:    51.5,
		Longitude:   -0.12,
	}

	err := report.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "Streetlight down", report.Description)
	assert.Equal(t, CategoryOther, report.Category)
	assert.Equal(t, StatusReported, report.Status)
	assert.False(t, report.CreatedAt.IsZero())
}

func TestBeforeCreate_KeepsProvidedValues(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	report := validReport()
	report.Status = StatusVerified
	report.CreatedAt = at

	err := report.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, CategoryNaturalDisaster, report.Category)
	assert.Equal(t, StatusVerified, report.Status)
	assert.Equal(t, at, report.CreatedAt)
}

func TestBeforeCreate_RejectsInvalidRecord(t *testing.T) {
	report := Report{
		Description: "Fire",
		Latitude:    91,
		Longitude:   0,
	}

	err := report.BeforeCreate(nil)
	assert.Error(t, err)
}

func TestBeforeUpdate_RejectsInvalidStatus(t *testing.T) {
	report := validReport()
	report.Status = "Closed"

	err := report.BeforeUpdate(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Closed is not a valid status")
}

func TestEnumLists(t *testing.T) {
	assert.Equal(t, 6, len(Categories()))
	assert.Equal(t, 4, len(Statuses()))
	assert.Equal(t, 4, len(Urgencies()))

	for _, c := range Categories() {
		assert.True(t, c.IsValid())
	}
	for _, s := range Statuses() {
		assert.True(t, s.IsValid())
	}
	for _, u := range Urgencies() {
		assert.True(t, u.IsValid())
	}
}
