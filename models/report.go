package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Category string

const (
	CategoryFire            Category = "Fire"
	CategoryMedical         Category = "Medical"
	CategoryPolice          Category = "Police"
	CategoryNaturalDisaster Category = "Natural Disaster"
	CategoryInfrastructure  Category = "Infrastructure"
	CategoryOther           Category = "Other"
)

type Status string

const (
	StatusReported   Status = "Reported"
	StatusVerified   Status = "Verified"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// Categories returns every accepted category value.
func Categories() []Category {
	return []Category{
		CategoryFire,
		CategoryMedical,
		CategoryPolice,
		CategoryNaturalDisaster,
		CategoryInfrastructure,
		CategoryOther,
	}
}

// Statuses returns every accepted status value.
func Statuses() []Status {
	return []Status{StatusReported, StatusVerified, StatusInProgress, StatusResolved}
}

// Urgencies returns every accepted urgency value.
func Urgencies() []Urgency {
	return []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFire, CategoryMedical, CategoryPolice, CategoryNaturalDisaster,
		CategoryInfrastructure, CategoryOther:
		return true
	}
	return false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReported, StatusVerified, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Report represents a geotagged crisis report
// @Description Full crisis report model
type Report struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Description  string    `json:"description" gorm:"type:text"`
	Latitude     float64   `json:"latitude" gorm:"index:idx_reports_lat_lng,priority:1"`
	Longitude    float64   `json:"longitude" gorm:"index:idx_reports_lat_lng,priority:2"`
	Category     Category  `json:"category" gorm:"default:Other"`
	Status       Status    `json:"status" gorm:"default:Reported"`
	Title        string    `json:"title,omitempty"`
	LocationText string    `json:"locationText,omitempty" gorm:"column:location_text"`
	Urgency      Urgency   `json:"urgency,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportCreate is the request payload for creating a report
// @Description Payload for creating a crisis report
// Latitude and Longitude are pointers so an absent coordinate can be told
// apart from a legitimate 0.
type ReportCreate struct {
	Description  string   `json:"description" example:"Flood on Main St"`
	Latitude     *float64 `json:"latitude" example:"40.7"`
	Longitude    *float64 `json:"longitude" example:"-74.0"`
	Category     Category `json:"category" example:"Natural Disaster"`
	Title        string   `json:"title,omitempty"`
	LocationText string   `json:"locationText,omitempty"`
	Urgency      Urgency  `json:"urgency,omitempty"`
}

// ReportStatusUpdate is the request payload for the status update endpoint
type ReportStatusUpdate struct {
	Status Status `json:"status" example:"Resolved"`
}

// ValidationError collects every violated field constraint of a single write.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validate checks every field constraint and returns a ValidationError
// listing all violations, or nil when the record is well formed.
func (r *Report) Validate() error {
	var messages []string

	if strings.TrimSpace(r.Description) == "" {
		messages = append(messages, "Description is required")
	} else if len([]rune(r.Description)) > 500 {
		messages = append(messages, "Description cannot be more than 500 characters")
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		messages = append(messages, "Latitude must be between -90 and 90")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		messages = append(messages, "Longitude must be between -180 and 180")
	}
	if !r.Category.IsValid() {
		messages = append(messages, fmt.Sprintf("%s is not a valid category", r.Category))
	}
	if !r.Status.IsValid() {
		messages = append(messages, fmt.Sprintf("%s is not a valid status", r.Status))
	}
	if r.Urgency != "" && !r.Urgency.IsValid() {
		messages = append(messages, fmt.Sprintf("%s is not a valid urgency", r.Urgency))
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// BeforeCreate applies the schema defaults then validates, so an invalid
// record is rejected before any SQL is issued.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)
	if r.Category == "" {
		r.Category = CategoryOther
	}
	if r.Status == "" {
		r.Status = StatusReported
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r.Validate()
}

// BeforeUpdate re-validates the full record on every update.
func (r *Report) BeforeUpdate(tx *gorm.DB) error {
	return r.Validate()
}
