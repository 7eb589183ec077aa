package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plant is the canonical plant record and the single source of truth for
// the API payload shapes. InsertPlant and UpdatePlant below are projections
// of this definition (entity minus server-assigned fields, and the same set
// with every field optional); TestProjectionsMatchEntity guards against the
// three drifting apart.
//
// Wire format: domain fields are camelCase, server timestamps snake_case.
type Plant struct {
	ID                  string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string    `gorm:"not null" json:"name"`
	Species             string    `gorm:"not null" json:"species"`
	LastWatered         *string   `json:"lastWatered"`
	WateringInterval    int       `gorm:"not null" json:"wateringInterval"`
	LastFertilized      *string   `json:"lastFertilized"`
	FertilizingInterval int       `gorm:"not null" json:"fertilizingInterval"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Plant) TableName() string { return "plants" }

// BeforeCreate assigns the server-generated identifier. IDs are never
// supplied by callers and never reused.
func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// InsertPlant is the create payload: the entity minus id and timestamps.
// Intervals are measured in days and must be positive.
type InsertPlant struct {
	Name                string  `json:"name" validate:"required"`
	Species             string  `json:"species" validate:"required"`
	LastWatered         *string `json:"lastWatered"`
	WateringInterval    int     `json:"wateringInterval" validate:"required,gt=0"`
	LastFertilized      *string `json:"lastFertilized"`
	FertilizingInterval int     `json:"fertilizingInterval" validate:"required,gt=0"`
	Notes               *string `json:"notes"`
}

// ToPlant maps the payload onto a fresh entity; id and timestamps are
// assigned by the persistence layer.
func (in InsertPlant) ToPlant() Plant {
	return Plant{
		Name:                in.Name,
		Species:             in.Species,
		LastWatered:         in.LastWatered,
		WateringInterval:    in.WateringInterval,
		LastFertilized:      in.LastFertilized,
		FertilizingInterval: in.FertilizingInterval,
		Notes:               in.Notes,
	}
}

// UpdatePlant is the partial-update payload: the same field set as
// InsertPlant with every field optional. Absent fields leave the stored
// value untouched.
type UpdatePlant struct {
	Name                *string `json:"name" validate:"omitempty,min=1"`
	Species             *string `json:"species" validate:"omitempty,min=1"`
	LastWatered         *string `json:"lastWatered"`
	WateringInterval    *int    `json:"wateringInterval" validate:"omitempty,gt=0"`
	LastFertilized      *string `json:"lastFertilized"`
	FertilizingInterval *int    `json:"fertilizingInterval" validate:"omitempty,gt=0"`
	Notes               *string `json:"notes"`
}

// ApplyTo copies the provided fields onto an existing entity.
func (up UpdatePlant) ApplyTo(p *Plant) {
	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.Species != nil {
		p.Species = *up.Species
	}
	if up.LastWatered != nil {
		p.LastWatered = up.LastWatered
	}
	if up.WateringInterval != nil {
		p.WateringInterval = *up.WateringInterval
	}
	if up.LastFertilized != nil {
		p.LastFertilized = up.LastFertilized
	}
	if up.FertilizingInterval != nil {
		p.FertilizingInterval = *up.FertilizingInterval
	}
	if up.Notes != nil {
		p.Notes = up.Notes
	}
}
