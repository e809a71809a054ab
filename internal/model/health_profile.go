package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HealthProfile is a per-user snapshot of vitals and lifestyle attributes.
// Every update replaces the stored fields wholesale.
type HealthProfile struct {
	Base
	UserID            uuid.UUID      `db:"user_id" json:"user_id"`
	Age               int            `db:"age" json:"age"`
	Height            float64        `db:"height" json:"height"`
	Weight            float64        `db:"weight" json:"weight"`
	BloodPressure     string         `db:"blood_pressure" json:"blood_pressure"`
	BloodGroup        string         `db:"blood_group" json:"blood_group"`
	ChronicConditions pq.StringArray `db:"chronic_conditions" json:"chronic_conditions"`
	Allergies         pq.StringArray `db:"allergies" json:"allergies"`
	Smoking           bool           `db:"smoking" json:"smoking"`
	Alcohol           bool           `db:"alcohol" json:"alcohol"`
	EmergencyContact  string         `db:"emergency_contact" json:"emergency_contact"`
}

type UpsertHealthProfileRequest struct {
	UserID            uuid.UUID `json:"user_id" validate:"required"`
	Age               int       `json:"age" validate:"required"`
	Height            float64   `json:"height" validate:"required"`
	Weight            float64   `json:"weight" validate:"required"`
	BloodPressure     string    `json:"blood_pressure" validate:"required"`
	BloodGroup        string    `json:"blood_group" validate:"required"`
	ChronicConditions []string  `json:"chronic_conditions"`
	Allergies         []string  `json:"allergies"`
	Smoking           bool      `json:"smoking"`
	Alcohol           bool      `json:"alcohol"`
	EmergencyContact  string    `json:"emergency_contact" validate:"required"`
}
