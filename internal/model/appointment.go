package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "Upcoming"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"

	// AppointmentStatusExpired is derived at read time from the scheduled
	// date and is never persisted.
	AppointmentStatusExpired AppointmentStatus = "Expired"
)

type Appointment struct {
	Base
	UserID       uuid.UUID         `db:"user_id" json:"user_id"`
	Date         time.Time         `db:"date" json:"date"`
	Hospital     string            `db:"hospital" json:"hospital"`
	Doctor       string            `db:"doctor" json:"doctor"`
	Disease      string            `db:"disease" json:"disease"`
	Status       AppointmentStatus `db:"status" json:"status"`
	Prescription *string           `db:"prescription" json:"prescription,omitempty"`
	TestReport   *string           `db:"test_report" json:"test_report,omitempty"`
}

// EffectiveStatus resolves the derived status at read time. A cancelled
// appointment stays cancelled regardless of its date.
func (a *Appointment) EffectiveStatus(now time.Time) AppointmentStatus {
	if a.Status == AppointmentStatusCancelled {
		return AppointmentStatusCancelled
	}
	if a.Date.Before(now) {
		return AppointmentStatusExpired
	}
	return AppointmentStatusUpcoming
}

type ScheduleAppointmentRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Hospital string    `json:"hospital" validate:"required"`
	Doctor   string    `json:"doctor" validate:"required"`
	Disease  string    `json:"disease" validate:"required"`
}

type RescheduleAppointmentRequest struct {
	NewDate time.Time `json:"new_date" validate:"required"`
}

type SaveReportsRequest struct {
	Prescription *string `json:"prescription"`
	TestReport   *string `json:"test_report"`
}

// AppointmentSummary partitions a user's appointments into the three
// dashboard buckets, each sorted ascending by date.
type AppointmentSummary struct {
	Upcoming  []*Appointment `json:"upcoming"`
	Expired   []*Appointment `json:"expired"`
	Cancelled []*Appointment `json:"cancelled"`
}
