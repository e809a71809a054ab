package model

import (
	"time"

	"github.com/google/uuid"
)

type RecordType string

const (
	RecordTypePrescription RecordType = "Prescription"
	RecordTypeTestReport   RecordType = "Test Report"
	RecordTypeBoth         RecordType = "Prescription & Test Report"
)

// DeriveRecordType tags an entry from the documents supplied at write
// time. An entry carrying both documents gets the combined tag rather
// than being inferred from field presence at read time.
func DeriveRecordType(prescription, testReport *string) RecordType {
	switch {
	case prescription != nil && testReport != nil:
		return RecordTypeBoth
	case testReport != nil:
		return RecordTypeTestReport
	default:
		return RecordTypePrescription
	}
}

// HealthRecordEntry is one append-only row in a user's aggregated record.
// The record type is fixed at write time from the documents supplied.
type HealthRecordEntry struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	AppointmentID uuid.UUID  `db:"appointment_id" json:"appointment_id"`
	Disease       string     `db:"disease" json:"disease"`
	Prescription  *string    `db:"prescription" json:"prescription,omitempty"`
	TestReport    *string    `db:"test_report" json:"test_report,omitempty"`
	RecordType    RecordType `db:"record_type" json:"record_type"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// HealthRecord is the per-user aggregate the API returns: the ordered
// collection of entries accumulated across report saves.
type HealthRecord struct {
	UserID  uuid.UUID            `json:"user_id"`
	Records []*HealthRecordEntry `json:"records"`
}

// HealthRecordView is an entry flattened with its appointment's date for
// the records listing.
type HealthRecordView struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	AppointmentID uuid.UUID  `db:"appointment_id" json:"appointment_id"`
	Disease       string     `db:"disease" json:"disease"`
	Prescription  *string    `db:"prescription" json:"prescription,omitempty"`
	TestReport    *string    `db:"test_report" json:"test_report,omitempty"`
	Date          time.Time  `db:"date" json:"date"`
	Type          RecordType `db:"record_type" json:"type"`
}
