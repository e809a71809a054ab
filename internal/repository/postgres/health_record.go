package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medibook/hospital-api/internal/model"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

// SaveDocuments attaches the supplied document URLs to the appointment and
// appends the denormalized record entry. Both writes run in one transaction
// so a fault cannot leave the appointment updated without its record entry.
// A nil document reference means "leave the stored value unchanged".
func (r *healthRecordRepository) SaveDocuments(ctx context.Context, appointmentID uuid.UUID, prescription, testReport *string) (*model.HealthRecordEntry, error) {
	var entry *model.HealthRecordEntry

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE appointments
			SET prescription = COALESCE($1, prescription),
				test_report  = COALESCE($2, test_report),
				updated_at   = $3
			WHERE id = $4
			RETURNING id, user_id, date, hospital, doctor, disease,
					  status, prescription, test_report, created_at, updated_at
		`
		var appointment model.Appointment
		err := tx.GetContext(ctx, &appointment, query, prescription, testReport, time.Now(), appointmentID)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("appointment", err)
		}
		if err != nil {
			return fmt.Errorf("failed to update appointment documents: %w", err)
		}

		entry = &model.HealthRecordEntry{
			ID:            uuid.New(),
			UserID:        appointment.UserID,
			AppointmentID: appointment.ID,
			Disease:       appointment.Disease,
			Prescription:  prescription,
			TestReport:    testReport,
			RecordType:    model.DeriveRecordType(prescription, testReport),
			CreatedAt:     time.Now(),
		}

		insert := `
			INSERT INTO health_record_entries (
				id, user_id, appointment_id, disease,
				prescription, test_report, record_type, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err = tx.ExecContext(ctx, insert,
			entry.ID,
			entry.UserID,
			entry.AppointmentID,
			entry.Disease,
			entry.Prescription,
			entry.TestReport,
			entry.RecordType,
			entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to append health record entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *healthRecordRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]*model.HealthRecordEntry, error) {
	query := `
		SELECT id, user_id, appointment_id, disease,
			   prescription, test_report, record_type, created_at
		FROM health_record_entries
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	entries := []*model.HealthRecordEntry{}
	err := r.GetDB().SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list health record entries: %w", err)
	}
	return entries, nil
}

func (r *healthRecordRepository) ListViews(ctx context.Context, userID uuid.UUID) ([]*model.HealthRecordView, error) {
	query := `
		SELECT e.id, e.appointment_id, e.disease,
			   e.prescription, e.test_report, e.record_type, a.date
		FROM health_record_entries e
		JOIN appointments a ON a.id = e.appointment_id
		WHERE e.user_id = $1
		ORDER BY e.created_at ASC
	`
	views := []*model.HealthRecordView{}
	err := r.GetDB().SelectContext(ctx, &views, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	return views, nil
}
