package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medibook/hospital-api/internal/model"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, user_id, date, hospital, doctor, disease,
			status, prescription, test_report, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.GetDB().ExecContext(ctx, query,
		appointment.ID,
		appointment.UserID,
		appointment.Date,
		appointment.Hospital,
		appointment.Doctor,
		appointment.Disease,
		appointment.Status,
		appointment.Prescription,
		appointment.TestReport,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, user_id, date, hospital, doctor, disease,
			   status, prescription, test_report, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.GetDB().GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, user_id, date, hospital, doctor, disease,
				  status, prescription, test_report, created_at, updated_at
	`
	var appointment model.Appointment
	err := r.GetDB().GetContext(ctx, &appointment, query, status, time.Now(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateDate(ctx context.Context, id uuid.UUID, date time.Time) (*model.Appointment, error) {
	query := `
		UPDATE appointments
		SET date = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, user_id, date, hospital, doctor, disease,
				  status, prescription, test_report, created_at, updated_at
	`
	var appointment model.Appointment
	err := r.GetDB().GetContext(ctx, &appointment, query, date, time.Now(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment date: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT id, user_id, date, hospital, doctor, disease,
			   status, prescription, test_report, created_at, updated_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY date ASC
	`
	appointments := []*model.Appointment{}
	err := r.GetDB().SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
