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

func (r *healthProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*model.HealthProfile, error) {
	query := `
		SELECT id, user_id, age, height, weight, blood_pressure, blood_group,
			   chronic_conditions, allergies, smoking, alcohol,
			   emergency_contact, created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1
	`
	var profile model.HealthProfile
	err := r.GetDB().GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("health profile", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health profile: %w", err)
	}
	return &profile, nil
}

func (r *healthProfileRepository) Create(ctx context.Context, profile *model.HealthProfile) error {
	query := `
		INSERT INTO health_profiles (
			id, user_id, age, height, weight, blood_pressure, blood_group,
			chronic_conditions, allergies, smoking, alcohol,
			emergency_contact, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	_, err := r.GetDB().ExecContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Age,
		profile.Height,
		profile.Weight,
		profile.BloodPressure,
		profile.BloodGroup,
		profile.ChronicConditions,
		profile.Allergies,
		profile.Smoking,
		profile.Alcohol,
		profile.EmergencyContact,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create health profile: %w", err)
	}
	return nil
}

// Replace overwrites every stored field for the user's profile.
func (r *healthProfileRepository) Replace(ctx context.Context, profile *model.HealthProfile) error {
	query := `
		UPDATE health_profiles
		SET age = $1, height = $2, weight = $3, blood_pressure = $4,
			blood_group = $5, chronic_conditions = $6, allergies = $7,
			smoking = $8, alcohol = $9, emergency_contact = $10, updated_at = $11
		WHERE user_id = $12
	`
	profile.UpdatedAt = time.Now()

	result, err := r.GetDB().ExecContext(ctx, query,
		profile.Age,
		profile.Height,
		profile.Weight,
		profile.BloodPressure,
		profile.BloodGroup,
		profile.ChronicConditions,
		profile.Allergies,
		profile.Smoking,
		profile.Alcohol,
		profile.EmergencyContact,
		profile.UpdatedAt,
		profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update health profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("health profile", nil)
	}
	return nil
}
