package health

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medibook/hospital-api/internal/model"
	"github.com/medibook/hospital-api/internal/repository"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

type Service struct {
	records  repository.HealthRecordRepository
	profiles repository.HealthProfileRepository
}

func NewService(records repository.HealthRecordRepository, profiles repository.HealthProfileRepository) *Service {
	return &Service{
		records:  records,
		profiles: profiles,
	}
}

// SaveReports attaches the supplied document URLs to the appointment and
// appends an entry to the owning user's health record, then returns the
// full aggregated record. A nil reference leaves the stored appointment
// value unchanged.
func (s *Service) SaveReports(ctx context.Context, appointmentID uuid.UUID, req *model.SaveReportsRequest) (*model.HealthRecord, error) {
	if req.Prescription == nil && req.TestReport == nil {
		return nil, apperrors.Validation("at least one document is required", nil)
	}

	entry, err := s.records.SaveDocuments(ctx, appointmentID, req.Prescription, req.TestReport)
	if err != nil {
		return nil, err
	}

	entries, err := s.records.ListEntries(ctx, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load health record: %w", err)
	}

	return &model.HealthRecord{UserID: entry.UserID, Records: entries}, nil
}

// ListRecords returns the user's record entries flattened with each
// originating appointment's date.
func (s *Service) ListRecords(ctx context.Context, userID uuid.UUID) ([]*model.HealthRecordView, error) {
	views, err := s.records.ListViews(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, apperrors.NotFound("health records", nil)
	}
	return views, nil
}

// UpsertProfile stores the user's profile with full-replace semantics and
// reports whether a new profile was created.
func (s *Service) UpsertProfile(ctx context.Context, req *model.UpsertHealthProfileRequest) (*model.HealthProfile, bool, error) {
	profile := &model.HealthProfile{
		UserID:            req.UserID,
		Age:               req.Age,
		Height:            req.Height,
		Weight:            req.Weight,
		BloodPressure:     req.BloodPressure,
		BloodGroup:        req.BloodGroup,
		ChronicConditions: req.ChronicConditions,
		Allergies:         req.Allergies,
		Smoking:           req.Smoking,
		Alcohol:           req.Alcohol,
		EmergencyContact:  req.EmergencyContact,
	}

	existing, err := s.profiles.GetByUser(ctx, req.UserID)
	if apperrors.IsNotFound(err) {
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, false, fmt.Errorf("failed to create health profile: %w", err)
		}
		return profile, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up health profile: %w", err)
	}

	profile.Base = existing.Base
	if err := s.profiles.Replace(ctx, profile); err != nil {
		return nil, false, fmt.Errorf("failed to update health profile: %w", err)
	}
	return profile, false, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*model.HealthProfile, error) {
	return s.profiles.GetByUser(ctx, userID)
}
