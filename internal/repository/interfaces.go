package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medibook/hospital-api/internal/model"
)

// All repository interfaces in one file
type (
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error)
		UpdateDate(ctx context.Context, id uuid.UUID, date time.Time) (*model.Appointment, error)
		ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error)
	}

	// HealthRecordRepository owns the append-only record log. SaveDocuments
	// updates the appointment's document references and appends the
	// denormalized entry in a single transaction.
	HealthRecordRepository interface {
		SaveDocuments(ctx context.Context, appointmentID uuid.UUID, prescription, testReport *string) (*model.HealthRecordEntry, error)
		ListEntries(ctx context.Context, userID uuid.UUID) ([]*model.HealthRecordEntry, error)
		ListViews(ctx context.Context, userID uuid.UUID) ([]*model.HealthRecordView, error)
	}

	HealthProfileRepository interface {
		GetByUser(ctx context.Context, userID uuid.UUID) (*model.HealthProfile, error)
		Create(ctx context.Context, profile *model.HealthProfile) error
		Replace(ctx context.Context, profile *model.HealthProfile) error
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}
)
