package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medibook/hospital-api/internal/email"
	"github.com/medibook/hospital-api/internal/model"
	"github.com/medibook/hospital-api/internal/repository"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
	"github.com/medibook/hospital-api/pkg/messaging"
)

// Lifecycle event channels published for downstream consumers (reminders,
// analytics).
const (
	EventChannel = "appointments"

	EventScheduled   = "appointment_scheduled"
	EventCancelled   = "appointment_cancelled"
	EventRescheduled = "appointment_rescheduled"
)

type Service struct {
	repo      repository.AppointmentRepository
	users     repository.UserRepository
	publisher messaging.Publisher
	emailSvc  email.Service
}

func NewService(repo repository.AppointmentRepository, users repository.UserRepository,
	publisher messaging.Publisher, emailSvc email.Service) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		publisher: publisher,
		emailSvc:  emailSvc,
	}
}

// Schedule creates an appointment in the Upcoming state. All five fields
// are required; the scheduled date is accepted as-is, even in the past.
func (s *Service) Schedule(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.Appointment, error) {
	if err := validateScheduleRequest(req); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		UserID:   req.UserID,
		Date:     req.Date,
		Hospital: req.Hospital,
		Doctor:   req.Doctor,
		Disease:  req.Disease,
		Status:   model.AppointmentStatusUpcoming,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.publish(ctx, EventScheduled, appointment)
	s.sendConfirmation(ctx, appointment)

	return appointment, nil
}

// Cancel sets the status to Cancelled unconditionally. Repeated calls are
// no-ops state-wise; cancelling a past-dated appointment is allowed.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.UpdateStatus(ctx, id, model.AppointmentStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventCancelled, appointment)
	return appointment, nil
}

// Reschedule replaces the date only; status and the remaining fields are
// untouched.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, newDate time.Time) (*model.Appointment, error) {
	if newDate.IsZero() {
		return nil, apperrors.Validation("new date is required", nil)
	}

	appointment, err := s.repo.UpdateDate(ctx, id, newDate)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventRescheduled, appointment)
	return appointment, nil
}

// ListForUser returns the user's appointments ordered by date ascending.
// A user with no appointments gets an empty slice, not an error.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Summary fetches the user's appointments and partitions them into the
// dashboard buckets relative to now.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID, now time.Time) (*model.AppointmentSummary, error) {
	appointments, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Categorize(appointments, now), nil
}

func validateScheduleRequest(req *model.ScheduleAppointmentRequest) error {
	switch {
	case req.UserID == uuid.Nil:
		return apperrors.Validation("user ID is required", nil)
	case req.Date.IsZero():
		return apperrors.Validation("date is required", nil)
	case req.Hospital == "":
		return apperrors.Validation("hospital is required", nil)
	case req.Doctor == "":
		return apperrors.Validation("doctor is required", nil)
	case req.Disease == "":
		return apperrors.Validation("disease is required", nil)
	}
	return nil
}

// publish emits a lifecycle event. Delivery is best effort: a broker fault
// never fails the request.
func (s *Service) publish(ctx context.Context, eventType string, appointment *model.Appointment) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, EventChannel, messaging.Event{
		Type:    eventType,
		Payload: appointment,
	})
	if err != nil {
		log.Error().Err(err).
			Str("event", eventType).
			Str("appointment_id", appointment.ID.String()).
			Msg("failed to publish appointment event")
	}
}

func (s *Service) sendConfirmation(ctx context.Context, appointment *model.Appointment) {
	if s.emailSvc == nil {
		return
	}

	user, err := s.users.Get(ctx, appointment.UserID)
	if err != nil {
		log.Error().Err(err).
			Str("user_id", appointment.UserID.String()).
			Msg("failed to resolve user for confirmation email")
		return
	}

	if err := s.emailSvc.SendAppointmentConfirmation(ctx, user.Email, user.Name, appointment); err != nil {
		log.Error().Err(err).
			Str("appointment_id", appointment.ID.String()).
			Msg("failed to send confirmation email")
	}
}
