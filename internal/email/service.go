package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/medibook/hospital-api/internal/model"
)

type Service interface {
	SendAppointmentConfirmation(ctx context.Context, to, name string, appointment *model.Appointment) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendAppointmentConfirmation(ctx context.Context, to, name string, appointment *model.Appointment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Appointment Confirmation")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour appointment with %s at %s on %s is confirmed.\n",
		name,
		appointment.Doctor,
		appointment.Hospital,
		appointment.Date.Format("Mon, 02 Jan 2006 15:04"),
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

type noopService struct{}

// NewNoopService returns a sender that drops all mail. Used when SMTP is
// not configured.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) SendAppointmentConfirmation(context.Context, string, string, *model.Appointment) error {
	return nil
}
