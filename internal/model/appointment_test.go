package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		status AppointmentStatus
		want   AppointmentStatus
	}{
		{"future upcoming", now.Add(24 * time.Hour), AppointmentStatusUpcoming, AppointmentStatusUpcoming},
		{"past becomes expired", now.Add(-24 * time.Hour), AppointmentStatusUpcoming, AppointmentStatusExpired},
		{"cancelled stays cancelled even in the past", now.Add(-24 * time.Hour), AppointmentStatusCancelled, AppointmentStatusCancelled},
		{"cancelled stays cancelled even in the future", now.Add(24 * time.Hour), AppointmentStatusCancelled, AppointmentStatusCancelled},
		{"exact now is still upcoming", now, AppointmentStatusUpcoming, AppointmentStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Date: tt.date, Status: tt.status}
			assert.Equal(t, tt.want, a.EffectiveStatus(now))
		})
	}
}
