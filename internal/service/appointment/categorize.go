package appointment

import (
	"sort"
	"time"

	"github.com/medibook/hospital-api/internal/model"
)

// Categorize partitions appointments into upcoming, expired and cancelled
// buckets relative to now. Cancelled dominates temporal expiry: a past-dated
// cancelled appointment lands in the cancelled bucket, not expired. Each
// bucket is sorted ascending by date. Pure function, no I/O.
func Categorize(appointments []*model.Appointment, now time.Time) *model.AppointmentSummary {
	summary := &model.AppointmentSummary{
		Upcoming:  []*model.Appointment{},
		Expired:   []*model.Appointment{},
		Cancelled: []*model.Appointment{},
	}

	for _, appointment := range appointments {
		switch appointment.EffectiveStatus(now) {
		case model.AppointmentStatusCancelled:
			summary.Cancelled = append(summary.Cancelled, appointment)
		case model.AppointmentStatusExpired:
			summary.Expired = append(summary.Expired, appointment)
		default:
			summary.Upcoming = append(summary.Upcoming, appointment)
		}
	}

	sortByDate(summary.Upcoming)
	sortByDate(summary.Expired)
	sortByDate(summary.Cancelled)

	return summary
}

func sortByDate(appointments []*model.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Date.Before(appointments[j].Date)
	})
}
