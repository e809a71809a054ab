package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/hospital-api/internal/model"
	appointmentService "github.com/medibook/hospital-api/internal/service/appointment"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	appointment.ID = uuid.New()
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return appointment, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	appointment.Status = status
	return appointment, nil
}

func (r *fakeAppointmentRepo) UpdateDate(_ context.Context, id uuid.UUID, date time.Time) (*model.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	appointment.Date = date
	return appointment, nil
}

func (r *fakeAppointmentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*model.Appointment, error) {
	result := []*model.Appointment{}
	for _, appointment := range r.appointments {
		if appointment.UserID == userID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(_ context.Context, _ *model.User) error { return nil }
func (r *fakeUserRepo) Get(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return nil, apperrors.NotFound("user", nil)
}
func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, apperrors.NotFound("user", nil)
}

func setupRouter() (*gin.Engine, *fakeAppointmentRepo) {
	gin.SetMode(gin.TestMode)

	repo := &fakeAppointmentRepo{appointments: map[uuid.UUID]*model.Appointment{}}
	svc := appointmentService.NewService(repo, &fakeUserRepo{}, nil, nil)
	h := NewHandler(svc)

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine, repo
}

func doJSON(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestScheduleEndpoint(t *testing.T) {
	engine, _ := setupRouter()

	w := doJSON(engine, http.MethodPost, "/api/v1/appointments/schedule", map[string]interface{}{
		"user_id":  uuid.New().String(),
		"date":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"hospital": "City General",
		"doctor":   "Dr. Rao",
		"disease":  "Flu",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "appointment scheduled successfully", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Upcoming", data["status"])
	assert.NotEmpty(t, data["id"])
}

func TestScheduleEndpointMissingField(t *testing.T) {
	engine, _ := setupRouter()

	w := doJSON(engine, http.MethodPost, "/api/v1/appointments/schedule", map[string]interface{}{
		"user_id": uuid.New().String(),
		"date":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"doctor":  "Dr. Rao",
		"disease": "Flu",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "hospital is required", resp["message"])
}

func TestCancelEndpoint(t *testing.T) {
	engine, repo := setupRouter()

	appointment := &model.Appointment{UserID: uuid.New(), Status: model.AppointmentStatusUpcoming}
	require.NoError(t, repo.Create(context.Background(), appointment))

	w := doJSON(engine, http.MethodPatch, fmt.Sprintf("/api/v1/appointments/cancel/%s", appointment.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Cancelled", data["status"])
}

func TestCancelEndpointUnknownID(t *testing.T) {
	engine, _ := setupRouter()

	w := doJSON(engine, http.MethodPatch, fmt.Sprintf("/api/v1/appointments/cancel/%s", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelEndpointMalformedID(t *testing.T) {
	engine, _ := setupRouter()

	w := doJSON(engine, http.MethodPatch, "/api/v1/appointments/cancel/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRescheduleEndpoint(t *testing.T) {
	engine, repo := setupRouter()

	appointment := &model.Appointment{
		UserID: uuid.New(),
		Date:   time.Now().Add(24 * time.Hour),
		Status: model.AppointmentStatusUpcoming,
	}
	require.NoError(t, repo.Create(context.Background(), appointment))

	newDate := time.Now().Add(96 * time.Hour).UTC().Truncate(time.Second)
	w := doJSON(engine, http.MethodPatch, fmt.Sprintf("/api/v1/appointments/reschedule/%s", appointment.ID), map[string]interface{}{
		"new_date": newDate.Format(time.RFC3339),
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.appointments[appointment.ID].Date.Equal(newDate))
}

func TestListForUserEndpointEmpty(t *testing.T) {
	engine, _ := setupRouter()

	w := doJSON(engine, http.MethodGet, fmt.Sprintf("/api/v1/appointments/user/%s", uuid.New()), nil)

	// a user with no appointments gets an empty list, not a 404
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "success", resp["status"])
	assert.Empty(t, resp["data"])
}

func TestSummaryEndpoint(t *testing.T) {
	engine, repo := setupRouter()
	userID := uuid.New()

	past := &model.Appointment{UserID: userID, Date: time.Now().Add(-48 * time.Hour), Status: model.AppointmentStatusUpcoming}
	future := &model.Appointment{UserID: userID, Date: time.Now().Add(48 * time.Hour), Status: model.AppointmentStatusUpcoming}
	cancelled := &model.Appointment{UserID: userID, Date: time.Now().Add(72 * time.Hour), Status: model.AppointmentStatusCancelled}
	for _, a := range []*model.Appointment{past, future, cancelled} {
		require.NoError(t, repo.Create(context.Background(), a))
	}

	w := doJSON(engine, http.MethodGet, fmt.Sprintf("/api/v1/appointments/user/%s/summary", userID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["upcoming"], 1)
	assert.Len(t, data["expired"], 1)
	assert.Len(t, data["cancelled"], 1)
}
