package health

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/hospital-api/internal/model"
	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

// appointmentDocs mirrors the document refs stored on an appointment row.
type appointmentDocs struct {
	userID       uuid.UUID
	prescription *string
	testReport   *string
}

type fakeRecordRepo struct {
	appointments map[uuid.UUID]*appointmentDocs
	entries      []*model.HealthRecordEntry
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{appointments: map[uuid.UUID]*appointmentDocs{}}
}

func (r *fakeRecordRepo) add(appointmentID, userID uuid.UUID) {
	r.appointments[appointmentID] = &appointmentDocs{userID: userID}
}

// SaveDocuments applies the repository's semantics: a nil reference leaves
// the stored appointment value unchanged.
func (r *fakeRecordRepo) SaveDocuments(_ context.Context, appointmentID uuid.UUID, prescription, testReport *string) (*model.HealthRecordEntry, error) {
	docs, ok := r.appointments[appointmentID]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	if prescription != nil {
		docs.prescription = prescription
	}
	if testReport != nil {
		docs.testReport = testReport
	}
	entry := &model.HealthRecordEntry{
		ID:            uuid.New(),
		UserID:        docs.userID,
		AppointmentID: appointmentID,
		Disease:       "Flu",
		Prescription:  prescription,
		TestReport:    testReport,
		RecordType:    model.DeriveRecordType(prescription, testReport),
		CreatedAt:     time.Now(),
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeRecordRepo) ListEntries(_ context.Context, userID uuid.UUID) ([]*model.HealthRecordEntry, error) {
	result := []*model.HealthRecordEntry{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeRecordRepo) ListViews(_ context.Context, userID uuid.UUID) ([]*model.HealthRecordView, error) {
	result := []*model.HealthRecordView{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, &model.HealthRecordView{
				ID:            entry.ID,
				AppointmentID: entry.AppointmentID,
				Disease:       entry.Disease,
				Prescription:  entry.Prescription,
				TestReport:    entry.TestReport,
				Type:          entry.RecordType,
				Date:          entry.CreatedAt,
			})
		}
	}
	return result, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*model.HealthProfile
}

func (r *fakeProfileRepo) GetByUser(_ context.Context, userID uuid.UUID) (*model.HealthProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, apperrors.NotFound("health profile", nil)
	}
	return profile, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *model.HealthProfile) error {
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) Replace(_ context.Context, profile *model.HealthProfile) error {
	if _, ok := r.profiles[profile.UserID]; !ok {
		return apperrors.NotFound("health profile", nil)
	}
	profile.UpdatedAt = time.Now()
	r.profiles[profile.UserID] = profile
	return nil
}

func newTestService() (*Service, *fakeRecordRepo, *fakeProfileRepo) {
	records := newFakeRecordRepo()
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]*model.HealthProfile{}}
	return NewService(records, profiles), records, profiles
}

func TestSaveReportsAppendsEntries(t *testing.T) {
	svc, records, _ := newTestService()

	userID := uuid.New()
	appointmentID := uuid.New()
	records.add(appointmentID, userID)

	prescription := "https://files.example.com/rx.pdf"
	record, err := svc.SaveReports(context.Background(), appointmentID, &model.SaveReportsRequest{
		Prescription: &prescription,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, record.UserID)
	require.Len(t, record.Records, 1)
	assert.Equal(t, model.RecordTypePrescription, record.Records[0].RecordType)

	testReport := "https://files.example.com/labs.pdf"
	record, err = svc.SaveReports(context.Background(), appointmentID, &model.SaveReportsRequest{
		TestReport: &testReport,
	})
	require.NoError(t, err)

	// each call appends a new tagged entry; earlier entries are untouched
	require.Len(t, record.Records, 2)
	assert.Equal(t, model.RecordTypePrescription, record.Records[0].RecordType)
	assert.Equal(t, model.RecordTypeTestReport, record.Records[1].RecordType)
	assert.Nil(t, record.Records[1].Prescription)
}

func TestSaveReportsBothDocuments(t *testing.T) {
	svc, records, _ := newTestService()

	appointmentID := uuid.New()
	records.add(appointmentID, uuid.New())

	prescription := "rx"
	testReport := "labs"
	record, err := svc.SaveReports(context.Background(), appointmentID, &model.SaveReportsRequest{
		Prescription: &prescription,
		TestReport:   &testReport,
	})
	require.NoError(t, err)
	require.Len(t, record.Records, 1)
	assert.Equal(t, model.RecordTypeBoth, record.Records[0].RecordType)
}

func TestSaveReportsKeepsExistingDocuments(t *testing.T) {
	svc, records, _ := newTestService()

	appointmentID := uuid.New()
	records.add(appointmentID, uuid.New())

	testReport := "https://files.example.com/labs.pdf"
	_, err := svc.SaveReports(context.Background(), appointmentID, &model.SaveReportsRequest{
		TestReport: &testReport,
	})
	require.NoError(t, err)

	// a prescription-only save must not clear the stored test report
	prescription := "https://files.example.com/rx.pdf"
	_, err = svc.SaveReports(context.Background(), appointmentID, &model.SaveReportsRequest{
		Prescription: &prescription,
	})
	require.NoError(t, err)

	docs := records.appointments[appointmentID]
	require.NotNil(t, docs.testReport)
	assert.Equal(t, testReport, *docs.testReport)
	require.NotNil(t, docs.prescription)
	assert.Equal(t, prescription, *docs.prescription)
}

func TestSaveReportsRequiresADocument(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SaveReports(context.Background(), uuid.New(), &model.SaveReportsRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSaveReportsUnknownAppointment(t *testing.T) {
	svc, _, _ := newTestService()

	prescription := "rx"
	_, err := svc.SaveReports(context.Background(), uuid.New(), &model.SaveReportsRequest{
		Prescription: &prescription,
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListRecordsEmptyIsNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListRecords(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpsertProfileCreatesThenReplaces(t *testing.T) {
	svc, _, _ := newTestService()
	userID := uuid.New()

	req := &model.UpsertHealthProfileRequest{
		UserID:            userID,
		Age:               34,
		Height:            172,
		Weight:            68,
		BloodPressure:     "120/80",
		BloodGroup:        "O+",
		ChronicConditions: []string{"Asthma"},
		Allergies:         []string{"Penicillin"},
		Smoking:           false,
		Alcohol:           true,
		EmergencyContact:  "+911234567890",
	}

	profile, created, err := svc.UpsertProfile(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)
	firstID := profile.ID

	// second upsert replaces the stored fields wholesale
	req.Weight = 70
	req.ChronicConditions = nil
	profile, created, err = svc.UpsertProfile(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, firstID, profile.ID)
	assert.Equal(t, float64(70), profile.Weight)
	assert.Empty(t, profile.ChronicConditions)

	stored, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, float64(70), stored.Weight)
	assert.Empty(t, stored.ChronicConditions)
	assert.Equal(t, []string{"Penicillin"}, []string(stored.Allergies))
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}
