package prescription

import (
	"context"
	"testing"

	"mediflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakePrescriptionRepo struct {
	store map[string]*models.Prescription
}

func (f *fakePrescriptionRepo) Create(p *models.Prescription) error {
	cp := *p
	f.store[p.ID] = &cp
	return nil
}

func (f *fakePrescriptionRepo) GetByID(id string) (*models.Prescription, error) {
	if p, ok := f.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePrescriptionRepo) GetByPatient(patientID string) ([]models.Prescription, error) {
	var out []models.Prescription
	for _, p := range f.store {
		if p.PatientID == patientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePrescriptionRepo) GetByDoctor(doctorID string) ([]models.Prescription, error) {
	var out []models.Prescription
	for _, p := range f.store {
		if p.DoctorID == doctorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePrescriptionRepo) GetByAppointment(appointmentID string) ([]models.Prescription, error) {
	var out []models.Prescription
	for _, p := range f.store {
		if p.AppointmentID == appointmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeApptLookup struct {
	appts map[string]*models.Appointment
}

func (f *fakeApptLookup) Create(a *models.Appointment) error { return nil }
func (f *fakeApptLookup) GetByID(id string) (*models.Appointment, error) {
	return f.appts[id], nil
}
func (f *fakeApptLookup) GetByPatient(id string) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptLookup) GetByDoctor(id, status string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptLookup) GetAll() ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptLookup) GetApprovedTimes(doctorID, date string) ([]string, error) {
	return nil, nil
}
func (f *fakeApptLookup) ConfirmSlot(id, date, timeOfDay string) error { return nil }
func (f *fakeApptLookup) UpdateWithDocument(id string, u bson.M) error { return nil }

type fakeStorage struct {
	uploads map[string]string // attachmentID -> source path
}

func (f *fakeStorage) UploadFile(ctx context.Context, path, folder string) (string, error) {
	id := folder + "/file-" + path
	f.uploads[id] = path
	return id, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	delete(f.uploads, publicID)
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func newPrescriptionFixture() (*DefaultPrescriptionService, *fakeStorage) {
	st := &fakeStorage{uploads: map[string]string{}}
	svc := &DefaultPrescriptionService{
		Repo: &fakePrescriptionRepo{store: map[string]*models.Prescription{}},
		Appointments: &fakeApptLookup{appts: map[string]*models.Appointment{
			"appt-approved": {ID: "appt-approved", DoctorID: "doc-1", PatientID: "pat-1",
				Status: models.StatusApproved},
			"appt-pending": {ID: "appt-pending", DoctorID: "doc-1", PatientID: "pat-1",
				Status: models.StatusPending},
			"appt-completed": {ID: "appt-completed", DoctorID: "doc-1", PatientID: "pat-1",
				Status: models.StatusCompleted},
		}},
		Storage: st,
	}
	return svc, st
}

func TestCreatePrescription(t *testing.T) {
	svc, _ := newPrescriptionFixture()

	input := models.CreatePrescriptionInput{
		AppointmentID: "appt-approved",
		Medications:   []models.Medication{{Name: "Amoxicillin", Dosage: "500mg"}},
		Notes:         "after meals",
	}
	p, err := svc.CreatePrescription("doc-1", input, "")
	require.NoError(t, err)
	assert.Equal(t, "pat-1", p.PatientID)
	assert.Equal(t, "doc-1", p.DoctorID)
	assert.Empty(t, p.AttachmentID)

	// Completed appointments also accept prescriptions.
	input.AppointmentID = "appt-completed"
	_, err = svc.CreatePrescription("doc-1", input, "")
	assert.NoError(t, err)
}

func TestCreatePrescriptionRejections(t *testing.T) {
	svc, _ := newPrescriptionFixture()

	input := models.CreatePrescriptionInput{
		AppointmentID: "appt-approved",
		Medications:   []models.Medication{{Name: "Amoxicillin", Dosage: "500mg"}},
	}

	_, err := svc.CreatePrescription("doc-2", input, "")
	assert.IsType(t, ForbiddenError{}, err)

	input.AppointmentID = "appt-pending"
	_, err = svc.CreatePrescription("doc-1", input, "")
	assert.IsType(t, ValidationError{}, err)

	input.AppointmentID = "missing"
	_, err = svc.CreatePrescription("doc-1", input, "")
	assert.IsType(t, NotFoundError{}, err)
}

func TestCreatePrescriptionWithAttachment(t *testing.T) {
	svc, st := newPrescriptionFixture()

	input := models.CreatePrescriptionInput{
		AppointmentID: "appt-approved",
		Medications:   []models.Medication{{Name: "Amoxicillin", Dosage: "500mg"}},
	}
	p, err := svc.CreatePrescription("doc-1", input, "/tmp/scan.png")
	require.NoError(t, err)
	assert.NotEmpty(t, p.AttachmentID)
	assert.Equal(t, "/tmp/scan.png", st.uploads[p.AttachmentID])

	// No storage configured means attachments are rejected.
	svc.Storage = nil
	_, err = svc.CreatePrescription("doc-1", input, "/tmp/scan.png")
	assert.IsType(t, ValidationError{}, err)
}

func TestGetAttachmentURL(t *testing.T) {
	svc, _ := newPrescriptionFixture()

	input := models.CreatePrescriptionInput{
		AppointmentID: "appt-approved",
		Medications:   []models.Medication{{Name: "Amoxicillin", Dosage: "500mg"}},
	}
	p, err := svc.CreatePrescription("doc-1", input, "/tmp/scan.png")
	require.NoError(t, err)

	url, err := svc.GetAttachmentURL("pat-1", p.ID)
	require.NoError(t, err)
	assert.Contains(t, url, p.AttachmentID)

	_, err = svc.GetAttachmentURL("doc-1", p.ID)
	assert.NoError(t, err, "the issuing doctor may also resolve the attachment")

	_, err = svc.GetAttachmentURL("pat-2", p.ID)
	assert.IsType(t, ForbiddenError{}, err)

	_, err = svc.GetAttachmentURL("pat-1", "missing")
	assert.IsType(t, NotFoundError{}, err)

	// A prescription without an attachment has nothing to resolve.
	bare, err := svc.CreatePrescription("doc-1", input, "")
	require.NoError(t, err)
	_, err = svc.GetAttachmentURL("pat-1", bare.ID)
	assert.IsType(t, NotFoundError{}, err)
}
