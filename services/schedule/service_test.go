package schedule

import (
	"testing"

	"mediflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeScheduleRepo struct {
	intervals []models.ScheduleInterval
}

func (f *fakeScheduleRepo) Create(interval *models.ScheduleInterval) error {
	f.intervals = append(f.intervals, *interval)
	return nil
}

func (f *fakeScheduleRepo) GetByID(id string) (*models.ScheduleInterval, error) {
	for i := range f.intervals {
		if f.intervals[i].ID == id {
			iv := f.intervals[i]
			return &iv, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) GetByDoctor(doctorID string) ([]models.ScheduleInterval, error) {
	var out []models.ScheduleInterval
	for _, iv := range f.intervals {
		if iv.DoctorID == doctorID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetCovering(doctorID, date string) ([]models.ScheduleInterval, error) {
	var out []models.ScheduleInterval
	for _, iv := range f.intervals {
		if iv.DoctorID == doctorID && iv.Covers(date) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(interval *models.ScheduleInterval) error {
	for i := range f.intervals {
		if f.intervals[i].ID == interval.ID {
			f.intervals[i] = *interval
			return nil
		}
	}
	return nil
}

func (f *fakeScheduleRepo) Delete(id string) error {
	for i := range f.intervals {
		if f.intervals[i].ID == id {
			f.intervals = append(f.intervals[:i], f.intervals[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountRepo) Create(account *models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetByRole(role string) ([]models.Account, error) {
	var out []models.Account
	for _, a := range f.accounts {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) UpdateWithDocument(id string, update bson.M) error { return nil }
func (f *fakeAccountRepo) Delete(id string) error                           { return nil }

type fakeAppointmentTimes struct {
	approved map[string][]string // doctorID|date -> times
}

func (f *fakeAppointmentTimes) Create(a *models.Appointment) error            { return nil }
func (f *fakeAppointmentTimes) GetByID(id string) (*models.Appointment, error) { return nil, nil }
func (f *fakeAppointmentTimes) GetByPatient(id string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentTimes) GetByDoctor(id, status string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentTimes) GetAll() ([]models.Appointment, error) { return nil, nil }
func (f *fakeAppointmentTimes) GetApprovedTimes(doctorID, date string) ([]string, error) {
	return f.approved[doctorID+"|"+date], nil
}
func (f *fakeAppointmentTimes) ConfirmSlot(id, date, timeOfDay string) error     { return nil }
func (f *fakeAppointmentTimes) UpdateWithDocument(id string, u bson.M) error     { return nil }

func newTestService() (*DefaultScheduleService, *fakeScheduleRepo, *fakeAppointmentTimes) {
	schedules := &fakeScheduleRepo{}
	appts := &fakeAppointmentTimes{approved: map[string][]string{}}
	accounts := &fakeAccountRepo{accounts: map[string]*models.Account{
		"doc-1": {ID: "doc-1", Role: models.RoleDoctor, Name: "Dr. Okafor"},
		"pat-1": {ID: "pat-1", Role: models.RolePatient},
	}}
	svc := &DefaultScheduleService{Repo: schedules, Accounts: accounts, Appointments: appts}
	return svc, schedules, appts
}

func TestAssignScheduleNormalizesTimes(t *testing.T) {
	svc, _, _ := newTestService()

	iv, err := svc.AssignSchedule(models.AssignScheduleRequest{
		DoctorID:       "doc-1",
		StartDate:      "2024-01-01",
		EndDate:        "2024-01-31",
		DailyStartTime: "9:00 AM",
		DailyEndTime:   "5:00 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", iv.DailyStartTime)
	assert.Equal(t, "17:00", iv.DailyEndTime)
	assert.NotEmpty(t, iv.ID)
}

func TestAssignScheduleRejectsBadPayloads(t *testing.T) {
	svc, _, _ := newTestService()

	base := models.AssignScheduleRequest{
		DoctorID:       "doc-1",
		StartDate:      "2024-01-01",
		EndDate:        "2024-01-31",
		DailyStartTime: "09:00",
		DailyEndTime:   "17:00",
	}

	req := base
	req.StartDate = "01/01/2024"
	_, err := svc.AssignSchedule(req)
	assert.IsType(t, ValidationError{}, err)

	req = base
	req.StartDate = "2024-02-01"
	req.EndDate = "2024-01-01"
	_, err = svc.AssignSchedule(req)
	assert.IsType(t, ValidationError{}, err)

	req = base
	req.DailyStartTime = "17:00"
	req.DailyEndTime = "09:00"
	_, err = svc.AssignSchedule(req)
	assert.IsType(t, ValidationError{}, err)

	req = base
	req.DailyStartTime = "25:00"
	_, err = svc.AssignSchedule(req)
	assert.IsType(t, ValidationError{}, err)

	req = base
	req.DoctorID = "pat-1"
	_, err = svc.AssignSchedule(req)
	assert.IsType(t, NotFoundError{}, err)
}

func TestAssignScheduleRejectsOverlappingWorkingIntervals(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.AssignSchedule(models.AssignScheduleRequest{
		DoctorID: "doc-1", StartDate: "2024-01-01", EndDate: "2024-01-31",
		DailyStartTime: "09:00", DailyEndTime: "17:00",
	})
	require.NoError(t, err)

	_, err = svc.AssignSchedule(models.AssignScheduleRequest{
		DoctorID: "doc-1", StartDate: "2024-01-20", EndDate: "2024-02-10",
		DailyStartTime: "10:00", DailyEndTime: "16:00",
	})
	assert.IsType(t, ConflictError{}, err)

	// A holiday may overlap a working interval freely.
	_, err = svc.AssignSchedule(models.AssignScheduleRequest{
		DoctorID: "doc-1", StartDate: "2024-01-10", EndDate: "2024-01-12",
		DailyStartTime: "09:00", DailyEndTime: "17:00", IsHoliday: true,
	})
	assert.NoError(t, err)
}

func TestFindCoveringIntervalHolidayWins(t *testing.T) {
	svc, schedules, _ := newTestService()
	schedules.intervals = []models.ScheduleInterval{
		{ID: "w", DoctorID: "doc-1", StartDate: "2024-01-01", EndDate: "2024-01-10",
			DailyStartTime: "09:00", DailyEndTime: "17:00"},
		{ID: "h", DoctorID: "doc-1", StartDate: "2024-01-05", EndDate: "2024-01-06",
			DailyStartTime: "09:00", DailyEndTime: "17:00", IsHoliday: true},
	}

	// Inside the working range but on the holiday: no availability.
	iv, err := svc.FindCoveringInterval("doc-1", "2024-01-05")
	require.NoError(t, err)
	assert.Nil(t, iv)

	// Outside the holiday the working interval applies.
	iv, err = svc.FindCoveringInterval("doc-1", "2024-01-04")
	require.NoError(t, err)
	require.NotNil(t, iv)
	assert.Equal(t, "w", iv.ID)

	// Uncovered date.
	iv, err = svc.FindCoveringInterval("doc-1", "2024-02-01")
	require.NoError(t, err)
	assert.Nil(t, iv)
}

func TestDaySlotsMarksBookedTimes(t *testing.T) {
	svc, schedules, appts := newTestService()
	schedules.intervals = []models.ScheduleInterval{
		{ID: "w", DoctorID: "doc-1", StartDate: "2024-01-01", EndDate: "2024-01-10",
			DailyStartTime: "09:00", DailyEndTime: "10:00"},
	}
	appts.approved["doc-1|2024-01-03"] = []string{"09:15", "9:45 AM"}

	resp, err := svc.DaySlots("doc-1", "2024-01-03")
	require.NoError(t, err)
	assert.True(t, resp.Available)
	require.Len(t, resp.Slots, 4)

	assert.False(t, resp.Slots[0].Booked)
	assert.True(t, resp.Slots[1].Booked)
	assert.False(t, resp.Slots[2].Booked)
	assert.True(t, resp.Slots[3].Booked)
}

func TestDaySlotsNoAvailability(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.DaySlots("doc-1", "2024-01-03")
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Slots)
	assert.NotEmpty(t, resp.Message)
}

func TestDaySlotsRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.DaySlots("doc-1", "03-01-2024")
	assert.IsType(t, ValidationError{}, err)
}

func TestUpdateScheduleExcludesSelfFromOverlapCheck(t *testing.T) {
	svc, _, _ := newTestService()

	iv, err := svc.AssignSchedule(models.AssignScheduleRequest{
		DoctorID: "doc-1", StartDate: "2024-01-01", EndDate: "2024-01-31",
		DailyStartTime: "09:00", DailyEndTime: "17:00",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSchedule(iv.ID, models.AssignScheduleRequest{
		DoctorID: "doc-1", StartDate: "2024-01-01", EndDate: "2024-01-31",
		DailyStartTime: "08:00", DailyEndTime: "16:00",
	})
	require.NoError(t, err)
	assert.Equal(t, iv.ID, updated.ID)
	assert.Equal(t, "08:00", updated.DailyStartTime)

	_, err = svc.UpdateSchedule("missing", models.AssignScheduleRequest{
		DoctorID: "doc-1", StartDate: "2024-03-01", EndDate: "2024-03-31",
		DailyStartTime: "09:00", DailyEndTime: "17:00",
	})
	assert.IsType(t, NotFoundError{}, err)
}
