package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollms/internal/domain/models"
)

type fakeAttendanceRepo struct {
	records map[string]models.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]models.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "/" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att models.Attendance) error {
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att models.Attendance) error {
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*models.Attendance, error) {
	if att, ok := f.records[recordKey(employeeID, date)]; ok {
		copied := att
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(_ context.Context, employeeID string, month, year int) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && int(att.Date.Month()) == month && att.Date.Year() == year {
			out = append(out, att)
		}
	}
	return out, nil
}

func day(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func seed(repo *fakeAttendanceRepo, att models.Attendance) {
	repo.records[recordKey(att.EmployeeID, att.Date)] = att
}

func TestSummarize(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewService(repo, nil)

	seed(repo, models.Attendance{EmployeeID: "EMP001", Date: day(1), Status: models.AttendancePresent, OvertimeHours: 2})
	seed(repo, models.Attendance{EmployeeID: "EMP001", Date: day(2), Status: models.AttendancePresent, OvertimeHours: 1.5})
	seed(repo, models.Attendance{EmployeeID: "EMP001", Date: day(3), Status: models.AttendanceAbsent})
	// A present day retroactively flagged LOP counts in both tallies.
	seed(repo, models.Attendance{EmployeeID: "EMP001", Date: day(4), Status: models.AttendancePresent, LossOfPay: true})
	seed(repo, models.Attendance{EmployeeID: "EMP001", Date: day(7), Status: models.AttendanceLOP, LossOfPay: true})
	// Another employee's month must not leak in.
	seed(repo, models.Attendance{EmployeeID: "EMP002", Date: day(1), Status: models.AttendancePresent})
	// Same employee, different month.
	seed(repo, models.Attendance{EmployeeID: "EMP001", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Status: models.AttendancePresent})

	summary, err := svc.Summarize(context.Background(), "EMP001", 7, 2025)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 2, summary.LOPDays)
	assert.InDelta(t, 3.5, summary.TotalOvertime, 1e-9)
	assert.Equal(t, 5, summary.TotalDays)
}

func TestSummarizeEmptyMonth(t *testing.T) {
	svc := NewService(newFakeAttendanceRepo(), nil)

	summary, err := svc.Summarize(context.Background(), "EMP001", 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceSummary{}, summary)
}

func TestMarkCreatesRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewService(repo, nil)

	att, err := svc.Mark(context.Background(), "EMP001", day(1), "09:00:00", "18:00:00")
	require.NoError(t, err)

	assert.NotEmpty(t, att.AttendanceID)
	assert.Equal(t, models.AttendancePresent, att.Status)

	stored, err := repo.GetByEmployeeAndDate(context.Background(), "EMP001", day(1))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "09:00:00", stored.CheckInTime)
}

func TestMarkWithoutCheckInIsAbsent(t *testing.T) {
	svc := NewService(newFakeAttendanceRepo(), nil)

	att, err := svc.Mark(context.Background(), "EMP001", day(1), "", "")
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceAbsent, att.Status)
}

func TestMarkUpdatesExistingRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewService(repo, nil)

	first, err := svc.Mark(context.Background(), "EMP001", day(1), "", "")
	require.NoError(t, err)

	updated, err := svc.Mark(context.Background(), "EMP001", day(1), "10:00:00", "19:00:00")
	require.NoError(t, err)

	assert.Equal(t, first.AttendanceID, updated.AttendanceID)
	assert.Equal(t, models.AttendancePresent, updated.Status)
	assert.Len(t, repo.records, 1)
}

func TestMarkLOP(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewService(repo, nil)

	// On a day never marked, LOP creates the record.
	created, err := svc.MarkLOP(context.Background(), "EMP001", day(10))
	require.NoError(t, err)
	assert.True(t, created.LossOfPay)
	assert.Equal(t, models.AttendanceLOP, created.Status)

	// On an existing day it flips the flag in place.
	_, err = svc.Mark(context.Background(), "EMP001", day(11), "09:00:00", "")
	require.NoError(t, err)

	flagged, err := svc.MarkLOP(context.Background(), "EMP001", day(11))
	require.NoError(t, err)
	assert.True(t, flagged.LossOfPay)
	assert.Len(t, repo.records, 2)
}
