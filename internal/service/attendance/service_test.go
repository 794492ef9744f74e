package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.UserID == a.UserID && r.Date.Equal(a.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
	}
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	for _, r := range f.records {
		if r.UserID == userID && r.Date.Equal(date) {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) CountByUserAndStatus(ctx context.Context, userID string, status attendance.Status) (int, error) {
	n := 0
	for _, r := range f.records {
		if r.UserID == userID && r.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) CountByDate(ctx context.Context, date time.Time) (int, error) {
	list, _ := f.ListByDate(ctx, date)
	return len(list), nil
}

func (f *fakeAttendanceRepo) CountByDateAndStatus(ctx context.Context, date time.Time, status attendance.Status) (int, error) {
	n := 0
	for _, r := range f.records {
		if r.Date.Equal(date) && r.Status == status {
			n++
		}
	}
	return n, nil
}

func newTestService(now time.Time) (*attendanceServiceImpl, *fakeAttendanceRepo) {
	repo := &fakeAttendanceRepo{}
	return &attendanceServiceImpl{
		attendanceRepo: repo,
		now:            func() time.Time { return now },
	}, repo
}

func TestAttendanceService_Mark_OnTime(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 2, 8, 7, 0, 0, time.UTC)
	svc, _ := newTestService(checkIn)

	resp, err := svc.Mark(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAttended, resp.Status)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, "08:07 AM", resp.Time)
}

func TestAttendanceService_Mark_AtCutoff(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 2, 8, 15, 59, 0, time.UTC)
	svc, _ := newTestService(checkIn)

	resp, err := svc.Mark(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAttended, resp.Status)
}

func TestAttendanceService_Mark_Late(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 2, 8, 16, 0, 0, time.UTC)
	svc, _ := newTestService(checkIn)

	resp, err := svc.Mark(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestAttendanceService_Mark_AlreadyMarked(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc, _ := newTestService(first)

	original, err := svc.Mark(ctx, "user-1")
	require.NoError(t, err)

	// Second check-in the same day returns the stored record.
	svc.now = func() time.Time { return first.Add(2 * time.Hour) }
	resp, err := svc.Mark(ctx, "user-1")

	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
	assert.Equal(t, original.ID, resp.ID)
	assert.Equal(t, original.Time, resp.Time)
	assert.Equal(t, original.Status, resp.Status)
}

func TestAttendanceService_Mark_SeparateDays(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc, repo := newTestService(day1)

	_, err := svc.Mark(ctx, "user-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	_, err = svc.Mark(ctx, "user-1")
	require.NoError(t, err)

	assert.Len(t, repo.records, 2)
}

func TestAttendanceService_Today_NotMarked(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	resp, err := svc.Today(ctx, "user-1")

	require.NoError(t, err)
	assert.Nil(t, resp.Attendance)
	assert.Equal(t, "not marked", resp.Message)
}

func TestAttendanceService_Today_Marked(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 5, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.Mark(ctx, "user-1")
	require.NoError(t, err)

	resp, err := svc.Today(ctx, "user-1")

	require.NoError(t, err)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, "marked", resp.Message)
	assert.Equal(t, "08:05 AM", resp.Attendance.Time)
}

func TestAttendanceService_Overview(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	repo.records = []attendance.Attendance{
		{UserID: "user-1", Date: now, Status: attendance.StatusAttended},
		{UserID: "user-1", Date: now.AddDate(0, 0, -1), Status: attendance.StatusAttended},
		{UserID: "user-1", Date: now.AddDate(0, 0, -2), Status: attendance.StatusLate},
		{UserID: "user-1", Date: now.AddDate(0, 0, -3), Status: attendance.StatusOnLeave},
		{UserID: "user-2", Date: now, Status: attendance.StatusLate},
	}

	overview, err := svc.Overview(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalAttended)
	assert.Equal(t, 1, overview.TotalLate)
	assert.Equal(t, 1, overview.TotalLeave)
}
