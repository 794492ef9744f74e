package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The stat fakes embed their interfaces; only the methods Stats calls are
// implemented.

type statUserRepo struct {
	user.Repository
	active int
}

func (f *statUserRepo) CountActive(ctx context.Context) (int, error) {
	return f.active, nil
}

type statAttendanceRepo struct {
	attendance.Repository
	byStatus map[attendance.Status]int
}

func (f *statAttendanceRepo) CountByDateAndStatus(ctx context.Context, date time.Time, status attendance.Status) (int, error) {
	return f.byStatus[status], nil
}

type statLeaveRepo struct {
	leave.Repository
	activeToday []leave.LeaveRequest
	pending     int
}

func (f *statLeaveRepo) ListActiveOn(ctx context.Context, date time.Time) ([]leave.LeaveRequest, error) {
	return f.activeToday, nil
}

func (f *statLeaveRepo) CountByStatus(ctx context.Context, status leave.Status) (int, error) {
	return f.pending, nil
}

type statTaskRepo struct {
	task.Repository
	byStatus map[task.Status]int
}

func (f *statTaskRepo) CountByStatus(ctx context.Context, status task.Status) (int, error) {
	return f.byStatus[status], nil
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	svc := &dashboardServiceImpl{
		userRepo: &statUserRepo{active: 42},
		attendanceRepo: &statAttendanceRepo{byStatus: map[attendance.Status]int{
			attendance.StatusAttended: 30,
			attendance.StatusLate:     5,
		}},
		leaveRepo: &statLeaveRepo{
			activeToday: []leave.LeaveRequest{{ID: "l1"}, {ID: "l2"}, {ID: "l3"}},
			pending:     4,
		},
		taskRepo: &statTaskRepo{byStatus: map[task.Status]int{
			task.StatusAssigned:  6,
			task.StatusProgress:  2,
			task.StatusPending:   1,
			task.StatusCompleted: 9,
		}},
		now: func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) },
	}

	stats, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 42, stats.ActiveUsers)
	assert.Equal(t, 30, stats.AttendedToday)
	assert.Equal(t, 5, stats.LateToday)
	assert.Equal(t, 3, stats.OnLeaveToday)
	assert.Equal(t, 4, stats.PendingLeaves)
	assert.Equal(t, 9, stats.CompletedTasks)

	wantOpen := 0
	for _, status := range task.OpenStatuses() {
		wantOpen += map[task.Status]int{
			task.StatusAssigned:  6,
			task.StatusProgress:  2,
			task.StatusPending:   1,
			task.StatusCompleted: 9,
		}[status]
	}
	assert.Equal(t, wantOpen, stats.OpenTasks)
}
