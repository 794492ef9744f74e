package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
)

type AttendanceService interface {
	// Mark records today's check-in for the user. When a record already
	// exists the existing record comes back with ErrAlreadyMarked so the
	// handler can return it alongside the conflict.
	Mark(ctx context.Context, userID string) (attendance.MarkResponse, error)

	// Today reports whether the user has checked in today.
	Today(ctx context.Context, userID string) (attendance.TodayResponse, error)

	// History lists the user's attendance records, newest first.
	History(ctx context.Context, userID string) ([]attendance.RecordResponse, error)

	// Overview aggregates the user's attendance counts.
	Overview(ctx context.Context, userID string) (attendance.Overview, error)

	// Sheet lists every record with user and team fields. Admin only.
	Sheet(ctx context.Context) ([]attendance.RecordResponse, error)

	// ByDate lists records for one calendar day. Admin only.
	ByDate(ctx context.Context, date time.Time) ([]attendance.RecordResponse, error)
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.Repository

	// now is swappable for tests.
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.Repository) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Mark implements AttendanceService.
func (s *attendanceServiceImpl) Mark(ctx context.Context, userID string) (attendance.MarkResponse, error) {
	now := s.now()
	today := attendance.DateOf(now)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.MarkResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.ToMarkResponse(*existing), attendance.ErrAlreadyMarked
	}

	record := attendance.Attendance{
		UserID:  userID,
		Date:    today,
		CheckIn: attendance.FormatCheckIn(now),
		Status:  attendance.DeriveStatus(now),
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		// A concurrent check-in can slip past the precheck; the unique
		// constraint catches it and the stored record wins.
		if errors.Is(err, attendance.ErrAlreadyMarked) {
			if stored, getErr := s.attendanceRepo.GetByUserAndDate(ctx, userID, today); getErr == nil && stored != nil {
				return attendance.ToMarkResponse(*stored), attendance.ErrAlreadyMarked
			}
			return attendance.MarkResponse{}, attendance.ErrAlreadyMarked
		}
		return attendance.MarkResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	return attendance.ToMarkResponse(created), nil
}

// Today implements AttendanceService.
func (s *attendanceServiceImpl) Today(ctx context.Context, userID string) (attendance.TodayResponse, error) {
	today := attendance.DateOf(s.now())

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing == nil {
		return attendance.TodayResponse{Message: "not marked"}, nil
	}

	resp := attendance.ToMarkResponse(*existing)
	return attendance.TodayResponse{
		Attendance: &resp,
		Message:    "marked",
	}, nil
}

// History implements AttendanceService.
func (s *attendanceServiceImpl) History(ctx context.Context, userID string) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return attendance.ToRecordResponses(records), nil
}

// Overview implements AttendanceService.
func (s *attendanceServiceImpl) Overview(ctx context.Context, userID string) (attendance.Overview, error) {
	overview := attendance.Overview{UserID: userID}

	counts := map[attendance.Status]*int{
		attendance.StatusAttended: &overview.TotalAttended,
		attendance.StatusOnLeave:  &overview.TotalLeave,
		attendance.StatusLate:     &overview.TotalLate,
	}

	for status, dst := range counts {
		n, err := s.attendanceRepo.CountByUserAndStatus(ctx, userID, status)
		if err != nil {
			return attendance.Overview{}, fmt.Errorf("failed to count %s attendance: %w", status, err)
		}
		*dst = n
	}

	return overview, nil
}

// Sheet implements AttendanceService.
func (s *attendanceServiceImpl) Sheet(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance sheet: %w", err)
	}

	return attendance.ToRecordResponses(records), nil
}

// ByDate implements AttendanceService.
func (s *attendanceServiceImpl) ByDate(ctx context.Context, date time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, attendance.DateOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	return attendance.ToRecordResponses(records), nil
}
