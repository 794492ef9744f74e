package calendar

import (
	"context"
	"fmt"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/calendar"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

type CalendarService interface {
	// CreateEvent adds a shared calendar entry. Admin only.
	CreateEvent(ctx context.Context, req calendar.CreateEventRequest) (calendar.EventResponse, error)

	// ListEvents returns the shared calendar, soonest first.
	ListEvents(ctx context.Context) ([]calendar.EventResponse, error)
}

type calendarServiceImpl struct {
	calendarRepo calendar.Repository
}

func NewCalendarService(calendarRepo calendar.Repository) CalendarService {
	return &calendarServiceImpl{
		calendarRepo: calendarRepo,
	}
}

// CreateEvent implements CalendarService.
func (s *calendarServiceImpl) CreateEvent(ctx context.Context, req calendar.CreateEventRequest) (calendar.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.EventResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.calendarRepo.Create(ctx, calendar.Event{
		Date:        date,
		IsLeaveDay:  req.IsLeaveDay,
		Description: req.Description,
	})
	if err != nil {
		return calendar.EventResponse{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return calendar.ToEventResponse(created), nil
}

// ListEvents implements CalendarService.
func (s *calendarServiceImpl) ListEvents(ctx context.Context) ([]calendar.EventResponse, error) {
	events, err := s.calendarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	return calendar.ToEventResponses(events), nil
}
