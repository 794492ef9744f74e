package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/calendar"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	calendarservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/calendar"
)

type CalendarHandler interface {
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendarservice.CalendarService
}

func NewCalendarHandler(calendarService calendarservice.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// CreateEvent implements CalendarHandler. Admin only.
func (h *calendarHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.calendarService.CreateEvent(r.Context(), req)
	if err != nil {
		slog.Error("CreateEvent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created", result)
}

// ListEvents implements CalendarHandler.
func (h *calendarHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendarService.ListEvents(r.Context())
	if err != nil {
		slog.Error("ListEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
