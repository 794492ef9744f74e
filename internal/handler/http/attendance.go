package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	attendanceservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/attendance"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Sheet(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceservice.AttendanceService
}

func NewAttendanceHandler(attendanceService attendanceservice.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler. A repeated check-in returns the stored
// record with 409.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), userID)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyMarked) {
			response.ConflictWithData(w, "Attendance already recorded for today", result)
			return
		}
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.attendanceService.Today(r.Context(), userID)
	if err != nil {
		slog.Error("Today attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.attendanceService.History(r.Context(), userID)
	if err != nil {
		slog.Error("Attendance history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements AttendanceHandler.
func (h *attendanceHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.attendanceService.Overview(r.Context(), userID)
	if err != nil {
		slog.Error("Attendance overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Sheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) Sheet(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Sheet(r.Context())
	if err != nil {
		slog.Error("Attendance sheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ByDate implements AttendanceHandler. Defaults to today when no date query
// parameter is given.
func (h *attendanceHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	result, err := h.attendanceService.ByDate(r.Context(), date)
	if err != nil {
		slog.Error("Attendance by date service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
