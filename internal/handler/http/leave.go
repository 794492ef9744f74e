package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	leaveservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/leave"

	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	Historical(w http.ResponseWriter, r *http.Request)
	ActiveOn(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leaveservice.LeaveService
}

func NewLeaveHandler(leaveService leaveservice.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	result, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// MyLeaves implements LeaveHandler.
func (h *leaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.leaveService.MyLeaves(r.Context(), userID)
	if err != nil {
		slog.Error("MyLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Upcoming implements LeaveHandler.
func (h *leaveHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.Upcoming(r.Context())
	if err != nil {
		slog.Error("Upcoming leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Historical implements LeaveHandler.
func (h *leaveHandlerImpl) Historical(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.Historical(r.Context())
	if err != nil {
		slog.Error("Historical leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ActiveOn implements LeaveHandler. Lists approved leaves covering the
// date given as ?date=YYYY-MM-DD.
func (h *leaveHandlerImpl) ActiveOn(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.BadRequest(w, "date is required", nil)
		return
	}

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.leaveService.ActiveOn(r.Context(), date)
	if err != nil {
		slog.Error("ActiveOn leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.UpdateStatus(r.Context(), adminID, req)
	if err != nil {
		slog.Error("UpdateStatus leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", result)
}

// Delete implements LeaveHandler.
func (h *leaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}
