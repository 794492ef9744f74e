package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	notificationservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/notification"

	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	Broadcast(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notificationservice.NotificationService
}

func NewNotificationHandler(notificationService notificationservice.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// Broadcast implements NotificationHandler.
func (h *notificationHandlerImpl) Broadcast(w http.ResponseWriter, r *http.Request) {
	senderID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req notification.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Broadcast decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SenderID = senderID

	result, err := h.notificationService.Broadcast(r.Context(), req)
	if err != nil {
		slog.Error("Broadcast service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification broadcast", result)
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.notificationService.List(r.Context(), userID)
	if err != nil {
		slog.Error("List notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	result, err := h.notificationService.MarkRead(r.Context(), id, userID)
	if err != nil {
		slog.Error("MarkRead service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", result)
}

// Clear implements NotificationHandler.
func (h *notificationHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	if err := h.notificationService.Clear(r.Context(), userID); err != nil {
		slog.Error("Clear notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications cleared", nil)
}
