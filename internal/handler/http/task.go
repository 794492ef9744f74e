package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	taskservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/task"

	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Completed(w http.ResponseWriter, r *http.Request)
	MyTasks(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService taskservice.TaskService
}

func NewTaskHandler(taskService taskservice.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// Create implements TaskHandler. Accepts multipart form data with an optional
// assignment PDF.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req task.CreateRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if file != nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	result, err := h.taskService.Create(r.Context(), adminID, req)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", result)
}

// Today implements TaskHandler.
func (h *taskHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.TodayTasks(r.Context())
	if err != nil {
		slog.Error("Today tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Open implements TaskHandler.
func (h *taskHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.OpenTasks(r.Context())
	if err != nil {
		slog.Error("Open tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Completed implements TaskHandler.
func (h *taskHandlerImpl) Completed(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.CompletedTasks(r.Context())
	if err != nil {
		slog.Error("Completed tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyTasks implements TaskHandler. The open query parameter hides finished
// tasks.
func (h *taskHandlerImpl) MyTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	openOnly := r.URL.Query().Get("open") == "true"

	result, err := h.taskService.MyTasks(r.Context(), userID, openOnly)
	if err != nil {
		slog.Error("MyTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Submit implements TaskHandler. Accepts multipart form data with an optional
// submission PDF.
func (h *taskHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req task.SubmitRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	file, fileHeader, err := r.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if file != nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	}

	result, err := h.taskService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task submitted", result)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.UpdateStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateStatus task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", result)
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}
