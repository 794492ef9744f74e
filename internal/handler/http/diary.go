package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/diary"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	diaryservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/diary"

	"github.com/go-chi/chi/v5"
)

type DiaryHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	MyDiaries(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteOwn(w http.ResponseWriter, r *http.Request)
}

type diaryHandlerImpl struct {
	diaryService diaryservice.DiaryService
}

func NewDiaryHandler(diaryService diaryservice.DiaryService) DiaryHandler {
	return &diaryHandlerImpl{
		diaryService: diaryService,
	}
}

// Submit implements DiaryHandler. Accepts multipart form data with an
// optional attachment.
func (h *diaryHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req diary.SubmitRequest

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

	result, err := h.diaryService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit diary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Diary submitted", result)
}

// ListAll implements DiaryHandler.
func (h *diaryHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.diaryService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAll diaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyDiaries implements DiaryHandler.
func (h *diaryHandlerImpl) MyDiaries(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.diaryService.MyDiaries(r.Context(), userID)
	if err != nil {
		slog.Error("MyDiaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements DiaryHandler. Accepts multipart form data with an
// optional reply attachment.
func (h *diaryHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req diary.UpdateStatusRequest

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
	req.AdminID = adminID

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

	result, err := h.diaryService.UpdateStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateStatus diary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Diary updated", result)
}

// Delete implements DiaryHandler.
func (h *diaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.diaryService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete diary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Diary deleted", nil)
}

// DeleteOwn implements DiaryHandler. Deletes one of the caller's own
// entries.
func (h *diaryHandlerImpl) DeleteOwn(w http.ResponseWriter, r *http.Request) {
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

	if err := h.diaryService.DeleteOwn(r.Context(), id, userID); err != nil {
		slog.Error("DeleteOwn diary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Diary deleted", nil)
}
