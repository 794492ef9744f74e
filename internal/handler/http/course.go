package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/course"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	courseservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/course"

	"github.com/go-chi/chi/v5"
)

type CourseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type courseHandlerImpl struct {
	courseService courseservice.CourseService
}

func NewCourseHandler(courseService courseservice.CourseService) CourseHandler {
	return &courseHandlerImpl{
		courseService: courseService,
	}
}

// decodeCourseForm parses the multipart course payload with its optional
// cover image.
func decodeCourseForm(w http.ResponseWriter, r *http.Request) (course.UpsertRequest, bool) {
	var req course.UpsertRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return req, false
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return req, false
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return req, false
	}
	if file != nil {
		req.File = file
		req.FileHeader = fileHeader
	}

	return req, true
}

// Create implements CourseHandler.
func (h *courseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCourseForm(w, r)
	if !ok {
		return
	}
	if req.File != nil {
		defer req.File.Close()
	}

	result, err := h.courseService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create course service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Course created", result)
}

// Get implements CourseHandler.
func (h *courseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	result, err := h.courseService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get course service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CourseHandler.
func (h *courseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.courseService.List(r.Context())
	if err != nil {
		slog.Error("List courses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements CourseHandler.
func (h *courseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	req, ok := decodeCourseForm(w, r)
	if !ok {
		return
	}
	if req.File != nil {
		defer req.File.Close()
	}
	req.ID = id

	result, err := h.courseService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update course service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Course updated", result)
}

// Delete implements CourseHandler.
func (h *courseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.courseService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete course service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Course deleted", nil)
}
