package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	userservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/user"

	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService userservice.UserService
}

func NewUserHandler(userService userservice.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Me implements UserHandler. Returns the authenticated user's profile.
func (h *userHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements UserHandler. Accepts multipart form data with a
// JSON payload in the "data" field and an optional "profile_image" file.
func (h *userHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid form data", nil)
		return
	}

	var req user.UpdateProfileRequest
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			slog.Error("UpdateProfile decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.UserID = userID

	file, fileHeader, err := r.FormFile("profile_image")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to read profile image", "error", err)
		response.BadRequest(w, "Invalid profile image upload", nil)
		return
	}

	result, err := h.userService.UpdateProfile(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// Get implements UserHandler. Returns one user's profile by id. Admin only.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	result, err := h.userService.GetProfile(r.Context(), id)
	if err != nil {
		slog.Error("Get user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements UserHandler. Supports ?status=active|inactive filtering.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var active *bool
	switch r.URL.Query().Get("status") {
	case "active":
		v := true
		active = &v
	case "inactive":
		v := false
		active = &v
	}

	result, err := h.userService.List(r.Context(), active)
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetStatus implements UserHandler. Toggles a user's active flag.
func (h *userHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.userService.SetStatus(r.Context(), req); err != nil {
		slog.Error("SetStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User status updated", nil)
}

// Delete implements UserHandler. Removes an account. Admin only.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
