package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	masterservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/master"

	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateTeam(w http.ResponseWriter, r *http.Request)
	ListTeams(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)

	CreateJobRole(w http.ResponseWriter, r *http.Request)
	ListJobRoles(w http.ResponseWriter, r *http.Request)
	UpdateJobRole(w http.ResponseWriter, r *http.Request)
	DeleteJobRole(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService masterservice.MasterService
}

func NewMasterHandler(masterService masterservice.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== TEAMS ====================

func (h *masterHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateTeam(r.Context(), req)
	if err != nil {
		slog.Error("CreateTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created", result)
}

func (h *masterHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListTeams(r.Context())
	if err != nil {
		slog.Error("ListTeams service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	var req team.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTeam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.masterService.UpdateTeam(r.Context(), req)
	if err != nil {
		slog.Error("UpdateTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated", result)
}

func (h *masterHandlerImpl) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.masterService.DeleteTeam(r.Context(), id); err != nil {
		slog.Error("DeleteTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted", nil)
}

// ==================== JOB ROLES ====================

func (h *masterHandlerImpl) CreateJobRole(w http.ResponseWriter, r *http.Request) {
	var req jobrole.CreateJobRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateJobRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateJobRole(r.Context(), req)
	if err != nil {
		slog.Error("CreateJobRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job role created", result)
}

func (h *masterHandlerImpl) ListJobRoles(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListJobRoles(r.Context())
	if err != nil {
		slog.Error("ListJobRoles service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateJobRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	var req jobrole.UpdateJobRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateJobRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.masterService.UpdateJobRole(r.Context(), req)
	if err != nil {
		slog.Error("UpdateJobRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job role updated", result)
}

func (h *masterHandlerImpl) DeleteJobRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "id is required", nil)
		return
	}

	if err := h.masterService.DeleteJobRole(r.Context(), id); err != nil {
		slog.Error("DeleteJobRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job role deleted", nil)
}
