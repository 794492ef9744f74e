package http

import (
	"log/slog"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"
	dashboardservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/dashboard"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboardservice.DashboardService
}

func NewDashboardHandler(dashboardService dashboardservice.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler. Admin only.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
