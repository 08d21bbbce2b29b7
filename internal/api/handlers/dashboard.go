package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary is admin-only; the route is wrapped in RequireAdmin.
func (h *DashboardHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		summary, err := h.dashboardService.Summary(r.Context(), entry.Token)

		if err != nil {
			slog.Error("Failed to load dashboard summary",
				slog.Int64("userId", entry.Session.UserID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)

	}
}
