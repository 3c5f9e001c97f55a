package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"harmoniaAPI/apidate"
	"harmoniaAPI/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	dateStr := r.URL.Query().Get("date_str")
	if dateStr == "" {
		dateStr = apidate.Today()
	}
	day, err := apidate.ParseDay(dateStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.dashboardService.GetDashboard(ctx, userID, day)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}
