package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/water"
	"harmoniaAPI/services"
)

type WaterHandler struct {
	waterService *services.WaterService
}

func NewWaterHandler(waterService *services.WaterService) *WaterHandler {
	return &WaterHandler{
		waterService: waterService,
	}
}

func (h *WaterHandler) AddWaterLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req water.CreateWaterLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.waterService.AddWaterLog(ctx, userID, req.AmountMl)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidWaterAmount):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *WaterHandler) ListWaterLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	dateStr := r.URL.Query().Get("log_date")
	if dateStr == "" {
		dateStr = apidate.Today()
	}
	day, err := apidate.ParseDay(dateStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := h.waterService.ListWaterLogs(ctx, userID, day)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, logs)
}

// DeleteWaterLog responds 204 on success; the client only removes the row
// from its local list when it sees that status.
func (h *WaterHandler) DeleteWaterLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.waterService.DeleteWaterLog(ctx, logID); err != nil {
		if errors.Is(err, services.ErrWaterLogNotFound) {
			respondWithError(w, http.StatusNotFound, "Water log not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
