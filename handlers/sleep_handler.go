package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"harmoniaAPI/internal/types/sleep"
	"harmoniaAPI/services"
)

type SleepHandler struct {
	sleepService *services.SleepService
}

func NewSleepHandler(sleepService *services.SleepService) *SleepHandler {
	return &SleepHandler{
		sleepService: sleepService,
	}
}

func (h *SleepHandler) AddSleepLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req sleep.CreateSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.sleepService.CreateSleepLog(ctx, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidSleepRange), errors.Is(err, services.ErrInvalidSleepQuality):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *SleepHandler) ListSleepLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit query parameter")
			return
		}
		limit = parsed
	}

	logs, err := h.sleepService.ListSleepLogs(ctx, userID, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, logs)
}
