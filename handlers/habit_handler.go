package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"harmoniaAPI/apidate"
	"harmoniaAPI/internal/types/habit"
	"harmoniaAPI/services"
)

type HabitHandler struct {
	habitService *services.HabitService
	content      *services.ContentService
}

func NewHabitHandler(habitService *services.HabitService, content *services.ContentService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
		content:      content,
	}
}

// Toggle reports success purely through the status code. Clients treat any
// 2xx as done and never parse a body.
func (h *HabitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	habitID, ok := pathID(w, r, "id")
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

	if err := h.habitService.Toggle(ctx, habitID, day); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			respondWithError(w, http.StatusNotFound, "Habit not found")
			return
		}
		log.Printf("Toggle Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to toggle habit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HabitHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	habitID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	history, err := h.habitService.History(ctx, habitID)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			respondWithError(w, http.StatusNotFound, "Habit not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, history)
}

func (h *HabitHandler) AddHabit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req habit.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := h.habitService.CreateHabit(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, status)
}

// SuggestHabits serves the onboarding starter packs from the content
// catalog. No persistence is involved.
func (h *HabitHandler) SuggestHabits(w http.ResponseWriter, r *http.Request) {
	var req habit.SuggestHabitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	respondWithJSON(w, http.StatusOK, h.content.SuggestHabits(req.Objective))
}
