package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"harmoniaAPI/internal/types/coach"
	"harmoniaAPI/services"
)

type CoachHandler struct {
	coachService *services.CoachService
}

func NewCoachHandler(coachService *services.CoachService) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
	}
}

// Ask returns either {answer} on success or the structured {detail} error
// body; the client decodes the two shapes as a tagged union.
func (h *CoachHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var req coach.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.coachService.Ask(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			respondWithDetail(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			respondWithDetail(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("Ask Handler: Service error: %v", err)
			respondWithDetail(w, http.StatusInternalServerError, "The coach is unavailable right now")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, coach.AskResponse{Answer: answer})
}
