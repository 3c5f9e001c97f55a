package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"harmoniaAPI/internal/types/nutrition"
	"harmoniaAPI/services"
)

// maxMealPhotoBytes caps the multipart upload. Phone photos compress well
// under this; anything larger is rejected before analysis.
const maxMealPhotoBytes = 10 << 20

type NutritionHandler struct {
	nutritionService *services.NutritionService
}

func NewNutritionHandler(nutritionService *services.NutritionService) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
	}
}

// AnalyzeMeal is the one multipart endpoint. The upload is validated as a
// real image before any analysis runs; the analysis is returned but not
// persisted.
func (h *NutritionHandler) AnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(maxMealPhotoBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Multipart field 'image' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxMealPhotoBytes+1))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read image")
		return
	}
	if len(data) > maxMealPhotoBytes {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Image too large")
		return
	}

	analysis, err := h.nutritionService.AnalyzeMeal(ctx, data)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImage) {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("AnalyzeMeal Handler: Service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to analyze meal")
		return
	}

	respondWithJSON(w, http.StatusOK, analysis)
}

// SaveLog reports success via status code alone; clients don't parse a body.
func (h *NutritionHandler) SaveLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req nutrition.LogCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.nutritionService.SaveLog(ctx, &req); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
}
