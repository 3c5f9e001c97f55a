package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmoniaAPI/internal/types/habit"
	"harmoniaAPI/services"
)

func TestPathIDRejectsBadValues(t *testing.T) {
	handler := NewUserHandler(services.NewUserService(nil))

	router := mux.NewRouter()
	router.HandleFunc("/users/{id}", handler.GetUser).Methods("GET")

	for _, path := range []string{"/users/abc", "/users/0", "/users/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "id")
	}
}

func TestSuggestHabitsHandler(t *testing.T) {
	content, err := services.NewContentService("")
	require.NoError(t, err)
	handler := NewHabitHandler(services.NewHabitService(nil), content)

	router := mux.NewRouter()
	router.HandleFunc("/onboarding/suggest-habits", handler.SuggestHabits).Methods("POST")

	req := httptest.NewRequest(http.MethodPost, "/onboarding/suggest-habits",
		strings.NewReader(`{"objective": "I want to build muscle"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var suggestions []habit.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestions))
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.NotEmpty(t, s.Name)
	}
}

func TestSuggestHabitsHandlerRejectsBadBody(t *testing.T) {
	content, err := services.NewContentService("")
	require.NoError(t, err)
	handler := NewHabitHandler(services.NewHabitService(nil), content)

	req := httptest.NewRequest(http.MethodPost, "/onboarding/suggest-habits", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.SuggestHabits(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
