package client

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, G: 120, B: 40, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAnalyzeMealRejectsNonImageBeforeRequest(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := c.AnalyzeMeal(context.Background(), "notes.txt", []byte("just some text"))
	assert.True(t, IsKind(err, KindEncode))
	assert.Equal(t, int32(0), hits.Load(), "no request should be sent for invalid image data")
}

func TestAnalyzeMealUploadsMultipart(t *testing.T) {
	photo := tinyPNG(t)

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nutrition/analyze-meal", r.URL.Path)

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "lunch.png", header.Filename)

		w.Write([]byte(`{
			"foods": [{"food_name": "Grilled chicken salad", "calories": 420, "protein": 38, "carbs": 12, "fat": 24}],
			"insights": "Solid protein, light on carbs.",
			"total_calories": 420
		}`))
	}))

	analysis, err := c.AnalyzeMeal(context.Background(), "lunch.png", photo)
	require.NoError(t, err)
	require.Len(t, analysis.Foods, 1)
	assert.Equal(t, "Grilled chicken salad", analysis.Foods[0].FoodName)
	assert.Equal(t, 420.0, analysis.TotalCalories)
}

func TestAnalyzeMealServerRejection(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "unsupported or corrupt image"}`))
	}))

	_, err := c.AnalyzeMeal(context.Background(), "lunch.png", tinyPNG(t))
	require.True(t, IsKind(err, KindServer))

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusUnprocessableEntity, e.Status)
}
