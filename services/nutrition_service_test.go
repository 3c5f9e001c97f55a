package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestAnalyzeMealRejectsNonImages(t *testing.T) {
	svc := NewNutritionService(nil, NewCatalogAnalyzer(newTestContent(t)))

	for _, data := range [][]byte{nil, []byte("plain text"), {0x00, 0x01, 0x02}} {
		_, err := svc.AnalyzeMeal(context.Background(), data)
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	}
}

func TestAnalyzeMealAcceptsPNG(t *testing.T) {
	svc := NewNutritionService(nil, NewCatalogAnalyzer(newTestContent(t)))

	analysis, err := svc.AnalyzeMeal(context.Background(), encodePNG(t))
	require.NoError(t, err)
	require.NotEmpty(t, analysis.Foods)
	assert.NotEmpty(t, analysis.Insights)

	var total float64
	for _, f := range analysis.Foods {
		total += f.Calories
	}
	assert.Equal(t, total, analysis.TotalCalories, "total must be the sum of the items")
}

func TestCatalogAnalyzerIsDeterministicPerImage(t *testing.T) {
	analyzer := NewCatalogAnalyzer(newTestContent(t))
	photo := encodePNG(t)

	first, err := analyzer.Analyze(context.Background(), "png", photo)
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), "png", photo)
	require.NoError(t, err)

	assert.Equal(t, first.Insights, second.Insights, "same bytes must analyze the same way")
	assert.Equal(t, first.TotalCalories, second.TotalCalories)
}
