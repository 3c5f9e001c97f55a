package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"

	_ "image/jpeg"
	_ "image/png"
)

// AnalyzeMeal uploads a meal photo for nutritional analysis. The image is
// validated locally before any request is built: bytes that don't decode as
// JPEG or PNG fail with an encode-kind error and never touch the network.
// The call runs under the longer upload timeout.
func (c *Client) AnalyzeMeal(ctx context.Context, filename string, photo []byte) (NutritionAnalysis, error) {
	if _, format, err := image.DecodeConfig(bytes.NewReader(photo)); err != nil {
		return NutritionAnalysis{}, encodeError(fmt.Errorf("unsupported image data: %w", err))
	} else if format != "jpeg" && format != "png" {
		return NutritionAnalysis{}, encodeError(fmt.Errorf("unsupported image format %q", format))
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return NutritionAnalysis{}, encodeError(err)
	}
	if _, err := part.Write(photo); err != nil {
		return NutritionAnalysis{}, encodeError(err)
	}
	if err := writer.Close(); err != nil {
		return NutritionAnalysis{}, encodeError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/nutrition/analyze-meal", nil), &buf)
	if err != nil {
		return NutritionAnalysis{}, encodeError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.uploader.Do(req)
	if err != nil {
		return NutritionAnalysis{}, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NutritionAnalysis{}, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NutritionAnalysis{}, serverError(resp.StatusCode, extractDetail(data))
	}

	var analysis NutritionAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return NutritionAnalysis{}, decodeError(err)
	}
	return analysis, nil
}
