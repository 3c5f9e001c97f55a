package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/jackc/pgx/v5/pgxpool"

	"harmoniaAPI/internal/types/nutrition"
)

var ErrUnsupportedImage = errors.New("unsupported or corrupt image")

// MealAnalyzer produces a nutrition analysis from a validated meal photo.
type MealAnalyzer interface {
	Analyze(ctx context.Context, format string, data []byte) (*nutrition.Analysis, error)
}

type NutritionService struct {
	db       *pgxpool.Pool
	analyzer MealAnalyzer
}

func NewNutritionService(db *pgxpool.Pool, analyzer MealAnalyzer) *NutritionService {
	return &NutritionService{db: db, analyzer: analyzer}
}

// AnalyzeMeal validates the upload is a decodable jpeg/png before handing it
// to the analyzer. Nothing is persisted here; the analysis only becomes a
// log once the user confirms it via SaveLog.
func (s *NutritionService) AnalyzeMeal(ctx context.Context, data []byte) (*nutrition.Analysis, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	if format != "jpeg" && format != "png" {
		return nil, ErrUnsupportedImage
	}

	return s.analyzer.Analyze(ctx, format, data)
}

func (s *NutritionService) SaveLog(ctx context.Context, req *nutrition.LogCreate) error {
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, req.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	logDate := req.LogDate.Time
	if logDate.IsZero() {
		logDate = time.Now().UTC()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var logID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO nutrition_logs (user_id, log_date, total_calories, total_protein, total_carbs, total_fat, insights)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.UserID, logDate, req.TotalCalories, req.TotalProtein, req.TotalCarbs, req.TotalFat, req.Insights).Scan(&logID)
	if err != nil {
		return fmt.Errorf("failed to insert nutrition log: %w", err)
	}

	for _, item := range req.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO nutrition_log_items (log_id, food_name, calories, protein, carbs, fat)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, logID, item.FoodName, item.Calories, item.Protein, item.Carbs, item.Fat)
		if err != nil {
			return fmt.Errorf("failed to insert nutrition log item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit nutrition log: %w", err)
	}

	return nil
}

// CatalogAnalyzer matches the photo to a meal from the content catalog. The
// pick is seeded from the image bytes so the same photo always analyzes the
// same way. It stands in for a vision model behind the same interface.
type CatalogAnalyzer struct {
	content *ContentService
}

func NewCatalogAnalyzer(content *ContentService) *CatalogAnalyzer {
	return &CatalogAnalyzer{content: content}
}

func (a *CatalogAnalyzer) Analyze(_ context.Context, _ string, data []byte) (*nutrition.Analysis, error) {
	h := fnv.New32a()
	h.Write(data)
	meal := a.content.Meal(h.Sum32())

	analysis := &nutrition.Analysis{
		Foods:    make([]nutrition.FoodItem, 0, len(meal.Foods)),
		Insights: meal.Insights,
	}
	for _, f := range meal.Foods {
		analysis.Foods = append(analysis.Foods, nutrition.FoodItem{
			FoodName: f.Name,
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
		})
		analysis.TotalCalories += f.Calories
	}

	return analysis, nil
}
