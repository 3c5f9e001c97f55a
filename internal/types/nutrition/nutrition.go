package nutrition

import "harmoniaAPI/apidate"

type FoodItem struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Analysis is the result of analyzing a meal photo. It is not persisted
// until the caller confirms it via a nutrition log.
type Analysis struct {
	Foods         []FoodItem `json:"foods"`
	Insights      string     `json:"insights"`
	TotalCalories float64    `json:"total_calories"`
}

type LogCreate struct {
	UserID        int64        `json:"user_id"`
	LogDate       apidate.Time `json:"log_date"`
	TotalCalories float64      `json:"total_calories"`
	TotalProtein  float64      `json:"total_protein"`
	TotalCarbs    float64      `json:"total_carbs"`
	TotalFat      float64      `json:"total_fat"`
	Insights      string       `json:"insights"`
	Items         []FoodItem   `json:"items"`
}
