package water

type WaterLog struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	AmountMl int    `json:"amount_ml"`
	LogDate  string `json:"log_date"`
}

type CreateWaterLogRequest struct {
	AmountMl int `json:"amount_ml"`
}
