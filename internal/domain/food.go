package domain

// FoodEntry represents a single food log entry in the food tracker.
type FoodEntry struct {
	ID          int64   `json:"id"`
	Date        Date    `json:"date"`
	Food        string  `json:"food"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
	DeletedFlag bool    `json:"deleted_flag"`
}
