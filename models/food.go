package models

import "time"

// FoodItem is a standalone catalog record of nutrition per serving. Meals do
// not reference catalog items; they copy the values into their own entries.
type FoodItem struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `gorm:"not null" json:"servingSize"`
	Calories    float64 `gorm:"not null" json:"calories"`
	Protein     float64 `gorm:"not null" json:"protein"`
	Carbs       float64 `gorm:"not null" json:"carbs"`
	Fats        float64 `gorm:"not null" json:"fats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (FoodItem) TableName() string { return "foods" }
