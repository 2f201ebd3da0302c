package models

import (
	"errors"
	"time"
)

// The four meal slots a meal can be logged under.
var ValidMealNames = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

func IsValidMealName(name string) bool {
	for _, n := range ValidMealNames {
		if n == name {
			return true
		}
	}
	return false
}

var ErrFoodIndexOutOfRange = errors.New("food index out of range")

// FoodEntry is one food inside a meal. The nutrition values are a per-serving
// snapshot taken when the entry was added, so later catalog edits never change
// an already-logged meal. Entries only exist as part of their meal.
type FoodEntry struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"-"`
	MealID      string  `gorm:"type:uuid;index;not null" json:"-"`
	Position    int     `gorm:"not null" json:"-"`
	Name        string  `gorm:"not null" json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `gorm:"not null" json:"servingSize"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Calories    float64 `gorm:"not null" json:"calories"`
	Protein     float64 `gorm:"not null" json:"protein"`
	Carbs       float64 `gorm:"not null" json:"carbs"`
	Fats        float64 `gorm:"not null" json:"fats"`
}

func (FoodEntry) TableName() string { return "meal_foods" }

// One Meal (breakfast/lunch/…) with its ordered food entries and derived totals.
type Meal struct {
	ID     string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string      `gorm:"type:uuid;index;not null" json:"userID"`
	Name   string      `gorm:"not null" json:"name"` // "Breakfast"|"Lunch"|"Dinner"|"Snack"
	Foods  []FoodEntry `gorm:"foreignKey:MealID" json:"foods"`

	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalculateTotals recomputes the four derived totals from the current food
// entries, each entry contributing its per-serving values times its quantity.
// Every mutating operation calls this before the meal is persisted so the
// stored totals can never diverge from the stored entries.
func (m *Meal) CalculateTotals() {
	m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFats = 0, 0, 0, 0
	for _, f := range m.Foods {
		m.TotalCalories += f.Calories * f.Quantity
		m.TotalProtein += f.Protein * f.Quantity
		m.TotalCarbs += f.Carbs * f.Quantity
		m.TotalFats += f.Fats * f.Quantity
	}
}

// AddFood appends one entry to the sequence and recomputes totals.
func (m *Meal) AddFood(f FoodEntry) {
	m.Foods = append(m.Foods, f)
	m.CalculateTotals()
}

// RemoveFood removes the entry at the given zero-based index, shifting the
// entries after it, and recomputes totals. Returns the removed entry.
func (m *Meal) RemoveFood(index int) (FoodEntry, error) {
	if index < 0 || index >= len(m.Foods) {
		return FoodEntry{}, ErrFoodIndexOutOfRange
	}
	removed := m.Foods[index]
	m.Foods = append(m.Foods[:index], m.Foods[index+1:]...)
	m.CalculateTotals()
	return removed, nil
}
