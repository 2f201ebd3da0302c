package models

import "time"

var ValidGoals = []string{"lose weight", "gain weight", "maintain weight"}

// MacroGoals are a user's daily macro targets.
type MacroGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type User struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Username string  `gorm:"not null" json:"username"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"password"`
	Age      int     `gorm:"not null" json:"age"`
	Height   float64 `gorm:"not null" json:"height"`
	Weight   float64 `gorm:"not null" json:"weight"`
	Goal     string  `json:"goal,omitempty"` // "lose weight"|"gain weight"|"maintain weight"

	MacroGoals MacroGoals `gorm:"embedded;embeddedPrefix:goal_" json:"macroGoals"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
