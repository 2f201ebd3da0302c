package models

import "time"

// DayLog aggregates up to one meal per slot for a (user, date) pair. The date
// is stored at midnight so the composite unique index compares calendar days.
//
// Slot references are weak: they are stored as ids without a database foreign
// key, so deleting a meal leaves the slot dangling and population resolves it
// to nil instead of failing.
type DayLog struct {
	ID     string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string    `gorm:"type:uuid;not null;uniqueIndex:idx_day_logs_user_date" json:"userID"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_day_logs_user_date" json:"date"`

	BreakfastID *string `gorm:"type:uuid" json:"-"`
	LunchID     *string `gorm:"type:uuid" json:"-"`
	DinnerID    *string `gorm:"type:uuid" json:"-"`
	SnackID     *string `gorm:"type:uuid" json:"-"`

	Breakfast *Meal `gorm:"foreignKey:BreakfastID" json:"breakfast,omitempty"`
	Lunch     *Meal `gorm:"foreignKey:LunchID" json:"lunch,omitempty"`
	Dinner    *Meal `gorm:"foreignKey:DinnerID" json:"dinner,omitempty"`
	Snack     *Meal `gorm:"foreignKey:SnackID" json:"snack,omitempty"`

	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meals returns the four slot references in slot order. Unassigned or
// unresolved slots are nil.
func (d *DayLog) Meals() []*Meal {
	return []*Meal{d.Breakfast, d.Lunch, d.Dinner, d.Snack}
}

// CalculateTotals sums the currently persisted totals of whichever referenced
// meals are populated. Absent slots contribute zero. The caller is responsible
// for populating the slots from fresh store state first.
func (d *DayLog) CalculateTotals() {
	d.TotalCalories, d.TotalProtein, d.TotalCarbs, d.TotalFats = 0, 0, 0, 0
	for _, m := range d.Meals() {
		if m == nil {
			continue
		}
		d.TotalCalories += m.TotalCalories
		d.TotalProtein += m.TotalProtein
		d.TotalCarbs += m.TotalCarbs
		d.TotalFats += m.TotalFats
	}
}
