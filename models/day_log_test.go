package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayLogCalculateTotals(t *testing.T) {
	breakfast := &Meal{TotalCalories: 400, TotalProtein: 20, TotalCarbs: 50, TotalFats: 10}
	dinner := &Meal{TotalCalories: 600, TotalProtein: 45, TotalCarbs: 40, TotalFats: 25}

	dayLog := DayLog{Breakfast: breakfast, Dinner: dinner}
	dayLog.CalculateTotals()

	assert.InDelta(t, 1000, dayLog.TotalCalories, 1e-9)
	assert.InDelta(t, 65, dayLog.TotalProtein, 1e-9)
	assert.InDelta(t, 90, dayLog.TotalCarbs, 1e-9)
	assert.InDelta(t, 35, dayLog.TotalFats, 1e-9)
}

func TestDayLogCalculateTotalsAllSlotsEmpty(t *testing.T) {
	dayLog := DayLog{TotalCalories: 123, TotalProtein: 4, TotalCarbs: 5, TotalFats: 6}
	dayLog.CalculateTotals()

	assert.Zero(t, dayLog.TotalCalories)
	assert.Zero(t, dayLog.TotalProtein)
	assert.Zero(t, dayLog.TotalCarbs)
	assert.Zero(t, dayLog.TotalFats)
}

func TestDayLogCalculateTotalsTracksMealState(t *testing.T) {
	lunch := &Meal{
		Foods: []FoodEntry{
			{Quantity: 1, Calories: 300, Protein: 20, Carbs: 30, Fats: 10},
		},
	}
	lunch.CalculateTotals()

	dayLog := DayLog{Lunch: lunch}
	dayLog.CalculateTotals()
	assert.InDelta(t, 300, dayLog.TotalCalories, 1e-9)

	// Re-populating after a meal edit picks up the fresh totals.
	lunch.AddFood(FoodEntry{Quantity: 2, Calories: 100, Protein: 5, Carbs: 10, Fats: 3})
	dayLog.CalculateTotals()
	assert.InDelta(t, 500, dayLog.TotalCalories, 1e-9)
	assert.InDelta(t, 30, dayLog.TotalProtein, 1e-9)
}
