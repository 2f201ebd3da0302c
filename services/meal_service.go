// services/meal_service.go
package services

import (
	"github.com/andrewEdson/Macro-Tracker/config"
	"github.com/andrewEdson/Macro-Tracker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// foodOrder keeps a meal's entries in their logged sequence whenever they are
// preloaded, so positional operations see the same order the client does.
func foodOrder(db *gorm.DB) *gorm.DB {
	return db.Order("meal_foods.position ASC")
}

// CreateMeal persists a new meal with its entries and computed totals in one
// create. Entries arrive already validated.
func CreateMeal(userID, name string, foods []models.FoodEntry) (*models.Meal, error) {
	meal := &models.Meal{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
	for i := range foods {
		foods[i].ID = uuid.NewString()
		foods[i].MealID = meal.ID
		foods[i].Position = i
	}
	meal.Foods = foods
	meal.CalculateTotals()

	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func GetMeal(id string) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Foods", foodOrder).
		First(&meal, "id = ?", id).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

// UpdateMeal renames the meal and/or replaces its entry sequence wholesale.
// An empty name leaves the slot unchanged; nil foods leave the entries
// unchanged. Totals are recomputed and persisted in the same transaction as
// the entry rows.
func UpdateMeal(id, name string, foods []models.FoodEntry) (*models.Meal, error) {
	meal, err := GetMeal(id)
	if err != nil {
		return nil, err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if name != "" {
			meal.Name = name
		}
		if foods != nil {
			if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.FoodEntry{}).Error; err != nil {
				return err
			}
			for i := range foods {
				foods[i].ID = uuid.NewString()
				foods[i].MealID = meal.ID
				foods[i].Position = i
			}
			if err := tx.Create(&foods).Error; err != nil {
				return err
			}
			meal.Foods = foods
		}
		meal.CalculateTotals()
		return tx.Omit(clause.Associations).Save(meal).Error
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// AddFoodToMeal appends one validated entry and recomputes totals.
func AddFoodToMeal(id string, food models.FoodEntry) (*models.Meal, error) {
	meal, err := GetMeal(id)
	if err != nil {
		return nil, err
	}

	food.ID = uuid.NewString()
	food.MealID = meal.ID
	food.Position = len(meal.Foods)
	meal.AddFood(food)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&food).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(meal).Error
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// RemoveFoodFromMeal removes the entry at the given zero-based position,
// shifts the entries after it, and recomputes totals. Returns the updated
// meal and the removed entry. An out-of-bounds position yields
// models.ErrFoodIndexOutOfRange.
func RemoveFoodFromMeal(id string, index int) (*models.Meal, models.FoodEntry, error) {
	meal, err := GetMeal(id)
	if err != nil {
		return nil, models.FoodEntry{}, err
	}

	removed, err := meal.RemoveFood(index)
	if err != nil {
		return nil, models.FoodEntry{}, err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FoodEntry{}, "id = ?", removed.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.FoodEntry{}).
			Where("meal_id = ? AND position > ?", meal.ID, removed.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(meal).Error
	})
	if err != nil {
		return nil, models.FoodEntry{}, err
	}
	return meal, removed, nil
}

// DeleteMeal removes a meal and its entries. Day logs referencing the meal
// keep their reference; population later resolves it to an absent slot.
func DeleteMeal(id string) error {
	var meal models.Meal
	if err := config.DB.First(&meal, "id = ?", id).Error; err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.FoodEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}
