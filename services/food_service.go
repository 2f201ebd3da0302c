package services

import (
	"github.com/andrewEdson/Macro-Tracker/config"
	"github.com/andrewEdson/Macro-Tracker/models"

	"github.com/google/uuid"
)

// Catalog food items are created and deleted, never edited in place. Lookup
// results are returned to the caller and only persisted if the caller posts
// them back here.

func CreateFoodItem(food *models.FoodItem) error {
	food.ID = uuid.NewString()
	return config.DB.Create(food).Error
}

func ListFoodItems() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.Find(&foods).Error
	return foods, err
}

func DeleteFoodItem(id string) error {
	var food models.FoodItem
	if err := config.DB.First(&food, "id = ?", id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&food).Error
}
