package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andrewEdson/Macro-Tracker/models"
	"github.com/andrewEdson/Macro-Tracker/services"
	"github.com/andrewEdson/Macro-Tracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func calculatedTotals(m *models.Meal) gin.H {
	return gin.H{
		"calories": m.TotalCalories,
		"protein":  m.TotalProtein,
		"carbs":    m.TotalCarbs,
		"fats":     m.TotalFats,
	}
}

// POST /api/meals
func CreateMeal(c *gin.Context) {
	var body struct {
		UserID string                 `json:"userID"`
		Name   string                 `json:"name"`
		Foods  []utils.FoodEntryInput `json:"foods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if body.UserID == "" || body.Name == "" || len(body.Foods) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":  "Missing required fields",
			"required": []string{"userID", "name", "foods (array)"},
		})
		return
	}
	if !utils.IsValidID(body.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userID format"})
		return
	}
	if !models.IsValidMealName(body.Name) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":      "Invalid meal name",
			"validOptions": models.ValidMealNames,
		})
		return
	}
	foods, err := utils.ValidateFoodEntries(body.Foods)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":            err.Error(),
			"requiredFoodFields": utils.RequiredFoodFields,
		})
		return
	}

	meal, err := services.CreateMeal(body.UserID, body.Name, foods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":          "Meal created successfully",
		"meal":             meal,
		"calculatedTotals": calculatedTotals(meal),
	})
}

// GET /api/meals/:id
func GetMealByID(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	meal, err := services.GetMeal(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"meal":             meal,
		"calculatedTotals": calculatedTotals(meal),
	})
}

// PUT /api/meals/:id
func UpdateMeal(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	var body struct {
		Name  string                 `json:"name"`
		Foods []utils.FoodEntryInput `json:"foods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if body.Name != "" && !models.IsValidMealName(body.Name) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":      "Invalid meal name",
			"validOptions": models.ValidMealNames,
		})
		return
	}

	var foods []models.FoodEntry
	if body.Foods != nil {
		if len(body.Foods) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Foods must be a non-empty array"})
			return
		}
		var err error
		foods, err = utils.ValidateFoodEntries(body.Foods)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":            err.Error(),
				"requiredFoodFields": utils.RequiredFoodFields,
			})
			return
		}
	}

	meal, err := services.UpdateMeal(id, body.Name, foods)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Meal updated successfully",
		"meal":             meal,
		"calculatedTotals": calculatedTotals(meal),
	})
}

// POST /api/meals/:id/foods
func AddFoodToMeal(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	var body utils.FoodEntryInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	food, err := utils.ValidateFoodEntry(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":            err.Error(),
			"requiredFoodFields": utils.RequiredFoodFields,
		})
		return
	}

	meal, err := services.AddFoodToMeal(id, food)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Food added to meal successfully",
		"meal":             meal,
		"calculatedTotals": calculatedTotals(meal),
		"addedFood":        food,
	})
}

// DELETE /api/meals/:id/foods/:foodIndex
func RemoveFoodFromMeal(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	index, err := strconv.Atoi(c.Param("foodIndex"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food index"})
		return
	}

	meal, removed, err := services.RemoveFoodFromMeal(id, index)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
		case errors.Is(err, models.ErrFoodIndexOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Food index out of range"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Food removed from meal successfully",
		"meal":             meal,
		"calculatedTotals": calculatedTotals(meal),
		"removedFood":      removed,
	})
}

// DELETE /api/meals/:id
func DeleteMeal(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	if err := services.DeleteMeal(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
