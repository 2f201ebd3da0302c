package controllers

import (
	"errors"
	"net/http"

	"github.com/andrewEdson/Macro-Tracker/models"
	"github.com/andrewEdson/Macro-Tracker/services"
	"github.com/andrewEdson/Macro-Tracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /api/foods
func CreateFood(c *gin.Context) {
	var body struct {
		Name        string   `json:"name"`
		Brand       string   `json:"brand"`
		ServingSize string   `json:"servingSize"`
		Calories    *float64 `json:"calories"`
		Protein     *float64 `json:"protein"`
		Carbs       *float64 `json:"carbs"`
		Fats        *float64 `json:"fats"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field 'name'"})
		return
	}
	if body.ServingSize == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field 'servingSize'"})
		return
	}
	macros := []struct {
		name  string
		value *float64
	}{
		{"calories", body.Calories},
		{"protein", body.Protein},
		{"carbs", body.Carbs},
		{"fats", body.Fats},
	}
	for _, m := range macros {
		if m.value == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field '" + m.name + "'"})
			return
		}
		if *m.value < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Macro values must be >= 0"})
			return
		}
	}

	food := &models.FoodItem{
		Name:        body.Name,
		Brand:       body.Brand,
		ServingSize: body.ServingSize,
		Calories:    *body.Calories,
		Protein:     *body.Protein,
		Carbs:       *body.Carbs,
		Fats:        *body.Fats,
	}
	if err := services.CreateFoodItem(food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item created successfully", "food": food})
}

// GET /api/foods
func GetFoods(c *gin.Context) {
	foods, err := services.ListFoodItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/search/:name — external lookup, nothing is saved.
func SearchFoodByName(c *gin.Context) {
	name := c.Param("name")

	off := services.NewOpenFoodFactsService()
	foods, total, err := off.SearchByName(name)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Food data retrieved from external API",
		"foods":        foods,
		"totalResults": total,
		"source":       "OpenFoodFacts",
	})
}

// GET /api/foods/barcode/:barcode — external lookup, nothing is saved.
func SearchFoodByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")

	off := services.NewOpenFoodFactsService()
	food, err := off.SearchByBarcode(barcode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBarcode):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid barcode format"})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message":    "Food item not found for this barcode",
				"barcode":    barcode,
				"suggestion": "Try scanning a different product or manually enter the food data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch from external API"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Food data retrieved from barcode",
		"food":    food,
		"source":  "OpenFoodFacts",
		"barcode": barcode,
	})
}

// DELETE /api/foods/:id
func DeleteFood(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid food ID"})
		return
	}

	if err := services.DeleteFoodItem(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}
