package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/andrewEdson/Macro-Tracker/services"
	"github.com/andrewEdson/Macro-Tracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// validateSlotRefs checks every provided, non-empty slot reference for shape.
// An empty string is allowed; it clears the slot on update.
func validateSlotRefs(slots services.DayLogSlots) bool {
	for _, ref := range []*string{slots.Breakfast, slots.Lunch, slots.Dinner, slots.Snack} {
		if ref != nil && *ref != "" && !utils.IsValidID(*ref) {
			return false
		}
	}
	return true
}

// POST /api/daylogs
func CreateDayLog(c *gin.Context) {
	var body struct {
		UserID    string  `json:"userID"`
		Date      string  `json:"date"`
		Breakfast *string `json:"breakfast"`
		Lunch     *string `json:"lunch"`
		Dinner    *string `json:"dinner"`
		Snack     *string `json:"snack"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !utils.IsValidID(body.UserID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	// The date defaults to today when unspecified.
	date := utils.Midnight(time.Now())
	if body.Date != "" {
		var err error
		date, err = utils.ParseDate(body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	slots := services.DayLogSlots{
		Breakfast: body.Breakfast,
		Lunch:     body.Lunch,
		Dinner:    body.Dinner,
		Snack:     body.Snack,
	}
	if !validateSlotRefs(slots) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	dayLog, err := services.CreateDayLog(body.UserID, date, slots)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Day log already exists for this user and date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Day log created successfully", "dayLog": dayLog})
}

// dayLogKey validates the common (userID, date) path parameters.
func dayLogKey(c *gin.Context) (string, time.Time, bool) {
	userID := c.Param("userID")
	if !utils.IsValidID(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return "", time.Time{}, false
	}
	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format. Use YYYY-MM-DD"})
		return "", time.Time{}, false
	}
	return userID, date, true
}

// GET /api/daylogs/:userID/:date
func GetDayLog(c *gin.Context) {
	userID, date, ok := dayLogKey(c)
	if !ok {
		return
	}

	dayLog, err := services.GetDayLog(userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Day log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

// PUT /api/daylogs/:userID/:date
func UpdateDayLog(c *gin.Context) {
	userID, date, ok := dayLogKey(c)
	if !ok {
		return
	}

	var body struct {
		Breakfast *string `json:"breakfast"`
		Lunch     *string `json:"lunch"`
		Dinner    *string `json:"dinner"`
		Snack     *string `json:"snack"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	slots := services.DayLogSlots{
		Breakfast: body.Breakfast,
		Lunch:     body.Lunch,
		Dinner:    body.Dinner,
		Snack:     body.Snack,
	}
	if !validateSlotRefs(slots) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal ID"})
		return
	}

	dayLog, err := services.UpdateDayLog(userID, date, slots)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Day log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

// DELETE /api/daylogs/:userID/:date
func DeleteDayLog(c *gin.Context) {
	userID, date, ok := dayLogKey(c)
	if !ok {
		return
	}

	if err := services.DeleteDayLog(userID, date); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Day log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Day log deleted successfully"})
}
