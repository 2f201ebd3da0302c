// services/day_log_service.go
package services

import (
	"time"

	"github.com/andrewEdson/Macro-Tracker/config"
	"github.com/andrewEdson/Macro-Tracker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayLogSlots carries the four optional slot references for a create or
// update. nil means leave the slot alone, an empty string clears it, anything
// else is a meal id.
type DayLogSlots struct {
	Breakfast *string
	Lunch     *string
	Dinner    *string
	Snack     *string
}

// populateSlots resolves the day log's meal references against current store
// state in one combined fetch. A reference whose meal no longer exists leaves
// its slot nil; the reference is weak and a missing target is not a fault.
func populateSlots(db *gorm.DB, d *models.DayLog) error {
	refs := []*string{d.BreakfastID, d.LunchID, d.DinnerID, d.SnackID}
	ids := make([]string, 0, len(refs))
	for _, id := range refs {
		if id != nil && *id != "" {
			ids = append(ids, *id)
		}
	}
	d.Breakfast, d.Lunch, d.Dinner, d.Snack = nil, nil, nil, nil
	if len(ids) == 0 {
		return nil
	}

	var meals []models.Meal
	if err := db.Preload("Foods", foodOrder).Where("id IN ?", ids).Find(&meals).Error; err != nil {
		return err
	}
	byID := make(map[string]*models.Meal, len(meals))
	for i := range meals {
		byID[meals[i].ID] = &meals[i]
	}
	if d.BreakfastID != nil {
		d.Breakfast = byID[*d.BreakfastID]
	}
	if d.LunchID != nil {
		d.Lunch = byID[*d.LunchID]
	}
	if d.DinnerID != nil {
		d.Dinner = byID[*d.DinnerID]
	}
	if d.SnackID != nil {
		d.Snack = byID[*d.SnackID]
	}
	return nil
}

func slotValue(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}

// CreateDayLog creates the log for a (user, date) pair, resolving any slot
// references and computing totals before the insert. A second log for the
// same pair fails with gorm.ErrDuplicatedKey via the composite unique index.
func CreateDayLog(userID string, date time.Time, slots DayLogSlots) (*models.DayLog, error) {
	dayLog := &models.DayLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        date,
		BreakfastID: slotValue(slots.Breakfast),
		LunchID:     slotValue(slots.Lunch),
		DinnerID:    slotValue(slots.Dinner),
		SnackID:     slotValue(slots.Snack),
	}

	if err := populateSlots(config.DB, dayLog); err != nil {
		return nil, err
	}
	dayLog.CalculateTotals()

	if err := config.DB.Omit(clause.Associations).Create(dayLog).Error; err != nil {
		return nil, err
	}
	return dayLog, nil
}

// GetDayLog returns the log for a (user, date) pair with all four slots
// populated. The response totals are recomputed from the meals' current
// state so a meal edited after the last day-log save is not reported stale.
func GetDayLog(userID string, date time.Time) (*models.DayLog, error) {
	var dayLog models.DayLog
	err := config.DB.First(&dayLog, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		return nil, err
	}
	if err := populateSlots(config.DB, &dayLog); err != nil {
		return nil, err
	}
	dayLog.CalculateTotals()
	return &dayLog, nil
}

// UpdateDayLog reassigns any subset of the four slot references, then
// recomputes and persists totals from the referenced meals' fresh state.
func UpdateDayLog(userID string, date time.Time, slots DayLogSlots) (*models.DayLog, error) {
	var dayLog models.DayLog
	err := config.DB.First(&dayLog, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		return nil, err
	}

	if slots.Breakfast != nil {
		dayLog.BreakfastID = slotValue(slots.Breakfast)
	}
	if slots.Lunch != nil {
		dayLog.LunchID = slotValue(slots.Lunch)
	}
	if slots.Dinner != nil {
		dayLog.DinnerID = slotValue(slots.Dinner)
	}
	if slots.Snack != nil {
		dayLog.SnackID = slotValue(slots.Snack)
	}

	if err := populateSlots(config.DB, &dayLog); err != nil {
		return nil, err
	}
	dayLog.CalculateTotals()

	if err := config.DB.Omit(clause.Associations).Save(&dayLog).Error; err != nil {
		return nil, err
	}
	return &dayLog, nil
}

func DeleteDayLog(userID string, date time.Time) error {
	var dayLog models.DayLog
	err := config.DB.First(&dayLog, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		return err
	}
	return config.DB.Delete(&dayLog).Error
}
