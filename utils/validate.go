// utils/validate.go
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrewEdson/Macro-Tracker/models"

	"github.com/google/uuid"
)

// RequiredFoodFields is echoed back to clients when a food entry is rejected.
var RequiredFoodFields = []string{"name", "servingSize", "quantity", "calories", "protein", "carbs", "fats"}

// FoodEntryInput is the wire shape of one food entry. The numeric fields are
// pointers so a missing field can be told apart from an explicit zero.
type FoodEntryInput struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	ServingSize string   `json:"servingSize"`
	Quantity    *float64 `json:"quantity"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fats        *float64 `json:"fats"`
}

func (in FoodEntryInput) missingField() (string, bool) {
	if strings.TrimSpace(in.Name) == "" {
		return "name", true
	}
	if strings.TrimSpace(in.ServingSize) == "" {
		return "servingSize", true
	}
	numeric := []struct {
		name  string
		value *float64
	}{
		{"quantity", in.Quantity},
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fats", in.Fats},
	}
	for _, f := range numeric {
		if f.value == nil {
			return f.name, true
		}
	}
	return "", false
}

// valuesValid assumes missingField already passed.
func (in FoodEntryInput) valuesValid() bool {
	return *in.Quantity > 0 &&
		*in.Calories >= 0 &&
		*in.Protein >= 0 &&
		*in.Carbs >= 0 &&
		*in.Fats >= 0
}

// Entry converts a validated input into the persisted value type.
func (in FoodEntryInput) Entry() models.FoodEntry {
	return models.FoodEntry{
		Name:        in.Name,
		Brand:       in.Brand,
		ServingSize: in.ServingSize,
		Quantity:    *in.Quantity,
		Calories:    *in.Calories,
		Protein:     *in.Protein,
		Carbs:       *in.Carbs,
		Fats:        *in.Fats,
	}
}

// ValidateFoodEntry applies the shared field rules to a single entry, as used
// when appending one food to an existing meal.
func ValidateFoodEntry(in FoodEntryInput) (models.FoodEntry, error) {
	if field, missing := in.missingField(); missing {
		return models.FoodEntry{}, fmt.Errorf("Missing required field '%s'", field)
	}
	if !in.valuesValid() {
		return models.FoodEntry{}, fmt.Errorf("Invalid values. Quantity must be > 0, other values must be >= 0")
	}
	return in.Entry(), nil
}

// ValidateFoodEntries validates a whole sequence, failing on the first
// violation with the offending entry reported 1-based. The write is
// all-or-nothing: one bad entry rejects the entire sequence.
func ValidateFoodEntries(inputs []FoodEntryInput) ([]models.FoodEntry, error) {
	entries := make([]models.FoodEntry, 0, len(inputs))
	for i, in := range inputs {
		if field, missing := in.missingField(); missing {
			return nil, fmt.Errorf("Missing required field '%s' in food item %d", field, i+1)
		}
		if !in.valuesValid() {
			return nil, fmt.Errorf("Invalid values in food item %d. Quantity must be > 0, other values must be >= 0", i+1)
		}
		entries = append(entries, in.Entry())
	}
	return entries, nil
}

// IsValidID reports whether an identifier is a well-formed UUID. Malformed
// ids are rejected before any store access.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD day and pins it to midnight UTC so day-log
// dates compare as calendar days.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return Midnight(t), nil
}

// Midnight truncates a timestamp to the start of its UTC day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
