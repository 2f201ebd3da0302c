package services

import (
	"fmt"

	"github.com/andrewEdson/Macro-Tracker/config"
	"github.com/andrewEdson/Macro-Tracker/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

var ErrInvalidGoal = fmt.Errorf("invalid goal: must be one of %v", models.ValidGoals)

// UserInput is the create-user payload. Macro goals are required targets;
// the weight goal is optional but must be one of the known values.
type UserInput struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Age      *int     `json:"age" validate:"required,gte=0"`
	Height   *float64 `json:"height" validate:"required,gt=0"`
	Weight   *float64 `json:"weight" validate:"required,gt=0"`
	Goal     string   `json:"goal" validate:"omitempty,oneof='lose weight' 'gain weight' 'maintain weight'"`

	MacroGoals *struct {
		Calories *float64 `json:"calories" validate:"required,gte=0"`
		Protein  *float64 `json:"protein" validate:"required,gte=0"`
		Carbs    *float64 `json:"carbs" validate:"required,gte=0"`
		Fats     *float64 `json:"fats" validate:"required,gte=0"`
	} `json:"macroGoals" validate:"required"`
}

// UserUpdateInput carries a partial update; nil fields are left unchanged.
type UserUpdateInput struct {
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	Age      *int     `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
	Goal     *string  `json:"goal"`

	MacroGoals *struct {
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fats     *float64 `json:"fats"`
	} `json:"macroGoals"`
}

func CreateUser(input UserInput) (*models.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Age:      *input.Age,
		Height:   *input.Height,
		Weight:   *input.Weight,
		Goal:     input.Goal,
		MacroGoals: models.MacroGoals{
			Calories: *input.MacroGoals.Calories,
			Protein:  *input.MacroGoals.Protein,
			Carbs:    *input.MacroGoals.Carbs,
			Fats:     *input.MacroGoals.Fats,
		},
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Find(&users).Error
	return users, err
}

func GetUser(id string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUser(id string, input UserUpdateInput) (*models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		user.Password = *input.Password
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Height != nil {
		user.Height = *input.Height
	}
	if input.Weight != nil {
		user.Weight = *input.Weight
	}
	if input.Goal != nil {
		if *input.Goal != "" && !isValidGoal(*input.Goal) {
			return nil, ErrInvalidGoal
		}
		user.Goal = *input.Goal
	}
	if input.MacroGoals != nil {
		if input.MacroGoals.Calories != nil {
			user.MacroGoals.Calories = *input.MacroGoals.Calories
		}
		if input.MacroGoals.Protein != nil {
			user.MacroGoals.Protein = *input.MacroGoals.Protein
		}
		if input.MacroGoals.Carbs != nil {
			user.MacroGoals.Carbs = *input.MacroGoals.Carbs
		}
		if input.MacroGoals.Fats != nil {
			user.MacroGoals.Fats = *input.MacroGoals.Fats
		}
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(id string) error {
	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&user).Error
}

func isValidGoal(goal string) bool {
	for _, g := range models.ValidGoals {
		if g == goal {
			return true
		}
	}
	return false
}
