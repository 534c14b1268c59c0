package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

type CalorieIntakeInput struct {
	Username string
	FoodItem string
	Calories int
	// Date defaults to today when empty.
	Date string
}

// LogCalorieIntake appends one calorie intake record. Calories are stored
// as given; negative values are accepted.
func LogCalorieIntake(st *store.Store, in CalorieIntakeInput) (model.CalorieIntake, error) {
	if err := requireUsername(in.Username); err != nil {
		return model.CalorieIntake{}, err
	}
	in.FoodItem = strings.TrimSpace(in.FoodItem)
	if in.FoodItem == "" {
		return model.CalorieIntake{}, fmt.Errorf("food item is required")
	}
	if err := requireSingleLine("food item", in.FoodItem); err != nil {
		return model.CalorieIntake{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return model.CalorieIntake{}, err
	}

	rec := model.CalorieIntake{
		Username: in.Username,
		FoodItem: in.FoodItem,
		Calories: in.Calories,
		Date:     date,
	}
	if err := st.Append(model.CategoryCalorieIntake, rec.Username, rec.FoodItem, strconv.Itoa(rec.Calories), rec.Date); err != nil {
		return model.CalorieIntake{}, err
	}
	return rec, nil
}
