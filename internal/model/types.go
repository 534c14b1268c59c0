package model

import (
	"fmt"
	"strings"
)

// DateLayout is the on-disk date format of every record.
const DateLayout = "2006-01-02"

// ClockLayout is the on-disk format of sleep start and end times.
const ClockLayout = "15:04"

// Category is a record kind with its own backing file and field arity.
type Category string

const (
	CategoryCalorieIntake    Category = "calorie_intake"
	CategoryExerciseActivity Category = "exercise_activity"
	CategorySleepRecord      Category = "sleep_record"
)

// Categories lists every category in a stable order.
func Categories() []Category {
	return []Category{CategoryCalorieIntake, CategoryExerciseActivity, CategorySleepRecord}
}

// ParseCategory accepts the canonical names plus a few short aliases.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "calorie_intake", "calorie", "calories", "intake":
		return CategoryCalorieIntake, nil
	case "exercise_activity", "exercise", "activity":
		return CategoryExerciseActivity, nil
	case "sleep_record", "sleep":
		return CategorySleepRecord, nil
	default:
		return "", fmt.Errorf("unknown category %q", name)
	}
}

// Arity is the exact number of fields a valid line of the category holds.
func (c Category) Arity() int {
	switch c {
	case CategoryCalorieIntake:
		return 4
	case CategoryExerciseActivity:
		return 5
	case CategorySleepRecord:
		return 4
	default:
		return 0
	}
}

// FileName is the backing file name inside the data directory.
func (c Category) FileName() string {
	return string(c) + ".txt"
}

func (c Category) Valid() bool {
	return c.Arity() > 0
}

func (c Category) String() string {
	return string(c)
}

type CalorieIntake struct {
	Username string `json:"username"`
	FoodItem string `json:"food_item"`
	Calories int    `json:"calories"`
	Date     string `json:"date"`
}

type ExerciseActivity struct {
	Username        string `json:"username"`
	ExerciseType    string `json:"exercise_type"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	Date            string `json:"date"`
}

type SleepRecord struct {
	Username   string `json:"username"`
	SleepStart string `json:"sleep_start"`
	SleepEnd   string `json:"sleep_end"`
	Date       string `json:"date"`
}
