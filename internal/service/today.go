package service

import (
	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

type TodayStatus struct {
	Username         string  `json:"username"`
	Date             string  `json:"date"`
	IntakeCalories   int     `json:"intake_calories"`
	ExerciseCalories int     `json:"exercise_calories"`
	NetCalories      int     `json:"net_calories"`
	ExerciseMinutes  int     `json:"exercise_minutes"`
	SleepHours       float64 `json:"sleep_hours"`
	Entries          int     `json:"entries"`
}

// DaySummary nets calories eaten against calories burned for one date.
// An empty date means today.
func DaySummary(st *store.Store, username, date string, policy config.SleepPolicy) (*TodayStatus, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	status := &TodayStatus{Username: username, Date: date}

	err = scanUser(st, model.CategoryCalorieIntake, username, func(rec store.Record) error {
		in, err := parseCalorieIntake(rec.Fields)
		if err != nil || in.Date != date {
			return err
		}
		status.IntakeCalories += in.Calories
		status.Entries++
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = scanUser(st, model.CategoryExerciseActivity, username, func(rec store.Record) error {
		ex, err := parseExerciseActivity(rec.Fields)
		if err != nil || ex.Date != date {
			return err
		}
		status.ExerciseCalories += ex.CaloriesBurned
		status.ExerciseMinutes += ex.DurationMinutes
		status.Entries++
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = scanUser(st, model.CategorySleepRecord, username, func(rec store.Record) error {
		sr, err := parseSleepRecord(rec.Fields)
		if err != nil || sr.Date != date {
			return err
		}
		hours, err := SleepHours(sr.SleepStart, sr.SleepEnd, policy)
		if err != nil {
			return err
		}
		status.SleepHours += hours
		status.Entries++
		return nil
	})
	if err != nil {
		return nil, err
	}

	status.NetCalories = status.IntakeCalories - status.ExerciseCalories
	return status, nil
}
