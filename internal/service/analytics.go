package service

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

// ExerciseCount is how often one exercise type was logged.
type ExerciseCount struct {
	ExerciseType string `json:"exercise_type"`
	Times        int    `json:"times"`
}

type HealthSummary struct {
	Username          string          `json:"username"`
	CaloriesConsumed  int             `json:"calories_consumed"`
	CaloriesBurned    int             `json:"calories_burned"`
	TotalSleepHours   float64         `json:"total_sleep_hours"`
	SleepRecords      int             `json:"sleep_records"`
	AverageSleepHours *float64        `json:"average_sleep_hours,omitempty"`
	Exercises         []ExerciseCount `json:"exercises,omitempty"`
}

// DailyCaloricBalance returns one "<date> - Calories: <n>" line per calorie
// intake record of username, oldest first. Records on the same date are not
// merged.
func DailyCaloricBalance(st *store.Store, username string) ([]string, error) {
	out := make([]string, 0)
	err := scanUser(st, model.CategoryCalorieIntake, username, func(rec store.Record) error {
		in, err := parseCalorieIntake(rec.Fields)
		if err != nil {
			return err
		}
		out = append(out, fmt.Sprintf("%s - Calories: %d", in.Date, in.Calories))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AverageSleepHours is the mean of the per-record sleep hours of username,
// or 0 without records.
func AverageSleepHours(st *store.Store, username string, policy config.SleepPolicy) (float64, error) {
	total, count, err := sumSleepHours(st, username, policy)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	return total / float64(count), nil
}

func sumSleepHours(st *store.Store, username string, policy config.SleepPolicy) (float64, int, error) {
	var total float64
	count := 0
	err := scanUser(st, model.CategorySleepRecord, username, func(rec store.Record) error {
		sr, err := parseSleepRecord(rec.Fields)
		if err != nil {
			return err
		}
		hours, err := SleepHours(sr.SleepStart, sr.SleepEnd, policy)
		if err != nil {
			return err
		}
		total += hours
		count++
		return nil
	})
	return total, count, err
}

// ExerciseLog returns one line per exercise record of username in file order.
func ExerciseLog(st *store.Store, username string) ([]string, error) {
	out := make([]string, 0)
	err := scanUser(st, model.CategoryExerciseActivity, username, func(rec store.Record) error {
		ex, err := parseExerciseActivity(rec.Fields)
		if err != nil {
			return err
		}
		out = append(out, fmt.Sprintf("%s - Exercise: %s, Duration: %d min, Calories Burned: %d",
			ex.Date, ex.ExerciseType, ex.DurationMinutes, ex.CaloriesBurned))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BuildHealthSummary aggregates all three categories for username.
func BuildHealthSummary(st *store.Store, username string, policy config.SleepPolicy) (*HealthSummary, error) {
	summary := &HealthSummary{Username: username}

	err := scanUser(st, model.CategoryCalorieIntake, username, func(rec store.Record) error {
		in, err := parseCalorieIntake(rec.Fields)
		if err != nil {
			return err
		}
		summary.CaloriesConsumed += in.Calories
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	err = scanUser(st, model.CategoryExerciseActivity, username, func(rec store.Record) error {
		ex, err := parseExerciseActivity(rec.Fields)
		if err != nil {
			return err
		}
		summary.CaloriesBurned += ex.CaloriesBurned
		counts[ex.ExerciseType]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	for name, times := range counts {
		summary.Exercises = append(summary.Exercises, ExerciseCount{ExerciseType: name, Times: times})
	}
	slices.SortFunc(summary.Exercises, func(a, b ExerciseCount) int {
		return strings.Compare(a.ExerciseType, b.ExerciseType)
	})

	total, count, err := sumSleepHours(st, username, policy)
	if err != nil {
		return nil, err
	}
	summary.TotalSleepHours = total
	summary.SleepRecords = count
	if count > 0 {
		avg := total / float64(count)
		summary.AverageSleepHours = &avg
	}
	return summary, nil
}

// String renders the summary as the text block shown to the user.
func (s *HealthSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Calories Consumed: %d\n", s.CaloriesConsumed)
	fmt.Fprintf(&b, "Calories Burned: %d\n", s.CaloriesBurned)
	fmt.Fprintf(&b, "Total Hours of Sleep: %s\n", strconv.FormatFloat(s.TotalSleepHours, 'f', -1, 64))
	if s.AverageSleepHours != nil {
		fmt.Fprintf(&b, "Average Hours of Sleep: %s\n", formatAverage(*s.AverageSleepHours))
	}
	if len(s.Exercises) > 0 {
		b.WriteString("Exercise Summary:\n")
		for _, ex := range s.Exercises {
			fmt.Fprintf(&b, "- %s: %d times\n", ex.ExerciseType, ex.Times)
		}
	}
	return b.String()
}

// formatAverage always shows a fractional part, so 2 renders as "2.0".
func formatAverage(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
