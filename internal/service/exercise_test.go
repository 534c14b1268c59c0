package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/service"
)

func TestLogRecordsAppendInCallOrder(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	for _, food := range []string{"oatmeal", "salad", "oatmeal"} {
		if _, err := service.LogCalorieIntake(st, service.CalorieIntakeInput{
			Username: "alice", FoodItem: food, Calories: 100, Date: "2026-02-20",
		}); err != nil {
			t.Fatalf("log calorie intake: %v", err)
		}
	}
	recs := collectRecords(t, st, model.CategoryCalorieIntake)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records including the duplicate, got %d", len(recs))
	}
	for i, want := range []string{"oatmeal", "salad", "oatmeal"} {
		if recs[i].Fields[1] != want {
			t.Fatalf("record %d: expected %q, got %q", i, want, recs[i].Fields[1])
		}
	}
}

func TestLogCalorieIntakeValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	cases := []struct {
		name string
		in   service.CalorieIntakeInput
		want string
	}{
		{name: "missing user", in: service.CalorieIntakeInput{FoodItem: "apple", Calories: 90}, want: "username is required"},
		{name: "blank food", in: service.CalorieIntakeInput{Username: "alice", FoodItem: "  ", Calories: 90}, want: "food item is required"},
		{name: "bad date", in: service.CalorieIntakeInput{Username: "alice", FoodItem: "apple", Date: "20/02/2026"}, want: "invalid date"},
		{name: "line break", in: service.CalorieIntakeInput{Username: "alice", FoodItem: "soup\nand bread", Calories: 400}, want: "food item must not contain line breaks"},
	}
	for _, tc := range cases {
		if _, err := service.LogCalorieIntake(st, tc.in); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
	if recs := collectRecords(t, st, model.CategoryCalorieIntake); len(recs) != 0 {
		t.Fatalf("rejected input must not be stored, got %d records", len(recs))
	}
}

func TestLogCalorieIntakeDefaultsDateToToday(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	rec, err := service.LogCalorieIntake(st, service.CalorieIntakeInput{Username: "alice", FoodItem: "apple", Calories: -20})
	if err != nil {
		t.Fatalf("log calorie intake: %v", err)
	}
	if rec.Date != time.Now().Format(model.DateLayout) {
		t.Fatalf("expected today's date, got %q", rec.Date)
	}
	if rec.Calories != -20 {
		t.Fatalf("negative calories must be stored as given, got %d", rec.Calories)
	}
}

func TestLogExerciseActivityKeepsCommaInType(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	if _, err := service.LogExerciseActivity(st, service.ExerciseActivityInput{
		Username: "alice", ExerciseType: " Yoga, hot ", DurationMinutes: 60, CaloriesBurned: 250, Date: "2026-02-20",
	}); err != nil {
		t.Fatalf("log exercise: %v", err)
	}
	summary, err := service.BuildHealthSummary(st, "alice", config.SleepPolicyLegacy)
	if err != nil {
		t.Fatalf("health summary: %v", err)
	}
	if len(summary.Exercises) != 1 || summary.Exercises[0].ExerciseType != "Yoga, hot" {
		t.Fatalf("unexpected exercises: %+v", summary.Exercises)
	}
	if _, err := service.LogExerciseActivity(st, service.ExerciseActivityInput{Username: "alice"}); err == nil {
		t.Fatalf("expected missing exercise type error")
	}
	_, err = service.LogExerciseActivity(st, service.ExerciseActivityInput{Username: "alice", ExerciseType: "Run\r\nSwim", DurationMinutes: 10})
	if err == nil || !strings.Contains(err.Error(), "exercise type must not contain line breaks") {
		t.Fatalf("expected line break error, got %v", err)
	}
}

func TestLogSleepRecordValidatesClock(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	if _, err := service.LogSleepRecord(st, service.SleepRecordInput{Username: "alice", Start: "10pm", End: "06:00"}); err == nil || !strings.Contains(err.Error(), "sleep start") {
		t.Fatalf("expected sleep start error, got %v", err)
	}
	if _, err := service.LogSleepRecord(st, service.SleepRecordInput{Username: "alice", Start: "22:00", End: "24:30"}); err == nil || !strings.Contains(err.Error(), "sleep end") {
		t.Fatalf("expected sleep end error, got %v", err)
	}
	rec, err := service.LogSleepRecord(st, service.SleepRecordInput{Username: "alice", Start: "22:00", End: "06:00", Date: "2026-02-20"})
	if err != nil {
		t.Fatalf("log sleep: %v", err)
	}
	if rec.SleepStart != "22:00" || rec.SleepEnd != "06:00" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestDaySummaryNetsOneDate(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	appendRaw(t, st, model.CategoryCalorieIntake, "alice", "oatmeal", "300", "2026-02-20")
	appendRaw(t, st, model.CategoryCalorieIntake, "alice", "pasta", "700", "2026-02-20")
	appendRaw(t, st, model.CategoryCalorieIntake, "alice", "cake", "400", "2026-02-21")
	appendRaw(t, st, model.CategoryCalorieIntake, "bob", "pizza", "900", "2026-02-20")
	appendRaw(t, st, model.CategoryExerciseActivity, "alice", "Run", "30", "300", "2026-02-20")
	appendRaw(t, st, model.CategorySleepRecord, "alice", "23:00", "07:30", "2026-02-20")

	status, err := service.DaySummary(st, "alice", "2026-02-20", config.SleepPolicyElapsed)
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if status.IntakeCalories != 1000 || status.ExerciseCalories != 300 || status.NetCalories != 700 {
		t.Fatalf("unexpected calories: %+v", status)
	}
	if status.ExerciseMinutes != 30 || status.SleepHours != 8.5 || status.Entries != 4 {
		t.Fatalf("unexpected status: %+v", status)
	}

	if _, err := service.DaySummary(st, "alice", "yesterday", config.SleepPolicyLegacy); err == nil {
		t.Fatalf("expected invalid date error")
	}
}
