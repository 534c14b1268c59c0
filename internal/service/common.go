package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

func today() string {
	return time.Now().Format(model.DateLayout)
}

// normalizeDate defaults an empty date to today and checks the layout of
// any other value.
func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return today(), nil
	}
	if _, err := time.ParseInLocation(model.DateLayout, date, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func requireUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

func requireSingleLine(name, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%s must not contain line breaks", name)
	}
	return nil
}

func parseIntField(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

// scanUser calls fn for every record of c that belongs to username, in file
// order. An empty username matches nothing.
func scanUser(st *store.Store, c model.Category, username string, fn func(store.Record) error) error {
	if username == "" {
		return nil
	}
	return scan(st, c, func(fields []string) bool { return fields[0] == username }, fn)
}

// scan calls fn for every record of c that has the category's arity and
// passes keep. Records with the wrong field count are skipped silently: a
// comma typed into a free-text field by an older build produces such lines
// and they must not stop the scan. Records fn rejects are skipped with a
// warning.
func scan(st *store.Store, c model.Category, keep func([]string) bool, fn func(store.Record) error) error {
	log := st.Logger()
	for rec, err := range st.ReadAll(c) {
		if err != nil {
			return fmt.Errorf("scan %s records: %w", c, err)
		}
		if len(rec.Fields) != c.Arity() || !keep(rec.Fields) {
			continue
		}
		if err := fn(rec); err != nil {
			log.Warnf("skipping %s line %d: %v", c, rec.Line, err)
		}
	}
	return nil
}

// parseDateField rejects the empty or garbled dates a trailing comma or a
// hand edit leaves behind.
func parseDateField(value string) (string, error) {
	if _, err := time.ParseInLocation(model.DateLayout, value, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q", value)
	}
	return value, nil
}

func parseCalorieIntake(fields []string) (model.CalorieIntake, error) {
	calories, err := parseIntField("calories", fields[2])
	if err != nil {
		return model.CalorieIntake{}, err
	}
	date, err := parseDateField(fields[3])
	if err != nil {
		return model.CalorieIntake{}, err
	}
	return model.CalorieIntake{
		Username: fields[0],
		FoodItem: fields[1],
		Calories: calories,
		Date:     date,
	}, nil
}

func parseExerciseActivity(fields []string) (model.ExerciseActivity, error) {
	duration, err := parseIntField("duration", fields[2])
	if err != nil {
		return model.ExerciseActivity{}, err
	}
	burned, err := parseIntField("calories burned", fields[3])
	if err != nil {
		return model.ExerciseActivity{}, err
	}
	date, err := parseDateField(fields[4])
	if err != nil {
		return model.ExerciseActivity{}, err
	}
	return model.ExerciseActivity{
		Username:        fields[0],
		ExerciseType:    fields[1],
		DurationMinutes: duration,
		CaloriesBurned:  burned,
		Date:            date,
	}, nil
}

func parseSleepRecord(fields []string) (model.SleepRecord, error) {
	if _, _, err := parseClock(fields[1]); err != nil {
		return model.SleepRecord{}, err
	}
	if _, _, err := parseClock(fields[2]); err != nil {
		return model.SleepRecord{}, err
	}
	date, err := parseDateField(fields[3])
	if err != nil {
		return model.SleepRecord{}, err
	}
	return model.SleepRecord{
		Username:   fields[0],
		SleepStart: fields[1],
		SleepEnd:   fields[2],
		Date:       date,
	}, nil
}
