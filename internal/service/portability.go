package service

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

type ExportData struct {
	ExportedAt       string                   `json:"exported_at"`
	Username         string                   `json:"username,omitempty"`
	CalorieIntake    []model.CalorieIntake    `json:"calorie_intake"`
	ExerciseActivity []model.ExerciseActivity `json:"exercise_activity"`
	SleepRecords     []model.SleepRecord      `json:"sleep_records"`
}

type ImportOptions struct {
	// Username, when set, replaces the username of every imported record.
	Username string
	DryRun   bool
}

type ImportReport struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

type SQLiteExportResult struct {
	RunID            string `json:"run_id"`
	CalorieIntake    int    `json:"calorie_intake"`
	ExerciseActivity int    `json:"exercise_activity"`
	SleepRecords     int    `json:"sleep_records"`
}

// ExportSnapshot collects every valid record, or only those of username when
// it is non-empty, in file order.
func ExportSnapshot(st *store.Store, username string) (*ExportData, error) {
	out := &ExportData{
		ExportedAt:       time.Now().UTC().Format(time.RFC3339),
		Username:         username,
		CalorieIntake:    make([]model.CalorieIntake, 0),
		ExerciseActivity: make([]model.ExerciseActivity, 0),
		SleepRecords:     make([]model.SleepRecord, 0),
	}
	keep := func(fields []string) bool { return username == "" || fields[0] == username }

	err := scan(st, model.CategoryCalorieIntake, keep, func(rec store.Record) error {
		in, err := parseCalorieIntake(rec.Fields)
		if err != nil {
			return err
		}
		out.CalorieIntake = append(out.CalorieIntake, in)
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = scan(st, model.CategoryExerciseActivity, keep, func(rec store.Record) error {
		ex, err := parseExerciseActivity(rec.Fields)
		if err != nil {
			return err
		}
		out.ExerciseActivity = append(out.ExerciseActivity, ex)
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = scan(st, model.CategorySleepRecord, keep, func(rec store.Record) error {
		sr, err := parseSleepRecord(rec.Fields)
		if err != nil {
			return err
		}
		out.SleepRecords = append(out.SleepRecords, sr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var csvExportHeader = []string{"category", "username", "item", "duration_min", "calories", "sleep_start", "sleep_end", "date"}

// WriteCSV writes the snapshot as one CSV table with a category column.
func WriteCSV(w io.Writer, data *ExportData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvExportHeader); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, in := range data.CalorieIntake {
		row := []string{string(model.CategoryCalorieIntake), in.Username, in.FoodItem, "", strconv.Itoa(in.Calories), "", "", in.Date}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	for _, ex := range data.ExerciseActivity {
		row := []string{string(model.CategoryExerciseActivity), ex.Username, ex.ExerciseType, strconv.Itoa(ex.DurationMinutes), strconv.Itoa(ex.CaloriesBurned), "", "", ex.Date}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	for _, sr := range data.SleepRecords {
		row := []string{string(model.CategorySleepRecord), sr.Username, "", "", "", sr.SleepStart, sr.SleepEnd, sr.Date}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export csv: %w", err)
	}
	return nil
}

// ExportSQLite copies the snapshot into sqldb under a new export run. The
// schema must already be migrated.
func ExportSQLite(sqldb *sql.DB, data *ExportData, sourceDir string) (SQLiteExportResult, error) {
	res := SQLiteExportResult{RunID: uuid.NewString()}

	tx, err := sqldb.Begin()
	if err != nil {
		return res, fmt.Errorf("begin export tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`INSERT INTO export_runs(id, exported_at, source_dir, username_filter) VALUES(?, ?, ?, ?)`,
		res.RunID, time.Now().UTC().Format(time.RFC3339), sourceDir, data.Username); err != nil {
		return res, fmt.Errorf("insert export run: %w", err)
	}

	for _, in := range data.CalorieIntake {
		if _, err := tx.Exec(`INSERT INTO calorie_intake(run_id, username, food_item, calories, logged_on) VALUES(?, ?, ?, ?, ?)`,
			res.RunID, in.Username, in.FoodItem, in.Calories, in.Date); err != nil {
			return res, fmt.Errorf("insert calorie intake: %w", err)
		}
		res.CalorieIntake++
	}
	for _, ex := range data.ExerciseActivity {
		if _, err := tx.Exec(`INSERT INTO exercise_activity(run_id, username, exercise_type, duration_min, calories_burned, logged_on) VALUES(?, ?, ?, ?, ?, ?)`,
			res.RunID, ex.Username, ex.ExerciseType, ex.DurationMinutes, ex.CaloriesBurned, ex.Date); err != nil {
			return res, fmt.Errorf("insert exercise activity: %w", err)
		}
		res.ExerciseActivity++
	}
	for _, sr := range data.SleepRecords {
		if _, err := tx.Exec(`INSERT INTO sleep_records(run_id, username, sleep_start, sleep_end, logged_on) VALUES(?, ?, ?, ?, ?)`,
			res.RunID, sr.Username, sr.SleepStart, sr.SleepEnd, sr.Date); err != nil {
			return res, fmt.Errorf("insert sleep record: %w", err)
		}
		res.SleepRecords++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit export: %w", err)
	}
	return res, nil
}

// ImportSnapshot appends the records of a JSON snapshot. Records without a
// username, a valid date or their required text field are skipped and
// reported as warnings.
func ImportSnapshot(st *store.Store, data *ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	user := func(u string) string {
		if opts.Username != "" {
			return opts.Username
		}
		return u
	}
	skip := func(kind string, i int, err error) {
		report.Skipped++
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s[%d]: %v", kind, i, err))
	}
	// Dry runs validate without appending.
	appendOrCheck := func(c model.Category, fields ...string) error {
		if opts.DryRun {
			return validateFields(c, fields)
		}
		return st.Append(c, fields...)
	}

	for i, in := range data.CalorieIntake {
		if err := checkImported(user(in.Username), in.Date); err != nil {
			skip("calorie_intake", i, err)
			continue
		}
		if in.FoodItem == "" {
			skip("calorie_intake", i, fmt.Errorf("food item is required"))
			continue
		}
		if err := requireSingleLine("food item", in.FoodItem); err != nil {
			skip("calorie_intake", i, err)
			continue
		}
		if err := appendOrCheck(model.CategoryCalorieIntake, user(in.Username), in.FoodItem, strconv.Itoa(in.Calories), in.Date); err != nil {
			return report, err
		}
		report.Inserted++
	}
	for i, ex := range data.ExerciseActivity {
		if err := checkImported(user(ex.Username), ex.Date); err != nil {
			skip("exercise_activity", i, err)
			continue
		}
		if ex.ExerciseType == "" {
			skip("exercise_activity", i, fmt.Errorf("exercise type is required"))
			continue
		}
		if err := requireSingleLine("exercise type", ex.ExerciseType); err != nil {
			skip("exercise_activity", i, err)
			continue
		}
		if err := appendOrCheck(model.CategoryExerciseActivity, user(ex.Username), ex.ExerciseType, strconv.Itoa(ex.DurationMinutes), strconv.Itoa(ex.CaloriesBurned), ex.Date); err != nil {
			return report, err
		}
		report.Inserted++
	}
	for i, sr := range data.SleepRecords {
		if err := checkImported(user(sr.Username), sr.Date); err != nil {
			skip("sleep_records", i, err)
			continue
		}
		if _, err := parseSleepRecord([]string{sr.Username, sr.SleepStart, sr.SleepEnd, sr.Date}); err != nil {
			skip("sleep_records", i, err)
			continue
		}
		if err := appendOrCheck(model.CategorySleepRecord, user(sr.Username), sr.SleepStart, sr.SleepEnd, sr.Date); err != nil {
			return report, err
		}
		report.Inserted++
	}
	return report, nil
}

func checkImported(username, date string) error {
	if err := requireUsername(username); err != nil {
		return err
	}
	if err := requireSingleLine("username", username); err != nil {
		return err
	}
	if date == "" {
		return fmt.Errorf("date is required")
	}
	_, err := normalizeDate(date)
	return err
}
