package service

import (
	"fmt"

	"github.com/ongvang00/HealthManagementSystem/internal/filelock"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

const maxSampleLines = 5

type CategoryCheck struct {
	Category      model.Category `json:"category"`
	Path          string         `json:"path"`
	Records       int            `json:"records"`
	Valid         int            `json:"valid"`
	ArityMismatch int            `json:"arity_mismatch"`
	InvalidValues int            `json:"invalid_values"`
	// Unquoted counts lines from before quoting that decode by comma split.
	Unquoted int `json:"unquoted"`
	// LockHeld names the lock file when another process holds it.
	LockHeld string `json:"lock_held,omitempty"`
	// SampleLines lists the first offending line numbers.
	SampleLines []int `json:"sample_lines,omitempty"`
}

func (c CategoryCheck) Issues() int {
	return c.ArityMismatch + c.InvalidValues
}

type DoctorReport struct {
	Categories []CategoryCheck `json:"categories"`
}

func (r DoctorReport) Issues() int {
	n := 0
	for _, c := range r.Categories {
		n += c.Issues()
	}
	return n
}

// RunDoctor scans every category file for the lines analysis would skip,
// either for their field count or for fields that do not parse. It also
// notes lock files another process is holding.
func RunDoctor(st *store.Store) (DoctorReport, error) {
	report := DoctorReport{}
	for _, c := range model.Categories() {
		check, err := checkCategory(st, c)
		if err != nil {
			return report, err
		}
		report.Categories = append(report.Categories, check)
	}
	return report, nil
}

func checkCategory(st *store.Store, c model.Category) (CategoryCheck, error) {
	check := CategoryCheck{Category: c, Path: st.Path(c)}
	held, err := lockHeld(check.Path)
	if err != nil {
		return check, fmt.Errorf("doctor %s: %w", c, err)
	}
	check.LockHeld = held

	flag := func(line int) {
		if len(check.SampleLines) < maxSampleLines {
			check.SampleLines = append(check.SampleLines, line)
		}
	}
	for rec, err := range st.ReadAll(c) {
		if err != nil {
			return check, fmt.Errorf("doctor %s: %w", c, err)
		}
		check.Records++
		if rec.Unquoted {
			check.Unquoted++
		}
		if len(rec.Fields) != c.Arity() {
			check.ArityMismatch++
			flag(rec.Line)
			continue
		}
		if err := validateFields(c, rec.Fields); err != nil {
			check.InvalidValues++
			flag(rec.Line)
			continue
		}
		check.Valid++
	}
	return check, nil
}

// lockHeld returns the lock file path of target when it cannot be taken
// without waiting, and "" otherwise.
func lockHeld(target string) (string, error) {
	l := filelock.New(target)
	ok, err := l.TryLock()
	if err != nil {
		return "", err
	}
	if !ok {
		return l.Path(), nil
	}
	return "", l.Unlock()
}

func validateFields(c model.Category, fields []string) error {
	var err error
	switch c {
	case model.CategoryCalorieIntake:
		_, err = parseCalorieIntake(fields)
	case model.CategoryExerciseActivity:
		_, err = parseExerciseActivity(fields)
	case model.CategorySleepRecord:
		_, err = parseSleepRecord(fields)
	default:
		err = fmt.Errorf("unknown category %q", c)
	}
	return err
}
