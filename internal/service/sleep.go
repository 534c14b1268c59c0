package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

type SleepRecordInput struct {
	Username string
	// Start and End are HH:mm on a 24-hour clock.
	Start string
	End   string
	Date  string
}

func LogSleepRecord(st *store.Store, in SleepRecordInput) (model.SleepRecord, error) {
	if err := requireUsername(in.Username); err != nil {
		return model.SleepRecord{}, err
	}
	in.Start = strings.TrimSpace(in.Start)
	in.End = strings.TrimSpace(in.End)
	if _, _, err := parseClock(in.Start); err != nil {
		return model.SleepRecord{}, fmt.Errorf("sleep start: %w", err)
	}
	if _, _, err := parseClock(in.End); err != nil {
		return model.SleepRecord{}, fmt.Errorf("sleep end: %w", err)
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return model.SleepRecord{}, err
	}

	rec := model.SleepRecord{
		Username:   in.Username,
		SleepStart: in.Start,
		SleepEnd:   in.End,
		Date:       date,
	}
	if err := st.Append(model.CategorySleepRecord, rec.Username, rec.SleepStart, rec.SleepEnd, rec.Date); err != nil {
		return model.SleepRecord{}, err
	}
	return rec, nil
}

func parseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse(model.ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:mm)", value)
	}
	return t.Hour(), t.Minute(), nil
}

// SleepHours derives the hours slept between two HH:mm times.
//
// Under the legacy policy the result is endHour-startHour, minus one when the
// end minute is before the start minute; minutes are otherwise dropped and a
// span past midnight comes out negative. The elapsed policy returns elapsed
// minutes over 60 and wraps an end before the start into the next day.
func SleepHours(start, end string, policy config.SleepPolicy) (float64, error) {
	sh, sm, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	eh, em, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	switch policy {
	case config.SleepPolicyElapsed:
		minutes := (eh*60 + em) - (sh*60 + sm)
		if minutes < 0 {
			minutes += 24 * 60
		}
		return float64(minutes) / 60, nil
	case config.SleepPolicyLegacy, "":
		hours := eh - sh
		if em-sm < 0 {
			hours--
		}
		return float64(hours), nil
	default:
		return 0, fmt.Errorf("unknown sleep policy %q", policy)
	}
}
