package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

type ExerciseActivityInput struct {
	Username        string
	ExerciseType    string
	DurationMinutes int
	CaloriesBurned  int
	Date            string
}

// LogExerciseActivity appends one exercise record. The exercise type keeps
// its case since the health summary counts types by exact name.
func LogExerciseActivity(st *store.Store, in ExerciseActivityInput) (model.ExerciseActivity, error) {
	if err := requireUsername(in.Username); err != nil {
		return model.ExerciseActivity{}, err
	}
	in.ExerciseType = strings.TrimSpace(in.ExerciseType)
	if in.ExerciseType == "" {
		return model.ExerciseActivity{}, fmt.Errorf("exercise type is required")
	}
	if err := requireSingleLine("exercise type", in.ExerciseType); err != nil {
		return model.ExerciseActivity{}, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return model.ExerciseActivity{}, err
	}

	rec := model.ExerciseActivity{
		Username:        in.Username,
		ExerciseType:    in.ExerciseType,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  in.CaloriesBurned,
		Date:            date,
	}
	err = st.Append(model.CategoryExerciseActivity,
		rec.Username,
		rec.ExerciseType,
		strconv.Itoa(rec.DurationMinutes),
		strconv.Itoa(rec.CaloriesBurned),
		rec.Date,
	)
	if err != nil {
		return model.ExerciseActivity{}, err
	}
	return rec, nil
}
