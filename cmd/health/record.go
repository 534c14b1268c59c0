package health

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/service"
	"github.com/ongvang00/HealthManagementSystem/internal/session"
)

var calorieCmd = &cobra.Command{
	Use:   "calorie",
	Short: "Record calorie intake",
}

var (
	calorieFood  string
	calorieValue int
	calorieDate  string
)

var calorieAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a calorie intake record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			rec, err := service.LogCalorieIntake(e.store, service.CalorieIntakeInput{
				Username: sess.Username,
				FoodItem: calorieFood,
				Calories: calorieValue,
				Date:     calorieDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d kcal of %s on %s\n", rec.Calories, rec.FoodItem, rec.Date)
			return nil
		})
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Record exercise activity",
}

var (
	exerciseType     string
	exerciseDuration int
	exerciseBurned   int
	exerciseDate     string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise activity record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			rec, err := service.LogExerciseActivity(e.store, service.ExerciseActivityInput{
				Username:        sess.Username,
				ExerciseType:    exerciseType,
				DurationMinutes: exerciseDuration,
				CaloriesBurned:  exerciseBurned,
				Date:            exerciseDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %d min (%d kcal burned) on %s\n",
				rec.ExerciseType, rec.DurationMinutes, rec.CaloriesBurned, rec.Date)
			return nil
		})
	},
}

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record sleep",
}

var (
	sleepStart string
	sleepEnd   string
	sleepDate  string
)

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a sleep record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			rec, err := service.LogSleepRecord(e.store, service.SleepRecordInput{
				Username: sess.Username,
				Start:    sleepStart,
				End:      sleepEnd,
				Date:     sleepDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded sleep %s-%s on %s\n", rec.SleepStart, rec.SleepEnd, rec.Date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calorieCmd)
	calorieCmd.AddCommand(calorieAddCmd)
	calorieAddCmd.Flags().StringVar(&calorieFood, "food", "", "Food item")
	calorieAddCmd.Flags().IntVar(&calorieValue, "calories", 0, "Calories consumed")
	calorieAddCmd.Flags().StringVar(&calorieDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = calorieAddCmd.MarkFlagRequired("food")
	_ = calorieAddCmd.MarkFlagRequired("calories")

	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseAddCmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration-min", 0, "Duration in minutes")
	exerciseAddCmd.Flags().IntVar(&exerciseBurned, "calories", 0, "Estimated calories burned")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = exerciseAddCmd.MarkFlagRequired("type")
	_ = exerciseAddCmd.MarkFlagRequired("duration-min")
	_ = exerciseAddCmd.MarkFlagRequired("calories")

	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepAddCmd)
	sleepAddCmd.Flags().StringVar(&sleepStart, "start", "", "Sleep start HH:mm")
	sleepAddCmd.Flags().StringVar(&sleepEnd, "end", "", "Sleep end HH:mm")
	sleepAddCmd.Flags().StringVar(&sleepDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = sleepAddCmd.MarkFlagRequired("start")
	_ = sleepAddCmd.MarkFlagRequired("end")
}
