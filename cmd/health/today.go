package health

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/service"
	"github.com/ongvang00/HealthManagementSystem/internal/session"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show one day's intake, exercise and sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			status, err := service.DaySummary(e.store, sess.Username, todayDate, e.cfg.SleepPolicy)
			if err != nil {
				return err
			}
			if todayJSON {
				return printJSON(cmd.OutOrStdout(), status)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", status.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d kcal\n", status.IntakeCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Exercise: %d kcal in %d min\n", status.ExerciseCalories, status.ExerciseMinutes)
			fmt.Fprintf(cmd.OutOrStdout(), "Net: %d kcal\n", status.NetCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep: %s h\n", strconv.FormatFloat(status.SleepHours, 'f', -1, 64))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output JSON")
}
