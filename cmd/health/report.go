package health

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/service"
	"github.com/ongvang00/HealthManagementSystem/internal/session"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze the active user's records",
}

var reportBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show one calorie line per intake record",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			lines, err := service.DailyCaloricBalance(e.store, sess.Username)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), lines)
			}
			printSection(cmd.OutOrStdout(), "Daily Caloric Balance", lines)
			return nil
		})
	},
}

var reportSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Show average hours of sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			avg, err := service.AverageSleepHours(e.store, sess.Username, e.cfg.SleepPolicy)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"username":            sess.Username,
					"sleep_policy":        e.cfg.SleepPolicy,
					"average_sleep_hours": avg,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "=== Sleep Analysis ===")
			fmt.Fprintf(cmd.OutOrStdout(), "Average hours of sleep per day: %.2f\n", avg)
			return nil
		})
	},
}

var reportExerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Show the exercise log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			lines, err := service.ExerciseLog(e.store, sess.Username)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), lines)
			}
			printSection(cmd.OutOrStdout(), "Exercise Log", lines)
			return nil
		})
	},
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals and exercise frequency",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(e *env, sess session.Session) error {
			summary, err := service.BuildHealthSummary(e.store, sess.Username, e.cfg.SleepPolicy)
			if err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "=== Health Summary ===")
			fmt.Fprint(cmd.OutOrStdout(), summary.String())
			return nil
		})
	},
}

func printSection(w io.Writer, title string, lines []string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportBalanceCmd)
	reportCmd.AddCommand(reportSleepCmd)
	reportCmd.AddCommand(reportExerciseCmd)
	reportCmd.AddCommand(reportSummaryCmd)
	reportCmd.PersistentFlags().BoolVar(&reportJSON, "json", false, "Output JSON")
}
