package health

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/service"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report record lines that analysis skips",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(e *env) error {
			report, err := service.RunDoctor(e.store)
			if err != nil {
				return err
			}
			for _, c := range report.Categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d valid, %d wrong field count, %d invalid values, %d unquoted\n",
					c.Category, c.Records, c.Valid, c.ArityMismatch, c.InvalidValues, c.Unquoted)
				if len(c.SampleLines) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "  first bad lines in %s: %v\n", c.Path, c.SampleLines)
				}
				if c.LockHeld != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  lock held by another process: %s\n", c.LockHeld)
				}
			}
			if report.Issues() > 0 {
				return fmt.Errorf("doctor found %d malformed record lines", report.Issues())
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
