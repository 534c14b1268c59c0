package health

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/db"
	"github.com/ongvang00/HealthManagementSystem/internal/filelock"
	"github.com/ongvang00/HealthManagementSystem/internal/service"
)

var (
	exportFormat   string
	exportOut      string
	exportAllUsers bool
	importIn       string
	importAs       string
	importDryRun   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records (sqlite, csv, json, markdown or html)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		return withStore(cmd, func(e *env) error {
			username := ""
			if !exportAllUsers || format == "markdown" || format == "html" {
				reg, err := e.registry()
				if err != nil {
					return err
				}
				sess, err := resolveSession(reg)
				if err != nil {
					return err
				}
				username = sess.Username
			}

			switch format {
			case "json", "csv", "sqlite":
				data, err := service.ExportSnapshot(e.store, username)
				if err != nil {
					return err
				}
				if format == "sqlite" {
					res, err := exportSQLite(data, e.cfg.DataDir)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Export run %s: %d intake, %d exercise, %d sleep records\n",
						res.RunID, res.CalorieIntake, res.ExerciseActivity, res.SleepRecords)
					break
				}
				var buf bytes.Buffer
				if format == "csv" {
					if err := service.WriteCSV(&buf, data); err != nil {
						return err
					}
				} else {
					b, err := json.MarshalIndent(data, "", "  ")
					if err != nil {
						return fmt.Errorf("marshal export json: %w", err)
					}
					buf.Write(b)
					buf.WriteByte('\n')
				}
				if err := filelock.AtomicWrite(exportOut, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
			case "markdown", "html":
				report, err := service.BuildFullReport(e.store, username, e.cfg.SleepPolicy)
				if err != nil {
					return err
				}
				out := report.Markdown()
				if format == "html" {
					if out, err = report.HTML(); err != nil {
						return err
					}
				}
				if err := filelock.AtomicWrite(exportOut, []byte(out), 0o644); err != nil {
					return fmt.Errorf("write export file: %w", err)
				}
			default:
				return fmt.Errorf("unsupported --format %q (use sqlite, csv, json, markdown or html)", exportFormat)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			return nil
		})
	},
}

func exportSQLite(data *service.ExportData, sourceDir string) (service.SQLiteExportResult, error) {
	sqldb, err := db.Open(exportOut)
	if err != nil {
		return service.SQLiteExportResult{}, err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return service.SQLiteExportResult{}, err
	}
	return service.ExportSQLite(sqldb, data, sourceDir)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Append records from a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var payload service.ExportData
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("parse import json: %w", err)
		}
		return withStore(cmd, func(e *env) error {
			as := strings.TrimSpace(importAs)
			if as != "" {
				reg, err := e.registry()
				if err != nil {
					return err
				}
				if !reg.Exists(as) {
					return fmt.Errorf("--as %q is not a registered user", as)
				}
			}
			report, err := service.ImportSnapshot(e.store, &payload, service.ImportOptions{
				Username: as,
				DryRun:   importDryRun,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import report: inserted=%d skipped=%d\n", report.Inserted, report.Skipped)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: sqlite, csv, json, markdown or html")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path")
	exportCmd.Flags().BoolVar(&exportAllUsers, "all-users", false, "Export every user's records (sqlite, csv and json only)")

	importCmd.Flags().StringVar(&importIn, "in", "", "JSON export to read")
	importCmd.Flags().StringVar(&importAs, "as", "", "Store every imported record under this registered user")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate without writing records")
}
