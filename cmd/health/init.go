package health

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/model"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the health data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(e *env) error {
			if _, err := os.Stat(e.configPath); errors.Is(err, os.ErrNotExist) {
				if err := e.cfg.Save(e.configPath); err != nil {
					return err
				}
			} else if err != nil {
				return fmt.Errorf("stat config file: %w", err)
			}

			if _, err := os.Stat(e.registryPath()); errors.Is(err, os.ErrNotExist) {
				reg, err := e.registry()
				if err != nil {
					return err
				}
				if err := reg.Save(); err != nil {
					return err
				}
			}

			for _, c := range model.Categories() {
				f, err := os.OpenFile(e.store.Path(c), os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("create %s file: %w", c, err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("create %s file: %w", c, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized health data directory at %s\n", e.cfg.DataDir)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
