package health

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configPath string
	userFlag   string
	logLevel   string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "health",
	Short: "health tracks calories, exercise and sleep from your terminal",
	Long:  "health is a local-first tracker for calorie intake, exercise activity and sleep, with per-user analysis over plain record files.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding record files (default $XDG_CONFIG_HOME/health)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default <data-dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "Run as this registered user instead of the logged-in one")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")
}
