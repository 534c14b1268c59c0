package health

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/db"
)

// Set with -ldflags "-X github.com/ongvang00/HealthManagementSystem/cmd/health.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	v := version
	if info, ok := debug.ReadBuildInfo(); ok && v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	fmt.Fprintf(cmd.OutOrStdout(), "health %s\n", v)
	fmt.Fprintf(cmd.OutOrStdout(), "export schema: v%d\n", db.SchemaVersion())
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
