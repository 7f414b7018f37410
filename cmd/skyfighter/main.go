// skyfighter is a side-scrolling shooter played in the terminal.
//
// Usage:
//
//	skyfighter play          - Fly the campaign
//	skyfighter levels        - List the campaign levels
//	skyfighter simulate      - Run a headless, seeded simulation
//	skyfighter scores        - Show run history
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyfighter/runs.db)
//	--log-file <path>    - Write the log to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/skyfighter/internal/levels"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfighter",
	Short: "Skyfighter - a side-scrolling shooter in your terminal",
	Long: `Skyfighter is a side-scrolling shooter for the terminal. Shoot down
enemy planes to clear each level, then take on the guardian.

Available commands:
  play      - Fly the campaign
  levels    - Show the campaign levels
  simulate  - Run a headless seeded simulation
  scores    - View run history

Examples:
  skyfighter play
  skyfighter play --level level-three --difficulty hard
  skyfighter simulate --ticks 5000 --seed 42
  skyfighter scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfighter/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
}
