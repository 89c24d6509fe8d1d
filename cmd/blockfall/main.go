// blockfall is a falling-block puzzle for the terminal and the desktop.
//
// Usage:
//
//	blockfall play           - Play in the terminal
//	blockfall window         - Play in a desktop window
//	blockfall history        - Show recently played runs
//	blockfall config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--fps <rate>       - Set tick rate (default: from config)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.blockfall/history.db)
//	--log-file <path>  - Log file for the terminal frontend
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
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
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle",
	Long: `Blockfall drops tetrominoes into a fixed grid. Move and rotate them,
fill rows to clear them, and keep the stack below the top.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  history  - Show recently played runs
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall window --seed 42
  blockfall history --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.blockfall/blockfall.log", "Log file used while the terminal frontend owns the screen")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
