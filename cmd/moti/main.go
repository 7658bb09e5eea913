// moti is a side-scrolling runner for the terminal.
//
// Usage:
//
//	moti play                - Play a run
//	moti scores              - Show saved results
//	moti scores clear        - Delete all results
//	moti db reset            - Drop and recreate the scores table
//	moti config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.moti/scores.db)
//
// Unset flags fall back to MOTI_* variables, read from the environment,
// ./.env and ~/.moti/moti.env.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/moti-runner/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moti",
	Short: "Moti Runner - jump over obstacles in your terminal",
	Long: `Moti Runner is an endless side-scroller: your runner moves on its own,
you jump over ground obstacles and under (or over) flying ones. Every
obstacle you pass scores a point; every five points the world speeds up.

Available commands:
  play     - Start a run
  scores   - View or clear saved results
  db       - Database maintenance
  config   - Print the default configuration

Examples:
  moti play
  moti play -p Ann -d 1.5
  moti play --preset hard
  moti scores
  moti scores clear

Flag defaults can also come from the environment or a .env file:
  MOTI_DB, MOTI_DEBUG, MOTI_FPS, MOTI_PLAYER, MOTI_PRESET, MOTI_CONFIG,
  MOTI_LOG_FILE`,
	PersistentPreRunE: setupEnv,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagFPS, "fps", "f", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w, with the level taken from --debug.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openStore opens the scores database at --db.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}
