package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moti-runner/internal/audio"
	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
	"github.com/vovakirdan/moti-runner/internal/games/runner"
	"github.com/vovakirdan/moti-runner/internal/platform/tui"
	"github.com/vovakirdan/moti-runner/internal/storage"
)

var (
	flagPlayer     string
	flagSpeed      float64
	flagWidth      int
	flagHeight     int
	flagDifficulty float64
	flagPreset     string
	flagConfig     string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run. The session starts paused; press P to go.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause / resume
  R          - Restart (after game over)
  M          - Toggle sound
  Tab        - Scoreboard
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Presets:
  easy   - 5 lives, longer grace period, fewer flying obstacles
  normal - The configured defaults
  hard   - 2 lives, shorter grace period, denser obstacles
  fixed  - No speed-up as the score grows

Examples:
  moti play
  moti play --player Ann --speed 500
  moti play --difficulty 1.5 --preset hard
  moti play --config ./my-runner.yaml --log-file moti.log --debug

Edits to the --config file are picked up while playing and take effect on
the next restart.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	defaults := core.DefaultConfig()
	playCmd.Flags().StringVarP(&flagPlayer, "player", "p", "Player1", "Player name used for saved scores")
	playCmd.Flags().Float64VarP(&flagSpeed, "speed", "s", defaults.InitialSpeed, "Initial game speed in px/s")
	playCmd.Flags().IntVarP(&flagWidth, "width", "W", defaults.ScreenW, "World width in pixels")
	playCmd.Flags().IntVarP(&flagHeight, "height", "H", defaults.ScreenH, "World height in pixels")
	playCmd.Flags().Float64VarP(&flagDifficulty, "difficulty", "d", defaults.Difficulty, "Difficulty multiplier")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	runtime := core.RuntimeConfig{
		ScreenW:      flagWidth,
		ScreenH:      flagHeight,
		TickRate:     flagFPS,
		Seed:         flagSeed,
		InitialSpeed: flagSpeed,
		Difficulty:   flagDifficulty,
	}
	if err := runtime.Validate(); err != nil {
		return err
	}

	preset := config.ParsePreset(flagPreset)
	if flagPreset != "" && preset == "" {
		return fmt.Errorf("unknown preset %q (want easy, normal, hard or fixed)", flagPreset)
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "moti")

	game, mixer := newGame(runtime, flagConfig, preset, os.Stderr, logger)
	if err := game.ConfigError(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("config fallback", "err", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Player: flagPlayer,
		Sound:  mixer,
		Logger: logger,
		Width:  width,
		Height: height,
	}

	// Follow edits to a custom config file; changes apply on the next restart.
	if flagConfig != "" {
		watcher, err := config.NewWatcher(flagConfig)
		if err != nil {
			logger.Warn("config reload disabled", "err", err)
		} else {
			defer watcher.Close()
			cfgLog := logger.WithPrefix("config")
			opts.ConfigUpdates = config.WatchRunner(watcher, preset, func(err error) {
				cfgLog.Warn("reload failed", "path", watcher.Path(), "err", err)
			})
		}
	}

	// Continue without storage if the database is unavailable
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("no score storage", "err", err)
	} else {
		store = s
		defer store.Close()
		opts.Store = s
	}

	final, err := tui.Run(game, runtime, opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	best := -1
	if store != nil {
		if b, err := store.HighScore(); err == nil {
			best = b
		}
	}

	printResult(cmd.OutOrStdout(), flagPlayer, final, best)
	return nil
}

// newGame builds the runner with its config loaded from path, or the
// default search locations when path is empty, and preset applied. The
// mixer takes its settings from that same config.
func newGame(runtime core.RuntimeConfig, path string, preset config.DifficultyPreset, bell io.Writer, logger *log.Logger) (*runner.Game, *audio.Mixer) {
	game := runner.New(nil, runner.WithConfigPath(path), runner.WithPreset(preset))
	game.Reset(runtime)

	mixer := audio.New(game.Config().Audio, bell, logger.WithPrefix("audio"))
	game.SetSound(mixer)
	return game, mixer
}

// printResult prints the summary of the last run.
func printResult(w io.Writer, player string, s core.GameState, best int) {
	fmt.Fprintf(w, "Game result - %s\n", player)
	fmt.Fprintf(w, "  Score:      %d\n", s.Score)
	fmt.Fprintf(w, "  Max speed:  %.0f\n", s.MaxSpeed)
	fmt.Fprintf(w, "  Time:       %.1fs\n", s.Elapsed)
	if best >= 0 {
		fmt.Fprintf(w, "  Best:       %d\n", best)
	}
}
