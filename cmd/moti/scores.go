package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moti-runner/internal/platform/tui"
	"github.com/vovakirdan/moti-runner/internal/storage"
)

var (
	flagLimit       int
	flagScorePlayer string
	flagInteractive bool
	flagYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show saved results",
	Long: `Display saved results, highest first.

Examples:
  moti scores
  moti scores --limit 10
  moti scores --player Ann
  moti scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved results",
	Args:  cobra.NoArgs,
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Show at most this many results (0 = all)")
	scoresCmd.Flags().StringVarP(&flagScorePlayer, "player", "p", "", "Only show this player's results")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard screen")
	scoresClearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")

	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	scores, err := queryScores(store)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	printScores(cmd.OutOrStdout(), scores)

	if len(scores) > 0 {
		if highScore, err := store.HighScore(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\nBest: %d\n", highScore)
		}
	}
	return nil
}

func queryScores(store *storage.Store) ([]storage.ScoreEntry, error) {
	switch {
	case flagScorePlayer != "":
		return store.PlayerScores(flagScorePlayer, flagLimit)
	case flagLimit > 0:
		return store.TopScores(flagLimit)
	default:
		return store.AllScores()
	}
}

// printScores prints the results as an aligned table.
func printScores(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintln(w, "High Scores - Moti Runner")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'moti play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, e := range scores {
		date := ""
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %s\n", i+1, e.Name, e.Score, date)
	}
}

func runScoresClear(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, "scores")

	if !flagYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete all saved results?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ClearScores()
	if err != nil {
		return err
	}
	logger.Info("cleared scores", "rows", n, "db", flagDBPath)
	return nil
}

// confirm asks a y/n question and reports whether the answer was yes.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
