package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate the scores table",
	Long: `Drop the scores table and create it again. All results are lost and
IDs start over from 1.`,
	Args: cobra.NoArgs,
	RunE: runDBReset,
}

func init() {
	dbResetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	dbCmd.AddCommand(dbResetCmd)
}

func runDBReset(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, "db")

	if !flagYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Drop and recreate the scores table?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Reset(); err != nil {
		return err
	}
	logger.Info("database reset", "db", flagDBPath)
	return nil
}
