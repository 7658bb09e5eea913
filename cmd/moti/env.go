package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables that provide flag defaults. Flags given on the
// command line always win.
var (
	globalEnv = map[string]string{
		"db":    "MOTI_DB",
		"debug": "MOTI_DEBUG",
		"fps":   "MOTI_FPS",
	}
	playEnv = map[string]string{
		"player":   "MOTI_PLAYER",
		"preset":   "MOTI_PRESET",
		"config":   "MOTI_CONFIG",
		"log-file": "MOTI_LOG_FILE",
	}
)

// envFiles lists the dotenv files read at startup, nearest first.
// godotenv never overrides a variable that is already set, so the first
// file to define a key wins and the real environment beats both.
func envFiles() []string {
	files := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".moti", "moti.env"))
	}
	return files
}

// loadEnvFiles reads every existing dotenv file. Missing files are fine.
func loadEnvFiles(files []string) error {
	var errs []error
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%s: %w", f, err))
		}
	}
	return errors.Join(errs...)
}

// applyEnv sets each unchanged flag of cmd from its environment variable.
func applyEnv(cmd *cobra.Command, bindings map[string]string, lookup func(string) (string, bool)) error {
	for name, key := range bindings {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("%s=%q: %w", key, v, err)
		}
	}
	return nil
}

// setupEnv runs before every command.
func setupEnv(cmd *cobra.Command, args []string) error {
	if err := loadEnvFiles(envFiles()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := applyEnv(cmd, globalEnv, os.LookupEnv); err != nil {
		return err
	}
	if cmd == playCmd {
		return applyEnv(cmd, playEnv, os.LookupEnv)
	}
	return nil
}
