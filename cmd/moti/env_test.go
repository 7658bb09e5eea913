package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newEnvTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("player", "Player1", "")
	cmd.Flags().Int("fps", 60, "")
	return cmd
}

func TestApplyEnvFillsUnsetFlags(t *testing.T) {
	cmd := newEnvTestCmd()
	env := map[string]string{"MOTI_PLAYER": "ann", "MOTI_FPS": "30"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	bindings := map[string]string{"player": "MOTI_PLAYER", "fps": "MOTI_FPS", "missing": "MOTI_MISSING"}
	if err := applyEnv(cmd, bindings, lookup); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}

	if got, _ := cmd.Flags().GetString("player"); got != "ann" {
		t.Errorf("player=%q, want ann", got)
	}
	if got, _ := cmd.Flags().GetInt("fps"); got != 30 {
		t.Errorf("fps=%d, want 30", got)
	}
}

func TestApplyEnvKeepsExplicitFlags(t *testing.T) {
	cmd := newEnvTestCmd()
	if err := cmd.Flags().Parse([]string{"--player", "bob"}); err != nil {
		t.Fatal(err)
	}
	lookup := func(string) (string, bool) { return "ann", true }

	if err := applyEnv(cmd, map[string]string{"player": "MOTI_PLAYER"}, lookup); err != nil {
		t.Fatalf("applyEnv() failed: %v", err)
	}
	if got, _ := cmd.Flags().GetString("player"); got != "bob" {
		t.Errorf("player=%q, want bob from the command line", got)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	cmd := newEnvTestCmd()
	lookup := func(string) (string, bool) { return "fast", true }

	if err := applyEnv(cmd, map[string]string{"fps": "MOTI_FPS"}, lookup); err == nil {
		t.Error("expected an error for a non-numeric MOTI_FPS")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	near := filepath.Join(dir, "near.env")
	far := filepath.Join(dir, "far.env")
	if err := os.WriteFile(near, []byte("MOTI_TEST_NAME=near\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(far, []byte("MOTI_TEST_NAME=far\nMOTI_TEST_DB=far.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOTI_TEST_NAME", "")
	os.Unsetenv("MOTI_TEST_NAME")
	t.Setenv("MOTI_TEST_DB", "")
	os.Unsetenv("MOTI_TEST_DB")

	files := []string{near, filepath.Join(dir, "absent.env"), far}
	if err := loadEnvFiles(files); err != nil {
		t.Fatalf("loadEnvFiles() failed: %v", err)
	}

	if got := os.Getenv("MOTI_TEST_NAME"); got != "near" {
		t.Errorf("MOTI_TEST_NAME=%q, want near", got)
	}
	if got := os.Getenv("MOTI_TEST_DB"); got != "far.db" {
		t.Errorf("MOTI_TEST_DB=%q, want far.db", got)
	}
}
