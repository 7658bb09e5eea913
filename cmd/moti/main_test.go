package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
	"github.com/vovakirdan/moti-runner/internal/storage"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(tt.input), &out, "Sure?"); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Sure? [y/N]") {
			t.Errorf("prompt missing: %q", out.String())
		}
	}
}

func TestPrintScores(t *testing.T) {
	var out bytes.Buffer
	printScores(&out, []storage.ScoreEntry{
		{Name: "Ann", Score: 12, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)},
		{Name: "Bob", Score: 7},
	})

	lines := strings.Split(out.String(), "\n")
	if !strings.Contains(out.String(), "2026-03-01 10:00") {
		t.Errorf("date missing:\n%s", out.String())
	}
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "1 ") || strings.HasPrefix(strings.TrimSpace(l), "2 ") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 2 || !strings.Contains(rows[0], "Ann") || !strings.Contains(rows[1], "Bob") {
		t.Errorf("unexpected rows %q", rows)
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var out bytes.Buffer
	printScores(&out, nil)

	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, "Ann", core.GameState{Score: 9, MaxSpeed: 450, Elapsed: 42.26}, 15)

	for _, want := range []string{"Game result - Ann", "Score:      9", "Max speed:  450", "Time:       42.3s", "Best:       15"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("result missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	printResult(&out, "Ann", core.GameState{}, -1)
	if strings.Contains(out.String(), "Best") {
		t.Error("best line should be omitted without a database")
	}
}

func TestNewGameLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("session:\n  lives: 7\naudio:\n  volume: 0.8\n  bell: [resume]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	var bell bytes.Buffer
	game, mixer := newGame(core.DefaultConfig(), path, config.DifficultyFixed, &bell, log.New(io.Discard))

	if err := game.ConfigError(); err != nil {
		t.Fatalf("ConfigError() = %v", err)
	}
	if game.State().Lives != 7 {
		t.Errorf("lives=%d, want 7 from the file", game.State().Lives)
	}
	if game.Config().Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}
	if mixer.Volume() != 0.8 {
		t.Errorf("mixer volume=%v, want 0.8 from the file", mixer.Volume())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	game.Step(pause, 0.016)
	if bell.String() != "\a" {
		t.Errorf("bell output %q, want one bell for resume", bell.String())
	}
}

func TestNewGameFallsBackOnBadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	game, mixer := newGame(core.DefaultConfig(), missing, config.DifficultyHard, nil, log.New(io.Discard))

	if game.ConfigError() == nil {
		t.Fatal("expected a config error for a missing file")
	}
	if game.State().Lives != 2 {
		t.Errorf("lives=%d, want 2 from the hard preset over defaults", game.State().Lives)
	}
	if !mixer.Enabled() {
		t.Error("default audio config should leave sound on")
	}
}

func TestRunConfigCheckReturnsError(t *testing.T) {
	old := flagCheck
	t.Cleanup(func() { flagCheck = old })

	flagCheck = filepath.Join(t.TempDir(), "absent.yaml")
	if err := runConfig(configCmd, nil); err == nil {
		t.Error("checking a missing file should fail")
	}
}

func TestRunPlayRejectsUnknownPreset(t *testing.T) {
	old := flagPreset
	t.Cleanup(func() { flagPreset = old })

	flagPreset = "extreme"
	err := runPlay(playCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("runPlay() = %v, want an unknown preset error", err)
	}
}
