package audio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
)

func defaultMixer(out *bytes.Buffer) *Mixer {
	return New(config.DefaultRunnerConfig().Audio, out, nil)
}

func TestMixerBell(t *testing.T) {
	tests := []struct {
		ev   core.SoundEvent
		bell bool
	}{
		{core.SoundJump, false},
		{core.SoundScore, false},
		{core.SoundCollision, true},
		{core.SoundGameOver, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.ev), func(t *testing.T) {
			var out bytes.Buffer
			m := defaultMixer(&out)
			m.Trigger(tt.ev)

			if got := out.String() == "\a"; got != tt.bell {
				t.Errorf("bell=%v, want %v (output %q)", got, tt.bell, out.String())
			}
			if m.playCount(tt.ev) != 1 {
				t.Errorf("played=%d, want 1", m.playCount(tt.ev))
			}
		})
	}
}

func TestMixerIgnoresUnknownCue(t *testing.T) {
	var out bytes.Buffer
	m := defaultMixer(&out)

	m.Trigger(core.SoundEvent("explosion"))

	if out.Len() != 0 || m.playCount("explosion") != 0 {
		t.Error("unknown cue should be ignored")
	}
}

func TestMixerToggle(t *testing.T) {
	var out bytes.Buffer
	m := defaultMixer(&out)

	if m.ToggleSound() {
		t.Fatal("first toggle should turn sound off")
	}
	m.Trigger(core.SoundCollision)
	if out.Len() != 0 {
		t.Error("muted mixer rang the bell")
	}

	if !m.ToggleSound() {
		t.Fatal("second toggle should turn sound on")
	}
	m.Trigger(core.SoundCollision)
	if out.String() != "\a" {
		t.Errorf("output %q, want a bell", out.String())
	}
}

func TestMixerVolumeClamp(t *testing.T) {
	m := New(config.DefaultRunnerConfig().Audio, nil, nil)

	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{-1, 0},
		{1.7, 1},
		{1, 1},
	}
	for _, tt := range tests {
		m.SetVolume(tt.in)
		if m.Volume() != tt.want {
			t.Errorf("SetVolume(%v) -> %v, want %v", tt.in, m.Volume(), tt.want)
		}
	}

	m.SetVolume(0)
	m.Trigger(core.SoundJump)
	if m.playCount(core.SoundJump) != 0 {
		t.Error("zero volume should silence every cue")
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("closed")
}

func TestMixerAbsorbsWriteFailure(t *testing.T) {
	w := &failingWriter{}
	m := New(config.DefaultRunnerConfig().Audio, w, nil)

	m.Trigger(core.SoundCollision)
	m.Trigger(core.SoundGameOver)

	if w.calls != 1 {
		t.Errorf("writes=%d, want 1 after the first failure", w.calls)
	}
	if m.playCount(core.SoundGameOver) != 1 {
		t.Error("cues should still be counted after the bell breaks")
	}
}
