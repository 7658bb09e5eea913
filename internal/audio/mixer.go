// Package audio turns simulation sound cues into terminal output.
//
// The terminal has a single voice, the bell, so the mixer only decides
// which cues are audible and which of those ring it. Every cue is logged at
// debug level so a session can be replayed from the log.
package audio

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
)

const bell = "\a"

// Mixer implements core.SoundTrigger for a terminal session.
type Mixer struct {
	out     io.Writer
	logger  *log.Logger
	enabled bool
	volume  float64
	cues    map[core.SoundEvent]bool
	bell    map[core.SoundEvent]bool
	played  map[core.SoundEvent]int
	broken  bool
}

// New creates a mixer writing bells to out. A nil out keeps the mixer
// silent; a nil logger discards log output.
func New(cfg config.Audio, out io.Writer, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Mixer{
		out:     out,
		logger:  logger,
		enabled: cfg.Enabled,
		cues:    toSet(cfg.Cues),
		bell:    toSet(cfg.Bell),
		played:  make(map[core.SoundEvent]int),
	}
	m.SetVolume(cfg.Volume)
	return m
}

func toSet(names []string) map[core.SoundEvent]bool {
	set := make(map[core.SoundEvent]bool, len(names))
	for _, n := range names {
		set[core.SoundEvent(n)] = true
	}
	return set
}

// Trigger plays ev if sound is on and the cue is known. Unknown cues and
// write failures are dropped.
func (m *Mixer) Trigger(ev core.SoundEvent) {
	if !m.enabled || m.volume == 0 {
		return
	}
	if !m.cues[ev] {
		m.logger.Debug("unknown sound cue", "cue", ev)
		return
	}

	m.played[ev]++
	m.logger.Debug("sound", "cue", ev, "volume", m.volume)

	if !m.bell[ev] || m.out == nil || m.broken {
		return
	}
	if _, err := io.WriteString(m.out, bell); err != nil {
		// One failure is enough; the terminal is gone or not writable.
		m.broken = true
		m.logger.Warn("disabling terminal bell", "err", err)
	}
}

// ToggleSound flips sound on or off and returns the new state.
func (m *Mixer) ToggleSound() bool {
	m.enabled = !m.enabled
	m.logger.Info("sound toggled", "enabled", m.enabled)
	return m.enabled
}

// Enabled reports whether sound is on.
func (m *Mixer) Enabled() bool {
	return m.enabled
}

// SetVolume sets the volume, clamped to [0, 1].
func (m *Mixer) SetVolume(v float64) {
	m.volume = core.ClampF(v, 0, 1)
}

// Volume returns the current volume.
func (m *Mixer) Volume() float64 {
	return m.volume
}

// playCount returns how many times ev has been played.
func (m *Mixer) playCount(ev core.SoundEvent) int {
	return m.played[ev]
}
