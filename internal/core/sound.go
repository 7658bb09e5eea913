package core

// SoundEvent names a sound cue fired by the simulation.
type SoundEvent string

const (
	SoundJump      SoundEvent = "jump"
	SoundCollision SoundEvent = "collision"
	SoundScore     SoundEvent = "score"
	SoundGameOver  SoundEvent = "game_over"
	SoundPause     SoundEvent = "pause"
	SoundResume    SoundEvent = "resume"
	SoundButton    SoundEvent = "button"
)

// SoundTrigger is a fire-and-forget sink for sound cues.
// Implementations must absorb their own failures.
type SoundTrigger interface {
	Trigger(ev SoundEvent)
}

// SoundFunc adapts a function to SoundTrigger.
type SoundFunc func(ev SoundEvent)

// Trigger calls f(ev).
func (f SoundFunc) Trigger(ev SoundEvent) {
	f(ev)
}

// NopSound discards every cue.
type NopSound struct{}

// Trigger does nothing.
func (NopSound) Trigger(SoundEvent) {}
