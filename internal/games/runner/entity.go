// Package runner implements the side-scrolling runner: a player that
// auto-runs and jumps over procedurally spawned obstacles, loses lives on
// collision and scores for every obstacle it gets past.
package runner

import (
	"github.com/vovakirdan/moti-runner/internal/core"
)

// Positioned is anything with visual bounds in world pixels.
type Positioned interface {
	Bounds() core.Rect
}

// Updatable advances its own state by dt seconds.
type Updatable interface {
	Update(dt float64)
}

// Drawable renders itself onto a cell screen through a viewport.
type Drawable interface {
	Draw(dst *core.Screen, vp Viewport)
}

// Collidable has a hitbox that may differ from its visual bounds.
type Collidable interface {
	Positioned
	Hitbox() core.Rect
}

// Collides reports whether the hitboxes of a and b overlap.
func Collides(a, b Collidable) bool {
	return a.Hitbox().Intersects(b.Hitbox())
}

// Clip names an animation sequence. The set is fixed; each entity declares
// how many frames it has for the clips it supports.
type Clip int

const (
	ClipNone Clip = iota
	ClipRun
	ClipJump
	ClipFly
	ClipStill
	clipCount
)

// String returns the clip name.
func (c Clip) String() string {
	switch c {
	case ClipRun:
		return "run"
	case ClipJump:
		return "jump"
	case ClipFly:
		return "fly"
	case ClipStill:
		return "still"
	default:
		return "none"
	}
}

// ClipFrames maps each clip to its number of frames. Zero means unsupported.
type ClipFrames [clipCount]int

// Animation is the playback position within the current clip.
type Animation struct {
	Clip    Clip
	Frame   int
	Elapsed float64 // Seconds spent on the current frame
}

// Entity is the state shared by the player, obstacles and decor.
type Entity struct {
	Rect          core.Rect
	Color         core.Color
	Anim          Animation
	frames        ClipFrames
	frameDuration float64
}

func newEntity(r core.Rect, color core.Color, frames ClipFrames, frameDuration float64) Entity {
	return Entity{
		Rect:          r,
		Color:         color,
		frames:        frames,
		frameDuration: frameDuration,
	}
}

// Bounds returns the visual bounding rectangle.
func (e *Entity) Bounds() core.Rect {
	return e.Rect
}

// SetAnimation switches to clip if the entity has frames for it.
// With reset the clip restarts from its first frame.
func (e *Entity) SetAnimation(clip Clip, reset bool) {
	if clip <= ClipNone || clip >= clipCount || e.frames[clip] == 0 {
		return
	}
	e.Anim.Clip = clip
	if reset {
		e.Anim.Frame = 0
		e.Anim.Elapsed = 0
	}
}

// UpdateAnimation advances the frame timer and wraps to the next frame once
// the current one has been shown for frameDuration.
func (e *Entity) UpdateAnimation(dt float64) {
	n := e.frames[e.Anim.Clip]
	if e.Anim.Clip == ClipNone || n == 0 || e.frameDuration <= 0 {
		return
	}
	e.Anim.Elapsed += dt
	if e.Anim.Elapsed >= e.frameDuration {
		e.Anim.Elapsed = 0
		e.Anim.Frame = (e.Anim.Frame + 1) % n
	}
}

var (
	_ Collidable = (*Player)(nil)
	_ Collidable = (*Obstacle)(nil)
	_ Updatable  = (*Player)(nil)
	_ Updatable  = (*Obstacle)(nil)
	_ Updatable  = (*Cloud)(nil)
	_ Drawable   = (*Player)(nil)
	_ Drawable   = (*Obstacle)(nil)
	_ Drawable   = (*Cloud)(nil)
)
