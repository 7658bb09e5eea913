package runner

import (
	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
)

// Player is the auto-running character. It only moves vertically.
type Player struct {
	Entity

	VelocityY float64
	Gravity   float64
	JumpForce float64
	IsJumping bool
	GroundY   float64 // Rest position of the top edge

	Invulnerable      bool
	InvulnerableTimer float64
	Visible           bool

	blinkTimer    float64
	blinkInterval float64
	hitbox        core.Inset
}

// NewPlayer creates a player standing on groundY.
func NewPlayer(cfg config.RunnerConfig, groundY float64) *Player {
	var frames ClipFrames
	frames[ClipRun] = max(cfg.Player.RunFrames, 1)
	frames[ClipJump] = max(cfg.Player.JumpFrames, 1)

	p := &Player{
		Entity: newEntity(
			core.NewRect(cfg.Player.X, groundY, cfg.Player.Width, cfg.Player.Height),
			core.ParseColor(cfg.Player.Color),
			frames,
			cfg.Session.FrameDuration,
		),
		Gravity:       cfg.Physics.Gravity,
		JumpForce:     cfg.Physics.JumpForce,
		blinkInterval: cfg.Session.BlinkInterval,
		hitbox:        cfg.Player.Hitbox,
	}
	p.Reset(cfg.Player.X, groundY)
	return p
}

// Reset puts the player back at rest on the ground.
func (p *Player) Reset(x, groundY float64) {
	p.Rect.X = x
	p.Rect.Y = groundY
	p.GroundY = groundY
	p.VelocityY = 0
	p.IsJumping = false
	p.Invulnerable = false
	p.InvulnerableTimer = 0
	p.Visible = true
	p.blinkTimer = 0
	p.SetAnimation(ClipRun, true)
}

// Jump starts a jump. It is refused mid-air and while invulnerable.
func (p *Player) Jump() bool {
	if p.IsJumping || p.Invulnerable {
		return false
	}
	p.VelocityY = p.JumpForce
	p.IsJumping = true
	p.SetAnimation(ClipJump, true)
	return true
}

// Update integrates gravity and snaps to the ground on landing.
func (p *Player) Update(dt float64) {
	p.VelocityY += p.Gravity * dt
	p.Rect.Y += p.VelocityY * dt

	if p.Rect.Y >= p.GroundY {
		p.Rect.Y = p.GroundY
		p.VelocityY = 0
		p.IsJumping = false
		if p.Anim.Clip != ClipRun {
			p.SetAnimation(ClipRun, true)
		}
	}

	p.UpdateAnimation(dt)
}

// MakeInvulnerable grants a grace window of d seconds.
func (p *Player) MakeInvulnerable(d float64) {
	p.Invulnerable = true
	p.InvulnerableTimer = d
	p.blinkTimer = 0
	p.Visible = true
}

// TickInvulnerability counts the grace window down and blinks meanwhile.
func (p *Player) TickInvulnerability(dt float64) {
	if !p.Invulnerable {
		return
	}

	p.InvulnerableTimer -= dt
	p.blinkTimer += dt
	if p.blinkInterval > 0 && p.blinkTimer >= p.blinkInterval {
		p.blinkTimer = 0
		p.Visible = !p.Visible
	}

	if p.InvulnerableTimer <= 0 {
		p.Invulnerable = false
		p.InvulnerableTimer = 0
		p.blinkTimer = 0
		p.Visible = true
	}
}

// Hitbox returns the tightened collision box.
func (p *Player) Hitbox() core.Rect {
	return p.hitbox.Apply(p.Rect)
}

// Draw renders the player as a filled block with animated legs.
func (p *Player) Draw(dst *core.Screen, vp Viewport) {
	if !p.Visible {
		return
	}
	x, y, w, h := vp.Project(p.Rect)
	if w <= 0 || h <= 0 {
		return
	}

	body := h
	if h > 1 {
		body = h - 1
	}
	dst.FillRect(x, y, w, body, '█', p.Color)
	if h > 1 {
		dst.DrawHLine(x, y+body, w, p.legRune(), p.Color)
	}
}

func (p *Player) legRune() rune {
	switch {
	case p.Anim.Clip == ClipJump:
		return '╨'
	case p.Anim.Frame%2 == 0:
		return '╱'
	default:
		return '╲'
	}
}
