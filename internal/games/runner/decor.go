package runner

import (
	"math/rand"

	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
)

// CloudChar is the rune clouds are drawn with.
const CloudChar = '░'

// Cloud is background decor. It never collides.
type Cloud struct {
	Entity
	Speed float64
}

// Update scrolls the cloud left at its own speed.
func (c *Cloud) Update(dt float64) {
	c.Rect.X -= c.Speed * dt
}

// Draw renders the cloud as a light shade band.
func (c *Cloud) Draw(dst *core.Screen, vp Viewport) {
	x, y, w, h := vp.Project(c.Rect)
	dst.FillRect(x, y, w, h, CloudChar, c.Color)
}

// Sky spawns and scrolls the clouds.
type Sky struct {
	clouds  []*Cloud
	rng     *rand.Rand
	cfg     config.Decor
	screenW float64
	timer   float64
}

// NewSky creates a sky with its own RNG so decor never perturbs the
// obstacle sequence.
func NewSky(seed int64, screenW float64, cfg config.Decor) *Sky {
	s := &Sky{
		cfg:     cfg,
		screenW: screenW,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// UpdateConfig updates the configuration and world width.
func (s *Sky) UpdateConfig(cfg config.Decor, screenW float64) {
	s.cfg = cfg
	s.screenW = screenW
}

// Reset regenerates the initial clouds scattered across the world.
func (s *Sky) Reset() {
	clear(s.clouds)
	s.clouds = s.clouds[:0]
	s.timer = 0
	for range s.cfg.Clouds {
		s.spawn(s.rng.Float64() * s.screenW)
	}
}

// Update moves the clouds, spawns new ones on the timer and drops the ones
// that left the world.
func (s *Sky) Update(dt float64) {
	for _, c := range s.clouds {
		c.Update(dt)
	}

	s.timer += dt
	if s.cfg.Interval > 0 && s.timer >= s.cfg.Interval {
		s.timer = 0
		if len(s.clouds) < s.cfg.MaxClouds {
			s.spawn(s.screenW)
		}
	}

	valid := s.clouds[:0]
	for _, c := range s.clouds {
		if c.Rect.Right() >= 0 {
			valid = append(valid, c)
		}
	}
	clear(s.clouds[len(valid):])
	s.clouds = valid
}

// Clouds returns the live clouds.
func (s *Sky) Clouds() []*Cloud {
	return s.clouds
}

func (s *Sky) spawn(x float64) {
	w := float64(randRange(s.rng, s.cfg.MinWidth, s.cfg.MaxWidth))
	y := float64(randRange(s.rng, s.cfg.MinY, s.cfg.MaxY))
	speed := s.cfg.MinSpeed
	if s.cfg.MaxSpeed > s.cfg.MinSpeed {
		speed += s.rng.Float64() * (s.cfg.MaxSpeed - s.cfg.MinSpeed)
	}
	s.clouds = append(s.clouds, &Cloud{
		Entity: newEntity(core.NewRect(x, y, w, s.cfg.Height), core.ColorGray, ClipFrames{}, 0),
		Speed:  speed,
	})
}
