package runner

import (
	"math/rand"

	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
)

// Visual characters for obstacles
const (
	GroundObstacleChar = '▓'
	WingUpChar         = '^'
	WingDownChar       = 'v'
	BirdBodyChar       = '●'
)

// Kind tells ground obstacles from flying ones.
type Kind int

const (
	KindGround Kind = iota
	KindFlying
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindFlying {
		return "flying"
	}
	return "ground"
}

// Obstacle is anything the player must avoid. It scrolls left at a fixed
// speed taken from the game speed at spawn time.
type Obstacle struct {
	Entity

	Kind   Kind
	Speed  float64
	Passed bool // Already scored

	consumed bool // Hit the player this tick, removed on compaction
	hitbox   core.Inset
}

// NewObstacle creates an obstacle of the given kind. The hitbox and
// animation come from cfg.
func NewObstacle(kind Kind, r core.Rect, speed float64, cfg config.RunnerConfig) *Obstacle {
	o := &Obstacle{
		Kind:   kind,
		Speed:  speed,
		hitbox: cfg.Obstacles.GroundHitbox,
	}

	var frames ClipFrames
	frames[ClipStill] = 1
	color := core.ParseColor(cfg.Obstacles.Colors.Ground)
	clip := ClipStill

	if o.IsFlying() {
		frames[ClipFly] = max(cfg.Obstacles.Flying.Frames, 1)
		o.hitbox = cfg.Obstacles.FlyingHitbox
		color = core.ParseColor(cfg.Obstacles.Colors.Flying)
		clip = ClipFly
	}

	o.Entity = newEntity(r, color, frames, cfg.Session.FrameDuration)
	o.SetAnimation(clip, true)
	return o
}

// IsFlying reports whether the obstacle is airborne.
func (o *Obstacle) IsFlying() bool {
	return o.Kind == KindFlying
}

// CreateRandom builds an obstacle just past the right edge of the world.
// A flying obstacle is chosen with probability FlyingChance.
func CreateRandom(rng *rand.Rand, cfg config.RunnerConfig, screenW, groundY, speed float64) *Obstacle {
	if rng.Float64() < cfg.Obstacles.FlyingChance {
		shape := cfg.Obstacles.Flying
		alt := randRange(rng, shape.MinAltitude, shape.MaxAltitude)
		r := core.NewRect(screenW+shape.Width, groundY-float64(alt), shape.Width, shape.Height)
		return NewObstacle(KindFlying, r, speed, cfg)
	}

	shape := cfg.Obstacles.Ground
	w := float64(randRange(rng, shape.MinWidth, shape.MaxWidth))
	h := float64(randRange(rng, shape.MinHeight, shape.MaxHeight))
	r := core.NewRect(screenW+w, groundY-shape.Sink, w, h)
	return NewObstacle(KindGround, r, speed, cfg)
}

// randRange returns an integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Update scrolls the obstacle left.
func (o *Obstacle) Update(dt float64) {
	o.Rect.X -= o.Speed * dt
	o.UpdateAnimation(dt)
}

// IsOffscreen reports whether the obstacle has fully left the world.
func (o *Obstacle) IsOffscreen() bool {
	return o.Rect.X < -o.Rect.W
}

// Hitbox returns the tightened collision box.
func (o *Obstacle) Hitbox() core.Rect {
	return o.hitbox.Apply(o.Rect)
}

// Draw renders the obstacle.
func (o *Obstacle) Draw(dst *core.Screen, vp Viewport) {
	x, y, w, h := vp.Project(o.Rect)
	if w <= 0 || h <= 0 {
		return
	}

	if !o.IsFlying() {
		dst.FillRect(x, y, w, h, GroundObstacleChar, o.Color)
		return
	}

	wing := WingUpChar
	if o.Anim.Frame%2 == 1 {
		wing = WingDownChar
	}
	dst.DrawHLine(x, y, w, wing, o.Color)
	if w > 2 {
		dst.SetColored(x+w/2, y, BirdBodyChar, o.Color)
	}
}

// ObstacleManager owns the live obstacles and the spawn RNG.
type ObstacleManager struct {
	obstacles []*Obstacle
	rng       *rand.Rand
	screenW   float64
	groundY   float64
	cfg       *config.RunnerConfig
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, screenW, groundY float64, cfg *config.RunnerConfig) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]*Obstacle, 0, 8),
		screenW:   screenW,
		groundY:   groundY,
		cfg:       cfg,
	}
	om.Reset(seed)
	return om
}

// UpdateConfig updates the configuration and world geometry.
func (om *ObstacleManager) UpdateConfig(cfg *config.RunnerConfig, screenW, groundY float64) {
	om.cfg = cfg
	om.screenW = screenW
	om.groundY = groundY
}

// Reset clears all obstacles and reseeds the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.Clear()
	om.rng = rand.New(rand.NewSource(seed))
}

// Clear drops all obstacles and keeps the RNG sequence going.
func (om *ObstacleManager) Clear() {
	clear(om.obstacles)
	om.obstacles = om.obstacles[:0]
}

// Spawn creates a random obstacle moving at speed and adds it.
func (om *ObstacleManager) Spawn(speed float64) *Obstacle {
	o := CreateRandom(om.rng, *om.cfg, om.screenW, om.groundY, speed)
	om.Add(o)
	return o
}

// Add appends an obstacle.
func (om *ObstacleManager) Add(o *Obstacle) {
	om.obstacles = append(om.obstacles, o)
}

// Obstacles returns the live obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []*Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

// Compact keeps only the obstacles for which keep returns true, in order,
// and returns how many were removed.
func (om *ObstacleManager) Compact(keep func(*Obstacle) bool) int {
	n := len(om.obstacles)
	valid := om.obstacles[:0]
	for _, o := range om.obstacles {
		if keep(o) {
			valid = append(valid, o)
		}
	}
	clear(om.obstacles[len(valid):])
	om.obstacles = valid
	return n - len(valid)
}

// live is the default compaction predicate.
func live(o *Obstacle) bool {
	return !o.consumed && !o.IsOffscreen()
}
