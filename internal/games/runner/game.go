package runner

import (
	"github.com/vovakirdan/moti-runner/internal/config"
	"github.com/vovakirdan/moti-runner/internal/core"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithConfigPath loads the runner config from path instead of the
// default search locations.
func WithConfigPath(path string) Option {
	return func(g *Game) {
		g.configPath = path
	}
}

// WithPreset applies a difficulty preset on top of the loaded config.
func WithPreset(preset config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = preset
	}
}

// WithConfig uses cfg as is and skips file loading.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// Game is the runner session controller. It owns the player, the obstacle
// spawner, the decor and the score, lives and speed bookkeeping.
type Game struct {
	player     *Player
	obstacles  *ObstacleManager
	sky        *Sky
	sound      core.SoundTrigger
	events     []core.SoundEvent
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager

	configPath string
	preset     config.DifficultyPreset
	fixedCfg   *config.RunnerConfig
	configErr  error
	pending    *config.RunnerConfig

	groundY          float64
	score            int
	lives            int
	gameSpeed        float64
	maxSpeed         float64
	obstacleInterval float64
	spawnTimer       float64
	elapsed          float64
	paused           bool
	gameOver         bool
}

// New creates a runner. Sound cues go to sound; nil means silent.
// Call Reset before the first Step.
func New(sound core.SoundTrigger, opts ...Option) *Game {
	g := &Game{}
	g.SetSound(sound)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetSound replaces the sound collaborator; nil means silent.
func (g *Game) SetSound(sound core.SoundTrigger) {
	if sound == nil {
		sound = core.NopSound{}
	}
	g.sound = sound
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Moti Runner"
}

// Config returns the active runner config.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to the built-in defaults in that case.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Reset fully initialises the session for the given runtime and leaves it
// paused. A config queued with QueueConfig takes effect here too.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.pending = nil
	g.applyConfig(g.loadConfig())
	g.obstacles.Reset(runtime.Seed)

	g.resetSession()
	g.paused = true
}

// QueueConfig replaces the runner config from the next restart on. The
// run in progress keeps its physics and spawn settings.
func (g *Game) QueueConfig(cfg config.RunnerConfig) {
	g.pending = &cfg
	g.fixedCfg = &cfg
}

// applyConfig installs cfg and rebuilds everything derived from it.
func (g *Game) applyConfig(cfg config.RunnerConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.runtime.Difficulty)
	g.groundY = float64(g.runtime.ScreenH) - g.cfg.Player.GroundOffset

	screenW := float64(g.runtime.ScreenW)
	if g.player == nil {
		g.player = NewPlayer(g.cfg, g.groundY)
	} else {
		*g.player = *NewPlayer(g.cfg, g.groundY)
	}
	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(g.runtime.Seed, screenW, g.groundY, &g.cfg)
	} else {
		g.obstacles.UpdateConfig(&g.cfg, screenW, g.groundY)
	}
	if g.sky == nil {
		g.sky = NewSky(g.runtime.Seed+1, screenW, g.cfg.Decor)
	} else {
		g.sky.UpdateConfig(g.cfg.Decor, screenW)
	}
}

func (g *Game) loadConfig() config.RunnerConfig {
	if g.fixedCfg != nil {
		g.configErr = nil
		return *g.fixedCfg
	}

	cfg, err := config.LoadRunner(g.configPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if g.preset != "" {
		config.ApplyRunnerPreset(&cfg, g.preset)
	}
	return cfg
}

// resetSession reinitialises the per-run state. The player instance is
// kept and put back at rest.
func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.gameSpeed = g.runtime.InitialSpeed * g.difficultyMultiplier()
	g.maxSpeed = g.gameSpeed
	g.obstacleInterval = g.cfg.Obstacles.Interval
	g.spawnTimer = 0
	g.elapsed = 0
	g.gameOver = false

	g.player.Reset(g.cfg.Player.X, g.groundY)
	g.obstacles.Clear()
	g.sky.Reset()
}

func (g *Game) difficultyMultiplier() float64 {
	if g.runtime.Difficulty <= 0 {
		return 1
	}
	return g.runtime.Difficulty
}

// Step advances the session by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.events = nil

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			if g.pending != nil {
				g.applyConfig(*g.pending)
				g.pending = nil
			}
			g.resetSession()
			g.paused = false
			g.emit(core.SoundButton)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.emit(core.SoundPause)
		} else {
			g.emit(core.SoundResume)
		}
	}
	if g.paused {
		return g.result()
	}

	g.elapsed += dt

	if in.Has(core.ActionJump) && g.player.Jump() {
		g.emit(core.SoundJump)
	}
	g.player.Update(dt)

	g.spawnTimer += dt
	if g.spawnTimer >= g.obstacleInterval {
		g.obstacles.Spawn(g.gameSpeed)
		g.spawnTimer = 0
	}

	if g.resolveObstacles(dt) {
		return g.result()
	}

	g.player.TickInvulnerability(dt)
	g.sky.Update(dt)

	return g.result()
}

// resolveObstacles moves the obstacles, applies collisions, scores passed
// obstacles and compacts the list. It reports whether the game just ended.
func (g *Game) resolveObstacles(dt float64) bool {
	obs := g.obstacles.Obstacles()
	for _, o := range obs {
		o.Update(dt)
	}

	for _, o := range obs {
		if g.player.Invulnerable {
			break
		}
		if !Collides(g.player, o) {
			continue
		}

		o.consumed = true
		g.lives--
		g.emit(core.SoundCollision)
		if g.lives <= 0 {
			g.lives = 0
			g.gameOver = true
			g.emit(core.SoundGameOver)
			g.obstacles.Compact(func(o *Obstacle) bool { return !o.consumed })
			return true
		}
		g.player.MakeInvulnerable(g.cfg.Session.Invulnerability)
	}

	for _, o := range obs {
		if o.consumed || o.Passed {
			continue
		}
		if o.Rect.Right() < g.player.Rect.X {
			o.Passed = true
			g.addScore()
		}
	}

	g.obstacles.Compact(live)
	return false
}

func (g *Game) addScore() {
	g.score++
	g.emit(core.SoundScore)

	if g.difficulty.ShouldRamp(g.score) {
		g.gameSpeed = g.difficulty.Speed(g.gameSpeed)
		g.obstacleInterval = g.difficulty.Interval(g.obstacleInterval)
		g.maxSpeed = max(g.maxSpeed, g.gameSpeed)
	}
}

func (g *Game) emit(ev core.SoundEvent) {
	g.events = append(g.events, ev)
	g.sound.Trigger(ev)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Speed:    g.gameSpeed,
		MaxSpeed: g.maxSpeed,
		Elapsed:  g.elapsed,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
