// Package runner implements a pseudo-3D three lane endless runner.
// The player switches lanes and jumps over obstacles that approach from
// the horizon; the score is the survival time of the run.
package runner

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Game is the runner controller: it owns the menu, the current run and the
// high score, and moves between the menu, playing and game over phases.
// A Game is not safe for concurrent use; each session owns its own.
type Game struct {
	cfg    config.RunnerConfig
	proj   Projector
	rng    *rand.Rand
	logger *log.Logger

	phase     core.Phase
	menu      *Menu
	highScore int // ms

	// Current run, replaced on every start
	player    *Player
	obstacles []*Obstacle
	spawner   *Spawner
	road      *Road
	profile   config.DifficultyProfile
	score     int // ms
	ticks     int
}

type options struct {
	seed       int64
	logger     *log.Logger
	difficulty string
	color      string
}

// Option configures a Game.
type Option func(*options)

// WithSeed seeds the obstacle RNG. Zero picks a time based seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger sets the session logger. Without it nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDifficulty overrides the configured initial difficulty.
func WithDifficulty(name string) Option {
	return func(o *options) { o.difficulty = name }
}

// WithColor overrides the configured initial player color.
func WithColor(name string) Option {
	return func(o *options) { o.color = name }
}

// New creates a game in the menu phase. The configuration is validated;
// unknown difficulty or color names are rejected.
func New(cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	menu, err := NewMenu(cfg)
	if err != nil {
		return nil, err
	}
	if o.difficulty != "" {
		d, err := config.ParseDifficulty(o.difficulty)
		if err != nil {
			return nil, err
		}
		if err := menu.SetDifficulty(d); err != nil {
			return nil, err
		}
	}
	if o.color != "" {
		if err := menu.SetColor(o.color); err != nil {
			return nil, err
		}
	}

	return &Game{
		cfg:    cfg,
		proj:   NewProjector(cfg.Screen),
		rng:    rand.New(rand.NewSource(o.seed)),
		logger: o.logger,
		phase:  core.PhaseMenu,
		menu:   menu,
		road:   NewRoad(cfg.Road),
	}, nil
}

// Step advances the game by one tick. dtMs is the wall time since the
// previous tick; it drives the score and the spawn timer, while movement
// advances a fixed amount per tick.
func (g *Game) Step(in core.InputFrame, dtMs int) core.StepResult {
	if dtMs < 0 {
		dtMs = 0
	}
	before := g.phase

	switch g.phase {
	case core.PhaseMenu:
		g.stepMenu(in)
	case core.PhasePlaying:
		g.stepPlaying(in, dtMs)
	case core.PhaseGameOver:
		if in.JustPressed(core.ActionConfirm) {
			g.phase = core.PhaseMenu
		}
	default:
		panic(fmt.Sprintf("runner: unknown phase %d", int(g.phase)))
	}

	return core.StepResult{
		State:        g.State(),
		Transitioned: g.phase != before,
	}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.JustPressed(core.ActionUp) {
		g.menu.Up()
	}
	if in.JustPressed(core.ActionDown) {
		g.menu.Down()
	}
	if in.Pointer.Moved {
		g.menu.Hover(in.Pointer.X, in.Pointer.Y)
	}

	activate := in.JustPressed(core.ActionConfirm)
	if in.JustPressed(core.ActionClick) {
		if g.menu.Hover(in.Pointer.X, in.Pointer.Y) {
			activate = true
		}
	}
	if activate && g.menu.Activate() {
		g.start()
	}
}

// start resets the run with the menu's color and difficulty and enters
// the playing phase.
func (g *Game) start() {
	g.profile = g.menu.Difficulty()
	color := g.menu.Color()

	g.player = NewPlayer(g.cfg, g.profile, color.Color)
	clear(g.obstacles)
	g.obstacles = g.obstacles[:0]
	g.spawner = NewSpawner(g.rng, g.profile, g.cfg.Spawn)
	g.road.Reset()
	g.score = 0
	g.ticks = 0
	g.phase = core.PhasePlaying

	g.logger.Info("session started", "difficulty", g.profile.Name, "color", color.Name)
}

func (g *Game) stepPlaying(in core.InputFrame, dtMs int) {
	g.ticks++

	if in.JustPressed(core.ActionJump) {
		g.player.Jump()
	}
	g.player.Move(in.JustPressed(core.ActionLeft), in.JustPressed(core.ActionRight))
	g.player.Update()

	speed := g.profile.Speed
	g.road.Advance(speed)

	for _, o := range g.obstacles {
		o.Speed = speed
		o.Update()
	}
	g.obstacles = pruneObstacles(g.obstacles)

	if n := g.spawner.Advance(dtMs); n > 0 {
		for i := 0; i < n; i++ {
			g.obstacles = append(g.obstacles, NewObstacle(g.rng, g.cfg, speed))
		}
		g.logger.Debug("spawned obstacles", "count", n, "live", len(g.obstacles), "next_ms", int(g.spawner.Interval()))
	}

	if g.collided() {
		g.end()
		return
	}
	g.score += dtMs
}

func (g *Game) collided() bool {
	rect := g.player.Bounds(g.proj)
	height := g.player.Height()
	for _, o := range g.obstacles {
		if Collides(rect, height, o.Hitbox(g.proj)) {
			return true
		}
	}
	return false
}

// end commits the high score and enters the game over phase.
func (g *Game) end() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.phase = core.PhaseGameOver
	g.logger.Info("session ended",
		"difficulty", g.profile.Name,
		"score", seconds(g.score),
		"best", seconds(g.highScore),
		"ticks", g.ticks,
	)
}

// Render draws the current phase onto s.
func (g *Game) Render(s core.Surface) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	switch g.phase {
	case core.PhaseMenu:
		g.menu.Draw(s, g.highScore)
	case core.PhasePlaying:
		g.road.Draw(s, w, h)
		for _, o := range g.obstacles {
			o.Draw(s, g.proj)
		}
		g.player.Draw(s, g.proj)
		drawHUD(s, w, g.profile.Name.String(), g.score, g.highScore)
	case core.PhaseGameOver:
		DrawRoad(s, g.cfg.Road, w, h, 0)
		drawGameOver(s, w, h, g.score, g.highScore)
	default:
		panic(fmt.Sprintf("runner: unknown phase %d", int(g.phase)))
	}
}

// State returns the current phase and scores.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
	}
}

// Menu returns the main menu.
func (g *Game) Menu() *Menu { return g.menu }

// Player returns the player of the current run, or nil before the first run.
func (g *Game) Player() *Player { return g.player }

// Config returns the configuration the game was created with.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

func equalName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
