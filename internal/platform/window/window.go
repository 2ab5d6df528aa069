// Package window runs the game in a desktop window through Ebitengine.
// The window's logical size matches the game's screen config, so the
// surface is drawn 1:1 and Ebitengine scales it to the window.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// Title is the window title.
const Title = "Pseudo 3D Endless Runner"

// maxDeltaMs caps the wall-clock delta fed to the game after stalls.
const maxDeltaMs = 250

// App adapts a runner.Game to ebiten.Game.
type App struct {
	game   *runner.Game
	canvas *Canvas
	frame  core.InputFrame
	edges  *core.EdgeDetector
	logger *log.Logger

	tickRate     int
	last         time.Time
	lastX, lastY int
	state        core.GameState
}

// NewApp creates the window adapter for game.
func NewApp(game *runner.Game, tickRate int, logger *log.Logger) *App {
	if tickRate <= 0 {
		tickRate = game.Config().Screen.TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	w, h := game.Config().Screen.Width, game.Config().Screen.Height
	return &App{
		game:     game,
		canvas:   NewCanvas(w, h),
		frame:    core.NewInputFrame(),
		edges:    core.NewEdgeDetector(),
		logger:   logger,
		tickRate: tickRate,
		lastX:    -1,
		lastY:    -1,
		state:    game.State(),
	}
}

// Update advances the simulation by one tick.
func (a *App) Update() error {
	pollInput(&a.frame, a.lastX, a.lastY)
	a.lastX, a.lastY = a.frame.Pointer.X, a.frame.Pointer.Y

	if a.frame.Has(core.ActionQuit) {
		a.logger.Debug("quit requested")
		return ebiten.Termination
	}

	a.edges.Apply(&a.frame)
	res := a.game.Step(a.frame, a.delta(time.Now()))
	a.state = res.State
	if res.Transitioned {
		a.logger.Debug("phase changed", "phase", res.State.Phase)
	}
	a.frame.Clear()
	return nil
}

// delta returns the milliseconds since the previous tick. The first tick
// and backwards clocks use the nominal tick length.
func (a *App) delta(now time.Time) int {
	nominal := 1000 / a.tickRate
	prev := a.last
	a.last = now
	if prev.IsZero() || now.Before(prev) {
		return nominal
	}
	return min(int(now.Sub(prev).Milliseconds()), maxDeltaMs)
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.game.Render(a.canvas)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.canvas.Size()
}

// State returns the state after the last tick.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *runner.Game, tickRate int, logger *log.Logger) error {
	app := NewApp(game, tickRate, logger)
	w, h := app.canvas.Size()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.tickRate)

	return ebiten.RunGame(app)
}
