package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// directionActions lists movement actions in key polling order. When several
// arrive in the same frame the last one wins.
var directionActions = []struct {
	action core.Action
	dir    grid.Direction
}{
	{core.ActionUp, grid.DirUp},
	{core.ActionRight, grid.DirRight},
	{core.ActionDown, grid.DirDown},
	{core.ActionLeft, grid.DirLeft},
}

// Game runs an Engine on a frame clock. Each Step is one frame; the engine
// ticks only when the pacer says a logical update is due.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	engine     *Engine
	pacer      core.Pacer
	frameRate  int
	frames     uint64
}

// NewGame creates a Snake game using the given configuration.
func NewGame(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.frameRate = rc.FrameRate
	if g.frameRate <= 0 {
		g.frameRate = g.cfg.Clock.FrameRate
	}
	g.frames = 0
	g.newEngine()
}

// newEngine starts a fresh simulation on the configured board.
func (g *Game) newEngine() {
	g.engine = NewEngine(g.cfg.Board.Bounds(), g.rng)
	g.pacer = core.NewPacer(g.frameRate, g.updateRate())
}

// updateRate returns the logical updates per second for the current snake.
func (g *Game) updateRate() float64 {
	return g.difficulty.Speed(g.cfg.Clock.UpdatesPerSec, g.engine.Len(), g.engine.Ticks())
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frames++

	// Finished engines stay absorbing; a restart replaces them.
	if input.Has(core.ActionRestart) && g.engine.State().Terminal() {
		g.newEngine()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.engine.TogglePause()
	}

	for _, m := range directionActions {
		if input.Has(m.action) {
			g.engine.QueueDirection(m.dir)
		}
	}

	ticked := false
	if g.engine.State() == StatePlaying && g.pacer.Advance() {
		g.engine.Tick()
		ticked = true
		if g.difficulty.IsEnabled() {
			g.pacer.SetRate(g.frameRate, g.updateRate())
		}
	}

	return core.StepResult{State: g.State(), Ticked: ticked}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.State()
	return core.GameState{
		GameOver: s.Terminal(),
		Won:      s == StateWon,
		Paused:   s == StatePaused,
	}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Frames returns the number of frames stepped since the last Reset.
func (g *Game) Frames() uint64 {
	return g.frames
}

// TickEvery returns the number of frames between simulation ticks.
func (g *Game) TickEvery() int {
	return g.pacer.Every()
}
