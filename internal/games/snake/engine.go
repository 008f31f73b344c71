package snake

import (
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// State is the simulation state of a snake game.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is absorbing (won or lost).
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Label returns the overlay text shown while the game is not being played.
func (s State) Label() string {
	switch s {
	case StatePaused:
		return "Pause"
	case StateWon:
		return "Victory"
	case StateLost:
		return "Game Over"
	}
	return ""
}

// Engine is the tick-driven snake simulation. It owns the snake body, the
// per-segment headings, the food and the game state. It is not safe for
// concurrent use; callers serialize input and ticks.
type Engine struct {
	bounds grid.Bounds
	rng    grid.Source

	// body[i] moved last in heading[i]. Both are views over arenas sized to
	// the board area, so growth never reallocates.
	body    []grid.Cell
	heading []grid.Direction

	food    grid.Cell
	state   State
	pending grid.Direction
	growing bool // Food was eaten; extend on the next tick
	ticks   uint64
}

// NewEngine spawns a one-segment snake at a random cell, facing away from
// the nearest wall zone, and places the first food.
func NewEngine(bounds grid.Bounds, rng grid.Source) *Engine {
	area := bounds.Area()
	e := &Engine{
		bounds:  bounds,
		rng:     rng,
		body:    make([]grid.Cell, 1, area),
		heading: make([]grid.Direction, 1, area),
		state:   StatePlaying,
	}

	e.body[0] = bounds.RandomCell(rng)
	e.heading[0] = bounds.StartHeading(e.body[0])
	e.pending = e.heading[0]
	e.food = bounds.RandomUnoccupiedCell(rng, e.body, bounds.PlacementAttempts())

	// A 1x1 board is already full.
	if len(e.body) == area {
		e.state = StateWon
	}
	return e
}

// QueueDirection stages the heading applied on the next tick. It can be
// called in any state; reversals are rejected at tick time, not here.
func (e *Engine) QueueDirection(d grid.Direction) {
	e.pending = d
}

// TogglePause switches between playing and paused. Finished games ignore it.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.state = StatePaused
	case StatePaused:
		e.state = StatePlaying
	}
}

// Tick advances the simulation by one logical step. It does nothing unless
// the game is being played.
func (e *Engine) Tick() {
	if e.state != StatePlaying {
		return
	}
	e.ticks++

	if e.pending != e.heading[0].Opposite() {
		e.heading[0] = e.pending
	}

	if e.growing {
		e.grow()
	} else {
		e.move()
	}

	if e.state == StatePlaying && e.body[0] == e.food {
		e.growing = true
		e.food = e.bounds.RandomUnoccupiedCell(e.rng, e.body, e.bounds.PlacementAttempts())
	}
}

// move shifts every segment along its own heading, then relays headings one
// segment back so each trailing segment follows the path of the one ahead.
func (e *Engine) move() {
	carry := e.heading[0]
	for i := range e.body {
		e.body[i] = e.bounds.ClampMove(e.body[i], e.heading[i])
		if i == 0 {
			continue
		}

		if e.body[0] == e.body[i] {
			e.state = StateLost
		}
		carry, e.heading[i] = e.heading[i], carry
	}
}

// grow extends the snake by one segment: everything shifts one slot toward
// the tail, leaving a copy of the old head behind the new one, and only the
// head moves.
func (e *Engine) grow() {
	e.growing = false

	n := len(e.body) + 1
	e.body = e.body[:n]
	e.heading = e.heading[:n]
	for i := n - 1; i > 0; i-- {
		e.body[i] = e.body[i-1]
		e.heading[i] = e.heading[i-1]
	}
	e.body[0] = e.bounds.ClampMove(e.body[0], e.heading[0])

	if n == e.bounds.Area() {
		e.state = StateWon
	}
}

// Body returns a copy of the snake's cells, head first.
func (e *Engine) Body() []grid.Cell {
	out := make([]grid.Cell, len(e.body))
	copy(out, e.body)
	return out
}

// Head returns the head cell.
func (e *Engine) Head() grid.Cell {
	return e.body[0]
}

// Heading returns the direction the head last moved in.
func (e *Engine) Heading() grid.Direction {
	return e.heading[0]
}

// Pending returns the staged direction.
func (e *Engine) Pending() grid.Direction {
	return e.pending
}

// Len returns the number of body segments.
func (e *Engine) Len() int {
	return len(e.body)
}

// Food returns the current food cell.
func (e *Engine) Food() grid.Cell {
	return e.food
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// Growing reports whether the snake extends on the next tick.
func (e *Engine) Growing() bool {
	return e.growing
}

// Ticks returns the number of simulation steps taken.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Bounds returns the board size.
func (e *Engine) Bounds() grid.Bounds {
	return e.bounds
}
