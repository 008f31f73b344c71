package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Frame    uint64
	SnakeLen int
	Head     grid.Cell
	Dir      grid.Direction
	Food     grid.Cell
	Growing  bool
	State    State
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	return Snapshot{
		Tick:     e.Ticks(),
		Frame:    g.frames,
		SnakeLen: e.Len(),
		Head:     e.Head(),
		Dir:      e.Heading(),
		Food:     e.Food(),
		Growing:  e.Growing(),
		State:    e.State(),
	}
}

// String returns a one-line summary of the snapshot.
func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d len=%d head=%v dir=%v food=%v state=%v",
		s.Tick, s.SnakeLen, s.Head, s.Dir, s.Food, s.State)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	e := g.engine
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Frame: %d, Every: %d frames\n", e.Ticks(), g.frames, g.pacer.Every())
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Pending: %s\n", e.Len(), e.Heading(), e.Pending())
	fmt.Fprintf(&b, "Head: %v, Food: %v, Growing: %v\n", e.Head(), e.Food(), e.Growing())
	fmt.Fprintf(&b, "State: %s\n", e.State())
	return b.String()
}
