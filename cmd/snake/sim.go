package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

var (
	flagMoves string
	flagTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and print the final board.

Each character of --moves is queued before one logical tick:
U, D, L, R steer and '.' keeps the current heading. When --ticks is
larger than the number of moves the snake keeps going straight.

Examples:
  snake sim --moves RRRR --seed 1
  snake sim --moves "DD..LL" --ticks 20 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves applied one per tick (U, D, L, R or '.')")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to run (0 = one per move)")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}
	ticks := flagTicks
	if ticks <= 0 {
		ticks = len(moves)
	}

	game := snake.NewGame(cfg)
	game.Reset(core.RuntimeConfig{FrameRate: cfg.Clock.FrameRate, Seed: flagSeed})
	logger.Debug("simulation started", "seed", flagSeed, "ticks", ticks, "every", game.TickEvery())

	for i := range ticks {
		if game.State().GameOver {
			logger.Debug("simulation ended early", "tick", i)
			break
		}

		input := core.NewInputFrame()
		if i < len(moves) && moves[i] != core.ActionNone {
			input.Set(moves[i])
		}
		stepUntilTick(game, input)
	}

	b := cfg.Board.Bounds()
	w := max(b.W*cfg.Render.CellWidth+2, 48)
	h := b.H + 4
	screen := core.NewScreen(w, h)
	game.Render(screen)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintln(out, game.Snapshot())
	if flagDebug {
		fmt.Fprint(out, game.DebugState())
	}
	return nil
}

// stepUntilTick feeds frames until the game performs one logical tick.
// The input is delivered with the first frame only.
func stepUntilTick(game *snake.Game, input core.InputFrame) {
	empty := core.NewInputFrame()
	for frame := 0; ; frame++ {
		in := empty
		if frame == 0 {
			in = input
		}
		if res := game.Step(in); res.Ticked || res.State.GameOver || res.State.Paused {
			return
		}
	}
}

// parseMoves converts a move string into per-tick actions.
func parseMoves(s string) ([]core.Action, error) {
	actions := make([]core.Action, 0, len(s))
	for i, r := range []rune(s) {
		if r == '.' {
			actions = append(actions, core.ActionNone)
			continue
		}
		d, ok := grid.ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
		actions = append(actions, directionAction(d))
	}
	return actions, nil
}

func directionAction(d grid.Direction) core.Action {
	switch d {
	case grid.DirUp:
		return core.ActionUp
	case grid.DirDown:
		return core.ActionDown
	case grid.DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
