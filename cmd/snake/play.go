package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause
  R            - Restart (after victory or game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at base speed, speeds up as the snake grows
  normal - Start at 30% difficulty, speeds up as the snake grows
  hard   - Start at 70% difficulty, speeds up as the snake grows
  fixed  - No progression, stays at config's initial level

Logs are discarded unless --log-file is given, since the game owns the
terminal while it runs.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: cfg.Clock.FrameRate,
		Seed:      flagSeed,
	}

	if err := tui.Run(snake.NewGame(cfg), rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
