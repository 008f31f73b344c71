// snake is a terminal Snake game.
//
// Usage:
//
//	snake play              - Play in the terminal
//	snake sim --moves RRD   - Run a headless simulation and print the result
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--fps <rate>         - Frame rate (default: from config)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
//	--debug              - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A grid Snake game for the terminal.

The snake moves one cell per logical tick. Walls stop it rather than
killing it; running into your own body ends the game. Fill the whole
board to win.

Examples:
  snake play
  snake play --difficulty hard --seed 42
  snake sim --moves RRRDDL --seed 7
  snake config > configs/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger. Without a log file, output goes to w.
// The returned close function must be called when done.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig resolves the configuration and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplySnakePreset(&cfg, preset)
		logger.Debug("difficulty preset applied", "preset", preset)
	}

	if flagFPS > 0 {
		cfg.Clock.FrameRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("--fps %d: %w", flagFPS, err)
		}
	}
	return cfg, nil
}
