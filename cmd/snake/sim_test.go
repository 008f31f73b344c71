package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestParseMoves(t *testing.T) {
	got, err := parseMoves("UdL.r")
	if err != nil {
		t.Fatalf("parseMoves() error: %v", err)
	}
	expected := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionNone, core.ActionRight}
	if len(got) != len(expected) {
		t.Fatalf("parseMoves() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("move %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	if _, err := parseMoves("RRX"); err == nil {
		t.Error("expected an error for an unknown move")
	}
}

func TestRunSim(t *testing.T) {
	flagMoves = ".."
	flagTicks = 0
	flagSeed = 1
	flagConfig = ""
	flagDifficulty = ""
	flagFPS = 0
	flagLogFile = ""
	flagDebug = false
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	simCmd.SetOut(&out)
	if err := runSim(simCmd, nil); err != nil {
		t.Fatalf("runSim() error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "tick=2") {
		t.Errorf("expected 2 ticks in the summary, got:\n%s", text)
	}
	if !strings.Contains(text, "Length:") {
		t.Errorf("expected the rendered board, got:\n%s", text)
	}
	if strings.Contains(text, "Every:") {
		t.Errorf("debug state should only print with --debug, got:\n%s", text)
	}
}

func TestRunSimDebug(t *testing.T) {
	flagMoves = "."
	flagTicks = 0
	flagSeed = 1
	flagConfig = ""
	flagDifficulty = ""
	flagFPS = 0
	flagLogFile = ""
	flagDebug = true
	t.Cleanup(func() { flagDebug = false })
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	simCmd.SetOut(&out)
	if err := runSim(simCmd, nil); err != nil {
		t.Fatalf("runSim() error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Every: 15 frames") {
		t.Errorf("expected debug state with the tick divisor, got:\n%s", text)
	}
	if !strings.Contains(text, "Pending:") {
		t.Errorf("expected the pending direction in debug state, got:\n%s", text)
	}
}
