package loop

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/object"
)

// updateSelectState handles the difficulty selection screen.
func updateSelectState(state *State) {
	switch state.Input.Number {
	case 1:
		startGame(state, config.DifficultyEasy)
	case 2:
		startGame(state, config.DifficultyNormal)
	case 3:
		startGame(state, config.DifficultyHard)
	}
}

// updateGameOverState handles the terminal screen. No simulation runs
// here; only the restart action is read.
func updateGameOverState(state *State) {
	if state.Input.Enter || state.Input.FirePresses > 0 {
		restartGame(state)
	}
}

// startGame resets the session for the chosen difficulty and enters play.
func startGame(state *State, d config.Difficulty) {
	input.ResetKeyInput(state.InputStream)

	state.Objects = state.Objects[:0]
	state.toSpawn = state.toSpawn[:0]
	state.Score = 0
	state.Health = InitialHealth
	state.Level = 1
	state.Difficulty = d
	state.Settings = state.Presets[d]
	state.nextBossAt = BossScoreStep
	state.Boss = nil

	state.Player = object.NewPlayer()
	state.AddObject(state.Player)
	state.AddObject(object.NewEnemySpawner())

	state.Phase = PhasePlaying
}

// restartGame clears every entity collection and returns to selection.
// Nothing leaks across a restart: bullets, enemies, particles, and the
// boss are all released here.
func restartGame(state *State) {
	input.ResetKeyInput(state.InputStream)

	for _, obj := range state.Objects {
		object.ReleaseObject(obj)
	}
	state.Objects = state.Objects[:0]
	state.toSpawn = state.toSpawn[:0]
	state.Player = nil
	state.Boss = nil

	state.Phase = PhaseSelect
}

// drawUI draws the text overlay for the current phase.
func drawUI(state *State, w io.Writer, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.Phase {
	case PhaseSelect:
		drawSelectScreen(state, w, centerX, centerY)
	case PhasePlaying:
		drawPlayingHUD(state, w, termWidth)
	case PhaseGameOver:
		drawGameOverScreen(state, w, centerX, centerY)
	}
}

// drawCentered writes a line horizontally centered on the given row.
func drawCentered(w io.Writer, centerX, row int, text string) {
	draw.MoveCursor(w, centerX-len(text)/2, row)
	fmt.Fprint(w, text)
}

// drawSelectScreen draws the title and difficulty menu.
func drawSelectScreen(state *State, w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-4, "S T A R F I G H T E R")
	drawCentered(w, centerX, centerY-1, "Select difficulty:")
	drawCentered(w, centerX, centerY+1, "[1] Easy   [2] Normal   [3] Hard")
	drawCentered(w, centerX, centerY+4, "Controls: WASD/Arrows to move, SPACE to fire, C to switch weapon, Q to quit")

	if state.Scores != nil {
		if best := state.Scores.Best(); best > 0 {
			drawCentered(w, centerX, centerY+6, fmt.Sprintf("High score: %d", best))
		}
	}
}

// drawPlayingHUD draws score, health, level, weapon, and the boss bar.
func drawPlayingHUD(state *State, w io.Writer, termWidth int) {
	draw.MoveCursor(w, 2, 1)
	fmt.Fprintf(w, "Score: %d  Level: %d", state.Score, state.Level)

	weaponText := "Weapon: " + state.Player.Weapon.String()
	draw.MoveCursor(w, termWidth-len(weaponText)-1, 1)
	fmt.Fprint(w, weaponText)

	draw.MoveCursor(w, 2, 2)
	fmt.Fprintf(w, "Health: %s %d", healthBar(state.Health, InitialHealth, 10), state.Health)

	if state.BossActive() {
		bossText := fmt.Sprintf("BOSS %s", healthBar(state.Boss.Health, object.BossMaxHealth, 20))
		draw.MoveCursor(w, termWidth/2-len(bossText)/2, 2)
		fmt.Fprint(w, bossText)
	}
}

// drawGameOverScreen draws the terminal screen over the frozen scene.
func drawGameOverScreen(state *State, w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-2, "G A M E   O V E R")
	drawCentered(w, centerX, centerY, fmt.Sprintf("Final score: %d", state.Score))

	if state.Scores != nil {
		drawCentered(w, centerX, centerY+1, fmt.Sprintf("High score: %d", state.Scores.Best()))
	}

	drawCentered(w, centerX, centerY+3, "Press SPACE or ENTER to restart")
}

// healthBar renders a fixed-width bar of filled and empty segments.
func healthBar(value, max, width int) string {
	if value < 0 {
		value = 0
	}
	filled := value * width / max
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
