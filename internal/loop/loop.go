// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/highscore"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Logical resolution. Game objects project into these dimensions; actual
// rendering scales to fit the terminal size.
const (
	targetWidth  = 120
	targetHeight = 80 // In sub-pixels, so 40 terminal rows
)

// Options configures a game session.
type Options struct {
	// TermSizeFunc reports the terminal size; defaults to the local TTY.
	TermSizeFunc draw.TermSizeFunc
	// Scores persists the best score; nil disables persistence.
	Scores *highscore.Store
	// Presets overrides the difficulty table; nil uses the defaults.
	Presets map[config.Difficulty]config.DifficultySettings
}

// Run starts the main game loop with the standard Input → Update → Draw
// cycle. It returns when the player quits or the reader is closed; all
// screen state is restored before returning.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	presets := opts.Presets
	if presets == nil {
		presets = config.DefaultPresets()
	}

	state := NewState(presets, opts.Scores)
	state.InputStream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight, targetWidth, targetHeight)
	proj := draw.NewProjector(targetWidth, targetHeight)

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		if err := updateScreen(canvas, sizeFunc); err != nil {
			return err
		}

		switch state.Phase {
		case PhaseSelect:
			updateSelectState(state)
		case PhasePlaying:
			if err := updatePlayingState(state); err != nil {
				return err
			}
		case PhaseGameOver:
			updateGameOverState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, w, canvas, proj); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input into the state. A key pressed
// before this read is observed by this tick.
func processInput(state *State) {
	state.Input = input.ReadInput(state.InputStream)

	if state.Input.Quit {
		state.Running = false
	}
}

// updateScreen checks for terminal resize and updates canvas scaling.
func updateScreen(canvas *draw.Canvas, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas.Resize(termWidth, termHeight)
	return nil
}

// drawFrame clears the screen, draws all objects, and overlays the UI.
// Rendering also runs while game over, over the frozen scene.
func drawFrame(state *State, w io.Writer, canvas *draw.Canvas, proj draw.Projector) error {
	draw.ClearScreen(w)
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Proj:   proj,
	}

	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(w)
	drawUI(state, w, canvas)

	return nil
}
