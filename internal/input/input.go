package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state. Movement keys are
// level-triggered (true while held); FirePresses and CyclePresses count
// discrete press edges seen since the previous read.
type Input struct {
	Quit         bool
	Up           bool
	Down         bool
	Left         bool
	Right        bool
	Enter        bool
	Escape       bool
	Number       int // 0-9 if a digit was pressed recently, -1 otherwise
	FirePresses  int
	CyclePresses int
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	quit      time.Time
	up        time.Time
	down      time.Time
	left      time.Time
	right     time.Time
	enter     time.Time
	escape    time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state so held
// movement keys and one-shot actions can be told apart.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when the reader fails (session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys. Movement keys use key state
// persistence so simultaneous holds are detected; fire and weapon-cycle
// are counted per byte, the closest a terminal gets to one event per
// physical press (terminals emit no key-up).
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader gone (session closed): treat as quit so the
				// loop tears down deterministically.
				s.closed = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	input := Input{Number: -1}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> (arrow keys)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, &input, b, now)
	}

	// Held keys are "pressed" if seen within the hold duration.
	input.Quit = s.closed || now.Sub(s.state.quit) < keyHoldDuration
	input.Up = now.Sub(s.state.up) < keyHoldDuration
	input.Down = now.Sub(s.state.down) < keyHoldDuration
	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Enter = now.Sub(s.state.enter) < keyHoldDuration
	input.Escape = now.Sub(s.state.escape) < keyHoldDuration

	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}

	return input
}

// applyByteToState updates key state timestamps and edge counters for a
// single pressed byte.
func applyByteToState(state *keyState, input *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case ' ':
		input.FirePresses++
	case 'c', 'C', '\t':
		input.CyclePresses++
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}

// ResetKeyInput drains any buffered bytes and clears held-key state, so
// input from one screen does not leak into the next.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			s.state = keyState{numberVal: -1}
			return
		}
	}
}
