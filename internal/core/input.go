package core

import (
	"math/bits"
	"strings"
	"time"
)

// Action is a semantic game intent. Drivers translate device events into
// actions; games never see raw keys.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // A, Left
	ActionMoveRight          // D, Right
	ActionStop               // Key release or its emulation: stop running
	ActionJump               // Space, W, Up
	ActionFallThrough        // S, Down: drop through the platform underfoot
	ActionShoot              // F, J: fire, when the mode allows it
	ActionConfirm            // Enter
	ActionBack               // Esc, B
	ActionRestart            // R, after game over
	ActionQuit               // Q, Ctrl+C
	ActionPause              // P
	numActions
)

var actionNames = [numActions]string{
	"None", "MoveLeft", "MoveRight", "Stop", "Jump", "FallThrough",
	"Shoot", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet is a bit set of actions.
type ActionSet uint32

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return a > ActionNone && a < numActions && s&(1<<a) != 0
}

// Len returns the number of actions in the set.
func (s ActionSet) Len() int { return bits.OnesCount32(uint32(s)) }

func (s ActionSet) String() string {
	var names []string
	for a := ActionNone + 1; a < numActions; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// InputFrame is the input for one simulation tick: the actions triggered
// since the previous tick plus the time that passed.
type InputFrame struct {
	Actions ActionSet

	// Elapsed is the wall-clock time since the previous frame as measured
	// by the driver. Zero means one nominal tick.
	Elapsed time.Duration
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks a as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < numActions {
		f.Actions |= 1 << a
	}
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool { return f.Actions.Has(a) }

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() { *f = InputFrame{} }

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame { return f }
