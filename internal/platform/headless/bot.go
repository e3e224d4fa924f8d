// Package headless drives the runner without a display: a fixed-step loop
// fed by a bot, used for soak runs, seed replays and balancing.
package headless

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Bot chooses the actions for the next frame from the current world.
type Bot interface {
	Decide(snap runner.Snapshot) core.InputFrame
}

// BotFunc adapts a function to Bot.
type BotFunc func(snap runner.Snapshot) core.InputFrame

// Decide calls f.
func (f BotFunc) Decide(snap runner.Snapshot) core.InputFrame { return f(snap) }

// Idle never presses anything.
var Idle = BotFunc(func(runner.Snapshot) core.InputFrame { return core.NewInputFrame() })

// AutoPilot is a simple reactive player: it keeps to the left third of the
// view, jumps hazards that come within reach and shoots enemies ahead.
type AutoPilot struct {
	JumpReach  float64 // Distance ahead at which hazards trigger a jump
	ShootReach float64 // Distance ahead at which enemies draw fire
	HoldFrac   float64 // Preferred player position as a fraction of the view

	moving bool
}

// NewAutoPilot returns an autopilot tuned for the default viewport.
func NewAutoPilot() *AutoPilot {
	return &AutoPilot{JumpReach: 220, ShootReach: 700, HoldFrac: 1.0 / 3}
}

// Decide implements Bot.
func (a *AutoPilot) Decide(snap runner.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	p := snap.Player
	cam := snap.Session.CameraOffset
	front := p.X + p.W

	if p.X-cam < snap.ViewportW*a.HoldFrac {
		in.Set(core.ActionMoveRight)
		a.moving = true
	} else if a.moving {
		in.Set(core.ActionStop)
		a.moving = false
	}

	if p.Grounded && a.hazardAhead(snap, front) {
		in.Set(core.ActionJump)
	}

	if snap.Shooting {
		for _, e := range snap.Enemies {
			if d := e.X - front; d > 0 && d < a.ShootReach && e.Bottom() > p.Y && e.Y < p.Bottom() {
				in.Set(core.ActionShoot)
				break
			}
		}
	}
	return in
}

func (a *AutoPilot) hazardAhead(snap runner.Snapshot, front float64) bool {
	near := func(x float64) bool {
		d := x - front
		return d > 0 && d < a.JumpReach
	}
	for _, o := range snap.Obstacles {
		if near(o.X) {
			return true
		}
	}
	for _, e := range snap.Enemies {
		if near(e.X) {
			return true
		}
	}
	for _, s := range snap.EnemyShots {
		if near(s.Left()) && s.Y > snap.Player.Y {
			return true
		}
	}
	return false
}
