// Package dino implements the sprite runner: a fixed-tick loop in which the
// player jumps a recycled obstacle while the ground and a cloud scroll past.
//
// Each tick runs the phases Input, Physics, Judge, Animate and Compose over a
// single World. The phase functions are exported so they can be exercised
// without a running loop; Game sequences them.
package dino

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Phase is a step of the per-tick state machine.
type Phase int

const (
	PhaseInput Phase = iota
	PhasePhysics
	PhaseJudge
	PhaseAnimate
	PhaseCompose
	PhaseDone      // Tick completed; Scene is ready to present
	PhaseRestarted // Restart consumed the tick; nothing to present
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePhysics:
		return "physics"
	case PhaseJudge:
		return "judge"
	case PhaseAnimate:
		return "animate"
	case PhaseCompose:
		return "compose"
	case PhaseDone:
		return "done"
	case PhaseRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is something noteworthy that happened during a tick.
type Event int

const (
	EventJumped Event = iota
	EventScored
	EventDied
	EventRestarted
)

// String returns the event name for logs.
func (e Event) String() string {
	switch e {
	case EventJumped:
		return "jumped"
	case EventScored:
		return "scored"
	case EventDied:
		return "died"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// TickResult is returned by Game.Tick.
type TickResult struct {
	Phase     Phase // PhaseDone or PhaseRestarted
	Events    []Event
	Selection Selection
	Scene     Scene // Zero when Phase is PhaseRestarted
	State     core.GameState
}

// Has reports whether the tick raised the event.
func (r TickResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// Game owns the World and sequences the tick phases.
type Game struct {
	cfg   config.DinoConfig
	set   *sprite.Set
	rng   Rand
	world World
	ticks int // Ticks in the current run
}

// New creates a game at its startup state. set may be nil for headless use.
func New(cfg config.DinoConfig, set *sprite.Set, seed int64, now time.Time) *Game {
	return NewWithRand(cfg, set, rand.New(rand.NewSource(seed)), now)
}

// NewWithRand creates a game drawing respawn positions from rng.
func NewWithRand(cfg config.DinoConfig, set *sprite.Set, rng Rand, now time.Time) *Game {
	return &Game{
		cfg:   cfg,
		set:   set,
		rng:   rng,
		world: NewWorld(cfg, now),
	}
}

// Tick advances the game by one fixed tick.
func (g *Game) Tick(in core.InputFrame, now time.Time) TickResult {
	var res TickResult
	w := &g.world

	phase := PhaseInput
	for phase != PhaseDone && phase != PhaseRestarted {
		switch phase {
		case PhaseInput:
			switch Interpret(w, in, now, g.cfg) {
			case IntentRestart:
				g.ticks = 0
				res.Events = append(res.Events, EventRestarted)
				phase = PhaseRestarted
				continue
			case IntentJump:
				res.Events = append(res.Events, EventJumped)
			}
			phase = PhasePhysics

		case PhasePhysics:
			if Advance(w, g.cfg, g.rng) {
				res.Events = append(res.Events, EventScored)
			}
			phase = PhaseJudge

		case PhaseJudge:
			if Judge(w) {
				res.Events = append(res.Events, EventDied)
			}
			phase = PhaseAnimate

		case PhaseAnimate:
			res.Selection = Animate(w, g.cfg)
			phase = PhaseCompose

		case PhaseCompose:
			res.Scene = Compose(w, res.Selection, g.cfg, g.set)
			phase = PhaseDone
		}
	}

	if phase == PhaseDone && !w.Dead {
		g.ticks++
	}
	res.Phase = phase
	res.State = w.State()
	return res
}

// Scene composes the current world without advancing it.
func (g *Game) Scene() Scene {
	w := g.world
	state := SelectState(&w)
	frame := w.FrameIndex
	if n := state.FrameCount(g.cfg.Animation.Frames); n > 0 {
		frame %= n
	}
	return Compose(&w, Selection{State: state, Frame: frame}, g.cfg, g.set)
}

// World returns a snapshot of the simulation state.
func (g *Game) World() World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// Ticks returns how many live ticks the current run has lasted.
func (g *Game) Ticks() int {
	return g.ticks
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.DinoConfig {
	return g.cfg
}
