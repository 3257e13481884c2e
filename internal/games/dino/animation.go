package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// AnimState is the actor animation chosen for a tick.
type AnimState int

const (
	AnimRunning AnimState = iota
	AnimIdle
	AnimJumping
	AnimDead
)

// String returns the sprite animation name for the state.
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return sprite.Idle
	case AnimJumping:
		return sprite.Jump
	case AnimDead:
		return sprite.Dead
	default:
		return sprite.Run
	}
}

// FrameCount returns how many frames the state's animation has.
func (s AnimState) FrameCount(frames config.FrameCounts) int {
	switch s {
	case AnimIdle:
		return frames.Idle
	case AnimJumping:
		return frames.Jump
	case AnimDead:
		return frames.Dead
	default:
		return frames.Run
	}
}

// Selection is the animation frame to draw this tick.
type Selection struct {
	State AnimState
	Frame int // Always in [0, State.FrameCount)
}

// SelectState picks the animation by priority: dead, jumping, idle, running.
func SelectState(w *World) AnimState {
	switch {
	case w.Dead:
		return AnimDead
	case w.Jumping:
		return AnimJumping
	case w.Idle:
		return AnimIdle
	default:
		return AnimRunning
	}
}

// Animate advances the frame timer and selects the frame to draw.
//
// The frame index is not reset on state changes (only the death transition
// in Judge does that), so a new animation may start mid-cycle. The index is
// folded into the active animation's range before use.
func Animate(w *World, cfg config.DinoConfig) Selection {
	w.FrameTimer++
	if w.FrameTimer >= cfg.Animation.FrameTicks {
		w.FrameIndex++
		w.FrameTimer = 0
	}

	state := SelectState(w)
	if n := state.FrameCount(cfg.Animation.Frames); n > 0 {
		w.FrameIndex %= n
	}

	return Selection{State: state, Frame: w.FrameIndex}
}
