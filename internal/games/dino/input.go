package dino

import (
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Intent is what the input interpreter decided for one tick.
type Intent int

const (
	IntentNone    Intent = iota
	IntentJump           // Actor launched this tick
	IntentRestart        // World was reset; the rest of the tick is skipped
)

// Interpret applies the pressed actions to the world.
//
// Restart wins over everything else and only fires after game over. A jump
// needs the actor grounded and alive. Idle is evaluated after the jump so a
// jump clears it in the same tick.
func Interpret(w *World, in core.InputFrame, now time.Time, cfg config.DinoConfig) Intent {
	if in.Has(core.ActionRestart) && w.GameOver {
		w.Reset(cfg, now)
		return IntentRestart
	}

	intent := IntentNone
	if in.Has(core.ActionJump) && !w.Jumping && !w.Dead {
		w.ActorVel = cfg.Physics.JumpImpulse
		w.Jumping = true
		w.LastInput = now
		intent = IntentJump
	}

	if !w.Dead {
		w.Idle = now.Sub(w.LastInput) > cfg.Animation.IdleAfter && !w.Jumping
	}

	return intent
}
