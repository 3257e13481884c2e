package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/loop"
)

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w':
			return core.ActionJump
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// pumpEvents forwards key presses into the latch until the screen is
// finalized. Resize events force a full repaint.
func pumpEvents(screen tcell.Screen, latch *loop.Latch, done chan<- struct{}) {
	defer close(done)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a := MapKey(ev); a != core.ActionNone {
				latch.Press(a)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
