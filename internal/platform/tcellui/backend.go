package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-runner/internal/loop"
	"github.com/vovakirdan/dino-runner/internal/platform/cells"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/session"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Name is the registry name of this backend.
const Name = "tcell"

// Backend plays the game on a raw tcell screen.
type Backend struct {
	// NewScreen overrides screen creation; tests use a simulation screen.
	NewScreen func() (tcell.Screen, error)
}

func (Backend) Name() string        { return Name }
func (Backend) Description() string { return "tcell terminal renderer driven by a fixed-tick loop" }

// Run plays until quit or ctx is cancelled.
func (b Backend) Run(ctx context.Context, env registry.Env) error {
	set, err := sprite.Load(cells.Source{}, env.Config)
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}

	newScreen := b.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	player, err := sound.Open(env.Sound, 0)
	if err != nil {
		env.Log().Warn("sound disabled", "error", err)
	}

	sess := session.New(env.Config, set, time.Now(), env.SessionOptions(Name, player))
	defer sess.Close()

	latch := loop.NewLatch()
	done := make(chan struct{})
	go pumpEvents(screen, latch, done)

	clock := loop.NewTickerClock(env.Config.TickRate)
	defer clock.Stop()

	runErr := loop.Run(ctx, clock, latch, NewPresenter(screen, sess), sess)

	// Fini unblocks PollEvent and ends the pump
	screen.Fini()
	<-done

	if runErr != nil {
		return fmt.Errorf("tcell: %w", runErr)
	}
	return nil
}

func init() {
	registry.Register(Name, func() registry.Backend { return Backend{} })
}
