// Package loop drives a game at a fixed tick rate for platforms that pull
// input and push frames themselves (as opposed to Bubble Tea or ebiten,
// which own their loops).
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Clock provides wall-clock time and paces the loop.
type Clock interface {
	Now() time.Time
	// Wait blocks until the next tick is due or ctx is done.
	Wait(ctx context.Context) error
}

// InputSource reports the actions pressed since the previous poll.
type InputSource interface {
	Poll() core.InputFrame
}

// Stepper advances the simulation by one tick.
type Stepper interface {
	Tick(in core.InputFrame, now time.Time) dino.TickResult
}

// Presenter shows the outcome of a tick.
type Presenter interface {
	Present(res dino.TickResult) error
}

// Run executes ticks until quit is pressed, ctx is cancelled or presenting fails.
// Each iteration samples input, steps, presents and then waits for the clock.
// Cancellation and quit are only observed between ticks.
func Run(ctx context.Context, clock Clock, input InputSource, presenter Presenter, stepper Stepper) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		in := input.Poll()
		if in.Has(core.ActionQuit) {
			return nil
		}

		res := stepper.Tick(in, clock.Now())
		if err := presenter.Present(res); err != nil {
			return fmt.Errorf("loop: present: %w", err)
		}

		if err := clock.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("loop: wait: %w", err)
		}
	}
}

// TickerClock paces the loop with a time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock firing tickRate times per second.
func NewTickerClock(tickRate int) *TickerClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Now returns the current time.
func (c *TickerClock) Now() time.Time {
	return time.Now()
}

// Wait blocks until the ticker fires. Missed ticks are dropped, not replayed.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
