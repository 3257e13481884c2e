package loop

import (
	"sync"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Latch collects actions from an event goroutine and hands them to the loop.
// A press is seen by exactly one Poll, however short it was.
type Latch struct {
	mu      sync.Mutex
	pending core.InputFrame
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{pending: core.NewInputFrame()}
}

// Press records an action. Safe for concurrent use.
func (l *Latch) Press(a core.Action) {
	l.mu.Lock()
	l.pending.Set(a)
	l.mu.Unlock()
}

// Poll returns the actions pressed since the last poll and clears them.
func (l *Latch) Poll() core.InputFrame {
	l.mu.Lock()
	defer l.mu.Unlock()

	in := l.pending.Clone()
	l.pending.Clear()
	return in
}
