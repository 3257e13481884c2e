package dino

import (
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

func TestSelectStatePriority(t *testing.T) {
	tests := []struct {
		name    string
		dead    bool
		jumping bool
		idle    bool
		want    AnimState
	}{
		{"running", false, false, false, AnimRunning},
		{"idle", false, false, true, AnimIdle},
		{"jumping", false, true, false, AnimJumping},
		{"jumping beats idle", false, true, true, AnimJumping},
		{"dead beats jumping", true, true, false, AnimDead},
		{"dead beats all", true, true, true, AnimDead},
		{"dead on ground", true, false, false, AnimDead},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := World{Dead: tc.dead, Jumping: tc.jumping, Idle: tc.idle}
			if got := SelectState(&w); got != tc.want {
				t.Errorf("SelectState() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestAnimStateNames(t *testing.T) {
	frames := config.DefaultDinoConfig().Animation.Frames

	tests := []struct {
		state  AnimState
		name   string
		frames int
	}{
		{AnimRunning, sprite.Run, 8},
		{AnimJumping, sprite.Jump, 12},
		{AnimIdle, sprite.Idle, 10},
		{AnimDead, sprite.Dead, 8},
	}

	for _, tc := range tests {
		if got := tc.state.String(); got != tc.name {
			t.Errorf("%d.String() = %q, expected %q", tc.state, got, tc.name)
		}
		if got := tc.state.FrameCount(frames); got != tc.frames {
			t.Errorf("%v.FrameCount() = %d, expected %d", tc.state, got, tc.frames)
		}
	}
}

func TestAnimateAdvancesEveryFrameTicks(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	w := NewWorld(cfg, epoch)

	for i := 1; i <= 5; i++ {
		sel := Animate(&w, cfg)
		if sel.Frame != 0 {
			t.Fatalf("tick %d: frame = %d, expected 0", i, sel.Frame)
		}
	}

	sel := Animate(&w, cfg)
	if sel.Frame != 1 || w.FrameTimer != 0 {
		t.Errorf("tick 6: frame = %d timer = %d, expected 1 and 0", sel.Frame, w.FrameTimer)
	}
}

func TestAnimateWrapsRunCycle(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	w := NewWorld(cfg, epoch)

	var sel Selection
	for i := 0; i < 8*cfg.Animation.FrameTicks; i++ {
		sel = Animate(&w, cfg)
	}

	if sel.State != AnimRunning || sel.Frame != 0 {
		t.Errorf("after a full cycle got %+v, expected running frame 0", sel)
	}
}

func TestAnimateFoldsIndexOnStateChange(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	w := NewWorld(cfg, epoch)

	// Mid jump cycle, then land: the jump index is beyond the run range.
	w.Jumping = true
	w.FrameIndex = 11
	w.Jumping = false

	sel := Animate(&w, cfg)

	if sel.State != AnimRunning {
		t.Fatalf("state = %v, expected running", sel.State)
	}
	if sel.Frame != 3 {
		t.Errorf("frame = %d, expected 11 mod 8 = 3", sel.Frame)
	}
	if w.FrameIndex != sel.Frame {
		t.Errorf("FrameIndex = %d, expected the folded value %d", w.FrameIndex, sel.Frame)
	}
}

func TestAnimateFrameAlwaysInRange(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	w := NewWorld(cfg, epoch)

	for i := 0; i < 1000; i++ {
		w.Jumping = i%37 < 12
		w.Idle = i%53 > 40
		w.Dead = i > 900

		sel := Animate(&w, cfg)
		n := sel.State.FrameCount(cfg.Animation.Frames)
		if sel.Frame < 0 || sel.Frame >= n {
			t.Fatalf("tick %d: frame %d outside [0, %d) for %v", i, sel.Frame, n, sel.State)
		}
	}
}
