package dino

import (
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// World holds every mutable field of the simulation.
// It is plain data: the phase functions in this package are the only writers.
type World struct {
	ActorY   float64   // Actor top edge; grows downward, GroundY when standing
	ActorVel float64   // Vertical velocity in units per tick
	Actor    core.Rect // Actor bounding box derived from ActorY

	Obstacle core.Rect // Recycled obstacle; X decreases while alive

	GroundX int // Ground scroll offset in (-TileWidth, 0]
	CloudX  int
	CloudY  int

	Score     int // Obstacles passed in the current run
	HighScore int // Best Score of any finished run in this process

	Jumping  bool // Airborne; blocks re-jumping
	Idle     bool // Presentational only
	Dead     bool // Freezes physics, scrolling and recycling
	GameOver bool // Gate for restart

	FrameIndex int       // Current frame of the active animation
	FrameTimer int       // Ticks since FrameIndex last advanced
	LastInput  time.Time // Last jump or restart, for idle detection
}

// NewWorld returns the startup world.
func NewWorld(cfg config.DinoConfig, now time.Time) World {
	var w World
	w.Reset(cfg, now)
	return w
}

// Reset restores every field to its startup value except HighScore.
func (w *World) Reset(cfg config.DinoConfig, now time.Time) {
	high := w.HighScore

	*w = World{
		ActorY:    float64(cfg.Actor.Y),
		Actor:     core.NewRect(cfg.Actor.X, cfg.Actor.Y, cfg.Actor.Width, cfg.Actor.Height),
		Obstacle:  core.NewRect(config.Width, cfg.Obstacle.Y, cfg.Obstacle.Width, cfg.Obstacle.Height),
		CloudX:    config.Width,
		CloudY:    cfg.Cloud.StartY,
		HighScore: high,
		LastInput: now,
	}
}

// State summarizes the world for platforms.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:     w.Score,
		HighScore: w.HighScore,
		GameOver:  w.GameOver,
	}
}
