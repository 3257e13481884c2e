package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
)

// Rand is the randomness the world needs; *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// randRange returns a uniform integer in [lo, hi].
func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Advance moves the world forward one tick and reports whether the obstacle
// was recycled (and scored). A dead world does not move.
func Advance(w *World, cfg config.DinoConfig, rng Rand) (scored bool) {
	if w.Dead {
		return false
	}

	integrate(w, cfg)
	scroll(w, cfg, rng)
	return recycle(w, cfg, rng)
}

// integrate adds gravity, applies the new velocity, then clamps to the ground.
// Velocity is left alone on landing; the clamp holds the actor until the next jump.
func integrate(w *World, cfg config.DinoConfig) {
	w.ActorVel += cfg.Physics.Gravity
	w.ActorY += w.ActorVel

	if w.ActorY >= cfg.Physics.GroundY {
		w.ActorY = cfg.Physics.GroundY
		w.Jumping = false
	}

	w.Actor = w.Actor.MoveTo(cfg.Actor.X, int(w.ActorY))
}

// scroll moves the obstacle, the ground and the cloud by their fixed deltas.
func scroll(w *World, cfg config.DinoConfig, rng Rand) {
	w.Obstacle.X -= cfg.Obstacle.Speed
	w.GroundX -= cfg.Ground.Speed
	w.CloudX -= cfg.Cloud.Speed

	if w.CloudX < cfg.Cloud.WrapX {
		w.CloudX = config.Width + randRange(rng, 0, cfg.Cloud.RespawnMaxOffset)
		w.CloudY = randRange(rng, cfg.Cloud.MinY, cfg.Cloud.MaxY)
	}

	if w.GroundX <= -cfg.Ground.TileWidth {
		w.GroundX = 0
	}
}

// recycle respawns the obstacle past the right edge once it has fully left
// the screen, scoring exactly one point per pass.
func recycle(w *World, cfg config.DinoConfig, rng Rand) bool {
	if w.Obstacle.Right() >= 0 || w.Dead {
		return false
	}
	w.Obstacle.X = config.Width + randRange(rng, cfg.Obstacle.RespawnMinGap, cfg.Obstacle.RespawnMaxGap)
	w.Score++
	return true
}
