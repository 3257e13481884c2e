package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c DinoConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Actor.Width > 0 && c.Actor.Height > 0, "actor size must be positive, got %dx%d", c.Actor.Width, c.Actor.Height)
	check(c.Obstacle.Width > 0 && c.Obstacle.Height > 0, "obstacle size must be positive, got %dx%d", c.Obstacle.Width, c.Obstacle.Height)
	check(c.Obstacle.RespawnMinGap <= c.Obstacle.RespawnMaxGap,
		"obstacle.respawn_min_gap (%d) exceeds respawn_max_gap (%d)", c.Obstacle.RespawnMinGap, c.Obstacle.RespawnMaxGap)
	check(c.Obstacle.Speed > 0, "obstacle.speed must be positive, got %d", c.Obstacle.Speed)
	check(c.Ground.Speed > 0, "ground.speed must be positive, got %d", c.Ground.Speed)
	check(c.Cloud.Speed > 0, "cloud.speed must be positive, got %d", c.Cloud.Speed)
	check(c.Ground.TileWidth > 0, "ground.tile_width must be positive, got %d", c.Ground.TileWidth)
	check(c.Cloud.MinY <= c.Cloud.MaxY, "cloud.min_y (%d) exceeds max_y (%d)", c.Cloud.MinY, c.Cloud.MaxY)
	check(c.Cloud.RespawnMaxOffset >= 0, "cloud.respawn_max_offset must not be negative, got %d", c.Cloud.RespawnMaxOffset)
	check(c.Animation.FrameTicks > 0, "animation.frame_ticks must be positive, got %d", c.Animation.FrameTicks)
	check(c.Animation.IdleAfter > 0, "animation.idle_after must be positive, got %s", c.Animation.IdleAfter)

	f := c.Animation.Frames
	check(f.Run > 0 && f.Jump > 0 && f.Idle > 0 && f.Dead > 0,
		"animation.frames must all be positive, got run=%d jump=%d idle=%d dead=%d", f.Run, f.Jump, f.Idle, f.Dead)

	return errors.Join(errs...)
}
