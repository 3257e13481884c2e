// Package config provides YAML-based configuration loading for the runner.
// Window geometry is fixed; everything the simulation tunes lives in DinoConfig.
package config

import "time"

// Fixed window configuration. These are not runtime inputs.
const (
	Width  = 800
	Height = 400
	Title  = "Dino Sprite Game - Upgraded"
)

// DinoConfig contains all tunable parameters of the runner simulation.
type DinoConfig struct {
	TickRate  int       `yaml:"tick_rate"`
	Physics   Physics   `yaml:"physics"`
	Actor     Actor     `yaml:"actor"`
	Obstacle  Obstacle  `yaml:"obstacle"`
	Ground    Ground    `yaml:"ground"`
	Cloud     Cloud     `yaml:"cloud"`
	Animation Animation `yaml:"animation"`
	Assets    Assets    `yaml:"assets"`
}

// Physics defines the per-tick vertical integration constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	GroundY     float64 `yaml:"ground_y"`     // Actor top edge when standing
}

// Actor defines the runner's fixed column and bounding box.
type Actor struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Obstacle defines the single recycled obstacle.
type Obstacle struct {
	Y             int `yaml:"y"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Speed         int `yaml:"speed"`           // Units per tick
	RespawnMinGap int `yaml:"respawn_min_gap"` // Inclusive, added to Width on recycle
	RespawnMaxGap int `yaml:"respawn_max_gap"`
}

// Ground defines the scrolling ground strip, drawn as two adjacent tiles.
type Ground struct {
	Y          int `yaml:"y"`
	TileWidth  int `yaml:"tile_width"` // Also the wrap cycle length
	TileHeight int `yaml:"tile_height"`
	Speed      int `yaml:"speed"`
}

// Cloud defines the decorative background cloud.
type Cloud struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	StartY           int `yaml:"start_y"`
	Speed            int `yaml:"speed"`
	WrapX            int `yaml:"wrap_x"`             // Respawn once x drops below this
	RespawnMaxOffset int `yaml:"respawn_max_offset"` // Respawn x in [Width, Width+offset]
	MinY             int `yaml:"min_y"`
	MaxY             int `yaml:"max_y"`
}

// Animation defines frame pacing and the frame count of every animation.
type Animation struct {
	FrameTicks int           `yaml:"frame_ticks"` // Ticks per animation frame
	IdleAfter  time.Duration `yaml:"idle_after"`  // Inactivity before the idle animation
	Frames     FrameCounts   `yaml:"frames"`
}

// FrameCounts holds the number of frames of each actor animation.
type FrameCounts struct {
	Run  int `yaml:"run"`
	Jump int `yaml:"jump"`
	Idle int `yaml:"idle"`
	Dead int `yaml:"dead"`
}

// Assets names the image files a windowed platform loads.
// Animation frames live at <actor_dir>/<state>/<State>_<n>.png.
type Assets struct {
	ActorDir string `yaml:"actor_dir"`
	Ground   string `yaml:"ground"`
	Cloud    string `yaml:"cloud"`
	Obstacle string `yaml:"obstacle"`
}
