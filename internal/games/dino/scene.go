package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Layer identifies what a draw call shows, for platforms that style by kind.
type Layer int

const (
	LayerCloud Layer = iota
	LayerGround
	LayerObstacle
	LayerActor
)

// DrawCall places one image at a world position (top-left corner).
type DrawCall struct {
	Layer Layer
	Image sprite.Image // Nil when the game runs without a sprite set
	X, Y  int
}

// Scene is everything a platform presents for one tick, in draw order.
type Scene struct {
	Calls     []DrawCall
	Score     string
	HighScore string
	Banner    string // Empty unless the run is over
}

// GameOverBanner is shown while a finished run waits for restart.
const GameOverBanner = "Game Over! Press R to Restart"

// Compose builds the draw list for the world and the selected actor frame.
// Two ground tiles side by side make the scroll seamless.
func Compose(w *World, sel Selection, cfg config.DinoConfig, set *sprite.Set) Scene {
	var ground, cloud, obstacle, actor sprite.Image
	if set != nil {
		ground, cloud, obstacle = set.Ground, set.Cloud, set.Obstacle
		actor = set.Animation(sel.State.String()).Frame(sel.Frame)
	}

	scene := Scene{
		Calls: []DrawCall{
			{Layer: LayerCloud, Image: cloud, X: w.CloudX, Y: w.CloudY},
			{Layer: LayerGround, Image: ground, X: w.GroundX, Y: cfg.Ground.Y},
			{Layer: LayerGround, Image: ground, X: w.GroundX + cfg.Ground.TileWidth, Y: cfg.Ground.Y},
			{Layer: LayerObstacle, Image: obstacle, X: w.Obstacle.X, Y: w.Obstacle.Y},
			{Layer: LayerActor, Image: actor, X: cfg.Actor.X, Y: int(w.ActorY)},
		},
		Score:     fmt.Sprintf("Score: %d", w.Score),
		HighScore: fmt.Sprintf("High Score: %d", w.HighScore),
	}
	if w.GameOver {
		scene.Banner = GameOverBanner
	}
	return scene
}
