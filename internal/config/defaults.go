package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in configuration.
// It mirrors defaults/dino.yaml and is used when the embedded file cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		TickRate: 60,
		Physics: Physics{
			Gravity:     1,
			JumpImpulse: -16,
			GroundY:     300,
		},
		Actor: Actor{
			X:      100,
			Y:      300,
			Width:  60,
			Height: 60,
		},
		Obstacle: Obstacle{
			Y:             300,
			Width:         40,
			Height:        60,
			Speed:         8,
			RespawnMinGap: 200,
			RespawnMaxGap: 500,
		},
		Ground: Ground{
			Y:          360,
			TileWidth:  800,
			TileHeight: 20,
			Speed:      8,
		},
		Cloud: Cloud{
			Width:            60,
			Height:           30,
			StartY:           50,
			Speed:            2,
			WrapX:            -60,
			RespawnMaxOffset: 100,
			MinY:             20,
			MaxY:             100,
		},
		Animation: Animation{
			FrameTicks: 6,
			IdleAfter:  5 * time.Second,
			Frames: FrameCounts{
				Run:  8,
				Jump: 12,
				Idle: 10,
				Dead: 8,
			},
		},
		Assets: Assets{
			ActorDir: "dino",
			Ground:   "ground.png",
			Cloud:    "cloud.png",
			Obstacle: "cactus.png",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
