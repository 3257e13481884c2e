package window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/session"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Name is the registry name of this backend.
const Name = "window"

// Backend plays the game in a desktop window.
type Backend struct{}

func (Backend) Name() string        { return Name }
func (Backend) Description() string { return "800x400 desktop window with PNG sprites and sound" }

// Source picks the sprite source for an asset directory.
func Source(assets string, cfg config.DinoConfig) sprite.Source {
	if assets == "" {
		return PlaceholderSource{}
	}
	return FileSource{Dir: assets, ActorDir: cfg.Assets.ActorDir}
}

// Run opens the window and blocks until it is closed, quit or ctx is cancelled.
func (Backend) Run(ctx context.Context, env registry.Env) error {
	set, err := sprite.Load(Source(env.Assets, env.Config), env.Config)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	var player sound.Player = sound.Nop{}
	if env.Sound {
		player = NewPlayer()
	}

	sess := session.New(env.Config, set, time.Now(), env.SessionOptions(Name, player))
	defer sess.Close()

	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(env.Config.TickRate)

	env.Log().Info("window opened", "tps", env.Config.TickRate, "assets", env.Assets)
	if err := ebiten.RunGame(NewGame(ctx, sess)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func init() {
	registry.Register(Name, func() registry.Backend { return Backend{} })
}
