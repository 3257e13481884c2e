// Package sprite defines the asset collaborator contract between the game and
// its platforms. Images are opaque blittable surfaces owned by the platform;
// the game only indexes frame sequences and positions them.
package sprite

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Animation names used as keys of a Set.
const (
	Run  = "run"
	Jump = "jump"
	Idle = "idle"
	Dead = "dead"
)

// Image is a pre-scaled surface a platform knows how to draw.
type Image interface {
	Size() (w, h int)
}

// Sequence is an ordered, equally sized list of animation frames.
type Sequence []Image

// Frame returns frame i wrapped modulo the sequence length.
// An empty sequence returns nil.
func (s Sequence) Frame(i int) Image {
	if len(s) == 0 {
		return nil
	}
	i %= len(s)
	if i < 0 {
		i += len(s)
	}
	return s[i]
}

// Source produces platform images by logical name.
type Source interface {
	// Sequence returns count frames of the named animation, scaled to w×h.
	Sequence(name string, count, w, h int) (Sequence, error)
	// Image returns the named still image scaled to w×h.
	Image(name string, w, h int) (Image, error)
}

// Set holds every image the scene needs.
type Set struct {
	Animations map[string]Sequence
	Ground     Image
	Cloud      Image
	Obstacle   Image
}

// Animation returns the sequence registered under name.
func (s *Set) Animation(name string) Sequence {
	return s.Animations[name]
}

// Load asks src for every animation and still image described by cfg.
// All failures are collected; a non-nil error means the set is unusable.
func Load(src Source, cfg config.DinoConfig) (*Set, error) {
	set := &Set{Animations: make(map[string]Sequence, 4)}
	var errs []error

	counts := []struct {
		name  string
		count int
	}{
		{Run, cfg.Animation.Frames.Run},
		{Jump, cfg.Animation.Frames.Jump},
		{Idle, cfg.Animation.Frames.Idle},
		{Dead, cfg.Animation.Frames.Dead},
	}
	for _, c := range counts {
		seq, err := src.Sequence(c.name, c.count, cfg.Actor.Width, cfg.Actor.Height)
		if err != nil {
			errs = append(errs, fmt.Errorf("sprite: animation %s: %w", c.name, err))
			continue
		}
		if err := checkSequence(seq, c.count, cfg.Actor.Width, cfg.Actor.Height); err != nil {
			errs = append(errs, fmt.Errorf("sprite: animation %s: %w", c.name, err))
			continue
		}
		set.Animations[c.name] = seq
	}

	var err error
	if set.Ground, err = src.Image(cfg.Assets.Ground, cfg.Ground.TileWidth, cfg.Ground.TileHeight); err != nil {
		errs = append(errs, fmt.Errorf("sprite: ground: %w", err))
	}
	if set.Cloud, err = src.Image(cfg.Assets.Cloud, cfg.Cloud.Width, cfg.Cloud.Height); err != nil {
		errs = append(errs, fmt.Errorf("sprite: cloud: %w", err))
	}
	if set.Obstacle, err = src.Image(cfg.Assets.Obstacle, cfg.Obstacle.Width, cfg.Obstacle.Height); err != nil {
		errs = append(errs, fmt.Errorf("sprite: obstacle: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

// ErrBadSequence is wrapped when a source returns frames that break the contract.
var ErrBadSequence = errors.New("bad frame sequence")

func checkSequence(seq Sequence, count, w, h int) error {
	if len(seq) != count {
		return fmt.Errorf("%w: got %d frames, want %d", ErrBadSequence, len(seq), count)
	}
	for i, img := range seq {
		if img == nil {
			return fmt.Errorf("%w: frame %d is nil", ErrBadSequence, i+1)
		}
		if fw, fh := img.Size(); fw != w || fh != h {
			return fmt.Errorf("%w: frame %d is %dx%d, want %dx%d", ErrBadSequence, i+1, fw, fh, w, h)
		}
	}
	return nil
}
