// Package window is the ebiten backend: an 800×400 window ticking at the
// configured rate, drawing PNG sprite sequences (or generated placeholders)
// with a text HUD and synthesized sound cues.
package window

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Image is an ebiten image already scaled to its world size.
type Image struct {
	img  *ebiten.Image
	w, h int
}

// Size returns the world size of the image.
func (i *Image) Size() (int, int) {
	return i.w, i.h
}

// Ebiten returns the drawable image.
func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

// scale draws src into a new w×h image.
func scale(src *ebiten.Image, w, h int) *Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return &Image{img: src, w: w, h: h}
	}

	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return &Image{img: dst, w: w, h: h}
}

// FramePath returns the file of frame i (1-based) of an animation, following
// the <dir>/<actor>/<name>/<Name>_<i>.png layout.
func FramePath(dir, actorDir, name string, i int) string {
	prefix := strings.ToUpper(name[:1]) + name[1:]
	return filepath.Join(dir, actorDir, name, fmt.Sprintf("%s_%d.png", prefix, i))
}

// FileSource loads PNG files from an asset directory. It satisfies sprite.Source.
type FileSource struct {
	Dir      string
	ActorDir string
}

// Sequence loads count numbered frames of the named animation.
func (s FileSource) Sequence(name string, count, w, h int) (sprite.Sequence, error) {
	if name == "" {
		return nil, fmt.Errorf("window: empty animation name")
	}

	seq := make(sprite.Sequence, 0, count)
	for i := 1; i <= count; i++ {
		path := FramePath(s.Dir, s.ActorDir, name, i)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("window: cannot load %s: %w", path, err)
		}
		seq = append(seq, scale(img, w, h))
	}
	return seq, nil
}

// Image loads a single still image.
func (s FileSource) Image(name string, w, h int) (sprite.Image, error) {
	path := filepath.Join(s.Dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot load %s: %w", path, err)
	}
	return scale(img, w, h), nil
}

// Placeholder palette
var (
	actorColors = map[string]color.RGBA{
		sprite.Run:  {R: 83, G: 83, B: 83, A: 255},
		sprite.Jump: {R: 60, G: 110, B: 60, A: 255},
		sprite.Idle: {R: 120, G: 120, B: 140, A: 255},
		sprite.Dead: {R: 200, G: 40, B: 40, A: 255},
	}
	eyeColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	stillColors = map[string]color.RGBA{
		"ground": {R: 150, G: 120, B: 80, A: 255},
		"cloud":  {R: 210, G: 220, B: 235, A: 255},
		"cactus": {R: 40, G: 140, B: 60, A: 255},
	}
)

// PlaceholderSource generates flat-colored frames when no asset directory is
// given. Each frame moves a marker so animations are visible.
type PlaceholderSource struct{}

// Sequence generates count frames for the named animation.
func (PlaceholderSource) Sequence(name string, count, w, h int) (sprite.Sequence, error) {
	fill, ok := actorColors[name]
	if !ok {
		return nil, fmt.Errorf("window: no placeholder for animation %q", name)
	}

	seq := make(sprite.Sequence, count)
	for i := range seq {
		img := ebiten.NewImage(w, h)
		img.Fill(fill)

		// Eye bobs through the cycle; legs alternate.
		eye := float32(h/6 + (i%4)*2)
		vector.DrawFilledRect(img, float32(w)*0.65, eye, float32(w)/8, float32(h)/8, eyeColor, false)
		leg := float32(w) * 0.2
		if i%2 == 1 {
			leg = float32(w) * 0.55
		}
		vector.DrawFilledRect(img, leg, float32(h)*0.85, float32(w)/5, float32(h)*0.15, eyeColor, false)

		seq[i] = &Image{img: img, w: w, h: h}
	}
	return seq, nil
}

// Image generates a flat image for an asset name such as "cloud.png".
func (PlaceholderSource) Image(name string, w, h int) (sprite.Image, error) {
	key := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	fill, ok := stillColors[key]
	if !ok {
		return nil, fmt.Errorf("window: no placeholder for image %q", name)
	}

	img := ebiten.NewImage(w, h)
	img.Fill(fill)
	return &Image{img: img, w: w, h: h}, nil
}
