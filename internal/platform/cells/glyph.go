// Package cells draws the game on a character grid. It provides glyph art
// as a sprite.Source and projects a dino.Scene onto a core.Screen; the
// tui and tcell backends share it.
package cells

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoBlink  = '─'
	DinoDead   = '✕'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	GroundChar = '═'
)

// Glyph is character art stretched over a world-space rectangle.
// Spaces are transparent.
type Glyph struct {
	Rows  []string
	Color core.Color
	w, h  int // World size
}

// Size returns the world size the glyph covers.
func (g *Glyph) Size() (int, int) {
	return g.w, g.h
}

// At samples the art for cell (col, row) of a cols×rows target,
// nearest-neighbor. It returns ' ' where the art is empty.
func (g *Glyph) At(col, row, cols, rows int) rune {
	if len(g.Rows) == 0 || cols <= 0 || rows <= 0 {
		return ' '
	}
	line := []rune(g.Rows[row*len(g.Rows)/rows])
	if len(line) == 0 {
		return ' '
	}
	return line[col*g.width()/cols%len(line)]
}

func (g *Glyph) width() int {
	w := 0
	for _, r := range g.Rows {
		w = max(w, utf8.RuneCountInString(r))
	}
	return w
}

var (
	head  = string(DinoHead)
	body  = string(DinoBody)
	legs1 = string([]rune{DinoLeg1, ' ', DinoLeg2})
	legs2 = string([]rune{' ', DinoLeg1, DinoLeg2})
	tuck  = string([]rune{DinoLeg1, DinoLeg2, ' '})
	torso = strings.Repeat(body, 3)
)

// actorArt holds the base frames of each animation; sequences cycle them.
var actorArt = map[string][][]string{
	sprite.Run: {
		{" " + head + body, torso, legs1},
		{" " + head + body, torso, legs2},
	},
	sprite.Jump: {
		{" " + head + body, torso, tuck},
	},
	sprite.Idle: {
		{" " + head + body, torso, legs1},
		{" " + head + body, torso, legs1},
		{" " + string(DinoBlink) + body, torso, legs1},
	},
	sprite.Dead: {
		{" " + string(DinoDead) + body, torso, legs1},
	},
}

var actorColor = map[string]core.Color{
	sprite.Run:  core.ColorBrightGreen,
	sprite.Jump: core.ColorBrightGreen,
	sprite.Idle: core.ColorGreen,
	sprite.Dead: core.ColorBrightRed,
}

// stillArt is keyed by asset base name (ground.png → ground).
var stillArt = map[string]Glyph{
	"ground": {Rows: []string{"══════·═════════:══════════·════════"}, Color: core.ColorOrange},
	"cloud":  {Rows: []string{" .--. ", "(____)"}, Color: core.ColorGray},
	"cactus": {Rows: []string{string(CactusChar)}, Color: core.ColorGreen},
}

// Source serves built-in glyph art. It satisfies sprite.Source.
type Source struct{}

// Sequence returns count frames of the named animation, cycling its base art.
func (Source) Sequence(name string, count, w, h int) (sprite.Sequence, error) {
	art, ok := actorArt[name]
	if !ok {
		return nil, fmt.Errorf("cells: no art for animation %q", name)
	}

	seq := make(sprite.Sequence, count)
	for i := range seq {
		seq[i] = &Glyph{Rows: art[i%len(art)], Color: actorColor[name], w: w, h: h}
	}
	return seq, nil
}

// Image returns the still art for an asset name such as "cactus.png".
func (Source) Image(name string, w, h int) (sprite.Image, error) {
	key := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	g, ok := stillArt[key]
	if !ok {
		return nil, fmt.Errorf("cells: no art for image %q", name)
	}
	g.w, g.h = w, h
	return &g, nil
}
