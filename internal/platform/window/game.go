package window

import (
	"context"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/session"
)

// HUD layout in window pixels
const (
	hudScale   = 2
	scoreX     = 10
	scoreY     = 10
	highScoreY = 40
	bannerX    = config.Width/2 - 160
	bannerY    = config.Height/2 - 20
)

var (
	background  = color.White
	hudColor    = color.Black
	bannerColor = color.RGBA{R: 200, A: 255}
	hudFace     = text.NewGoXFace(basicfont.Face7x13)
)

// KeyBinding maps keys to an action. Held bindings fire on every tick the key
// is down; the others fire only on the tick it goes down.
type KeyBinding struct {
	Action core.Action
	Keys   []ebiten.Key
	Held   bool
}

// DefaultBindings mirror the terminal backends. Holding jump keeps jumping
// as soon as the runner lands.
var DefaultBindings = []KeyBinding{
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, true},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, true},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, false},
}

// Sample builds the input frame for this tick. held reports keys that are
// down, pressed reports keys that went down this tick.
func Sample(bindings []KeyBinding, held, pressed func(ebiten.Key) bool) core.InputFrame {
	var frame core.InputFrame
	for _, b := range bindings {
		down := pressed
		if b.Held {
			down = held
		}
		for _, k := range b.Keys {
			if down(k) {
				frame.Set(b.Action)
				break
			}
		}
	}
	return frame
}

// Game adapts a session to ebiten's Update/Draw/Layout cycle.
type Game struct {
	ctx     context.Context
	sess    *session.Session
	now     func() time.Time
	held    func(ebiten.Key) bool
	pressed func(ebiten.Key) bool
	scene   dino.Scene
}

// NewGame wraps sess. Update returns ebiten.Termination once ctx is done.
func NewGame(ctx context.Context, sess *session.Session) *Game {
	return &Game{
		ctx:     ctx,
		sess:    sess,
		now:     time.Now,
		held:    ebiten.IsKeyPressed,
		pressed: inpututil.IsKeyJustPressed,
		scene:   sess.Scene(),
	}
}

// Update samples input and advances the session by one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	in := Sample(DefaultBindings, g.held, g.pressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := g.sess.Tick(in, g.now())
	if res.Phase == dino.PhaseDone {
		g.scene = res.Scene
	} else {
		g.scene = g.sess.Scene()
	}
	return nil
}

// Draw paints the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, call := range g.scene.Calls {
		img, ok := call.Image.(*Image)
		if !ok || img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(call.X), float64(call.Y))
		screen.DrawImage(img.Ebiten(), op)
	}

	drawText(screen, g.scene.Score, scoreX, scoreY, hudColor)
	drawText(screen, g.scene.HighScore, scoreX, highScoreY, hudColor)
	if g.scene.Banner != "" {
		drawText(screen, g.scene.Banner, bannerX, bannerY, bannerColor)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}

// Layout keeps the logical screen at the fixed world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Width, config.Height
}
