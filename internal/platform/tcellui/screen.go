// Package tcellui is the tcell backend: an event goroutine feeds a latch,
// and the fixed-tick loop steps the session and paints the projected scene.
package tcellui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/loop"
	"github.com/vovakirdan/dino-runner/internal/platform/cells"
)

// styles maps core.Color to tcell styles.
var styles = func() map[core.Color]tcell.Style {
	m := map[core.Color]tcell.Style{core.ColorDefault: tcell.StyleDefault}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		n, err := strconv.Atoi(c.ANSI())
		if err != nil {
			continue
		}
		m[c] = tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
	}
	m[core.ColorBrightWhite] = m[core.ColorBrightWhite].Bold(true)
	return m
}()

func styleFor(c core.Color) tcell.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// SceneSource supplies the scene to show when a tick composed none (restart).
type SceneSource interface {
	Scene() dino.Scene
}

// Presenter paints tick results onto a tcell screen.
type Presenter struct {
	screen tcell.Screen
	buf    *core.Screen
	source SceneSource
}

var _ loop.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter sized to the screen.
func NewPresenter(screen tcell.Screen, source SceneSource) *Presenter {
	w, h := screen.Size()
	return &Presenter{
		screen: screen,
		buf:    core.NewScreen(w, h),
		source: source,
	}
}

// Present projects the tick's scene and shows it.
func (p *Presenter) Present(res dino.TickResult) error {
	scene := res.Scene
	if res.Phase != dino.PhaseDone {
		scene = p.source.Scene()
	}

	if w, h := p.screen.Size(); w != p.buf.Width() || h != p.buf.Height() {
		p.buf.Resize(w, h)
	}
	cells.Project(p.buf, scene)

	for y := 0; y < p.buf.Height(); y++ {
		for x := 0; x < p.buf.Width(); x++ {
			cell := p.buf.GetCell(x, y)
			p.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	p.screen.Show()
	return nil
}
