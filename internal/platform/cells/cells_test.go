package cells

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func loadSet(t *testing.T) *sprite.Set {
	t.Helper()
	set, err := sprite.Load(Source{}, config.DefaultDinoConfig())
	if err != nil {
		t.Fatalf("sprite.Load() failed: %v", err)
	}
	return set
}

func TestSourceSatisfiesLoad(t *testing.T) {
	set := loadSet(t)
	frames := config.DefaultDinoConfig().Animation.Frames

	tests := map[string]int{
		sprite.Run:  frames.Run,
		sprite.Jump: frames.Jump,
		sprite.Idle: frames.Idle,
		sprite.Dead: frames.Dead,
	}
	for name, want := range tests {
		if got := len(set.Animation(name)); got != want {
			t.Errorf("%s: %d frames, expected %d", name, got, want)
		}
	}

	if w, h := set.Ground.Size(); w != 800 || h != 20 {
		t.Errorf("ground size = %dx%d", w, h)
	}
}

func TestSourceUnknownNames(t *testing.T) {
	if _, err := (Source{}).Sequence("fly", 3, 60, 60); err == nil {
		t.Error("Sequence(fly) should fail")
	}
	if _, err := (Source{}).Image("tree.png", 10, 10); err == nil {
		t.Error("Image(tree.png) should fail")
	}
}

func TestRunFramesAlternate(t *testing.T) {
	seq, err := (Source{}).Sequence(sprite.Run, 8, 60, 60)
	if err != nil {
		t.Fatalf("Sequence() failed: %v", err)
	}

	a, b := seq[0].(*Glyph), seq[1].(*Glyph)
	if strings.Join(a.Rows, "\n") == strings.Join(b.Rows, "\n") {
		t.Error("consecutive run frames should differ")
	}
	if seq[2].(*Glyph).Rows[2] != a.Rows[2] {
		t.Error("run art should cycle every two frames")
	}
}

func TestGlyphAt(t *testing.T) {
	g := &Glyph{Rows: []string{"ab", "cd"}}

	tests := []struct {
		col, row, cols, rows int
		want                 rune
	}{
		{0, 0, 2, 2, 'a'},
		{1, 1, 2, 2, 'd'},
		{3, 0, 4, 4, 'b'}, // stretched
		{0, 3, 4, 4, 'c'},
		{0, 0, 1, 1, 'a'}, // shrunk
		{0, 0, 0, 0, ' '},
	}

	for _, tc := range tests {
		if got := g.At(tc.col, tc.row, tc.cols, tc.rows); got != tc.want {
			t.Errorf("At(%d, %d, %d, %d) = %q, expected %q", tc.col, tc.row, tc.cols, tc.rows, got, tc.want)
		}
	}
}

func TestProjectStartupScene(t *testing.T) {
	set := loadSet(t)
	g := dino.New(config.DefaultDinoConfig(), set, 1, epoch)
	screen := core.NewScreen(80, 24)

	Project(screen, g.Scene())

	// Actor spans world x 100..160, y 300..360: columns 10..15, rows 18..20.
	for row := 18; row <= 20; row++ {
		if strings.TrimSpace(string([]rune(screen.Row(row))[10:16])) == "" {
			t.Errorf("row %d has no actor art: %q", row, screen.Row(row))
		}
	}
	if cell := screen.GetCell(11, 19); cell.Color != core.ColorBrightGreen {
		t.Errorf("actor color = %v", cell.Color)
	}

	// Ground at world y 360 is row 21 and spans the screen.
	ground := screen.Row(21)
	if strings.Count(ground, string(GroundChar)) < 60 {
		t.Errorf("ground row = %q", ground)
	}

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "High Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if strings.Contains(screen.String(), "Game Over") {
		t.Error("no banner before the run ends")
	}
}

func TestProjectGameOverBanner(t *testing.T) {
	set := loadSet(t)
	g := dino.New(config.DefaultDinoConfig(), set, 1, epoch)

	now := epoch
	var res dino.TickResult
	for i := 0; i < 200 && !res.State.GameOver; i++ {
		now = now.Add(time.Second / 60)
		res = g.Tick(core.NewInputFrame(), now)
	}
	if !res.State.GameOver {
		t.Fatal("run did not end")
	}

	screen := core.NewScreen(80, 24)
	Project(screen, res.Scene)

	if !strings.Contains(screen.String(), dino.GameOverBanner) {
		t.Errorf("banner missing:\n%s", screen.String())
	}
	if !strings.ContainsRune(screen.String(), DinoDead) {
		t.Error("dead frame should be drawn")
	}
}

func TestProjectSkipsMissingArt(t *testing.T) {
	g := dino.New(config.DefaultDinoConfig(), nil, 1, epoch)
	screen := core.NewScreen(40, 12)

	Project(screen, g.Scene())

	for row := 1; row < 12; row++ {
		if strings.TrimSpace(screen.Row(row)) != "" {
			t.Errorf("row %d should be empty without art: %q", row, screen.Row(row))
		}
	}
}
