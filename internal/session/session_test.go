package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

const tick = time.Second / 60

type cuePlayer struct {
	cues   []sound.Cue
	closed bool
}

func (p *cuePlayer) Play(c sound.Cue) { p.cues = append(p.cues, c) }
func (p *cuePlayer) Close() error     { p.closed = true; return nil }

type failingJournal struct{ calls int }

func (j *failingJournal) SaveRun(storage.Run) (int64, error) {
	j.calls++
	return 0, errors.New("disk full")
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// playUntilDeath ticks with no input until the run ends.
func playUntilDeath(t *testing.T, s *Session, now time.Time) (dino.TickResult, time.Time) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		now = now.Add(tick)
		res := s.Tick(input(), now)
		if res.Has(dino.EventDied) {
			return res, now
		}
	}
	t.Fatal("run never ended")
	return dino.TickResult{}, now
}

func TestSessionPlaysCues(t *testing.T) {
	player := &cuePlayer{}
	s := New(config.DefaultDinoConfig(), nil, epoch, Options{Player: player})

	s.Tick(input(core.ActionJump), epoch.Add(tick))
	playUntilDeath(t, s, epoch.Add(tick))

	if len(player.cues) < 2 {
		t.Fatalf("cues = %v", player.cues)
	}
	if player.cues[0] != sound.CueJump {
		t.Errorf("first cue = %v, expected jump", player.cues[0])
	}
	if last := player.cues[len(player.cues)-1]; last != sound.CueDeath {
		t.Errorf("last cue = %v, expected death", last)
	}

	s.Close()
	if !player.closed {
		t.Error("Close() should close the player")
	}
}

func TestSessionJournalsRuns(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	s := New(config.DefaultDinoConfig(), nil, epoch, Options{Backend: "test", Seed: 7, Journal: store})

	_, diedAt := playUntilDeath(t, s, epoch)

	run := s.LastRun()
	if run == nil {
		t.Fatal("LastRun() = nil after death")
	}
	if run.ID == 0 || run.Backend != "test" || run.Seed != 7 {
		t.Errorf("run = %+v", run)
	}
	if run.Duration != diedAt.Sub(epoch) {
		t.Errorf("Duration = %v, expected %v", run.Duration, diedAt.Sub(epoch))
	}
	if run.Ticks == 0 {
		t.Error("Ticks should count the live ticks of the run")
	}

	// Second run starts its clock at the restart.
	restartAt := diedAt.Add(time.Second)
	res := s.Tick(input(core.ActionRestart), restartAt)
	if !res.Has(dino.EventRestarted) {
		t.Fatal("restart not applied")
	}
	_, diedAgain := playUntilDeath(t, s, restartAt)

	if got := s.LastRun().Duration; got != diedAgain.Sub(restartAt) {
		t.Errorf("second run Duration = %v, expected %v", got, diedAgain.Sub(restartAt))
	}
	if s.Runs() != 2 {
		t.Errorf("Runs() = %d, expected 2", s.Runs())
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("journal has %d runs, expected 2", len(runs))
	}
}

func TestSessionJournalFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	journal := &failingJournal{}
	s := New(config.DefaultDinoConfig(), nil, epoch, Options{
		Journal: journal,
		Logger:  NewLogger(&buf, log.DebugLevel),
	})

	res, _ := playUntilDeath(t, s, epoch)

	if journal.calls != 1 {
		t.Errorf("SaveRun called %d times", journal.calls)
	}
	if !res.State.GameOver {
		t.Error("game should still be over")
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("log missing journal error:\n%s", buf.String())
	}
	if s.LastRun() == nil || s.LastRun().ID != 0 {
		t.Errorf("LastRun() = %+v", s.LastRun())
	}
}

func TestSessionHighScoreIgnoresJournal(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{Backend: "old", Score: 500})

	s := New(config.DefaultDinoConfig(), nil, epoch, Options{Journal: store})

	if hs := s.State().HighScore; hs != 0 {
		t.Errorf("HighScore = %d, a new session starts from 0", hs)
	}
}

func TestNewLoggerWritesStructured(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.InfoLevel)

	logger.Info("run over", "score", 12)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "run over") || !strings.Contains(out, "score=12") {
		t.Errorf("unexpected log output %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dino.log")

	f, err := OpenLog(path)
	if err != nil {
		t.Fatalf("OpenLog() failed: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("hello\n"); err != nil {
		t.Errorf("write failed: %v", err)
	}
}
