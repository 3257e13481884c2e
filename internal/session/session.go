// Package session is the glue every backend shares: it runs the game, plays
// sound cues for tick events, journals finished runs and logs the lifecycle.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/sprite"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// Journal records finished runs. *storage.Store satisfies it.
type Journal interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options configures a Session. Every field is optional.
type Options struct {
	Backend string
	Seed    int64
	Journal Journal
	Player  sound.Player
	Logger  *log.Logger
}

// Session wraps a dino.Game for a backend.
type Session struct {
	game    *dino.Game
	journal Journal
	player  sound.Player
	logger  *log.Logger
	backend string
	seed    int64

	runStart time.Time
	runs     int
	lastRun  *storage.Run
}

// New starts a session with a fresh game.
func New(cfg config.DinoConfig, set *sprite.Set, now time.Time, opts Options) *Session {
	return NewWithGame(dino.New(cfg, set, opts.Seed, now), now, opts)
}

// NewWithGame starts a session around an existing game.
func NewWithGame(game *dino.Game, now time.Time, opts Options) *Session {
	s := &Session{
		game:     game,
		journal:  opts.Journal,
		player:   opts.Player,
		logger:   opts.Logger,
		backend:  opts.Backend,
		seed:     opts.Seed,
		runStart: now,
	}
	if s.player == nil {
		s.player = sound.Nop{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.logger.Info("run started", "backend", s.backend, "seed", s.seed)
	return s
}

// Tick advances the game and reacts to the events it raised.
func (s *Session) Tick(in core.InputFrame, now time.Time) dino.TickResult {
	res := s.game.Tick(in, now)

	for _, e := range res.Events {
		switch e {
		case dino.EventJumped:
			s.player.Play(sound.CueJump)
		case dino.EventScored:
			s.player.Play(sound.CueScore)
			s.logger.Debug("obstacle passed", "score", res.State.Score)
		case dino.EventDied:
			s.player.Play(sound.CueDeath)
			s.finishRun(res.State, now)
		case dino.EventRestarted:
			s.runStart = now
			s.logger.Info("run started", "backend", s.backend, "high_score", res.State.HighScore)
		}
	}

	return res
}

// finishRun journals the run that just ended.
func (s *Session) finishRun(state core.GameState, now time.Time) {
	s.runs++
	run := storage.Run{
		Backend:  s.backend,
		Seed:     s.seed,
		Score:    state.Score,
		Ticks:    s.game.Ticks(),
		Duration: now.Sub(s.runStart),
		EndedAt:  now,
	}
	s.lastRun = &run

	s.logger.Info("run over",
		"score", run.Score,
		"high_score", state.HighScore,
		"ticks", run.Ticks,
		"duration", run.Duration.Round(time.Millisecond),
	)

	if s.journal == nil {
		return
	}
	id, err := s.journal.SaveRun(run)
	if err != nil {
		s.logger.Warn("could not journal run", "error", err)
		return
	}
	s.lastRun.ID = id
}

// Scene composes the current world without advancing it.
func (s *Session) Scene() dino.Scene {
	return s.game.Scene()
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return s.game.State()
}

// Config returns the game configuration.
func (s *Session) Config() config.DinoConfig {
	return s.game.Config()
}

// Runs returns how many runs have ended in this session.
func (s *Session) Runs() int {
	return s.runs
}

// LastRun returns the most recently finished run, or nil.
func (s *Session) LastRun() *storage.Run {
	return s.lastRun
}

// Close releases the sound player.
func (s *Session) Close() error {
	s.logger.Info("session closed", "runs", s.runs, "high_score", s.game.State().HighScore)
	return s.player.Close()
}
