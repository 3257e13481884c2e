package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/window"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/session"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagBackend  string
	flagSeed     int64
	flagAssets   string
	flagSound    bool
	flagShowRuns bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game on the chosen backend.

Controls:
  Space/Up/W  - Jump
  R           - Restart (after game over)
  Q/Esc       - Quit

Backends:
  tui     - Bubble Tea in the terminal (default)
  tcell   - raw tcell terminal screen
  window  - desktop window; --assets points at PNG sprites

Examples:
  dino play
  dino play --backend tcell --seed 42
  dino play --backend window --assets ./assets --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Renderer: tui, tcell, window")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory for the window backend (empty = placeholders)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().BoolVar(&flagShowRuns, "show-runs", false, "Show the run table after quitting (tui)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (run 'dino backends' to list them)", flagBackend)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger(flagBackend)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Terminal size is a hint; backends adapt on resize
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagJournal)
	if err != nil {
		logger.Warn("journal unavailable, runs will not be recorded", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	env := registry.Env{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     seed,
		},
		Assets:   flagAssets,
		Sound:    flagSound,
		ShowRuns: flagShowRuns,
		Journal:  store,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", backend.Name(), "seed", seed)
	if err := backend.Run(ctx, env); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playLogger picks the log destination. Terminal backends own the screen,
// so they log to a file; the window backend logs to stderr.
func playLogger(backend string) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	if backend == window.Name {
		return session.NewLogger(os.Stderr, level), func() {}, nil
	}
	if flagLog == "" {
		return session.NewLogger(io.Discard, level), func() {}, nil
	}

	f, err := session.OpenLog(flagLog)
	if err != nil {
		return nil, nil, err
	}
	return session.NewLogger(f, level), func() { f.Close() }, nil
}
