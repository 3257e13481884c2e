package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/platform/cells"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/session"
	"github.com/vovakirdan/dino-runner/internal/sound"
	"github.com/vovakirdan/dino-runner/internal/sprite"
)

// Name is the registry name of this backend.
const Name = "tui"

// Backend plays the game in the terminal through Bubble Tea.
type Backend struct{}

func (Backend) Name() string        { return Name }
func (Backend) Description() string { return "Bubble Tea terminal renderer (default)" }

// Run plays until the user quits, then optionally shows the run table.
func (Backend) Run(ctx context.Context, env registry.Env) error {
	set, err := sprite.Load(cells.Source{}, env.Config)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	player, err := sound.Open(env.Sound, 0)
	if err != nil {
		env.Log().Warn("sound disabled", "error", err)
	}

	sess := session.New(env.Config, set, time.Now(), env.SessionOptions(Name, player))
	defer sess.Close()

	p := tea.NewProgram(
		NewModel(sess, env.Runtime),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	if env.ShowRuns && env.Journal != nil {
		return ShowRuns(ctx, env.Journal, env.Runtime.ScreenW, env.Runtime.ScreenH, RunsOptions{})
	}
	return nil
}

func init() {
	registry.Register(Name, func() registry.Backend { return Backend{} })
}
