package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/storage"
)

// Run table layout constants
const (
	maxRuns     = 100 // Default number of runs to load
	tableMargin = 8   // Rows kept for title, stats, help and margins
)

// RunsKeyMap defines the key bindings for the run table.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Sort key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Sort, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Sort: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "recent/top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the journaled run table.
type RunsModel struct {
	store    *storage.Store
	runs     []storage.Run
	stats    *storage.Stats
	top      bool // Ordered by score instead of recency
	limit    int
	err      error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// RunsOptions selects the initial ordering and how many runs are loaded.
type RunsOptions struct {
	Top   bool
	Limit int // Zero or less loads up to 100 runs
}

// NewRunsModel creates a run table over the journal.
func NewRunsModel(store *storage.Store, width, height int, opts RunsOptions) RunsModel {
	limit := opts.Limit
	if limit <= 0 {
		limit = maxRuns
	}

	m := RunsModel{
		store:  store,
		top:    opts.Top,
		limit:  limit,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 9},
		{Title: "Backend", Width: 8},
		{Title: "Ended", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-tableMargin)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats from the journal.
func (m *RunsModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	var err error
	if m.top {
		m.runs, err = m.store.TopRuns(m.limit)
	} else {
		m.runs, err = m.store.RecentRuns(m.limit)
	}
	if err == nil {
		m.stats, err = m.store.Stats()
	}
	m.err = err

	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Duration.Round(100 * time.Millisecond).String(),
			r.Backend,
			r.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the run table model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run table.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Sort):
			m.top = !m.top
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run table.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RECENT RUNS"
	if m.top {
		title = "TOP RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		b.WriteString(tableStyle.Render("No runs journaled yet."))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunsModel) statsLine() string {
	switch {
	case m.err != nil:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("error: " + m.err.Error())
	case m.stats == nil:
		return "No journal."
	default:
		return fmt.Sprintf("Runs: %d   Best: %d   Avg: %.1f   Ticks: %d",
			m.stats.Runs, m.stats.BestScore, m.stats.AvgScore, m.stats.TotalTicks)
	}
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// ShowRuns runs the interactive run table until the user quits.
func ShowRuns(ctx context.Context, store *storage.Store, width, height int, opts RunsOptions) error {
	p := tea.NewProgram(
		NewRunsModel(store, width, height, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: run table: %w", err)
	}
	return nil
}
