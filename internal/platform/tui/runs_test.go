package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{5, 31, 12} {
		_, err := store.SaveRun(storage.Run{
			Backend:  Name,
			Score:    score,
			Ticks:    score * 100,
			Duration: time.Duration(score) * time.Second,
			EndedAt:  epoch,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{{ID: 3, Score: 7, Ticks: 420, Duration: 7040 * time.Millisecond, Backend: "tcell"}})

	want := []string{"#3", "7", "420", "7s", "tcell"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
}

func TestRunsModelView(t *testing.T) {
	m := NewRunsModel(seededStore(t), 80, 24, RunsOptions{})

	view := m.View()
	if !strings.Contains(view, "RECENT RUNS") {
		t.Error("expected the recent runs title")
	}
	if !strings.Contains(view, "Runs: 3") || !strings.Contains(view, "Best: 31") {
		t.Errorf("stats line missing:\n%s", view)
	}
	if m.runs[0].Score != 12 {
		t.Errorf("first recent run score = %d, expected 12", m.runs[0].Score)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)

	if !strings.Contains(m.View(), "TOP RUNS") {
		t.Error("tab should switch to top runs")
	}
	if m.runs[0].Score != 31 {
		t.Errorf("first top run score = %d, expected 31", m.runs[0].Score)
	}
}

func TestRunsModelOptions(t *testing.T) {
	m := NewRunsModel(seededStore(t), 80, 24, RunsOptions{Top: true, Limit: 2})

	if !strings.Contains(m.View(), "TOP RUNS") {
		t.Error("Top should open on the top runs")
	}
	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, expected 2", len(m.runs))
	}
	if m.runs[0].Score != 31 || m.runs[1].Score != 12 {
		t.Errorf("top runs = %d, %d", m.runs[0].Score, m.runs[1].Score)
	}

	// The limit survives toggling
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if len(m.runs) != 2 || m.runs[0].Score != 12 {
		t.Errorf("recent runs after toggle = %+v", m.runs)
	}
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(nil, 80, 24, RunsOptions{})

	if !strings.Contains(m.View(), "No runs journaled yet.") {
		t.Error("expected the empty message")
	}

	next, cmd := m.Update(runeKey('q'))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.(RunsModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
