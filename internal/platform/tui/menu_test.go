package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func init() {
	registry.Register("fake", "Fake", func() registry.Game { return &fakeGame{} })
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sendMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelectsMode(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.GameID != "fake" {
		t.Errorf("GameID = %q, want fake", res.GameID)
	}
	if res.Quit || res.WantsScoreboard {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if got := m.Difficulty(true); got != "default" {
		t.Errorf("initial label = %q, want default", got)
	}
	if got := m.Difficulty(false); got != "" {
		t.Errorf("initial preset = %q, want empty", got)
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Difficulty(false); got != "easy" {
		t.Errorf("after right = %q, want easy", got)
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Difficulty(false); got != "fixed" {
		t.Errorf("left should wrap to the last preset, got %q", got)
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Result().Difficulty; got != "fixed" {
		t.Errorf("Result().Difficulty = %q, want fixed", got)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = sendMenu(NewMenuModel(nil, core.DefaultConfig()), keyMsg("q"))
	if !m.IsQuitting() || !m.Result().Quit {
		t.Error("q should quit the menu")
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := sendMenu(NewMenuModel(nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 40, Height: 20})
	cfg := m.Config()
	if cfg.ScreenW != 40 || cfg.ScreenH != 20 {
		t.Errorf("Config() size = %dx%d, want 40x20", cfg.ScreenW, cfg.ScreenH)
	}
	if !cfg.Constrained {
		t.Error("a 40 column terminal should be constrained")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{40, 120} {
		if _, err := store.SaveScore("fake", score); err != nil {
			t.Fatal(err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig())
	if len(m.items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(m.items))
	}
	if m.items[0].HighScore != 120 || m.items[0].Runs != 2 {
		t.Errorf("item = %+v, want best 120 over 2 runs", m.items[0])
	}
	if !strings.Contains(m.View(), "best 120") {
		t.Error("View() should show the best score")
	}
}
