package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := runner.New(config.DefaultRunnerConfig(), runner.WithSeed(1))
	if err != nil {
		t.Fatalf("runner.New() failed: %v", err)
	}
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.Ascii)
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, r)
}

// send feeds a message to the model and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	m, cmd := send(t, m, TickMsg(at))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return m
}

func TestModelStartsGameFromMenu(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init() should start the tick loop")
	}

	now := time.Now()
	m = tick(t, m, now)
	if m.State().Phase != core.PhaseMenu {
		t.Fatalf("Phase = %s, expected menu", m.State().Phase)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, now.Add(16*time.Millisecond))
	if m.State().Phase != core.PhasePlaying {
		t.Fatalf("Phase = %s after enter, expected playing", m.State().Phase)
	}

	// Score follows wall time between ticks
	m = tick(t, m, now.Add(116*time.Millisecond))
	if m.State().Score != 100 {
		t.Errorf("Score = %d, expected 100", m.State().Score)
	}
}

func TestModelKeyEdgesOncePerPress(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, now)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, now.Add(16*time.Millisecond))
	if lane := m.game.Player().Lane(); lane != 0 {
		t.Fatalf("Lane() = %d after left, expected 0", lane)
	}

	// No key in the next tick, then another press
	m = tick(t, m, now.Add(32*time.Millisecond))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, now.Add(48*time.Millisecond))
	if lane := m.game.Player().Lane(); lane != 1 {
		t.Errorf("Lane() = %d after right, expected 1", lane)
	}
}

func TestModelPressesOnConsecutiveTicks(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, now)

	// Left, right, right with a press landing in every tick
	for i, k := range []tea.KeyType{tea.KeyLeft, tea.KeyRight, tea.KeyRight} {
		m, _ = send(t, m, tea.KeyMsg{Type: k})
		m = tick(t, m, now.Add(time.Duration(i+1)*16*time.Millisecond))
	}
	if lane := m.game.Player().Lane(); lane != 2 {
		t.Errorf("Lane() = %d after left, right, right, expected 2", lane)
	}
}

func TestModelMenuTapsOnConsecutiveTicks(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m, now)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m, now.Add(16*time.Millisecond))

	if got := m.game.Menu().Selected(); got != runner.OptionDifficulty {
		t.Errorf("Selected() = %s after two taps, expected %s", got, runner.OptionDifficulty)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelMouseClick(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	// 80x24 cells for 800x600: Play sits at y 230..270, row 9 or 10
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, now)
	if m.State().Phase != core.PhasePlaying {
		t.Errorf("Phase = %s after clicking Play, expected playing", m.State().Phase)
	}
}

func TestModelResizeAndView(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "Pseudo 3D Endless Runner") {
		t.Error("menu view should contain the title")
	}
	if !strings.Contains(view, "enter") {
		t.Error("view should contain the help footer")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if m.screen.Height() >= 30 {
		t.Errorf("expanded help should shrink the screen, height %d", m.screen.Height())
	}
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want int
	}{
		{"first tick", time.Time{}, now, 16},
		{"regular", now, now.Add(17 * time.Millisecond), 17},
		{"clock went back", now, now.Add(-time.Second), 16},
		{"stall", now, now.Add(5 * time.Second), 250},
	}
	for _, tt := range tests {
		if got := frameDelta(tt.prev, tt.now, 60); got != tt.want {
			t.Errorf("%s: frameDelta() = %d, expected %d", tt.name, got, tt.want)
		}
	}
}
