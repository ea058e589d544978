package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/hydro/internal/button"
	"github.com/verte-zerg/hydro/internal/counter"
	"github.com/verte-zerg/hydro/internal/graph"
	"github.com/verte-zerg/hydro/internal/model"
	"github.com/verte-zerg/hydro/internal/screen"
)

var testNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := model.Config{
		Start:        counter.DefaultStart,
		FlipDuration: screen.DefaultFlipDuration,
		AverageLabel: model.DefaultAverageLabel,
		Palette:      model.DefaultPalette(),
	}
	m := NewModel(cfg, graph.MustSeries(graph.DefaultSamples), zaptest.NewLogger(t))
	m.now = func() time.Time { return testNow }
	t.Cleanup(m.Close)
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestKeySequenceClampsCounter(t *testing.T) {
	m := newTestModel(t)
	steps := []struct {
		key  rune
		n    int
		want int
	}{
		{'+', 3, 8},
		{'+', 1, 8},
		{'-', 8, 0},
		{'-', 1, 0},
	}
	for _, step := range steps {
		for i := 0; i < step.n; i++ {
			m.Update(runeKey(step.key))
		}
		if got := m.Counter(); got != step.want {
			t.Fatalf("after %d x %q expected %d, got %d", step.n, step.key, step.want, got)
		}
	}
}

func TestFlipKeyTogglesView(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.ShowingView() != screen.ShowingGraph {
		t.Fatalf("expected graph after first toggle")
	}
	if m.flip == nil || m.flip.Transition.Direction != screen.FlipFromRight {
		t.Fatalf("expected flip from right when showing the graph")
	}
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.ShowingView() != screen.ShowingCounter {
		t.Fatalf("expected counter after second toggle")
	}
	if m.flip.Transition.Direction != screen.FlipFromLeft {
		t.Fatalf("expected flip from left when hiding the graph")
	}
}

func TestPressWhileGraphShowingFlipsBack(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(runeKey('+'))
	if m.Counter() != 6 {
		t.Fatalf("expected counter 6, got %d", m.Counter())
	}
	if m.ShowingView() != screen.ShowingCounter {
		t.Fatalf("expected press to flip back to the counter")
	}
}

func TestMouseReleaseOnSameButtonPresses(t *testing.T) {
	m := newTestModel(t)
	hit := targetSubtract
	m.hitTest = func(tea.MouseMsg) target { return hit }

	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.pressed[button.Subtract] {
		t.Fatalf("expected subtract to show pressed while held")
	}
	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.pressed[button.Subtract] {
		t.Fatalf("expected subtract released")
	}
	if m.Counter() != 4 {
		t.Fatalf("expected counter 4, got %d", m.Counter())
	}

	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	hit = targetNone
	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.Counter() != 4 {
		t.Fatalf("release outside the button should not press, got %d", m.Counter())
	}
}

func TestMouseTapOnContainerToggles(t *testing.T) {
	m := newTestModel(t)
	m.hitTest = func(tea.MouseMsg) target { return targetContainer }
	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.ShowingView() != screen.ShowingCounter {
		t.Fatalf("press alone should not toggle")
	}
	m.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.ShowingView() != screen.ShowingGraph {
		t.Fatalf("expected tap to show the graph")
	}
}

func TestStaleReleaseIgnored(t *testing.T) {
	m := newTestModel(t)
	m.Update(runeKey('+'))
	first := m.flashSeq[button.Add]
	m.Update(runeKey('+'))
	m.Update(releaseMsg{kind: button.Add, seq: first})
	if !m.pressed[button.Add] {
		t.Fatalf("stale release should not clear a newer flash")
	}
	m.Update(releaseMsg{kind: button.Add, seq: m.flashSeq[button.Add]})
	if m.pressed[button.Add] {
		t.Fatalf("expected latest release to clear the flash")
	}
}

func TestAnimationSettles(t *testing.T) {
	m := newTestModel(t)
	clock := testNow
	m.now = func() time.Time { return clock }
	m.Update(runeKey('+'))
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.animating {
		t.Fatalf("expected animation to start")
	}
	for i := 0; i < 1000 && m.animating; i++ {
		clock = clock.Add(frameInterval)
		m.Update(animateMsg(clock))
	}
	if m.animating {
		t.Fatalf("animation did not settle")
	}
	if m.fill != float64(m.Counter()) {
		t.Fatalf("expected fill %d, got %f", m.Counter(), m.fill)
	}
	if m.flip != nil {
		t.Fatalf("expected flip cleared once done")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewShowsCounterAndHelp(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	out := m.View()
	if !containsAll(out, []string{"hydro", "of 8 glasses", "add glass", "quit"}) {
		t.Fatalf("view missing expected segments: %s", out)
	}
}

func TestSnapshotGraphShowsLabels(t *testing.T) {
	cfg := model.Config{
		Start:        3,
		FlipDuration: screen.DefaultFlipDuration,
		AverageLabel: model.DefaultAverageLabel,
		Palette:      model.DefaultPalette(),
	}
	out := Snapshot(cfg, graph.MustSeries(graph.DefaultSamples), screen.ShowingGraph, 80, 40, testNow, zaptest.NewLogger(t))
	if !containsAll(out, []string{"Water Drunk", "Average: 4", "3", "of 8 glasses"}) {
		t.Fatalf("snapshot missing expected segments: %s", out)
	}
	for _, letter := range []string{"T", "F", "S", "M", "W"} {
		if !strings.Contains(out, letter) {
			t.Fatalf("snapshot missing weekday %q", letter)
		}
	}
}

func TestUnderscoreSubtracts(t *testing.T) {
	m := newTestModel(t)
	m.Update(runeKey('_'))
	if m.Counter() != 4 {
		t.Fatalf("expected counter 4, got %d", m.Counter())
	}
}

func TestCloseStopsZones(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.View() == "" {
		t.Fatalf("expected view before close")
	}
	m.Close()
	m.Close()
	if !m.closed || m.zones.Enabled() {
		t.Fatalf("expected zones disabled after close")
	}
	if !strings.Contains(m.View(), "of 8 glasses") {
		t.Fatalf("view should still render after close")
	}
}
