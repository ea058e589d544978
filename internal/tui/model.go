// Package tui provides the Bubble Tea water counter interface.
package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/verte-zerg/hydro/internal/button"
	"github.com/verte-zerg/hydro/internal/counter"
	"github.com/verte-zerg/hydro/internal/graph"
	"github.com/verte-zerg/hydro/internal/model"
	"github.com/verte-zerg/hydro/internal/screen"
)

const (
	frameInterval = 16 * time.Millisecond
	flashDuration = 150 * time.Millisecond
	settleEpsilon = 0.005
)

const (
	zoneAdd       = "hydro-add"
	zoneSubtract  = "hydro-subtract"
	zoneContainer = "hydro-container"
)

// target is what a mouse event landed on.
type target int

const (
	targetNone target = iota
	targetAdd
	targetSubtract
	targetContainer
)

type animateMsg time.Time

type releaseMsg struct {
	kind button.Kind
	seq  int
}

// Model implements the Bubble Tea counter and graph screen.
type Model struct {
	config model.Config
	logger *zap.Logger
	now    func() time.Time

	counter *counter.Counter
	series  graph.Series
	screen  screen.State
	flip    *screen.Flip

	spring    harmonica.Spring
	fill      float64
	fillSpeed float64
	animating bool

	pressed   map[button.Kind]bool
	flashSeq  map[button.Kind]int
	mouseDown target

	zones    *zone.Manager
	closed   bool
	hitTest  func(tea.MouseMsg) target
	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int
}

// NewModel constructs the screen model.
func NewModel(cfg model.Config, series graph.Series, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := counter.New(cfg.Start, counter.Segments)
	m := &Model{
		config:   cfg,
		logger:   logger,
		now:      time.Now,
		counter:  c,
		series:   series,
		screen:   screen.New(cfg.FlipDuration),
		spring:   harmonica.NewSpring(harmonica.FPS(60), 7.0, 1.0),
		fill:     float64(c.Value()),
		pressed:  map[button.Kind]bool{},
		flashSeq: map[button.Kind]int{},
		zones:    zone.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.hitTest = m.zoneHit
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case animateMsg:
		return m.handleAnimateMsg(time.Time(msg))
	case releaseMsg:
		if m.flashSeq[msg.kind] == msg.seq {
			m.pressed[msg.kind] = false
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m, tea.Batch(m.flash(button.Add), m.press(button.Add))
	case key.Matches(msg, m.keys.Subtract):
		return m, tea.Batch(m.flash(button.Subtract), m.press(button.Subtract))
	case key.Matches(msg, m.keys.Flip):
		return m, m.toggle("key")
	default:
		return m, nil
	}
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	hit := m.hitTest(msg)
	switch msg.Action {
	case tea.MouseActionPress:
		m.mouseDown = hit
		if kind, ok := buttonFor(hit); ok {
			m.pressed[kind] = true
		}
		return m, nil
	case tea.MouseActionRelease:
		down := m.mouseDown
		m.mouseDown = targetNone
		if kind, ok := buttonFor(down); ok {
			m.pressed[kind] = false
			if hit == down {
				return m, m.press(kind)
			}
			return m, nil
		}
		if down == targetContainer && hit == targetContainer {
			return m, m.toggle("tap")
		}
		return m, nil
	default:
		return m, nil
	}
}

func buttonFor(t target) (button.Kind, bool) {
	switch t {
	case targetAdd:
		return button.Add, true
	case targetSubtract:
		return button.Subtract, true
	default:
		return 0, false
	}
}

func (m *Model) zoneHit(msg tea.MouseMsg) target {
	for id, t := range map[string]target{
		zoneAdd:       targetAdd,
		zoneSubtract:  targetSubtract,
		zoneContainer: targetContainer,
	} {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return t
		}
	}
	return targetNone
}

// press applies a button press to the counter. A press while the graph is
// showing also flips back to the counter.
func (m *Model) press(kind button.Kind) tea.Cmd {
	before := m.counter.Value()
	var changed bool
	if kind == button.Add {
		changed = m.counter.Increment()
	} else {
		changed = m.counter.Decrement()
	}
	if changed {
		m.logger.Info("counter changed",
			zap.String("button", kind.String()),
			zap.Int("from", before),
			zap.Int("to", m.counter.Value()),
		)
	} else {
		m.logger.Debug("counter clamped",
			zap.String("button", kind.String()),
			zap.Int("value", before),
		)
	}
	cmds := []tea.Cmd{m.startAnimation()}
	if m.screen.GraphShowing() {
		cmds = append(cmds, m.toggle("press"))
	}
	return tea.Batch(cmds...)
}

// toggle flips the visible view. A flip already running is replaced by the new one.
func (m *Model) toggle(source string) tea.Cmd {
	t := m.screen.Toggle()
	if m.flip != nil && !m.flip.Done(m.now()) {
		m.logger.Debug("flip restarted", zap.String("source", source))
	}
	m.flip = screen.NewFlip(t, m.now())
	m.logger.Info("view toggled",
		zap.String("source", source),
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To),
		zap.Stringer("direction", t.Direction),
		zap.Duration("duration", t.Duration),
	)
	return m.startAnimation()
}

func (m *Model) flash(kind button.Kind) tea.Cmd {
	m.flashSeq[kind]++
	seq := m.flashSeq[kind]
	m.pressed[kind] = true
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return releaseMsg{kind: kind, seq: seq}
	})
}

func (m *Model) startAnimation() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return animateCmd()
}

func animateCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return animateMsg(t)
	})
}

func (m *Model) handleAnimateMsg(time.Time) (tea.Model, tea.Cmd) {
	goal := float64(m.counter.Value())
	m.fill, m.fillSpeed = m.spring.Update(m.fill, m.fillSpeed, goal)
	fillSettled := math.Abs(m.fill-goal) < settleEpsilon && math.Abs(m.fillSpeed) < settleEpsilon
	if fillSettled {
		m.fill = goal
		m.fillSpeed = 0
	}
	if m.flip != nil && m.flip.Done(m.now()) {
		m.flip = nil
	}
	if fillSettled && m.flip == nil {
		m.animating = false
		return m, nil
	}
	return m, animateCmd()
}

// Close stops the mouse zone worker. It is safe to call more than once, and
// View keeps working afterwards without zone markers.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.zones.SetEnabled(false)
	m.zones.Close()
}

// Counter returns the current glass count.
func (m *Model) Counter() int {
	return m.counter.Value()
}

// ShowingView returns the widget currently in the container.
func (m *Model) ShowingView() screen.View {
	return m.screen.View()
}
