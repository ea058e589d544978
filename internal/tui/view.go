package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hydro/internal/button"
	"github.com/verte-zerg/hydro/internal/canvas"
	"github.com/verte-zerg/hydro/internal/counter"
	"github.com/verte-zerg/hydro/internal/days"
	"github.com/verte-zerg/hydro/internal/screen"
	"github.com/verte-zerg/hydro/internal/widget"
)

const (
	fallbackWidth   = 60
	fallbackHeight  = 30
	maxPaneCols     = 64
	maxPaneRows     = 22
	minPaneCols     = 16
	minPaneRows     = 6
	buttonCols      = 10
	buttonRows      = 5
	chromeRows      = 11
	graphLabelRows  = 3
	graphTitle      = "Water Drunk"
	counterUnitText = "of %d glasses"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	paneStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	graphText    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	buttonMargin = lipgloss.NewStyle().Padding(0, 2)
)

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	cols, rows := paneSize(width, height)

	pane := m.zones.Mark(zoneContainer, paneStyle.Render(m.renderPane(cols, rows)))
	sections := []string{
		titleStyle.Render("hydro"),
		pane,
		m.renderCounterLabel(),
		m.renderButtons(),
		footerStyle.Render(m.help.View(m.keys)),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	frame := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	if m.closed {
		return frame
	}
	return m.zones.Scan(frame)
}

func paneSize(width, height int) (int, int) {
	cols := width - 4
	if cols > maxPaneCols {
		cols = maxPaneCols
	}
	if cols < minPaneCols {
		cols = minPaneCols
	}
	rows := height - chromeRows
	if rows > maxPaneRows {
		rows = maxPaneRows
	}
	if rows < minPaneRows {
		rows = minPaneRows
	}
	return cols, rows
}

// renderPane draws the face of the container, squeezed while a flip runs.
func (m *Model) renderPane(cols, rows int) string {
	frame := screen.Frame{View: m.screen.View(), Scale: 1}
	if m.flip != nil {
		frame = m.flip.FrameAt(m.now())
	}
	if frame.View == screen.ShowingGraph {
		return m.renderGraph(cols, rows, frame)
	}
	return m.renderCounter(cols, rows, frame)
}

func (m *Model) renderCounter(cols, rows int, frame screen.Frame) string {
	c := canvas.New(cols, rows)
	if frame.Scale < 1 {
		c.SetTransform(c.SqueezeX(frame.Scale, frame.Pivot))
	}
	widget.DrawCounter(c, m.fill, counter.Segments, m.config.Palette)
	return c.Render(true)
}

func (m *Model) renderGraph(cols, rows int, frame screen.Frame) string {
	chartRows := rows - graphLabelRows
	if chartRows < 1 {
		chartRows = 1
	}
	c := canvas.New(cols, chartRows)
	if frame.Scale < 1 {
		c.SetTransform(c.SqueezeX(frame.Scale, frame.Pivot))
	}
	g := widget.DrawGraph(c, m.series, m.config.Palette)
	chart := c.Render(true)

	blank := strings.Repeat(" ", cols)
	if frame.Scale < 1 {
		return strings.Join([]string{blank, blank, chart, blank}, "\n")
	}
	title := lipgloss.PlaceHorizontal(cols, lipgloss.Left, graphText.Render(" "+graphTitle))
	avg := lipgloss.PlaceHorizontal(cols, lipgloss.Left, mutedStyle.Render(" "+m.series.AverageLabel(m.config.AverageLabel)))
	strip := graphText.Render(widget.DayStrip(g, days.Labels(m.now(), days.Week), cols))
	return strings.Join([]string{title, avg, chart, strip}, "\n")
}

func (m *Model) renderCounterLabel() string {
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		countStyle.Render(m.counter.String()),
		" ",
		mutedStyle.Render(fmt.Sprintf(counterUnitText, m.counter.Max())),
	)
}

func (m *Model) renderButtons() string {
	sub := m.renderButton(button.Subtract)
	add := m.renderButton(button.Add)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		buttonMargin.Render(m.zones.Mark(zoneSubtract, sub)),
		buttonMargin.Render(m.zones.Mark(zoneAdd, add)),
	)
}

func (m *Model) renderButton(kind button.Kind) string {
	c := canvas.New(buttonCols, buttonRows)
	widget.DrawButton(c, button.Button{
		Kind:    kind,
		Fill:    m.config.Palette.Button,
		Pressed: m.pressed[kind],
	})
	return c.Render(true)
}
