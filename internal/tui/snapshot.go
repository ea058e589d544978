package tui

import (
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/hydro/internal/graph"
	"github.com/verte-zerg/hydro/internal/model"
	"github.com/verte-zerg/hydro/internal/screen"
)

// Snapshot renders one settled frame of the screen at the given size.
func Snapshot(cfg model.Config, series graph.Series, view screen.View, width, height int, now time.Time, logger *zap.Logger) string {
	m := NewModel(cfg, series, logger)
	defer m.Close()
	m.now = func() time.Time { return now }
	m.width = width
	m.height = height
	m.help.Width = width
	if view == screen.ShowingGraph {
		m.screen.Toggle()
	}
	return m.View()
}
