// Package main provides the CLI entrypoint for hydro.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/hydro/internal/canvas"
	"github.com/verte-zerg/hydro/internal/config"
	"github.com/verte-zerg/hydro/internal/counter"
	"github.com/verte-zerg/hydro/internal/graph"
	"github.com/verte-zerg/hydro/internal/logging"
	"github.com/verte-zerg/hydro/internal/model"
	"github.com/verte-zerg/hydro/internal/screen"
	"github.com/verte-zerg/hydro/internal/tui"
)

const (
	defaultFlipMs     = int(screen.DefaultFlipDuration / time.Millisecond)
	defaultRenderCols = 80
	defaultRenderRows = 40
)

var (
	appStart    int
	appFlipMs   int
	appLogLevel string
	appLogFile  string

	renderView    string
	renderCounter int
	renderWidth   int
	renderHeight  int
	renderColor   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hydro",
		Short:         "TUI water intake counter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAppCmd,
	}

	rootCmd.Flags().IntVar(&appStart, "start", counter.DefaultStart, "initial glass count (0-8)")
	rootCmd.Flags().IntVar(&appFlipMs, "flip-ms", defaultFlipMs, "flip transition duration in milliseconds")
	rootCmd.PersistentFlags().StringVar(&appLogLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&appLogFile, "log-file", "", "log file path (default: $XDG_STATE_HOME/hydro/hydro.log)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runAppCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolveConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	logger, err := openLogger(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	series := resolveSeries(cfg, logger)
	logger.Info("starting",
		zap.Int("start", cfg.Start),
		zap.Ints("samples", series.Values()),
		zap.Duration("flip", cfg.FlipDuration),
	)

	m := tui.NewModel(cfg, series, logger)
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info("exiting", zap.Int("count", m.Counter()))
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame to stdout",
		Args:  cobra.NoArgs,
		RunE:  runRenderCmd,
	}
	cmd.Flags().StringVar(&renderView, "view", screen.ShowingCounter.String(), "view to render (counter|graph)")
	cmd.Flags().IntVar(&renderCounter, "counter", counter.DefaultStart, "glass count to draw (0-8)")
	cmd.Flags().IntVar(&renderWidth, "width", 0, "frame width in cells (default: terminal width)")
	cmd.Flags().IntVar(&renderHeight, "height", 0, "frame height in cells (default: terminal height)")
	cmd.Flags().BoolVar(&renderColor, "color", false, "force colored output")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolveConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "counter", &renderCounter, fileCfg.Counter.Start)
	if renderCounter < 0 || renderCounter > counter.Segments {
		return fmt.Errorf("--counter must be between 0 and %d", counter.Segments)
	}
	cfg.Start = renderCounter

	view, err := parseView(renderView)
	if err != nil {
		return err
	}
	logger, err := openLogger(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	width, height := canvas.TerminalSize(os.Stdout, defaultRenderCols, defaultRenderRows)
	if renderWidth > 0 {
		width = renderWidth
	}
	if renderHeight > 0 {
		height = renderHeight
	}
	out := cmd.OutOrStdout()
	switch {
	case !canvas.ShouldUseColor(out, renderColor):
		lipgloss.SetColorProfile(termenv.Ascii)
	case renderColor:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	frame := tui.Snapshot(cfg, resolveSeries(cfg, logger), view, width, height, time.Now(), logger)
	if _, err := fmt.Fprintln(out, frame); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func parseView(name string) (screen.View, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case screen.ShowingCounter.String():
		return screen.ShowingCounter, nil
	case screen.ShowingGraph.String():
		return screen.ShowingGraph, nil
	default:
		return screen.ShowingCounter, fmt.Errorf("unknown view %q (expected counter or graph)", name)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig merges file values under the flags and validates the result.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	start := appStart
	flipMs := appFlipMs
	applyIntConfig(cmd, "start", &start, fileCfg.Counter.Start)
	applyIntConfig(cmd, "flip-ms", &flipMs, fileCfg.Animation.FlipMs)

	label := model.DefaultAverageLabel
	if fileCfg.Graph.AverageLabel != nil {
		label = *fileCfg.Graph.AverageLabel
	}

	palette, err := resolvePalette(fileCfg.Colors)
	if err != nil {
		return model.Config{}, err
	}

	cfg := model.Config{
		Start:        start,
		Samples:      append([]int(nil), fileCfg.Graph.Samples...),
		FlipDuration: time.Duration(flipMs) * time.Millisecond,
		AverageLabel: label,
		Palette:      palette,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func resolvePalette(colors config.ColorConfig) (model.Palette, error) {
	palette := model.DefaultPalette()
	entries := []struct {
		key    string
		value  *string
		target *colorful.Color
	}{
		{"colors.outline", colors.Outline, &palette.Outline},
		{"colors.counter", colors.Counter, &palette.Counter},
		{"colors.graph-start", colors.GraphStart, &palette.GraphStart},
		{"colors.graph-end", colors.GraphEnd, &palette.GraphEnd},
		{"colors.button", colors.Button, &palette.Button},
	}
	for _, e := range entries {
		if e.value == nil {
			continue
		}
		c, err := model.ParseColor(*e.value)
		if err != nil {
			return model.Palette{}, fmt.Errorf("%s: %w", e.key, err)
		}
		*e.target = c
	}
	return palette, nil
}

// resolveSeries validates the configured samples, falling back to the
// built-in week when they cannot be drawn.
func resolveSeries(cfg model.Config, logger *zap.Logger) graph.Series {
	if len(cfg.Samples) == 0 {
		return graph.MustSeries(graph.DefaultSamples)
	}
	s, err := graph.NewSeries(cfg.Samples)
	if err != nil {
		logger.Warn("invalid graph samples, using defaults",
			zap.Ints("samples", cfg.Samples),
			zap.Error(err),
		)
		logErrf("ignoring graph samples: %v\n", err)
		return graph.MustSeries(graph.DefaultSamples)
	}
	return s
}

func openLogger(cmd *cobra.Command, fileCfg config.FileConfig) (*zap.Logger, error) {
	level := appLogLevel
	path := appLogFile
	applyStringConfig(cmd, "log-level", &level, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &path, fileCfg.Log.Path)
	if path == "" {
		path = config.DefaultLogPath()
	}
	logger, err := logging.New(path, level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hydro configuration
# Uncomment a value to enable it. CLI flags override config values.

[counter]
# start = %d                  # Initial glass count (0-%d)

[graph]
# samples = %s  # Weekly values, oldest first (at least 2)
# average-label = %q     # Text shown before the average

[colors]
# outline = %q          # Gauge outline and markers
# counter = %q          # Gauge track
# graph-start = %q      # Graph gradient top
# graph-end = %q        # Graph gradient bottom
# button = %q           # Button fill

[animation]
# flip-ms = %d                # Flip transition duration

[log]
# level = %q               # debug, info, warn, error
# path = ""                   # Defaults to $XDG_STATE_HOME/hydro/hydro.log
`,
		counter.DefaultStart,
		counter.Segments,
		formatSamples(graph.DefaultSamples),
		model.DefaultAverageLabel,
		model.DefaultOutlineHex,
		model.DefaultCounterHex,
		model.DefaultGraphStartHex,
		model.DefaultGraphEndHex,
		model.DefaultButtonHex,
		defaultFlipMs,
		logging.DefaultLevel,
	)
}

func formatSamples(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func validateConfig(cfg model.Config) error {
	if cfg.Start < 0 || cfg.Start > counter.Segments {
		return fmt.Errorf("--start must be between 0 and %d", counter.Segments)
	}
	if cfg.FlipDuration <= 0 {
		return fmt.Errorf("--flip-ms must be > 0")
	}
	if cfg.AverageLabel == "" {
		return fmt.Errorf("graph.average-label must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
