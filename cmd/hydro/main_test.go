package main

import (
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/hydro/internal/config"
	"github.com/verte-zerg/hydro/internal/graph"
	"github.com/verte-zerg/hydro/internal/model"
	"github.com/verte-zerg/hydro/internal/screen"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func uncomment(tmpl string) string {
	lines := strings.Split(tmpl, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			lines[i] = strings.TrimPrefix(line, "# ")
		}
	}
	return strings.Join(lines, "\n")
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	meta, err := toml.Decode(uncomment(defaultConfigTemplate()), &cfg)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if len(meta.Undecoded()) != 0 {
		t.Fatalf("template has unknown keys: %v", meta.Undecoded())
	}
	if cfg.Counter.Start == nil || *cfg.Counter.Start != 5 {
		t.Fatalf("expected start 5, got %v", cfg.Counter.Start)
	}
	if len(cfg.Graph.Samples) != len(graph.DefaultSamples) {
		t.Fatalf("expected default samples, got %v", cfg.Graph.Samples)
	}
	if cfg.Colors.Button == nil || *cfg.Colors.Button != model.DefaultButtonHex {
		t.Fatalf("expected default button color")
	}
	if cfg.Animation.FlipMs == nil || *cfg.Animation.FlipMs != 700 {
		t.Fatalf("expected flip-ms 700")
	}
}

func TestResolveConfigFlagOverridesFile(t *testing.T) {
	fileCfg := config.FileConfig{
		Counter:   config.CounterConfig{Start: intPtr(7)},
		Animation: config.AnimationConfig{FlipMs: intPtr(300)},
	}

	cmd := newRootCmd()
	cfg, err := resolveConfig(cmd, fileCfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Start != 7 || cfg.FlipDuration != 300*time.Millisecond {
		t.Fatalf("expected file values, got start %d flip %s", cfg.Start, cfg.FlipDuration)
	}

	cmd = newRootCmd()
	if err := cmd.Flags().Set("start", "2"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg, err = resolveConfig(cmd, fileCfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Start != 2 {
		t.Fatalf("expected flag to win, got %d", cfg.Start)
	}
}

func TestResolveConfigColors(t *testing.T) {
	cmd := newRootCmd()
	cfg, err := resolveConfig(cmd, config.FileConfig{
		Colors: config.ColorConfig{Outline: strPtr("#000000")},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Palette.Outline.Hex() != "#000000" {
		t.Fatalf("expected outline override, got %s", cfg.Palette.Outline.Hex())
	}
	if cfg.Palette.Button != model.DefaultPalette().Button {
		t.Fatalf("unset colors should keep defaults")
	}

	_, err = resolveConfig(newRootCmd(), config.FileConfig{
		Colors: config.ColorConfig{Counter: strPtr("orange")},
	})
	if err == nil || !strings.Contains(err.Error(), "colors.counter") {
		t.Fatalf("expected color error naming the key, got %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	base := model.Config{
		Start:        5,
		FlipDuration: screen.DefaultFlipDuration,
		AverageLabel: model.DefaultAverageLabel,
	}
	tests := []struct {
		name    string
		mutate  func(*model.Config)
		wantErr bool
	}{
		{"valid", func(*model.Config) {}, false},
		{"negative start", func(c *model.Config) { c.Start = -1 }, true},
		{"start above max", func(c *model.Config) { c.Start = 9 }, true},
		{"zero flip", func(c *model.Config) { c.FlipDuration = 0 }, true},
		{"empty label", func(c *model.Config) { c.AverageLabel = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := validateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveSeriesFallsBack(t *testing.T) {
	logger := zaptest.NewLogger(t)
	s := resolveSeries(model.Config{Samples: []int{0, 0, 0}}, logger)
	if s.Max() != 8 || s.Len() != len(graph.DefaultSamples) {
		t.Fatalf("expected default series on zero peak, got %v", s.Values())
	}
	s = resolveSeries(model.Config{Samples: []int{1, 3}}, logger)
	if s.Len() != 2 || s.Max() != 3 {
		t.Fatalf("expected configured series, got %v", s.Values())
	}
}

func TestParseView(t *testing.T) {
	if v, err := parseView("Graph"); err != nil || v != screen.ShowingGraph {
		t.Fatalf("expected graph view, got %v %v", v, err)
	}
	if _, err := parseView("table"); err == nil {
		t.Fatalf("expected error for unknown view")
	}
}
