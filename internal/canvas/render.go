package canvas

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// Render returns the canvas as newline separated rows. Without color only the
// braille dots are emitted.
func (c *Canvas) Render(useColor bool) string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		if useColor {
			lines[y] = c.renderColorRow(y)
		} else {
			lines[y] = c.renderPlainRow(y)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) renderPlainRow(y int) string {
	var row strings.Builder
	for x := 0; x < c.cols; x++ {
		row.WriteRune(cellRune(c.cells[y][x]))
	}
	return row.String()
}

func (c *Canvas) renderColorRow(y int) string {
	var row strings.Builder
	var run strings.Builder
	var runStyle lipgloss.Style
	var runKey string
	flush := func() {
		if run.Len() == 0 {
			return
		}
		row.WriteString(runStyle.Render(run.String()))
		run.Reset()
	}
	for x := 0; x < c.cols; x++ {
		fg, hasFg := c.Foreground(x, y)
		bg, hasBg := c.Background(x, y)
		key := styleKey(fg, hasFg, bg, hasBg)
		if key != runKey {
			flush()
			runKey = key
			runStyle = cellStyle(fg, hasFg, bg, hasBg)
		}
		run.WriteRune(cellRune(c.cells[y][x]))
	}
	flush()
	return row.String()
}

func cellRune(ce cell) rune {
	if ce.mask == 0 {
		return ' '
	}
	return brailleFromMask(ce.mask)
}

func styleKey(fg colorful.Color, hasFg bool, bg colorful.Color, hasBg bool) string {
	var b strings.Builder
	if hasFg {
		b.WriteString(fg.Hex())
	}
	b.WriteByte('/')
	if hasBg {
		b.WriteString(bg.Hex())
	}
	return b.String()
}

func cellStyle(fg colorful.Color, hasFg bool, bg colorful.Color, hasBg bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if hasFg {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	if hasBg {
		style = style.Background(lipgloss.Color(bg.Hex()))
	}
	return style
}

// ShouldUseColor reports whether output to w should carry color codes.
// NO_COLOR always wins; force enables color for non-terminal writers.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// TerminalSize returns the size of the terminal attached to f, or the fallback.
func TerminalSize(f *os.File, fallbackCols, fallbackRows int) (int, int) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// Gradient returns a vertical color ramp from top (at y0) to bottom (at y1).
func Gradient(top, bottom colorful.Color, y0, y1 float64) func(y float64) colorful.Color {
	return func(y float64) colorful.Color {
		if y1 <= y0 {
			return top
		}
		t := (y - y0) / (y1 - y0)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		return top.BlendRgb(bottom, t).Clamped()
	}
}

// Translucent returns fg laid over bg at the given alpha.
func Translucent(fg, bg colorful.Color, alpha float64) colorful.Color {
	return bg.BlendRgb(fg, alpha).Clamped()
}
