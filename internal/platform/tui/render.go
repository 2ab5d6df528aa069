package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Painter converts a Screen buffer to styled terminal output.
// Styles are cached per foreground/background pair; the renderer decides
// how truecolor values degrade on the target terminal.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for the given renderer. A nil renderer
// uses the default one bound to stdout.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (p *Painter) style(key colorPair) lipgloss.Style {
	if st, ok := p.styles[key]; ok {
		return st
	}
	st := p.renderer.NewStyle().
		Foreground(lipgloss.Color(key.fg.Hex())).
		Background(lipgloss.Color(key.bg.Hex()))
	p.styles[key] = st
	return st
}

// Paint renders the screen. Adjacent cells with the same colors are
// grouped to minimize ANSI escape sequences.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			key := colorPair{fg: start.Fg, bg: start.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					// Blank cells only show their background
					if cell.Rune != ' ' || cell.Bg != key.bg {
						break
					}
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
