package runner

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// MenuOption identifies a main menu entry.
type MenuOption int

const (
	OptionPlay MenuOption = iota
	OptionColor
	OptionDifficulty
	optionCount
)

// String returns the option name.
func (o MenuOption) String() string {
	switch o {
	case OptionPlay:
		return "Play"
	case OptionColor:
		return "Color"
	case OptionDifficulty:
		return "Difficulty"
	default:
		return fmt.Sprintf("MenuOption(%d)", int(o))
	}
}

// Menu layout in logical pixels.
const (
	menuTitle      = "Pseudo 3D Endless Runner"
	menuTitleY     = 150
	menuRuleY      = 180
	menuRuleHalf   = 200
	menuFirstY     = 250
	menuSpacing    = 50
	menuItemW      = 300
	menuItemH      = 40
	menuHighScoreY = 400
)

// Menu holds the main menu selection and the chosen color and difficulty.
type Menu struct {
	colors       []config.PlayerColor
	difficulties []config.DifficultyProfile
	width        int

	selected MenuOption
	color    int
	diff     int
}

// NewMenu creates a menu with the configured default selections.
func NewMenu(cfg config.RunnerConfig) (*Menu, error) {
	m := &Menu{
		colors:       cfg.Colors,
		difficulties: cfg.Difficulties,
		width:        cfg.Screen.Width,
	}
	var err error
	if m.color, err = cfg.ColorIndex(cfg.Defaults.Color); err != nil {
		return nil, err
	}
	if m.diff, err = cfg.ProfileIndex(cfg.Defaults.Difficulty); err != nil {
		return nil, err
	}
	return m, nil
}

// Selected returns the highlighted option.
func (m *Menu) Selected() MenuOption { return m.selected }

// Up highlights the previous option, wrapping around.
func (m *Menu) Up() {
	m.selected = (m.selected + optionCount - 1) % optionCount
}

// Down highlights the next option, wrapping around.
func (m *Menu) Down() {
	m.selected = (m.selected + 1) % optionCount
}

// Activate triggers the highlighted option. Color and Difficulty advance
// to the next entry of their list; Play reports true.
func (m *Menu) Activate() (play bool) {
	switch m.selected {
	case OptionPlay:
		return true
	case OptionColor:
		m.color = (m.color + 1) % len(m.colors)
	case OptionDifficulty:
		m.diff = (m.diff + 1) % len(m.difficulties)
	default:
		panic(fmt.Sprintf("runner: unknown menu option %d", int(m.selected)))
	}
	return false
}

// Hover highlights the option under the pointer, if any.
func (m *Menu) Hover(x, y int) bool {
	opt, ok := m.OptionAt(x, y)
	if ok {
		m.selected = opt
	}
	return ok
}

// OptionAt returns the option whose background rectangle contains (x, y).
func (m *Menu) OptionAt(x, y int) (MenuOption, bool) {
	for i, r := range m.OptionRects() {
		if r.Contains(x, y) {
			return MenuOption(i), true
		}
	}
	return 0, false
}

// OptionRects returns the clickable rectangles of the options in order.
func (m *Menu) OptionRects() []core.Rect {
	rects := make([]core.Rect, optionCount)
	for i := range rects {
		rects[i] = core.CenteredRect(m.width/2, optionY(MenuOption(i)), menuItemW, menuItemH)
	}
	return rects
}

// Color returns the chosen player color.
func (m *Menu) Color() config.PlayerColor { return m.colors[m.color] }

// Difficulty returns the chosen difficulty profile.
func (m *Menu) Difficulty() config.DifficultyProfile { return m.difficulties[m.diff] }

// SetColor selects a color by name.
func (m *Menu) SetColor(name string) error {
	for i, c := range m.colors {
		if equalName(c.Name, name) {
			m.color = i
			return nil
		}
	}
	return fmt.Errorf("runner: %w %q", config.ErrUnknownColor, name)
}

// SetDifficulty selects a difficulty by name.
func (m *Menu) SetDifficulty(name config.Difficulty) error {
	for i, d := range m.difficulties {
		if equalName(string(d.Name), string(name)) {
			m.diff = i
			return nil
		}
	}
	return fmt.Errorf("runner: %w %q", config.ErrUnknownDifficulty, string(name))
}

// Label returns the text shown for an option.
func (m *Menu) Label(o MenuOption) string {
	switch o {
	case OptionPlay:
		return "Play"
	case OptionColor:
		return "Color: " + m.Color().Name
	case OptionDifficulty:
		return "Difficulty: " + m.Difficulty().Name.String()
	default:
		return o.String()
	}
}

// Draw paints the menu screen. The high score line appears once a run
// has scored.
func (m *Menu) Draw(s core.Surface, highScoreMs int) {
	cx := m.width / 2

	s.Fill(core.ColorMenuBG)
	core.DrawTextCentered(s, cx, menuTitleY, menuTitle, core.ColorLabel)
	s.Line(core.V(float64(cx-menuRuleHalf), menuRuleY), core.V(float64(cx+menuRuleHalf), menuRuleY), 2, core.ColorMenuRule)

	for i, r := range m.OptionRects() {
		opt := MenuOption(i)
		bg, fg := core.ColorMenuItem, core.ColorLabel
		if opt == m.selected {
			bg, fg = core.ColorMenuHover, core.ColorWhite
		}
		s.FillRect(r, bg)
		core.DrawTextCentered(s, cx, optionY(opt), m.Label(opt), fg)
	}

	if highScoreMs > 0 {
		core.DrawTextCentered(s, cx, menuHighScoreY, fmt.Sprintf("High Score: %d", highScoreMs/1000), core.ColorHighScore)
	}
}

func optionY(o MenuOption) int {
	return menuFirstY + int(o)*menuSpacing
}
