package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/randomwalk/core"
)

// Screen renders into a tcell screen. Cells persist until overwritten, so
// each particle leaves a colored trail as it walks, matching the raw
// escape renderer.
type Screen struct {
	screen tcell.Screen
}

// NewScreen initializes the terminal for rendering.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Screen{screen: screen}, nil
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Draw(c core.Coordinate, color core.RGB) {
	style := tcell.StyleDefault.Background(
		tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
	s.screen.SetContent(int(c.X), int(c.Y), ' ', nil, style)
}

func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Screen) Fini() {
	s.screen.Fini()
}
