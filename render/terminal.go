package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/led-swarm/core"
)

// halfBlock draws the upper LED as foreground and the lower LED as background
const halfBlock = '▀'

// TerminalDisplay emulates the LED matrix in a terminal, two LED rows per text row
// An optional status line is drawn below the matrix
type TerminalDisplay struct {
	screen        tcell.Screen
	width, height int
	pixels        []core.RGB
	status        func() string
	owned         bool
}

// NewTerminalDisplay renders onto an existing screen; the caller owns its lifecycle
func NewTerminalDisplay(screen tcell.Screen, w, h int) *TerminalDisplay {
	return &TerminalDisplay{
		screen: screen,
		width:  w,
		height: h,
		pixels: make([]core.RGB, w*h),
	}
}

// OpenTerminalDisplay creates and initializes a screen on the controlling terminal
func OpenTerminalDisplay(w, h int) (*TerminalDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplayInit, err)
	}
	d := NewTerminalDisplay(screen, w, h)
	d.owned = true
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init initializes the underlying screen
func (d *TerminalDisplay) Init() error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayInit, err)
	}
	d.screen.HideCursor()
	d.screen.Clear()
	return nil
}

// Fini restores the terminal if this display created the screen
func (d *TerminalDisplay) Fini() {
	if d.owned {
		d.screen.Fini()
	}
}

// Screen exposes the screen for event polling
func (d *TerminalDisplay) Screen() tcell.Screen {
	return d.screen
}

// SetStatus installs a callback producing the line drawn under the matrix
func (d *TerminalDisplay) SetStatus(fn func() string) {
	d.status = fn
}

func (d *TerminalDisplay) Clear() {
	clear(d.pixels)
}

func (d *TerminalDisplay) SetPixel(x, y int, c core.RGB) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.pixels[y*d.width+x] = c
}

func (d *TerminalDisplay) Size() (int, int) {
	return d.width, d.height
}

// Rows returns how many text rows the matrix occupies
func (d *TerminalDisplay) Rows() int {
	return (d.height + 1) / 2
}

// Present draws the buffered frame and shows it
// Odd heights leave the last lower half black
func (d *TerminalDisplay) Present() error {
	sw, sh := d.screen.Size()

	for row := 0; row < d.Rows() && row < sh; row++ {
		for x := 0; x < d.width && x < sw; x++ {
			top := d.pixels[2*row*d.width+x]
			bottom := core.RGBBlack
			if 2*row+1 < d.height {
				bottom = d.pixels[(2*row+1)*d.width+x]
			}
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			d.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}

	if d.status != nil && d.Rows() < sh {
		d.drawText(0, d.Rows(), d.status(), sw)
	}

	d.screen.Show()
	return nil
}

func (d *TerminalDisplay) drawText(x, y int, text string, maxW int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	col := x
	for _, r := range text {
		if col >= maxW {
			break
		}
		d.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < maxW; col++ {
		d.screen.SetContent(col, y, ' ', nil, tcell.StyleDefault)
	}
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
