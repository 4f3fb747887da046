package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"time"

	"github.com/lixenwraith/led-swarm/core"
)

// GIFRecorder captures presented frames into an animated GIF
// Each LED is drawn as a scale×scale square; only every Nth present is kept
type GIFRecorder struct {
	width, height int
	scale         int
	every         int
	delay         int // hundredths of a second per kept frame

	pixels  []core.RGB
	seen    int
	pending bool // last present fell between strides
	anim    gif.GIF
}

// NewGIFRecorder creates a recorder for a w×h matrix presented every tick
func NewGIFRecorder(w, h, scale, every int, tick time.Duration) *GIFRecorder {
	scale = max(scale, 1)
	every = max(every, 1)
	return &GIFRecorder{
		width:  w,
		height: h,
		scale:  scale,
		every:  every,
		delay:  max(int(tick*time.Duration(every)/(10*time.Millisecond)), 1),
		pixels: make([]core.RGB, w*h),
		anim:   gif.GIF{LoopCount: 0},
	}
}

func (g *GIFRecorder) Clear() {
	clear(g.pixels)
}

func (g *GIFRecorder) SetPixel(x, y int, c core.RGB) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.pixels[y*g.width+x] = c
}

func (g *GIFRecorder) Size() (int, int) {
	return g.width, g.height
}

// Present keeps the frame if it falls on the capture stride
func (g *GIFRecorder) Present() error {
	g.seen++
	if (g.seen-1)%g.every != 0 {
		g.pending = true
		return nil
	}
	g.appendFrame()
	return nil
}

// Flush keeps the last presented frame if the stride skipped it
func (g *GIFRecorder) Flush() {
	if g.pending {
		g.appendFrame()
	}
}

// Frames returns the number of captured frames
func (g *GIFRecorder) Frames() int {
	return len(g.anim.Image)
}

func (g *GIFRecorder) appendFrame() {
	img := image.NewPaletted(image.Rect(0, 0, g.width*g.scale, g.height*g.scale), palette.Plan9)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.pixels[y*g.width+x]
			if c == core.RGBBlack {
				continue
			}
			r := image.Rect(x*g.scale, y*g.scale, (x+1)*g.scale, (y+1)*g.scale)
			draw.Draw(img, r, &image.Uniform{C: color.RGBA{c.R, c.G, c.B, 255}}, image.Point{}, draw.Src)
		}
	}
	g.pending = false
	g.anim.Image = append(g.anim.Image, img)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

// Save encodes the animation to path
func (g *GIFRecorder) Save(path string) error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("save gif %s: no frames captured", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save gif: %w", err)
	}
	if err := gif.EncodeAll(f, &g.anim); err != nil {
		f.Close()
		return fmt.Errorf("encode gif %s: %w", path, err)
	}
	return f.Close()
}
