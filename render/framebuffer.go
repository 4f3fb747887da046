package render

import "github.com/lixenwraith/led-swarm/core"

// FrameBuffer is an in-memory display with a back buffer and a presented front buffer
type FrameBuffer struct {
	width, height int
	back          []core.RGB
	front         []core.RGB
	presents      int
}

// NewFrameBuffer creates a w×h framebuffer, all black
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		width:  w,
		height: h,
		back:   make([]core.RGB, w*h),
		front:  make([]core.RGB, w*h),
	}
}

func (f *FrameBuffer) Clear() {
	clear(f.back)
}

func (f *FrameBuffer) SetPixel(x, y int, c core.RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.back[y*f.width+x] = c
}

func (f *FrameBuffer) Present() error {
	copy(f.front, f.back)
	f.presents++
	return nil
}

func (f *FrameBuffer) Size() (int, int) {
	return f.width, f.height
}

// At returns the presented color at (x, y), black when out of range
func (f *FrameBuffer) At(x, y int) core.RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return core.RGBBlack
	}
	return f.front[y*f.width+x]
}

// Lit returns the number of non-black presented pixels
func (f *FrameBuffer) Lit() int {
	n := 0
	for _, c := range f.front {
		if c != core.RGBBlack {
			n++
		}
	}
	return n
}

// Presents returns how many frames have been presented
func (f *FrameBuffer) Presents() int {
	return f.presents
}
