package render

import (
	"errors"

	"github.com/lixenwraith/led-swarm/core"
)

// ErrDisplayInit wraps any failure to bring up a display backend
var ErrDisplayInit = errors.New("display init failed")

// Display is the LED matrix collaborator
// Pixels outside Size are ignored; Present publishes the frame atomically
type Display interface {
	Clear()
	SetPixel(x, y int, c core.RGB)
	Present() error
	Size() (w, h int)
}

// Tee fans every call out to several displays
// Size reports the first display's dimensions
type Tee []Display

func (t Tee) Clear() {
	for _, d := range t {
		d.Clear()
	}
}

func (t Tee) SetPixel(x, y int, c core.RGB) {
	for _, d := range t {
		d.SetPixel(x, y, c)
	}
}

// Present presents on every display and returns the joined errors
func (t Tee) Present() error {
	var errs []error
	for _, d := range t {
		if err := d.Present(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t Tee) Size() (int, int) {
	if len(t) == 0 {
		return 0, 0
	}
	return t[0].Size()
}
