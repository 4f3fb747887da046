// Package record captures per-tick unit positions for offline analysis
package record

import (
	"errors"
	"math"

	"github.com/lixenwraith/led-swarm/engine"
)

// ErrUnsupported is returned by New when the binary was built without HDF5
var ErrUnsupported = errors.New("hdf5 recording not compiled in (build with -tags hdf5)")

// Recorder receives every updated tick
type Recorder interface {
	Record(st *engine.State) error
	Close() error
}

// Meta is stored as attributes on the config dataset
type Meta struct {
	Seed     uint64
	Width    int
	Height   int
	MaxUnits int
	TickMs   int
	Entry    string
	Homing   bool
}

// buffer accumulates frames in memory; slots beyond the live unit count are NaN
type buffer struct {
	slots     int
	positions []float64 // frames × slots × 2
	captured  []int64
}

func newBuffer(slots int) *buffer {
	return &buffer{slots: slots}
}

func (b *buffer) add(st *engine.State) {
	row := make([]float64, b.slots*2)
	for i := range row {
		row[i] = math.NaN()
	}
	for i, u := range st.Units {
		if i >= b.slots {
			break
		}
		row[2*i] = u.Position.X
		row[2*i+1] = u.Position.Y
	}
	b.positions = append(b.positions, row...)
	b.captured = append(b.captured, int64(st.Captured.Len()))
}

func (b *buffer) frames() int {
	return len(b.captured)
}
