//go:build hdf5

package record

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/hdf5"

	"github.com/lixenwraith/led-swarm/engine"
)

// HDF5Recorder buffers the run and writes it on Close
// Datasets: positions [T×MaxUnits×2], captured [T], config (attributes only)
type HDF5Recorder struct {
	path string
	meta Meta
	buf  *buffer
}

// New creates a recorder that will write to path
func New(path string, meta Meta) (Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &HDF5Recorder{
		path: path,
		meta: meta,
		buf:  newBuffer(meta.MaxUnits),
	}, nil
}

func (r *HDF5Recorder) Record(st *engine.State) error {
	r.buf.add(st)
	return nil
}

func (r *HDF5Recorder) Close() (err error) {
	file, err := hdf5.CreateFile(r.path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	defer checkClose(&err, file)

	if err := saveMeta(file, r.meta); err != nil {
		return err
	}

	t := uint(r.buf.frames())
	if t == 0 {
		return nil
	}
	if err := writeDataset(file, "positions", 0.0, []uint{t, uint(r.buf.slots), 2}, &r.buf.positions); err != nil {
		return err
	}
	return writeDataset(file, "captured", int64(0), []uint{t}, &r.buf.captured)
}

func writeDataset(file *hdf5.File, name string, valOfType any, dims []uint, data any) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue(valOfType)
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return err
	}
	defer checkClose(&err, space)

	dset, err := file.CreateDataset(name, dtype, space)
	if err != nil {
		return err
	}
	defer checkClose(&err, dset)

	return dset.Write(data)
}

// saveMeta creates a "config" dataset with a null dataspace carrying the run parameters
func saveMeta(file *hdf5.File, m Meta) (err error) {
	null, err := hdf5.CreateDataspace(hdf5.S_NULL)
	if err != nil {
		return err
	}
	defer checkClose(&err, null)

	anytype, err := hdf5.NewDatatypeFromValue(0)
	if err != nil {
		return err
	}
	defer checkClose(&err, anytype)

	dset, err := file.CreateDataset("config", anytype, null)
	if err != nil {
		return err
	}
	defer checkClose(&err, dset)

	homing := 0
	if m.Homing {
		homing = 1
	}
	attrs := []struct {
		name  string
		value any
	}{
		{"Time", time.Now().String()},
		{"Seed", m.Seed},
		{"Width", m.Width},
		{"Height", m.Height},
		{"MaxUnits", m.MaxUnits},
		{"TickMs", m.TickMs},
		{"Entry", m.Entry},
		{"Homing", homing},
	}
	for _, a := range attrs {
		if err := writeAttr(dset, a.name, a.value); err != nil {
			return fmt.Errorf("attribute %s: %w", a.name, err)
		}
	}
	return nil
}

func writeAttr(dset *hdf5.Dataset, name string, value any) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue(value)
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	scalar, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer checkClose(&err, scalar)

	attr, err := dset.CreateAttribute(name, dtype, scalar)
	if err != nil {
		return err
	}
	defer checkClose(&err, attr)

	switch v := value.(type) {
	case string:
		return attr.Write(&v, dtype)
	case uint64:
		return attr.Write(&v, dtype)
	case int:
		return attr.Write(&v, dtype)
	default:
		return fmt.Errorf("unsupported attribute type %T", value)
	}
}

// checkClose checks for errors in deferred calls
func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
