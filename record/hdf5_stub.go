//go:build !hdf5

package record

// New reports ErrUnsupported; HDF5 output needs cgo and the hdf5 build tag
func New(path string, meta Meta) (Recorder, error) {
	return nil, ErrUnsupported
}
