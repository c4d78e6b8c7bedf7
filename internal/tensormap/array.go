package tensormap

import "fmt"

// Array is a dense row-major float64 array.
//
// The leading axis is the row axis; the product of the remaining axes is the
// cell size. Arrays never share storage: Clone copies, and every constructor
// owns its buffer exclusively.
type Array struct {
	shape   Shape
	strides []int
	data    []float64
}

// NewArray creates a zero-initialized array with the given shape.
func NewArray(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    make([]float64, shape.NumElements()),
	}, nil
}

// FromSlice creates an array from a flat row-major slice.
// The data is copied; the array does not alias the input slice.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Array{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    append([]float64(nil), data...),
	}, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Data returns the flat row-major backing slice.
func (a *Array) Data() []float64 {
	return a.data
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// RowCellSize returns the size of the leading row axis and the number of
// elements per row (the product of all remaining axes).
func (a *Array) RowCellSize() (rows, cells int) {
	if len(a.shape) == 0 {
		return 1, 1
	}
	rows = a.shape[0]
	cells = 1
	for _, dim := range a.shape[1:] {
		cells *= dim
	}
	return rows, cells
}

// Row returns the i-th leading-axis cell as a view into the array.
// Panics if i is out of range.
func (a *Array) Row(i int) []float64 {
	rows, cells := a.RowCellSize()
	if i < 0 || i >= rows {
		panic(fmt.Sprintf("row index %d out of range [0, %d)", i, rows))
	}
	return a.data[i*cells : (i+1)*cells]
}

// At returns the element at the given multi-dimensional indices.
// Panics if the number of indices does not match the rank or an index is
// out of range.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("got %d indices for rank-%d array", len(indices), len(a.shape)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of range [0, %d) for axis %d", idx, a.shape[i], i))
		}
		offset += idx * a.strides[i]
	}
	return a.data[offset]
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return &Array{
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		data:    append([]float64(nil), a.data...),
	}
}

// Equal reports whether two arrays have the same shape and elements.
func (a *Array) Equal(other *Array) bool {
	if a == other {
		return true
	}
	if other == nil || !a.shape.Equal(other.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
