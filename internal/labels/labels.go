// Package labels provides named integer label columns for tensor axes.
package labels

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Labels is an ordered set of named integer columns labeling one axis of a
// dense array. Each row is one entry along the axis; rows are unique.
//
// A Labels value is immutable after construction. Accessors return views or
// copies; callers must not modify returned row slices.
type Labels struct {
	names     []string
	values    []int32 // row-major, len == count * size
	size      int     // columns per row
	count     int     // number of rows
	positions map[string]int // column name -> column index
	rowIndex  map[string]int // encoded row -> row index
}

// New creates a labeling from column names and rows.
//
// Names must be non-empty and unique. Every row must have exactly one value
// per name, and rows must be unique.
func New(names []string, rows [][]int32) (*Labels, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("labels: at least one column name required")
	}

	positions := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("labels: column name at index %d is empty", i)
		}
		if _, ok := positions[name]; ok {
			return nil, fmt.Errorf("labels: duplicate column name %q", name)
		}
		positions[name] = i
	}

	size := len(names)
	values := make([]int32, 0, len(rows)*size)
	rowIndex := make(map[string]int, len(rows))
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("labels: row %d has %d values, expected %d", i, len(row), size)
		}
		key := rowKey(row)
		if prev, ok := rowIndex[key]; ok {
			return nil, fmt.Errorf("labels: row %d duplicates row %d (%v)", i, prev, row)
		}
		rowIndex[key] = i
		values = append(values, row...)
	}

	return &Labels{
		names:     append([]string(nil), names...),
		values:    values,
		size:      size,
		count:     len(rows),
		positions: positions,
		rowIndex:  rowIndex,
	}, nil
}

// Single returns the canonical labeling for an axis that carries no labels:
// one column named "_" with a single zero entry.
func Single() *Labels {
	l, err := New([]string{"_"}, [][]int32{{0}})
	if err != nil {
		panic("labels: Single construction failed: " + err.Error())
	}
	return l
}

// rowKey encodes a row as a byte string for uniqueness and lookup.
func rowKey(row []int32) string {
	b := make([]byte, 4*len(row))
	for i, v := range row {
		binary.LittleEndian.PutUint32(b[4*i:], uint32(v))
	}
	return string(b)
}

// Len returns the number of rows.
func (l *Labels) Len() int {
	return l.count
}

// Size returns the number of columns per row.
func (l *Labels) Size() int {
	return l.size
}

// Names returns the column names in order.
func (l *Labels) Names() []string {
	return append([]string(nil), l.names...)
}

// Row returns the i-th row as a view into the labeling.
// Panics if i is out of range. The returned slice must not be modified.
func (l *Labels) Row(i int) []int32 {
	if i < 0 || i >= l.count {
		panic(fmt.Sprintf("labels: row index %d out of range [0, %d)", i, l.count))
	}
	return l.values[i*l.size : (i+1)*l.size]
}

// Position returns the column index of the named column.
func (l *Labels) Position(name string) (int, bool) {
	i, ok := l.positions[name]
	return i, ok
}

// Column returns a copy of the values of the named column, one per row.
func (l *Labels) Column(name string) ([]int32, error) {
	col, ok := l.positions[name]
	if !ok {
		return nil, fmt.Errorf("labels: no column named %q", name)
	}
	out := make([]int32, l.count)
	for i := range out {
		out[i] = l.values[i*l.size+col]
	}
	return out, nil
}

// RowPosition returns the index of the given row, if present.
func (l *Labels) RowPosition(row []int32) (int, bool) {
	if len(row) != l.size {
		return 0, false
	}
	i, ok := l.rowIndex[rowKey(row)]
	return i, ok
}

// SortedUnique returns the distinct values of the named column in
// ascending order.
func (l *Labels) SortedUnique(name string) ([]int32, error) {
	col, err := l.Column(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[int32]struct{}, len(col))
	unique := col[:0]
	for _, v := range col {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return unique, nil
}

// UniquePairs returns the distinct (a, b) value pairs of two named columns
// in ascending lexicographic order.
func (l *Labels) UniquePairs(a, b string) ([][2]int32, error) {
	colA, err := l.Column(a)
	if err != nil {
		return nil, err
	}
	colB, err := l.Column(b)
	if err != nil {
		return nil, err
	}
	seen := make(map[[2]int32]struct{}, l.count)
	pairs := make([][2]int32, 0, l.count)
	for i := range colA {
		p := [2]int32{colA[i], colB[i]}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs, nil
}

// Equal reports whether two labelings have the same names and rows.
func (l *Labels) Equal(other *Labels) bool {
	if l == other {
		return true
	}
	if other == nil || l.size != other.size || l.count != other.count {
		return false
	}
	for i := range l.names {
		if l.names[i] != other.names[i] {
			return false
		}
	}
	for i := range l.values {
		if l.values[i] != other.values[i] {
			return false
		}
	}
	return true
}
