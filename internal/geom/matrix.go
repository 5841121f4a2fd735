package geom

import (
	"fmt"
	"iter"
	"slices"
)

// Number is a constraint for matrix cell types.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Matrix is a dense columns×rows grid. data[c] holds the Rows() cells of
// the c-th first-axis slice. The shape never changes after construction.
type Matrix[T Number] struct {
	data  [][]T
	shape Shape
}

// ProjectionMatrix is a Matrix used as a projection transform.
type ProjectionMatrix[T Number] = Matrix[T]

// RotationXMatrix is a Matrix used as a rotation about the X axis.
type RotationXMatrix[T Number] = Matrix[T]

// NewMatrix creates a zero-filled matrix.
func NewMatrix[T Number](columns, rows int) (*Matrix[T], error) {
	shape := Shape{columns, rows}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	backing := make([]T, shape.NumElements())
	data := make([][]T, columns)
	for c := range data {
		data[c] = backing[c*rows : (c+1)*rows : (c+1)*rows]
	}
	return &Matrix[T]{data: data, shape: shape}, nil
}

// MatrixFromRows creates a matrix from an explicit grid. The grid is copied;
// grid[c] becomes Row(c). All slices must be non-empty and of equal length.
func MatrixFromRows[T Number](grid [][]T) (*Matrix[T], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	rows := len(grid[0])
	for c, r := range grid {
		if len(r) != rows {
			return nil, fmt.Errorf("%w: slice %d has %d elements, want %d", ErrRaggedRows, c, len(r), rows)
		}
	}

	m, err := NewMatrix[T](len(grid), rows)
	if err != nil {
		return nil, err
	}
	for c, r := range grid {
		copy(m.data[c], r)
	}
	return m, nil
}

// Columns returns the first-axis length.
func (m *Matrix[T]) Columns() int { return m.shape.Columns() }

// Rows returns the second-axis length.
func (m *Matrix[T]) Rows() int { return m.shape.Rows() }

// Shape returns {Columns, Rows}.
func (m *Matrix[T]) Shape() Shape { return m.shape }

// Row returns a copy of the index-th first-axis slice, which has Rows()
// elements. index must lie in [0, Columns()).
func (m *Matrix[T]) Row(index int) ([]T, error) {
	if err := checkIndex("column", index, m.Columns()); err != nil {
		return nil, err
	}
	return slices.Clone(m.data[index]), nil
}

// At returns the cell at (column, row).
func (m *Matrix[T]) At(column, row int) (T, error) {
	if err := m.check(column, row); err != nil {
		var zero T
		return zero, err
	}
	return m.data[column][row], nil
}

// Set stores v at (column, row).
func (m *Matrix[T]) Set(column, row int, v T) error {
	if err := m.check(column, row); err != nil {
		return err
	}
	m.data[column][row] = v
	return nil
}

// All yields every cell with its {column, row} index, column-major:
// all of Row(0), then Row(1), and so on.
func (m *Matrix[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for c, r := range m.data {
			for i, v := range r {
				if !yield([2]int{c, i}, v) {
					return
				}
			}
		}
	}
}

// Values yields every cell in the same order as All.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders one first-axis slice per line.
func (m *Matrix[T]) String() string {
	var out []byte
	for _, r := range m.data {
		out = append(out, Render(r, " ", "\n")...)
	}
	return string(out)
}

func (m *Matrix[T]) check(column, row int) error {
	if err := checkIndex("column", column, m.Columns()); err != nil {
		return err
	}
	return checkIndex("row", row, m.Rows())
}
