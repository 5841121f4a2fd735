package geom

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixZeroed(t *testing.T) {
	m, err := NewMatrix[float64](4, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Columns())
	assert.Equal(t, 4, m.Rows())

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, row[0])

	for _, v := range m.All() {
		assert.Zero(t, v)
	}
}

func TestMatrixBounds(t *testing.T) {
	m, err := NewMatrix[float64](4, 4)
	require.NoError(t, err)

	_, err = m.Row(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = m.At(4, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = m.At(0, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = m.Row(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = m.Set(0, -1, 1)
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, "row", idxErr.Axis)
	assert.Equal(t, -1, idxErr.Index)
	assert.Equal(t, 4, idxErr.Limit)
}

func TestMatrixNonSquareAxes(t *testing.T) {
	m, err := NewMatrix[int32](2, 5)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 4, 9))
	v, err := m.At(1, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Len(t, row, 5)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNewMatrixInvalidShape(t *testing.T) {
	_, err := NewMatrix[float32](0, 3)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewMatrix[float32](3, -1)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestMatrixFromRows(t *testing.T) {
	grid := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := MatrixFromRows(grid)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, m.Shape())

	grid[0][0] = 100 // grid is copied
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, slices.Collect(m.Values()))
}

func TestMatrixFromRowsInvalid(t *testing.T) {
	_, err := MatrixFromRows[float64](nil)
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = MatrixFromRows([][]float64{{}})
	assert.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = MatrixFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedRows)
}

func TestMatrixRowIsCopy(t *testing.T) {
	m, err := MatrixFromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 42

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestMatrixSlicesDoNotOverlap(t *testing.T) {
	m, err := NewMatrix[uint8](3, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, cap(m.data[0]))

	require.NoError(t, m.Set(0, 1, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
}

func TestMatrixAllOrderAndStop(t *testing.T) {
	m, err := MatrixFromRows([][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var idx [][2]int
	for i := range m.All() {
		idx = append(idx, i)
		if len(idx) == 3 {
			break
		}
	}
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}}, idx)
}

func TestMatrixAliases(t *testing.T) {
	p, err := NewMatrix[float64](4, 4)
	require.NoError(t, err)

	var proj *ProjectionMatrix[float64] = p
	var r *RotationXMatrix[float64] = proj
	assert.Equal(t, 16, r.Shape().NumElements())
}

func TestMatrixString(t *testing.T) {
	m, err := MatrixFromRows([][]float64{{1, 2}, {3.5, 4}})
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3.5 4\n", m.String())
}
