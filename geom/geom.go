// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package geom provides fixed-arity vectors and bounds-checked dense matrices.
//
// Example:
//
//	v := geom.NewVector2D(3.0, 4.0)
//	fmt.Println(v) // 3 | 4
//
//	m, err := geom.NewMatrix[float64](4, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := m.At(4, 0); errors.Is(err, geom.ErrIndexOutOfRange) {
//	    // handle
//	}
package geom

import (
	"io"

	"github.com/born-ml/rawio/internal/geom"
)

// Float is a constraint for vector component types.
type Float = geom.Float

// Number is a constraint for matrix cell types.
type Number = geom.Number

// FixedVector is implemented by vectors whose arity is fixed by their type.
type FixedVector[T Float] = geom.FixedVector[T]

// Vector2D is a two-component vector.
type Vector2D[T Float] = geom.Vector2D[T]

// Vector3D is a three-component vector.
type Vector3D[T Float] = geom.Vector3D[T]

// Matrix is a dense columns×rows grid.
type Matrix[T Number] = geom.Matrix[T]

// ProjectionMatrix is a Matrix used as a projection transform.
type ProjectionMatrix[T Number] = geom.ProjectionMatrix[T]

// RotationXMatrix is a Matrix used as a rotation about the X axis.
type RotationXMatrix[T Number] = geom.RotationXMatrix[T]

// Shape holds matrix dimensions as {columns, rows}.
type Shape = geom.Shape

// IndexError describes an out-of-range access.
type IndexError = geom.IndexError

// VectorSeparator joins vector components in String output.
const VectorSeparator = geom.VectorSeparator

// Errors reported by geometry types.
var (
	ErrIndexOutOfRange = geom.ErrIndexOutOfRange
	ErrEmptyMatrix     = geom.ErrEmptyMatrix
	ErrRaggedRows      = geom.ErrRaggedRows
	ErrInvalidShape    = geom.ErrInvalidShape
)

// NewVector2D creates a vector from x and y.
func NewVector2D[T Float](x, y T) Vector2D[T] {
	return geom.NewVector2D(x, y)
}

// NewVector3D creates a vector from x, y and z.
func NewVector3D[T Float](x, y, z T) Vector3D[T] {
	return geom.NewVector3D(x, y, z)
}

// NewMatrix creates a zero-filled matrix.
func NewMatrix[T Number](columns, rows int) (*Matrix[T], error) {
	return geom.NewMatrix[T](columns, rows)
}

// MatrixFromRows creates a matrix from a copy of grid.
func MatrixFromRows[T Number](grid [][]T) (*Matrix[T], error) {
	return geom.MatrixFromRows(grid)
}

// Render joins values with sep and appends end.
func Render[T any](values []T, sep, end string) string {
	return geom.Render(values, sep, end)
}

// RenderTo writes the rendering of values to w.
func RenderTo[T any](w io.Writer, values []T, sep, end string) error {
	return geom.RenderTo(w, values, sep, end)
}
