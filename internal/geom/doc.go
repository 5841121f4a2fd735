// Package geom provides fixed-arity vectors and dense matrices.
//
// Vectors expose their components as an explicit ordered sequence backed by
// their named fields:
//
//	v := geom.NewVector3D(1.0, 2.0, 3.0)
//	for c := range v.Components() {
//	    fmt.Println(c) // 1, 2, 3
//	}
//
// Matrix access is bounds-checked on both axes and reports
// ErrIndexOutOfRange instead of reading past the grid.
package geom
