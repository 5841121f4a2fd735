package geom

import "fmt"

// Shape holds the dimensions of a matrix as {columns, rows}.
type Shape [2]int

// Columns returns the first-axis length.
func (s Shape) Columns() int { return s[0] }

// Rows returns the second-axis length.
func (s Shape) Rows() int { return s[1] }

// NumElements returns the total number of cells.
func (s Shape) NumElements() int {
	return s[0] * s[1]
}

// Validate checks that both dimensions are positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// String returns the shape as "columns×rows".
func (s Shape) String() string {
	return fmt.Sprintf("%d×%d", s[0], s[1])
}
