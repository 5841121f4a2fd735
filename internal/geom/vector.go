package geom

import "iter"

// Float is a constraint for vector component types.
type Float interface {
	float32 | float64
}

// FixedVector is implemented by vectors whose arity is fixed by their type.
type FixedVector[T Float] interface {
	// Len returns the number of components.
	Len() int
	// Components yields the components in declaration order.
	Components() iter.Seq[T]
	// At returns the i-th component.
	At(i int) (T, error)
	String() string
}

var (
	_ FixedVector[float64] = Vector2D[float64]{}
	_ FixedVector[float32] = Vector3D[float32]{}
)

// Vector2D is a two-component vector.
type Vector2D[T Float] struct {
	X, Y T
}

// NewVector2D creates a vector from x and y.
func NewVector2D[T Float](x, y T) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// Len returns 2.
func (v Vector2D[T]) Len() int { return 2 }

// Components yields X then Y.
func (v Vector2D[T]) Components() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// At returns X for 0 and Y for 1.
func (v Vector2D[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	var zero T
	return zero, &IndexError{Axis: "component", Index: i, Limit: 2}
}

// Slice returns a fresh copy of the components.
func (v Vector2D[T]) Slice() []T {
	return []T{v.X, v.Y}
}

// String joins the components with VectorSeparator.
func (v Vector2D[T]) String() string {
	return Render(v.Slice(), VectorSeparator, "")
}

// Vector3D is a three-component vector.
type Vector3D[T Float] struct {
	X, Y, Z T
}

// NewVector3D creates a vector from x, y and z.
func NewVector3D[T Float](x, y, z T) Vector3D[T] {
	return Vector3D[T]{X: x, Y: y, Z: z}
}

// Len returns 3.
func (v Vector3D[T]) Len() int { return 3 }

// Components yields X, Y then Z.
func (v Vector3D[T]) Components() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z)
	}
}

// At returns X, Y or Z for 0, 1 or 2.
func (v Vector3D[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	var zero T
	return zero, &IndexError{Axis: "component", Index: i, Limit: 3}
}

// Slice returns a fresh copy of the components.
func (v Vector3D[T]) Slice() []T {
	return []T{v.X, v.Y, v.Z}
}

// String joins the components with VectorSeparator.
func (v Vector3D[T]) String() string {
	return Render(v.Slice(), VectorSeparator, "")
}
