package vector

import "math"

// Components constrains the storage of a Vector to a fixed-size float64
// array. The dimension is part of the type: Vector[[3]float64] and
// Vector[[4]float64] are distinct value types sharing one implementation.
// Supporting a further dimension is a matter of adding its array type to
// this union.
type Components interface {
	~[2]float64 | ~[3]float64 | ~[4]float64
}

// Vector is an ordered, fixed-length sequence of float64 components. It has
// value semantics: two vectors with equal components are interchangeable
// (== compares componentwise), and every operation returns a new value
// instead of mutating shared state.
type Vector[C Components] struct {
	Components C
}

// Aliases for the concrete dimensions used throughout this module.
type (
	Vec2 = Vector[[2]float64]
	Vec3 = Vector[[3]float64]
	Vec4 = Vector[[4]float64]
)

// New constructs a vector from exactly the components of its dimension.
func New[C Components](components C) Vector[C] {
	return Vector[C]{Components: components}
}

// Empty returns the zero vector: the identity element for Add and the seed
// value for Sum.
func Empty[C Components]() Vector[C] {
	return Vector[C]{}
}

// Dim returns the number of components.
func (v Vector[C]) Dim() int { return len(v.Components) }

// At returns component i. An index outside [0, Dim) is a programming error
// and panics.
func (v Vector[C]) At(i int) float64 { return v.Components[i] }

// Add returns the componentwise sum of v and o.
func (v Vector[C]) Add(o Vector[C]) Vector[C] {
	var out Vector[C]
	for i := 0; i < len(v.Components); i++ {
		out.Components[i] = v.Components[i] + o.Components[i]
	}
	return out
}

// Sub returns the componentwise difference v - o.
func (v Vector[C]) Sub(o Vector[C]) Vector[C] {
	var out Vector[C]
	for i := 0; i < len(v.Components); i++ {
		out.Components[i] = v.Components[i] - o.Components[i]
	}
	return out
}

// Scale returns v with every component multiplied by k.
func (v Vector[C]) Scale(k float64) Vector[C] {
	var out Vector[C]
	for i := 0; i < len(v.Components); i++ {
		out.Components[i] = v.Components[i] * k
	}
	return out
}

// Div returns v with every component divided by k. Division by zero follows
// IEEE 754 and produces Inf or NaN components rather than an error.
func (v Vector[C]) Div(k float64) Vector[C] {
	var out Vector[C]
	for i := 0; i < len(v.Components); i++ {
		out.Components[i] = v.Components[i] / k
	}
	return out
}

// Dot returns the dot product of v and o.
func (v Vector[C]) Dot(o Vector[C]) float64 {
	var sum float64
	for i := 0; i < len(v.Components); i++ {
		sum += v.Components[i] * o.Components[i]
	}
	return sum
}

// Length returns the Euclidean length of v. It is always >= 0 and is zero
// only for the zero vector.
func (v Vector[C]) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector has no unit
// direction: dividing by its zero length yields NaN components, which are
// returned as-is rather than reported as an error.
func (v Vector[C]) Normalize() Vector[C] {
	return v.Div(v.Length())
}

// Sum folds vectors left to right with Add, starting from the zero vector.
// The fold order is fixed because float64 addition does not round
// associatively; folding in sequence order keeps results reproducible
// bit-for-bit.
func Sum[C Components](vectors []Vector[C]) Vector[C] {
	out := Empty[C]()
	for _, v := range vectors {
		out = out.Add(v)
	}
	return out
}
