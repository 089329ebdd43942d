package basis

import "github.com/viant/orthonorm/vector"

// Orthonormalize overwrites basis with its Gram-Schmidt orthonormalization.
// Slots are rewritten in increasing index order: when slot i is computed,
// slots 0..i-1 already hold final orthonormal vectors and later slots still
// hold the caller's input. Output vector i lies in the span of input vectors
// 0..i and never depends on later ones.
//
// The input is assumed linearly independent; the function does not verify
// this. A dependent (or zero) vector drives the pre-normalization difference
// to the zero vector, so the slot is filled with NaN or Inf components. No
// detection, pivoting, or reordering is attempted.
func Orthonormalize[C vector.Components](basis []vector.Vector[C]) {
	for i := range basis {
		basis[i] = step(basis[:i], basis[i])
	}
}

// Orthonormalized returns the Gram-Schmidt orthonormalization of basis as a
// newly allocated slice, leaving the input unmodified. It is numerically
// identical to Orthonormalize on the same input.
func Orthonormalized[C vector.Components](basis []vector.Vector[C]) []vector.Vector[C] {
	out := make([]vector.Vector[C], len(basis))
	for i := range basis {
		out[i] = step(out[:i], basis[i])
	}
	return out
}

// step computes one orthonormal vector from the raw input v and the already
// orthonormalized prefix. Projection coefficients are taken against the
// finished prefix vectors rather than the raw input (the modified
// formulation), and the projection terms are folded left to right from the
// zero vector so both calling conventions round identically. An empty prefix
// reduces step to plain normalization.
func step[C vector.Components](prefix []vector.Vector[C], v vector.Vector[C]) vector.Vector[C] {
	sum := vector.Empty[C]()
	for _, q := range prefix {
		sum = sum.Add(q.Scale(q.Dot(v)))
	}
	return v.Sub(sum).Normalize()
}
