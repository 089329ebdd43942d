// Package vector defines a fixed-dimension Euclidean vector value type and
// the arithmetic that orthonormalization depends on: componentwise addition
// and subtraction, scalar multiplication and division, dot product, Euclidean
// length, and normalization. The dimension is chosen at compile time through
// the Components constraint, so Vector values are plain stack-allocated
// arrays with no indirection, and every operation is a pure function.
package vector
