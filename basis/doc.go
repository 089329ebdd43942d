// Package basis orthonormalizes ordered sequences of linearly independent
// vectors with the modified Gram-Schmidt process. Two calling conventions
// are exposed: Orthonormalize rewrites a caller-owned slice in place, and
// Orthonormalized leaves its input untouched and returns a fresh slice.
// Both conventions run the same per-index step and therefore produce
// bit-identical results on identical input.
package basis
