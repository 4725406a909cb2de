// Package covariance converts between packed triangular storage of
// symmetric covariance matrices.
//
// Both layouts are row-major. For a 5x5 matrix the upper layout stores the
// variances at 0, 5, 9, 12 and 14 while the lower layout stores them at
// 0, 2, 5, 9 and 14.
package covariance

import "gonum.org/v1/gonum/mat"

// PackedLen returns the number of packed elements of an n x n symmetric
// matrix.
func PackedLen(n int) int {
	return n * (n + 1) / 2
}

// FromUpper unpacks an upper triangle stored row-major.
func FromUpper(n int, packed []float32) *mat.SymDense {
	m := mat.NewSymDense(n, nil)

	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, float64(packed[k]))
			k++
		}
	}

	return m
}

// FromLower unpacks a lower triangle stored row-major.
func FromLower(n int, packed []float32) *mat.SymDense {
	m := mat.NewSymDense(n, nil)

	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			m.SetSym(i, j, float64(packed[k]))
			k++
		}
	}

	return m
}

// ToLower packs m as a lower triangle, row-major, into dst. dst must hold
// at least PackedLen(n) elements.
func ToLower(m mat.Symmetric, dst []float32) {
	n := m.SymmetricDim()

	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			dst[k] = float32(m.At(i, j))
			k++
		}
	}
}

// Diagonal returns a copy of m keeping only the variances.
func Diagonal(m mat.Symmetric) *mat.SymDense {
	n := m.SymmetricDim()
	d := mat.NewSymDense(n, nil)

	for i := 0; i < n; i++ {
		d.SetSym(i, i, m.At(i, i))
	}

	return d
}
