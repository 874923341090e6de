package util

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrSingularMatrix = errors.New("matrix is singular")

// Vector3 is a column vector.
type Vector3[T constraints.Float] [3]T

// Matrix3 is a row-major 3x3 matrix. All operations return new values and
// never modify the receiver.
type Matrix3[T constraints.Float] [3][3]T

func Identity3[T constraints.Float]() Matrix3[T] {
	return Matrix3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Diagonal3[T constraints.Float](v Vector3[T]) Matrix3[T] {
	return Matrix3[T]{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}

// Mul returns m * o.
func (m Matrix3[T]) Mul(o Matrix3[T]) Matrix3[T] {
	var res Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return res
}

// MulVec returns m * v.
func (m Matrix3[T]) MulVec(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Matrix3[T]) Transpose() Matrix3[T] {
	var res Matrix3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[j][i]
		}
	}
	return res
}

func (m Matrix3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert uses the adjugate. A zero determinant gives ErrSingularMatrix.
func (m Matrix3[T]) Invert() (Matrix3[T], error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3[T]{}, ErrSingularMatrix
	}

	var adj Matrix3[T]
	adj[0][0] = m[1][1]*m[2][2] - m[1][2]*m[2][1]
	adj[0][1] = m[0][2]*m[2][1] - m[0][1]*m[2][2]
	adj[0][2] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	adj[1][0] = m[1][2]*m[2][0] - m[1][0]*m[2][2]
	adj[1][1] = m[0][0]*m[2][2] - m[0][2]*m[2][0]
	adj[1][2] = m[0][2]*m[1][0] - m[0][0]*m[1][2]
	adj[2][0] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	adj[2][1] = m[0][1]*m[2][0] - m[0][0]*m[2][1]
	adj[2][2] = m[0][0]*m[1][1] - m[0][1]*m[1][0]

	invDet := 1 / det
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			adj[i][j] *= invDet
		}
	}
	return adj, nil
}

// MustInvert is for matrices known at start-up to be invertible.
func (m Matrix3[T]) MustInvert() Matrix3[T] {
	inv, err := m.Invert()
	if err != nil {
		panic(err)
	}
	return inv
}

// MatrixMultiply multiplies left to right, so the right-most matrix is
// applied to a vector first.
func MatrixMultiply[T constraints.Float](matrices ...Matrix3[T]) Matrix3[T] {
	res := Identity3[T]()
	for _, m := range matrices {
		res = res.Mul(m)
	}
	return res
}

// CompareMatrix3 reports whether every element pair satisfies compare.
func CompareMatrix3[T constraints.Float](a Matrix3[T], b Matrix3[T], compare func(T, T) bool) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !compare(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}
