/*
 * transform.go, part of chemovie.
 *
 * Copyright 2026 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Transform is a rigid-body transformation (rotation plus translation)
//in homogeneous coordinates. The row-vector convention is used
//throughout: a point x is transformed as [x 1] * M, with M a 4x4
//matrix whose last column is (0,0,0,1).
type Transform struct {
	m *mat.Dense
}

//Identity returns the identity transformation.
func Identity() *Transform {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1.0)
	}
	return &Transform{m}
}

//NewTransform builds a Transform from a 3x3 rotation matrix and a 1x3
//translation vector. The rotation is applied first.
func NewTransform(rot *mat.Dense, trans *Matrix) (*Transform, error) {
	rr, rc := rot.Dims()
	if rr != 3 || rc != 3 {
		return nil, Error{"Rotation must be a 3x3 matrix", []string{"NewTransform"}, true}
	}
	if trans.NVecs() != 1 {
		return nil, Error{"Translation must be a 1x3 vector", []string{"NewTransform"}, true}
	}
	T := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T.m.Set(i, j, rot.At(i, j))
		}
		T.m.Set(3, i, trans.At(0, i))
	}
	return T, nil
}

//Compose returns the transformation equivalent to applying first, and
//then second, to a set of coordinates.
func Compose(first, second *Transform) *Transform {
	r := mat.NewDense(4, 4, nil)
	r.Mul(first.m, second.m)
	return &Transform{r}
}

//Clone returns a copy of the receiver backed by new data.
func (T *Transform) Clone() *Transform {
	r := mat.NewDense(4, 4, nil)
	r.Copy(T.m)
	return &Transform{r}
}

//Rotation returns a copy of the 3x3 rotation block of the receiver.
func (T *Transform) Rotation() *mat.Dense {
	r := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, T.m.At(i, j))
		}
	}
	return r
}

//Translation returns a copy of the translation vector of the receiver.
func (T *Transform) Translation() *Matrix {
	r := Zeros(1)
	for i := 0; i < 3; i++ {
		r.Set(0, i, T.m.At(3, i))
	}
	return r
}

//Apply transforms each vector of src, putting the result in dst.
//dst and src may be the same matrix.
func (T *Transform) Apply(dst, src *Matrix) error {
	if dst.NVecs() != src.NVecs() {
		return Error{ErrShape, []string{"Apply"}, true}
	}
	rot := T.Rotation()
	rotated := mat.NewDense(src.NVecs(), 3, nil)
	rotated.Mul(src.Dense, rot)
	dst.AddVec(&Matrix{rotated}, T.Translation())
	return nil
}

//IsIdentity returns true if the receiver is the identity
//transformation, within epsilon.
func (T *Transform) IsIdentity(epsilon float64) bool {
	return T.Eq(Identity(), epsilon)
}

//Eq returns true if the receiver and O represent the same
//transformation, within epsilon, element-wise.
func (T *Transform) Eq(O *Transform, epsilon float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(T.m.At(i, j)-O.m.At(i, j)) > epsilon {
				return false
			}
		}
	}
	return true
}

func (T *Transform) String() string {
	return fmt.Sprintf("rot: %v trans: %v", mat.Formatted(T.Rotation()), mat.Formatted(T.Translation().Dense))
}
