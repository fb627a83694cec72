/*
 * gonum.go, part of chemovie.
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

//Matrix is a set of row vectors in 3D space. It embeds a gonum Dense
//matrix with 3 columns, so all gonum facilities remain available.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, 3*vecs)
	return &Matrix{mat.NewDense(vecs, 3, f)}
}

//NVecs returns the number of vectors in the receiver.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in
//the view are reflected in the original matrix.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Clone returns a copy of the receiver, backed by new data.
func (F *Matrix) Clone() *Matrix {
	r := F.NVecs()
	ret := Zeros(r)
	ret.Dense.Copy(F.Dense)
	return ret
}

//SomeVecs puts in the receiver the vectors of A whose indexes are given
//in clist, in the given order. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for i, j := range clist {
		F.Dense.SetRow(i, A.Dense.RawRowView(j))
	}
}

//SomeVecsSafe is as SomeVecs, but returns an error instead of panicking
//if the shapes do not match or an index is out of range.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) error {
	if F.NVecs() != len(clist) {
		return Error{ErrShape, []string{"SomeVecsSafe"}, true}
	}
	n := A.NVecs()
	for _, j := range clist {
		if j < 0 || j >= n {
			return Error{fmt.Sprintf("Index %d out of range (%d vectors)", j, n), []string{"SomeVecsSafe"}, true}
		}
	}
	F.SomeVecs(A, clist)
	return nil
}

//AddVec adds the 1x3 vector vec to each vector of A, putting
//the result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	x, y, z := vec.At(0, 0), vec.At(0, 1), vec.At(0, 2)
	for i := 0; i < A.NVecs(); i++ {
		F.Set(i, 0, A.At(i, 0)+x)
		F.Set(i, 1, A.At(i, 1)+y)
		F.Set(i, 2, A.At(i, 2)+z)
	}
}

//SubVec subtracts the 1x3 vector vec from each vector of A, putting
//the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	neg := Zeros(1)
	neg.Dense.Scale(-1, vec.Dense)
	F.AddVec(A, neg)
}

//Mean returns the centroid of the vectors in the receiver as a
//1x3 Matrix.
func (F *Matrix) Mean() *Matrix {
	n := F.NVecs()
	ret := Zeros(1)
	if n == 0 {
		return ret
	}
	for i := 0; i < n; i++ {
		ret.Set(0, 0, ret.At(0, 0)+F.At(i, 0))
		ret.Set(0, 1, ret.At(0, 1)+F.At(i, 1))
		ret.Set(0, 2, ret.At(0, 2)+F.At(i, 2))
	}
	ret.Dense.Scale(1/float64(n), ret.Dense)
	return ret
}

//Eq returns true if the receiver and A have the same shape and their
//elements differ by no more than epsilon.
func (F *Matrix) Eq(A *Matrix, epsilon float64) bool {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar || fc != ac {
		return false
	}
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			if math.Abs(F.At(i, j)-A.At(i, j)) > epsilon {
				return false
			}
		}
	}
	return true
}

//Errors

const (
	ErrNotXx3Matrix = "v3: Matrix must have 3 columns"
	ErrShape        = "v3: Inconsistent shapes among the given matrices"
)

//Error implements the chemovie.Error interface for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
