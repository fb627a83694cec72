/*
 * super.go, part of chemovie.
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

package align

import (
	"math"

	v3 "github.com/rmera/chemovie/v3"
	"gonum.org/v1/gonum/mat"
)

//RotatorTranslatorToSuper superimposes the set of cartesian
//coordinates given as the rows of the matrix test on the ones of the
//rows of the matrix templa. It returns a rotation matrix and 2
//translation row vectors. In order to perform the superposition, the
//first translation vector has to be added to the moving matrix, then
//the rotation applied (on the right side, as coordinates are row
//vectors) and finally the second translation added.
func RotatorTranslatorToSuper(test, templa *v3.Matrix) (*mat.Dense, *v3.Matrix, *v3.Matrix, error) {
	tmr, tmc := templa.Dims()
	tsr, tsc := test.Dims()
	if tmr != tsr || tmc != 3 || tsc != 3 {
		return nil, nil, nil, Error{IllFormed, "", []string{"RotatorTranslatorToSuper"}, true}
	}
	if tmr < 3 {
		return nil, nil, nil, Error{NotEnoughAtoms, "", []string{"RotatorTranslatorToSuper"}, true}
	}
	ctest := test.Clone()
	trans1 := test.Mean()
	ctest.SubVec(ctest, trans1)
	trans1.Dense.Scale(-1, trans1.Dense)
	ctempla := templa.Clone()
	trans2 := templa.Mean()
	ctempla.SubVec(ctempla, trans2)
	//The cross-covariance of the centered sets. Its SVD gives the
	//optimal rotation (orthogonal Procrustes).
	H := mat.NewDense(3, 3, nil)
	H.Mul(ctest.Dense.T(), ctempla.Dense)
	var svd mat.SVD
	if ok := svd.Factorize(H, mat.SVDThin); !ok {
		return nil, nil, nil, Error{"SVD failed to converge", "", []string{"RotatorTranslatorToSuper"}, true}
	}
	U := mat.NewDense(3, 3, nil)
	V := mat.NewDense(3, 3, nil)
	svd.UTo(U)
	svd.VTo(V)
	rotation := mat.NewDense(3, 3, nil)
	rotation.Mul(U, V.T())
	if mat.Det(rotation) < 0 {
		return nil, nil, nil, Error{Specular, "", []string{"RotatorTranslatorToSuper"}, true}
	}
	return rotation, trans1, trans2, nil
}

//Superpose computes the rigid-body transformation that best
//superimposes test onto templa, and the RMSD between templa and the
//transformed test. test and templa are not modified.
func Superpose(test, templa *v3.Matrix) (*v3.Transform, float64, error) {
	rotation, trans1, trans2, err := RotatorTranslatorToSuper(test, templa)
	if err != nil {
		return nil, 0, errDecorate(err, "Superpose")
	}
	//collapse translate-rotate-translate into a single transformation:
	//x*R + (t1*R + t2)
	t1r := v3.Zeros(1)
	t1r.Dense.Mul(trans1.Dense, rotation)
	t1r.Dense.Add(t1r.Dense, trans2.Dense)
	T, err := v3.NewTransform(rotation, t1r)
	if err != nil {
		return nil, 0, errDecorate(err, "Superpose")
	}
	moved := v3.Zeros(test.NVecs())
	if err := T.Apply(moved, test); err != nil {
		return nil, 0, errDecorate(err, "Superpose")
	}
	rmsd, err := RMSD(moved, templa)
	if err != nil {
		return nil, 0, errDecorate(err, "Superpose")
	}
	return T, rmsd, nil
}

//RMSD returns the root of the mean square deviation between the sets
//of cartesian coordinates in test and template.
func RMSD(test, template *v3.Matrix) (float64, error) {
	tmr, tmc := template.Dims()
	tsr, tsc := test.Dims()
	if tmr != tsr || tmc != 3 || tsc != 3 {
		return 0, Error{IllFormed, "", []string{"RMSD"}, true}
	}
	var r float64
	for i := 0; i < tmr; i++ {
		for j := 0; j < 3; j++ {
			d := test.At(i, j) - template.At(i, j)
			r += d * d
		}
	}
	return math.Sqrt(r / float64(tmr)), nil
}
