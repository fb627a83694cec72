/*
 * super_test.go, part of chemovie.
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
	"testing"

	v3 "github.com/rmera/chemovie/v3"
	"gonum.org/v1/gonum/mat"
)

//a chiral, non-planar set of 4 points
func testPoints(Te *testing.T) *v3.Matrix {
	m, err := v3.NewMatrix([]float64{
		0, 0, 0,
		3.8, 0, 0,
		4.0, 3.8, 0.5,
		3.5, 4.0, 3.8,
	})
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

func TestSuperposeTranslation(Te *testing.T) {
	test := testPoints(Te)
	templa := test.Clone()
	shift, _ := v3.NewMatrix([]float64{1, 2, -3})
	templa.AddVec(templa, shift)
	T, rmsd, err := Superpose(test, templa)
	if err != nil {
		Te.Fatal(err)
	}
	if rmsd > 1e-8 {
		Te.Errorf("RMSD should vanish for a pure translation, got %g", rmsd)
	}
	moved := v3.Zeros(test.NVecs())
	if err := T.Apply(moved, test); err != nil {
		Te.Fatal(err)
	}
	if !moved.Eq(templa, 1e-8) {
		Te.Errorf("Superposition missed the target:\n%v\nvs\n%v", moved, templa)
	}
}

func TestSuperposeRotation(Te *testing.T) {
	test := testPoints(Te)
	rot := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1,
	})
	shift, _ := v3.NewMatrix([]float64{5, -1, 2})
	known, err := v3.NewTransform(rot, shift)
	if err != nil {
		Te.Fatal(err)
	}
	templa := v3.Zeros(test.NVecs())
	if err := known.Apply(templa, test); err != nil {
		Te.Fatal(err)
	}
	T, rmsd, err := Superpose(test, templa)
	if err != nil {
		Te.Fatal(err)
	}
	if rmsd > 1e-8 {
		Te.Errorf("RMSD should vanish for an exact rigid motion, got %g", rmsd)
	}
	moved := v3.Zeros(test.NVecs())
	T.Apply(moved, test)
	if !moved.Eq(templa, 1e-8) {
		Te.Errorf("Recovered transformation misses the target")
	}
}

func TestSuperposeSpecular(Te *testing.T) {
	test := testPoints(Te)
	mirror := test.Clone()
	for i := 0; i < mirror.NVecs(); i++ {
		mirror.Set(i, 0, -mirror.At(i, 0))
	}
	if _, _, err := Superpose(test, mirror); err == nil {
		Te.Error("Expected the specular-image error")
	}
}

func TestSuperposeErrors(Te *testing.T) {
	small, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	if _, _, err := Superpose(small, small); err == nil {
		Te.Error("Expected an error for fewer than 3 atoms")
	}
	test := testPoints(Te)
	if _, _, err := Superpose(test, small); err == nil {
		Te.Error("Expected an error for mismatched sizes")
	}
}

func TestRMSD(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0})
	b, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	r, err := RMSD(a, b)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r-1.0) > 1e-12 {
		Te.Errorf("Expected RMSD 1, got %g", r)
	}
}
