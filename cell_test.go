/*
 * cell_test.go, part of asann.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package asann

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

func newMatrix(Te *testing.T, data ...float64) *v3.Matrix {
	Te.Helper()
	m, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

func TestCubicCell(Te *testing.T) {
	cell, err := CellFromParameters(5.64, 5.64, 5.64, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	expected := newMatrix(Te, 5.64, 0, 0, 0, 5.64, 0, 0, 0, 5.64)
	if !mat.EqualApprox(cell.Dense, expected.Dense, tol) {
		Te.Errorf("Wrong cubic cell:\n%v", mat.Formatted(cell.Dense))
	}
	//right angles must give exact zeros.
	if cell.At(1, 0) != 0 || cell.At(2, 0) != 0 || cell.At(2, 1) != 0 {
		Te.Errorf("Off-diagonal elements should be exactly zero:\n%v", mat.Formatted(cell.Dense))
	}
	if v := Volume(cell); math.Abs(v-5.64*5.64*5.64) > 1e-9 {
		Te.Errorf("Wrong volume %f", v)
	}
}

func TestHexagonalCell(Te *testing.T) {
	cell, err := CellFromParameters(3, 3, 5, 90, 90, 120)
	if err != nil {
		Te.Fatal(err)
	}
	expected := newMatrix(Te, 3, 0, 0, -1.5, 3*math.Sqrt(3)/2, 0, 0, 0, 5)
	if !mat.EqualApprox(cell.Dense, expected.Dense, tol) {
		Te.Errorf("Wrong hexagonal cell:\n%v", mat.Formatted(cell.Dense))
	}
}

func TestCellParameters(Te *testing.T) {
	in := [6]float64{4.1, 5.2, 6.3, 81, 95.5, 102}
	cell, err := CellFromParameters(in[0], in[1], in[2], in[3], in[4], in[5])
	if err != nil {
		Te.Fatal(err)
	}
	out := CellParameters(cell)
	if !floats.EqualApprox(in[:], out[:], 1e-8) {
		Te.Errorf("Parameters don't survive the round trip: %v -> %v", in, out)
	}
}

func TestBadCells(Te *testing.T) {
	bad := [][6]float64{
		{0, 1, 1, 90, 90, 90},
		{1, -1, 1, 90, 90, 90},
		{1, 1, 1, 0, 90, 90},
		{1, 1, 1, 90, 180, 90},
		{1, 1, 1, 120, 120, 120}, //flat
	}
	for _, p := range bad {
		_, err := CellFromParameters(p[0], p[1], p[2], p[3], p[4], p[5])
		if !errors.Is(err, ErrBadCell) {
			Te.Errorf("Parameters %v should give ErrBadCell, got %v", p, err)
		}
	}
}

func TestFracCart(Te *testing.T) {
	cell, err := CellFromParameters(3, 3, 5, 90, 90, 120)
	if err != nil {
		Te.Fatal(err)
	}
	frac := newMatrix(Te, 1.0/3, 2.0/3, 0.25, 2.0/3, 1.0/3, 0.75, 0, 0, 0)
	cart := FracToCart(frac, cell)
	//the first atom: 1/3 a + 2/3 b + 1/4 c
	x := 1.0/3*3 + 2.0/3*-1.5
	y := 2.0 / 3 * 3 * math.Sqrt(3) / 2
	if math.Abs(cart.At(0, 0)-x) > tol || math.Abs(cart.At(0, 1)-y) > tol || math.Abs(cart.At(0, 2)-1.25) > tol {
		Te.Errorf("Wrong cartesian coordinates %v %v %v", cart.At(0, 0), cart.At(0, 1), cart.At(0, 2))
	}
	back, err := CartToFrac(cart, cell)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.EqualApprox(back.Dense, frac.Dense, tol) {
		Te.Errorf("Fractional coordinates don't survive the round trip:\n%v", mat.Formatted(back.Dense))
	}
}

func TestSingularCell(Te *testing.T) {
	cell := newMatrix(Te, 1, 0, 0, 2, 0, 0, 0, 0, 1)
	_, err := CartToFrac(newMatrix(Te, 1, 1, 1), cell)
	if !errors.Is(err, ErrBadCell) {
		Te.Errorf("A singular cell should give ErrBadCell, got %v", err)
	}
}

func TestCopyMatrix(Te *testing.T) {
	if CopyMatrix(nil) != nil {
		Te.Error("The copy of nil should be nil")
	}
	m := newMatrix(Te, 1, 2, 3)
	c := CopyMatrix(m)
	c.Set(0, 0, 100)
	if m.At(0, 0) != 1 {
		Te.Error("Modifying a copy changed the original")
	}
}
