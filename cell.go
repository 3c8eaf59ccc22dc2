/*
 * cell.go, part of asann.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 1e-12 //everything this small or less is considered zero.

// cosd and sind take degrees, and are exact for right angles, so
// orthogonal cells don't end up with 1e-17 components.
func cosd(angle float64) float64 {
	if angle == 90 {
		return 0
	}
	return math.Cos(angle * math.Pi / 180)
}

func sind(angle float64) float64 {
	if angle == 90 {
		return 1
	}
	return math.Sin(angle * math.Pi / 180)
}

// CellFromParameters returns the cell vectors, one per row, for the lengths a, b, c
// (in A) and the angles alpha, beta, gamma (in degrees). The first vector lies
// along the x axis and the second one in the xy plane.
func CellFromParameters(a, b, c, alpha, beta, gamma float64) (*v3.Matrix, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, NewError(ErrBadCell, "", "CellFromParameters", fmt.Sprintf("lengths %g %g %g", a, b, c))
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, NewError(ErrBadCell, "", "CellFromParameters", fmt.Sprintf("angles %g %g %g", alpha, beta, gamma))
		}
	}
	cosa, cosb, cosg := cosd(alpha), cosd(beta), cosd(gamma)
	sing := sind(gamma)
	cx := c * cosb
	cy := c * (cosa - cosb*cosg) / sing
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= appzero {
		return nil, NewError(ErrBadCell, "", "CellFromParameters", fmt.Sprintf("angles %g %g %g give a flat cell", alpha, beta, gamma))
	}
	cell := v3.Zeros(3)
	cell.Set(0, 0, a)
	cell.Set(1, 0, b*cosg)
	cell.Set(1, 1, b*sing)
	cell.Set(2, 0, cx)
	cell.Set(2, 1, cy)
	cell.Set(2, 2, math.Sqrt(cz2))
	return cell, nil
}

// CellParameters returns a, b, c, alpha, beta and gamma for the given cell
// vectors. Angles are in degrees.
func CellParameters(cell *v3.Matrix) [6]float64 {
	var ret [6]float64
	vecs := make([][]float64, 3)
	for i := range vecs {
		vecs[i] = mat.Row(nil, i, cell.Dense)
		ret[i] = floats.Norm(vecs[i], 2)
	}
	angle := func(i, j int) float64 {
		cos := floats.Dot(vecs[i], vecs[j]) / (ret[i] * ret[j])
		cos = math.Max(-1, math.Min(1, cos))
		return math.Acos(cos) * 180 / math.Pi
	}
	ret[3] = angle(1, 2)
	ret[4] = angle(0, 2)
	ret[5] = angle(0, 1)
	return ret
}

// Volume returns the volume of the cell, in A^3.
func Volume(cell *v3.Matrix) float64 {
	return math.Abs(mat.Det(cell.Dense))
}

// FracToCart returns the cartesian coordinates for the fractional
// coordinates frac in the given cell.
func FracToCart(frac, cell *v3.Matrix) *v3.Matrix {
	var cart mat.Dense
	cart.Mul(frac.Dense, cell.Dense)
	return v3.Dense2Matrix(&cart)
}

// CartToFrac returns the fractional coordinates, in the given cell, for the
// cartesian coordinates cart. It fails with ErrBadCell if the cell can't be
// inverted.
func CartToFrac(cart, cell *v3.Matrix) (*v3.Matrix, error) {
	if Volume(cell) <= appzero {
		return nil, NewError(ErrBadCell, "", "CartToFrac", "zero volume")
	}
	var inv mat.Dense
	if err := inv.Inverse(cell.Dense); err != nil {
		return nil, NewError(ErrBadCell, "", "CartToFrac", err.Error())
	}
	var frac mat.Dense
	frac.Mul(cart.Dense, &inv)
	return v3.Dense2Matrix(&frac), nil
}

// CopyMatrix returns a copy of m, or nil if m is nil.
func CopyMatrix(m *v3.Matrix) *v3.Matrix {
	if m == nil {
		return nil
	}
	return v3.Dense2Matrix(mat.DenseCopyOf(m.Dense))
}
