/*
 * interfaces.go, part of asann.
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

import v3 "github.com/rmera/gochem/v3"

// Structure is a chemical structure read from a file, either a crystal
// (periodic boundary conditions enabled) or an isolated molecule.
type Structure interface {

	//PBC returns true if the structure has a unit cell defined.
	PBC() bool

	//Len returns the number of atoms in the structure.
	Len() int

	//Symbols returns the chemical symbol of each atom, in the same
	//order as the coordinates.
	Symbols() []string

	//CellMatrix returns the cell vectors, one per row, or nil
	//if PBC is not enabled.
	CellMatrix() *v3.Matrix

	//FracCoords returns the fractional coordinates. It fails with ErrNoCell
	//if PBC is not enabled.
	FracCoords() (*v3.Matrix, error)

	//CartCoords returns the cartesian coordinates, in A.
	CartCoords() *v3.Matrix

	//Coords returns the fractional coordinates if PBC is enabled, the
	//cartesian ones otherwise.
	Coords() (*v3.Matrix, error)

	//Reader returns the name of the reader that produced the structure.
	Reader() string

	//FileName returns the name of the file the structure was read from.
	FileName() string
}

// Reader reads structure files using some library. Readers are registered
// with Register, usually from the init function of their package.
type Reader interface {

	//Name identifies the reader, e.g. "gochem".
	Name() string

	//Formats returns the lowercase file extensions, without the dot, that the
	//reader can handle.
	Formats() []string

	//Read reads the structure in filename. o is never nil.
	Read(filename string, o *Options) (Structure, error)
}

// Coords returns the fractional coordinates of s if s has periodic boundary
// conditions, and the cartesian coordinates otherwise. It is meant to be used
// by Structure implementations for their Coords method.
func Coords(s Structure) (*v3.Matrix, error) {
	if s.PBC() {
		c, err := s.FracCoords()
		return c, DecorateError(err, "Coords")
	}
	return s.CartCoords(), nil
}
