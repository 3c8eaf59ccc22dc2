/*
 * doc.go, part of asann.
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

/*
Package asann reads atomic and molecular structure files through whichever
structure reader is linked into the program, and gives a uniform view of the
unit cell and the atomic coordinates.

	**Readers**

	gochem (github.com/RubenStaub/asann/readers/gochemreader): XYZ, PDB and GRO files.
	Molecules, except for PDB files with a real CRYST1 record.

	cif (github.com/RubenStaub/asann/readers/cifreader): CIF and mmCIF files.
	Crystals when the file defines a cell, molecules otherwise.

Readers register themselves when their package is imported, the same way
database/sql drivers do. Importing readers/all links every reader; build with
the asann_nogochem or asann_nocif tags to leave one of them out. FromFile picks
the first reader, in order of preference, that handles the file format, and
fails with ErrNoReader if no reader was linked at all.

	import (
		"github.com/RubenStaub/asann"
		_ "github.com/RubenStaub/asann/readers/all"
	)

	s, err := asann.FromFile("NaCl.cif")
	if err != nil {
		log.Fatal(err)
	}
	coords, err := s.Coords() //fractional, as NaCl.cif defines a cell.

Coordinates and cell vectors are returned as v3.Matrix objects, one point (or
lattice vector) per row, in Angstrom. The matrices are copies, so the caller
can modify them without altering the Structure.

Compressed files (.gz and .zst) are decompressed on the fly.
*/
package asann
