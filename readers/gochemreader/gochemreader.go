/*
 * gochemreader.go, part of asann.
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

// Package gochemreader reads XYZ, PDB and GRO files with goChem.
// Importing it registers the "gochem" reader, the preferred one.
package gochemreader

import (
	"fmt"

	"github.com/RubenStaub/asann"
	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
)

// Name is the name under which the reader is registered.
const Name = "gochem"

// Priority is the registration priority. goChem is preferred over the CIF reader.
const Priority = 10

func init() {
	asann.Register(Priority, Reader{})
}

// Reader implements asann.Reader using goChem.
type Reader struct{}

// Name returns "gochem".
func (Reader) Name() string { return Name }

// Formats returns the extensions goChem can read.
func (Reader) Formats() []string { return []string{"xyz", "pdb", "ent", "gro"} }

// Read reads filename. See ReadFile.
func (Reader) Read(filename string, o *asann.Options) (asann.Structure, error) {
	S, err := ReadFile(filename, o)
	if err != nil {
		return nil, err
	}
	return S, nil
}

// ReadFile reads the structure in filename with goChem. The format is taken from o.Format
// or, if empty, from the file extension. o may be nil, in which case the last frame is read.
// The cell comes from the CRYST1 record of PDB files, the box line of GRO files or the
// Lattice key of extended XYZ comment lines.
func ReadFile(filename string, o *asann.Options) (*Structure, error) {
	if o == nil {
		o = asann.NewOptions()
	}
	format := o.Format
	if format == "" {
		format, _ = asann.Format(filename)
	}
	plain, cleanup, err := asann.Decompress(filename)
	if err != nil {
		return nil, asann.DecorateError(err, "gochemreader.ReadFile")
	}
	defer cleanup()
	var mol *chem.Molecule
	switch format {
	case "xyz":
		mol, err = chem.XYZFileRead(plain)
	case "pdb", "ent":
		mol, err = chem.PDBFileRead(plain, true)
	case "gro":
		mol, err = chem.GroFileRead(plain)
	default:
		return nil, asann.NewError(asann.ErrUnsupportedFormat, filename, "gochemreader.ReadFile", fmt.Sprintf("format %q", format))
	}
	if err != nil {
		return nil, asann.NewError(err, filename, "gochemreader.ReadFile")
	}
	n := len(mol.Coords)
	if n == 0 {
		return nil, asann.NewError(asann.ErrNoSites, filename, "gochemreader.ReadFile")
	}
	frame := o.Frame
	if frame < 0 {
		frame += n
	}
	if frame < 0 || frame >= n {
		return nil, asann.NewError(asann.ErrFrame, filename, "gochemreader.ReadFile", fmt.Sprintf("frame %d of %d", o.Frame, n))
	}
	S := &Structure{mol: mol, frame: frame, filename: filename}
	var cells []*v3.Matrix
	switch format {
	case "pdb", "ent":
		var cell *v3.Matrix
		cell, err = pdbCell(plain)
		cells = []*v3.Matrix{cell}
	case "gro":
		cells, err = groBoxes(plain)
	case "xyz":
		cells, err = xyzLattices(plain)
	}
	if err != nil {
		return nil, asann.DecorateError(err, "gochemreader.ReadFile")
	}
	S.cell = frameCell(cells, frame)
	return S, nil
}

// frameCell returns the cell for frame. Files with fewer cells than frames,
// like PDB files with a single CRYST1 record, use their last cell for the
// remaining frames.
func frameCell(cells []*v3.Matrix, frame int) *v3.Matrix {
	if len(cells) == 0 {
		return nil
	}
	if frame < len(cells) {
		return cells[frame]
	}
	return cells[len(cells)-1]
}

// Structure is a goChem molecule, plus the unit cell if the file had one.
type Structure struct {
	mol      *chem.Molecule
	frame    int
	cell     *v3.Matrix
	filename string
}

// PBC returns true if the file defined a unit cell for the frame read.
func (S *Structure) PBC() bool { return S.cell != nil }

// Len returns the number of atoms.
func (S *Structure) Len() int { return S.mol.Len() }

// Symbols returns the chemical symbols of the atoms.
func (S *Structure) Symbols() []string {
	ret := make([]string, S.mol.Len())
	for i := range ret {
		ret[i] = S.mol.Atom(i).Symbol
	}
	return ret
}

// CellMatrix returns the cell vectors, one per row, or nil without PBC.
func (S *Structure) CellMatrix() *v3.Matrix { return asann.CopyMatrix(S.cell) }

// CartCoords returns the cartesian coordinates of the selected frame.
func (S *Structure) CartCoords() *v3.Matrix { return asann.CopyMatrix(S.mol.Coords[S.frame]) }

// FracCoords returns the fractional coordinates of the selected frame.
func (S *Structure) FracCoords() (*v3.Matrix, error) {
	if S.cell == nil {
		return nil, asann.NewError(asann.ErrNoCell, S.filename, "gochemreader.FracCoords")
	}
	frac, err := asann.CartToFrac(S.mol.Coords[S.frame], S.cell)
	if err != nil {
		return nil, asann.DecorateError(err, "gochemreader.FracCoords")
	}
	return frac, nil
}

// Coords returns fractional coordinates with PBC, cartesian ones otherwise.
func (S *Structure) Coords() (*v3.Matrix, error) { return asann.Coords(S) }

// Reader returns "gochem".
func (S *Structure) Reader() string { return Name }

// FileName returns the name of the file read.
func (S *Structure) FileName() string { return S.filename }

// Frames returns the number of frames in the file.
func (S *Structure) Frames() int { return len(S.mol.Coords) }

// Frame returns the index of the frame read.
func (S *Structure) Frame() int { return S.frame }
