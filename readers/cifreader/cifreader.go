/*
 * cifreader.go, part of asann.
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

// Package cifreader reads CIF and mmCIF files with github.com/BurntSushi/cif.
// Importing it registers the "cif" reader.
//
// A data block with a complete cell is read as a crystal. A block without
// cell is read as a molecule, provided it has cartesian positions.
// Only the atoms listed in the file are returned: symmetry equivalent
// positions are not generated.
package cifreader

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/cif"
	"github.com/RubenStaub/asann"
	v3 "github.com/rmera/gochem/v3"
)

// Name is the name under which the reader is registered.
const Name = "cif"

// Priority is the registration priority. The CIF reader is the fallback.
const Priority = 20

func init() {
	asann.Register(Priority, Reader{})
}

// Reader implements asann.Reader using the BurntSushi CIF parser.
type Reader struct{}

// Name returns "cif".
func (Reader) Name() string { return Name }

// Formats returns the extensions handled by the reader.
func (Reader) Formats() []string { return []string{"cif", "mmcif"} }

// Read reads filename. See ReadFile.
func (Reader) Read(filename string, o *asann.Options) (asann.Structure, error) {
	S, err := ReadFile(filename, o)
	if err != nil {
		return nil, err
	}
	return S, nil
}

// ReadFile reads the structure in the CIF file filename, which may be compressed.
// o may be nil.
func ReadFile(filename string, o *asann.Options) (*Structure, error) {
	f, err := asann.Open(filename)
	if err != nil {
		return nil, asann.DecorateError(err, "cifreader.ReadFile")
	}
	defer f.Close()
	S, err := read(f, filename, o)
	return S, asann.DecorateError(err, "cifreader.ReadFile")
}

// Read reads a structure from CIF data in r. o may be nil.
func Read(r io.Reader, o *asann.Options) (*Structure, error) {
	S, err := read(r, "", o)
	return S, asann.DecorateError(err, "cifreader.Read")
}

func read(r io.Reader, filename string, o *asann.Options) (*Structure, error) {
	if o == nil {
		o = asann.NewOptions()
	}
	data, err := cif.Read(r)
	if err != nil {
		return nil, asann.NewError(err, filename, "read")
	}
	block, err := pickBlock(data, o.Block)
	if err != nil {
		return nil, asann.NewError(err, filename, "read")
	}
	S := &Structure{filename: filename, block: block.Name}
	S.cell, err = blockCell(block)
	if err != nil {
		return nil, asann.NewError(err, filename, "read", "block "+block.Name)
	}
	frac, fok, err := sites(block, fractTags)
	if err != nil {
		return nil, asann.NewError(err, filename, "read", "block "+block.Name)
	}
	cart, cok, err := sites(block, cartnTags)
	if err != nil {
		return nil, asann.NewError(err, filename, "read", "block "+block.Name)
	}
	switch {
	case S.cell != nil && fok:
		S.frac = frac
		S.cart = asann.FracToCart(frac, S.cell)
	case S.cell != nil && cok:
		S.cart = cart
		S.frac, err = asann.CartToFrac(cart, S.cell)
		if err != nil {
			return nil, asann.DecorateError(err, "read")
		}
	case cok:
		S.cart = cart
	case fok:
		return nil, asann.NewError(asann.ErrNoCell, filename, "read", "fractional positions in block "+block.Name)
	default:
		return nil, asann.NewError(asann.ErrNoSites, filename, "read", "block "+block.Name)
	}
	S.symbols = symbols(block, S.cart.NVecs())
	return S, nil
}

// pickBlock returns the block called name or, if name is empty, the first
// block, in alphabetical order, with atomic positions.
func pickBlock(data *cif.CIF, name string) (*cif.DataBlock, error) {
	if name != "" {
		b, ok := data.Blocks[strings.ToLower(name)] //block names are stored in lowercase.
		if !ok {
			return nil, fmt.Errorf("%w: no data block %q", asann.ErrFrame, name)
		}
		return b, nil
	}
	names := make([]string, 0, len(data.Blocks))
	for k := range data.Blocks {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		b := data.Blocks[k]
		if hasLoop(b, fractTags[0]...) || hasLoop(b, cartnTags[0]...) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: no data block with atom sites", asann.ErrNoSites)
}

// Structure is a structure read from a CIF data block.
type Structure struct {
	filename string
	block    string
	cell     *v3.Matrix
	frac     *v3.Matrix //nil without cell
	cart     *v3.Matrix
	symbols  []string
}

// PBC returns true if the block defined a unit cell.
func (S *Structure) PBC() bool { return S.cell != nil }

// Len returns the number of atoms.
func (S *Structure) Len() int { return S.cart.NVecs() }

// Symbols returns the chemical symbols of the atoms.
func (S *Structure) Symbols() []string {
	ret := make([]string, len(S.symbols))
	copy(ret, S.symbols)
	return ret
}

// CellMatrix returns the cell vectors, one per row, or nil without PBC.
func (S *Structure) CellMatrix() *v3.Matrix { return asann.CopyMatrix(S.cell) }

// CartCoords returns the cartesian coordinates.
func (S *Structure) CartCoords() *v3.Matrix { return asann.CopyMatrix(S.cart) }

// FracCoords returns the fractional coordinates.
func (S *Structure) FracCoords() (*v3.Matrix, error) {
	if S.cell == nil {
		return nil, asann.NewError(asann.ErrNoCell, S.filename, "cifreader.FracCoords")
	}
	return asann.CopyMatrix(S.frac), nil
}

// Coords returns fractional coordinates with PBC, cartesian ones otherwise.
func (S *Structure) Coords() (*v3.Matrix, error) { return asann.Coords(S) }

// Reader returns "cif".
func (S *Structure) Reader() string { return Name }

// FileName returns the name of the file read.
func (S *Structure) FileName() string { return S.filename }

// Block returns the name of the data block read, in lowercase.
func (S *Structure) Block() string { return S.block }
