/*
 * boxes.go, part of asann.
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

package gochemreader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/RubenStaub/asann"
	v3 "github.com/rmera/gochem/v3"
)

//goChem reads the atoms of GRO and XYZ files but not their boxes, so,
//as with CRYST1, we read the boxes here. Both formats are a sequence of
//frames: a count line, a title line, count atom lines, and, for GRO, a box line.

// groBoxes returns the box of each frame in the GRO file groname, in A.
// Frames with an all-zero box get a nil cell.
func groBoxes(groname string) ([]*v3.Matrix, error) {
	var cells []*v3.Matrix
	err := scanFrames(groname, true, func(title, box string) error {
		cell, err := groBox(box)
		if err != nil {
			return err
		}
		cells = append(cells, cell)
		return nil
	})
	if err != nil {
		return nil, asann.NewError(err, groname, "groBoxes")
	}
	return cells, nil
}

// groBox parses a GRO box line, with either the 3 lengths of a rectangular box
// or the 9 values v1(x) v2(y) v3(z) v1(y) v1(z) v2(x) v2(z) v3(x) v3(y), in nm.
func groBox(line string) (*v3.Matrix, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 && len(fields) != 9 {
		return nil, fmt.Errorf("%w: box line %q", asann.ErrBadCell, line)
	}
	var v [9]float64
	zero := true
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: box line %q: %v", asann.ErrBadCell, line, err)
		}
		v[i] = 10 * x //nm to A
		if x != 0 {
			zero = false
		}
	}
	if zero {
		return nil, nil
	}
	return checkedCell([]float64{
		v[0], v[3], v[4],
		v[5], v[1], v[6],
		v[7], v[8], v[2],
	})
}

// xyzLattices returns the cell given by the Lattice key in the comment line
// of each frame of the XYZ file xyzname. Frames without the key, or with
// pbc="F F F", get a nil cell.
func xyzLattices(xyzname string) ([]*v3.Matrix, error) {
	var cells []*v3.Matrix
	err := scanFrames(xyzname, false, func(comment, _ string) error {
		cell, err := xyzLattice(comment)
		if err != nil {
			return err
		}
		cells = append(cells, cell)
		return nil
	})
	if err != nil {
		return nil, asann.NewError(err, xyzname, "xyzLattices")
	}
	return cells, nil
}

func xyzLattice(comment string) (*v3.Matrix, error) {
	lattice, ok := extxyzValue(comment, "lattice")
	if !ok {
		return nil, nil
	}
	if pbc, ok := extxyzValue(comment, "pbc"); ok {
		periodic := false
		for _, f := range strings.Fields(pbc) {
			if b, err := strconv.ParseBool(f); err != nil || b {
				periodic = true
			}
		}
		if !periodic {
			return nil, nil
		}
	}
	fields := strings.Fields(lattice)
	if len(fields) != 9 {
		return nil, fmt.Errorf("%w: Lattice needs 9 numbers, got %q", asann.ErrBadCell, lattice)
	}
	data := make([]float64, 9)
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: Lattice %q: %v", asann.ErrBadCell, lattice, err)
		}
		data[i] = x
	}
	return checkedCell(data)
}

// extxyzValue returns the value of key in an extended XYZ comment line,
// made of key=value pairs where values with spaces are double-quoted.
// Keys are compared without regard to case.
func extxyzValue(comment, key string) (string, bool) {
	rest := strings.TrimSpace(comment)
	for rest != "" {
		eq := strings.IndexAny(rest, "= \t")
		if eq < 0 || rest[eq] != '=' {
			//a bare word, or the end of the line.
			if eq < 0 {
				return "", false
			}
			rest = strings.TrimSpace(rest[eq:])
			continue
		}
		k := rest[:eq]
		rest = rest[eq+1:]
		var val string
		if strings.HasPrefix(rest, `"`) {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				val, rest = rest[1:], ""
			} else {
				val, rest = rest[1:end+1], rest[end+2:]
			}
		} else if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
			val, rest = rest[:sp], rest[sp:]
		} else {
			val, rest = rest, ""
		}
		if strings.EqualFold(k, key) {
			return val, true
		}
		rest = strings.TrimSpace(rest)
	}
	return "", false
}

func checkedCell(data []float64) (*v3.Matrix, error) {
	cell, err := v3.NewMatrix(data)
	if err != nil {
		return nil, err
	}
	if asann.Volume(cell) < 1e-6 {
		return nil, fmt.Errorf("%w: zero volume", asann.ErrBadCell)
	}
	return cell, nil
}

// scanFrames calls f once per frame in filename with the XYZ comment line or,
// if gro is true, with the GRO title and box lines.
func scanFrames(filename string, gro bool, f func(header, box string) error) error {
	fin, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fin.Close()
	scanner := bufio.NewScanner(fin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		first := scanner.Text()
		if strings.TrimSpace(first) == "" {
			continue
		}
		var header, count string
		if gro {
			header = first
			if !scanner.Scan() {
				return fmt.Errorf("missing atom count after %q", first)
			}
			count = scanner.Text()
		} else {
			count = first
			if !scanner.Scan() {
				return fmt.Errorf("missing comment line after %q", first)
			}
			header = scanner.Text()
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return fmt.Errorf("bad atom count %q: %w", count, err)
		}
		for i := 0; i < natoms; i++ {
			if !scanner.Scan() {
				return fmt.Errorf("expected %d atoms, found %d", natoms, i)
			}
		}
		var box string
		if gro {
			if !scanner.Scan() {
				return fmt.Errorf("missing box line")
			}
			box = scanner.Text()
		}
		if err := f(header, box); err != nil {
			return err
		}
	}
	return scanner.Err()
}
