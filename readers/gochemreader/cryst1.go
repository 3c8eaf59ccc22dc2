/*
 * cryst1.go, part of asann.
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

// pdbCell returns the cell in the first CRYST1 record of the PDB file pdbname,
// or nil if there is no such record, or if it holds the 1 A cubic cell
// that the PDB format uses for structures without a cell.
// goChem doesn't read CRYST1 records, so we look for it here.
func pdbCell(pdbname string) (*v3.Matrix, error) {
	f, err := os.Open(pdbname)
	if err != nil {
		return nil, asann.NewError(err, pdbname, "pdbCell")
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") || strings.HasPrefix(line, "MODEL") {
			break //CRYST1 must come before the coordinates.
		}
		if !strings.HasPrefix(line, "CRYST1") {
			continue
		}
		p, err := cryst1Parameters(line)
		if err != nil {
			return nil, asann.NewError(asann.ErrBadCell, pdbname, "pdbCell", err.Error())
		}
		if p == [6]float64{1, 1, 1, 90, 90, 90} {
			return nil, nil
		}
		cell, err := asann.CellFromParameters(p[0], p[1], p[2], p[3], p[4], p[5])
		if err != nil {
			return nil, asann.DecorateError(err, "pdbCell")
		}
		return cell, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, asann.NewError(err, pdbname, "pdbCell")
	}
	return nil, nil
}

// cryst1 fields are a, b and c in columns 7-33 (9 characters each)
// and the angles in columns 34-54 (7 characters each).
var cryst1Columns = [6][2]int{{6, 15}, {15, 24}, {24, 33}, {33, 40}, {40, 47}, {47, 54}}

func cryst1Parameters(line string) ([6]float64, error) {
	var p [6]float64
	if len(line) < 54 {
		//Not all programs respect the columns. We still try our luck with the fields.
		fields := strings.Fields(line)
		if len(fields) < 7 {
			return p, fmt.Errorf("too short CRYST1 record: %q", line)
		}
		for i := range p {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return p, fmt.Errorf("bad CRYST1 record: %w", err)
			}
			p[i] = v
		}
		return p, nil
	}
	for i, c := range cryst1Columns {
		v, err := strconv.ParseFloat(strings.TrimSpace(line[c[0]:c[1]]), 64)
		if err != nil {
			return p, fmt.Errorf("bad CRYST1 record: %w", err)
		}
		p[i] = v
	}
	return p, nil
}
