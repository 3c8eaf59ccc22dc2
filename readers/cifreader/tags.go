/*
 * tags.go, part of asann.
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

package cifreader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/BurntSushi/cif"
	"github.com/RubenStaub/asann"
	v3 "github.com/rmera/gochem/v3"
)

//The parser stores tags in lowercase, without the leading underscore.
//Each quantity lists the core CIF spelling first and the mmCIF one second.

var cellTags = [6][]string{
	{"cell_length_a", "cell.length_a"},
	{"cell_length_b", "cell.length_b"},
	{"cell_length_c", "cell.length_c"},
	{"cell_angle_alpha", "cell.angle_alpha"},
	{"cell_angle_beta", "cell.angle_beta"},
	{"cell_angle_gamma", "cell.angle_gamma"},
}

var fractTags = [3][]string{
	{"atom_site_fract_x", "atom_site.fract_x"},
	{"atom_site_fract_y", "atom_site.fract_y"},
	{"atom_site_fract_z", "atom_site.fract_z"},
}

var cartnTags = [3][]string{
	{"atom_site_cartn_x", "atom_site.cartn_x"},
	{"atom_site_cartn_y", "atom_site.cartn_y"},
	{"atom_site_cartn_z", "atom_site.cartn_z"},
}

var symbolTags = []string{"atom_site_type_symbol", "atom_site.type_symbol"}

//mmCIF atom names, like "CA" for an alpha carbon, are not element symbols,
//so only the core CIF label is used when there is no type symbol.
var labelTags = []string{"atom_site_label"}

// blockCell returns the cell defined in b, or nil if b defines no cell
// parameter at all, or only the 1 A cubic placeholder cell.
func blockCell(b *cif.DataBlock) (*v3.Matrix, error) {
	var p [6]float64
	found := 0
	for i, names := range cellTags {
		v, ok := item(b, names...)
		if !ok {
			continue
		}
		f, err := number(v)
		if err != nil {
			return nil, fmt.Errorf("%w: _%s: %v", asann.ErrBadCell, names[0], err)
		}
		p[i] = f
		found++
	}
	if found == 0 {
		return nil, nil
	}
	if found != len(p) {
		return nil, fmt.Errorf("%w: only %d of the 6 cell parameters are given", asann.ErrBadCell, found)
	}
	if p == [6]float64{1, 1, 1, 90, 90, 90} {
		return nil, nil
	}
	cell, err := asann.CellFromParameters(p[0], p[1], p[2], p[3], p[4], p[5])
	if err != nil {
		//the caller adds the file name.
		return nil, fmt.Errorf("%w: parameters %g", asann.ErrBadCell, p)
	}
	return cell, nil
}

// sites returns the positions given by the three columns in tags. The bool
// is false if none of the columns is present.
func sites(b *cif.DataBlock, tags [3][]string) (*v3.Matrix, bool, error) {
	var cols [3][]float64
	found := 0
	for i, names := range tags {
		c, ok, err := column(b, names...)
		if err != nil {
			return nil, true, err
		}
		if ok {
			cols[i] = c
			found++
		}
	}
	if found == 0 {
		return nil, false, nil
	}
	if found != 3 {
		return nil, true, fmt.Errorf("incomplete positions: only %d of the columns _%s, _%s, _%s", found, tags[0][0], tags[1][0], tags[2][0])
	}
	n := len(cols[0])
	if len(cols[1]) != n || len(cols[2]) != n {
		return nil, true, fmt.Errorf("position columns of different lengths: %d, %d, %d", n, len(cols[1]), len(cols[2]))
	}
	if n == 0 {
		return nil, false, nil
	}
	ret := v3.Zeros(n)
	for i := 0; i < n; i++ {
		for j := range cols {
			ret.Set(i, j, cols[j][i])
		}
	}
	return ret, true, nil
}

// symbols returns the chemical symbols from the type_symbol column or, failing
// that, from the atom labels. Without either, n empty strings are returned.
func symbols(b *cif.DataBlock, n int) []string {
	ret := make([]string, n)
	col := stringColumn(b, symbolTags...)
	if col == nil {
		col = stringColumn(b, labelTags...)
	}
	if len(col) != n {
		return ret
	}
	for i, v := range col {
		ret[i] = symbolFrom(v)
	}
	return ret
}

// symbolFrom turns a type symbol or label, e.g. "Na1+" or "CL2", into an
// element symbol ("Na", "Cl").
func symbolFrom(s string) string {
	var sym []rune
	for _, r := range s {
		if !unicode.IsLetter(r) || len(sym) == 2 {
			break
		}
		if len(sym) == 0 {
			sym = append(sym, unicode.ToUpper(r))
		} else {
			sym = append(sym, unicode.ToLower(r))
		}
	}
	return string(sym)
}

func item(b *cif.DataBlock, names ...string) (cif.Value, bool) {
	for _, name := range names {
		if v, ok := b.Items[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func hasLoop(b *cif.DataBlock, names ...string) bool {
	for _, name := range names {
		if _, ok := b.Loops[name]; ok {
			return true
		}
	}
	return false
}

// column returns the loop column for the first of names present in b,
// as numbers.
func column(b *cif.DataBlock, names ...string) ([]float64, bool, error) {
	for _, name := range names {
		lp, ok := b.Loops[name]
		if !ok {
			continue
		}
		col := lp.Get(name)
		if f := col.Floats(); f != nil {
			ret := make([]float64, len(f))
			copy(ret, f)
			return ret, true, nil
		}
		if ints := col.Ints(); ints != nil {
			ret := make([]float64, len(ints))
			for i, v := range ints {
				ret[i] = float64(v)
			}
			return ret, true, nil
		}
		strs := col.Strings()
		ret := make([]float64, len(strs))
		for i, s := range strs {
			v, err := parseNumber(s)
			if err != nil {
				return nil, true, fmt.Errorf("_%s, row %d: %w", name, i+1, err)
			}
			ret[i] = v
		}
		return ret, true, nil
	}
	return nil, false, nil
}

func stringColumn(b *cif.DataBlock, names ...string) []string {
	for _, name := range names {
		lp, ok := b.Loops[name]
		if !ok {
			continue
		}
		if s := lp.Get(name).Strings(); s != nil {
			return s
		}
	}
	return nil
}

func number(v cif.Value) (float64, error) {
	switch raw := v.Raw().(type) {
	case int:
		return float64(raw), nil
	case float64:
		return raw, nil
	case string:
		return parseNumber(raw)
	}
	return 0, fmt.Errorf("unexpected value %v", v.Raw())
}

// parseNumber parses a CIF number, which may carry its standard
// uncertainty in parentheses, as in "5.6402(3)".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	if s == "." || s == "?" {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.ParseFloat(s, 64)
}
