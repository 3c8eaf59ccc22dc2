/*
 * print.go, part of asann.
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

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/RubenStaub/asann"
	"github.com/RubenStaub/asann/config"
	v3 "github.com/rmera/gochem/v3"
)

// chooseCoords returns the coordinates of s requested by kind, and
// whether they are fractional.
func chooseCoords(s asann.Structure, kind config.CoordsKind) (*v3.Matrix, bool, error) {
	switch kind {
	case config.CFrac:
		c, err := s.FracCoords()
		return c, true, err
	case config.CCart:
		return s.CartCoords(), false, nil
	}
	c, err := s.Coords()
	return c, s.PBC(), err
}

func rows(m *v3.Matrix) [][3]float64 {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	ret := make([][3]float64, r)
	for i := range ret {
		for j := 0; j < 3; j++ {
			ret[i][j] = m.At(i, j)
		}
	}
	return ret
}

// jsonStructure is what gets printed for each structure with -output json.
type jsonStructure struct {
	File       string       `json:"file"`
	Reader     string       `json:"reader"`
	PBC        bool         `json:"pbc"`
	Cell       [][3]float64 `json:"cell,omitempty"`
	Parameters []float64    `json:"parameters,omitempty"`
	Symbols    []string     `json:"symbols"`
	Fractional bool         `json:"fractional"`
	Coords     [][3]float64 `json:"coords"`
}

type printer struct {
	w    *bufio.Writer
	cfg  *config.Cfg
	json []jsonStructure
}

func newPrinter(w io.Writer, cfg *config.Cfg) *printer {
	return &printer{w: bufio.NewWriter(w), cfg: cfg}
}

func (p *printer) print(s asann.Structure) error {
	switch p.cfg.Output {
	case config.OJSON:
		return p.addJSON(s)
	case config.OXYZ:
		return p.xyz(s)
	}
	return p.text(s)
}

func (p *printer) flush() error {
	if p.cfg.Output == config.OJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p.json); err != nil {
			return err
		}
	}
	return p.w.Flush()
}

func (p *printer) addJSON(s asann.Structure) error {
	c, frac, err := chooseCoords(s, p.cfg.Coords)
	if err != nil {
		return err
	}
	js := jsonStructure{
		File:       s.FileName(),
		Reader:     s.Reader(),
		PBC:        s.PBC(),
		Symbols:    s.Symbols(),
		Fractional: frac,
		Coords:     rows(c),
	}
	if cell := s.CellMatrix(); cell != nil {
		js.Cell = rows(cell)
		par := asann.CellParameters(cell)
		js.Parameters = par[:]
	}
	p.json = append(p.json, js)
	return nil
}

func (p *printer) vec(v [3]float64) string {
	prec := p.cfg.Precision
	w := prec + 6
	return fmt.Sprintf("%*.*f %*.*f %*.*f", w, prec, v[0], w, prec, v[1], w, prec, v[2])
}

func (p *printer) text(s asann.Structure) error {
	c, frac, err := chooseCoords(s, p.cfg.Coords)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.w, "file: %s\nreader: %s\npbc: %t\n", s.FileName(), s.Reader(), s.PBC())
	if cell := s.CellMatrix(); cell != nil {
		fmt.Fprintln(p.w, "cell:")
		for _, v := range rows(cell) {
			fmt.Fprintln(p.w, p.vec(v))
		}
		par := asann.CellParameters(cell)
		fmt.Fprintf(p.w, "a b c: %.4f %.4f %.4f\nalpha beta gamma: %.2f %.2f %.2f\nvolume: %.4f\n",
			par[0], par[1], par[2], par[3], par[4], par[5], asann.Volume(cell))
	}
	kind := "cartesian"
	if frac {
		kind = "fractional"
	}
	fmt.Fprintf(p.w, "atoms: %d\ncoordinates (%s):\n", s.Len(), kind)
	sym := s.Symbols()
	for i, v := range rows(c) {
		fmt.Fprintf(p.w, "%-3s %s\n", sym[i], p.vec(v))
	}
	fmt.Fprintln(p.w)
	return nil
}

// xyz writes the cartesian coordinates in the extended XYZ format, with the
// cell in the Lattice key when there is one.
func (p *printer) xyz(s asann.Structure) error {
	fmt.Fprintf(p.w, "%d\n", s.Len())
	comment := fmt.Sprintf("file=%q", s.FileName())
	if cell := s.CellMatrix(); cell != nil {
		var l []string
		for _, v := range rows(cell) {
			l = append(l, fmt.Sprintf("%g %g %g", v[0], v[1], v[2]))
		}
		comment = fmt.Sprintf("Lattice=%q pbc=\"T T T\" %s", strings.Join(l, " "), comment)
	}
	fmt.Fprintln(p.w, comment)
	sym := s.Symbols()
	for i, v := range rows(s.CartCoords()) {
		fmt.Fprintf(p.w, "%-3s %s\n", sym[i], p.vec(v))
	}
	return nil
}
