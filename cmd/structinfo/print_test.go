package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/RubenStaub/asann"
	"github.com/RubenStaub/asann/config"
)

var testdir = "../../testdata/"

func TestText(Te *testing.T) {
	s, err := asann.FromFile(testdir + "NaCl.cif")
	if err != nil {
		Te.Fatal(err)
	}
	var out bytes.Buffer
	c := config.Default()
	c.Precision = 3
	p := newPrinter(&out, c)
	if err := p.print(s); err != nil {
		Te.Fatal(err)
	}
	if err := p.flush(); err != nil {
		Te.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"reader: cif", "pbc: true", "atoms: 8", "coordinates (fractional)", "alpha beta gamma: 90.00 90.00 90.00"} {
		if !strings.Contains(text, want) {
			Te.Errorf("Output lacks %q:\n%s", want, text)
		}
	}
}

func TestJSON(Te *testing.T) {
	var out bytes.Buffer
	c := config.Default()
	c.Output = config.OJSON
	c.Coords = config.CCart
	p := newPrinter(&out, c)
	for _, name := range []string{"NaCl.cif", "water.xyz"} {
		s, err := asann.FromFile(testdir + name)
		if err != nil {
			Te.Fatal(err)
		}
		if err := p.print(s); err != nil {
			Te.Fatal(err)
		}
	}
	if err := p.flush(); err != nil {
		Te.Fatal(err)
	}
	var js []jsonStructure
	if err := json.Unmarshal(out.Bytes(), &js); err != nil {
		Te.Fatal(err)
	}
	if len(js) != 2 {
		Te.Fatalf("Expected 2 structures, got %d", len(js))
	}
	if js[0].Reader != "cif" || !js[0].PBC || js[0].Fractional || len(js[0].Cell) != 3 {
		Te.Errorf("Wrong first structure %+v", js[0])
	}
	if js[1].Reader != "gochem" || js[1].PBC || js[1].Cell != nil || len(js[1].Coords) != 3 {
		Te.Errorf("Wrong second structure %+v", js[1])
	}
}

func TestFracWithoutCell(Te *testing.T) {
	s, err := asann.FromFile(testdir + "water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	c := config.Default()
	c.Coords = config.CFrac
	var out bytes.Buffer
	if err := newPrinter(&out, c).print(s); err == nil {
		Te.Error("Fractional coordinates of a molecule should fail")
	}
}

func TestXYZOutput(Te *testing.T) {
	s, err := asann.FromFile(testdir + "water_box.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	c := config.Default()
	c.Output = config.OXYZ
	var out bytes.Buffer
	p := newPrinter(&out, c)
	if err := p.print(s); err != nil {
		Te.Fatal(err)
	}
	p.flush()
	lines := strings.Split(out.String(), "\n")
	if lines[0] != "3" || !strings.HasPrefix(lines[1], `Lattice="10 0 0 0 10 0 0 0 10"`) {
		Te.Errorf("Wrong xyz header:\n%s", out.String())
	}
}
