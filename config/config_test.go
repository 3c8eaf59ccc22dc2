package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RubenStaub/asann"
)

func write(Te *testing.T, name, contents string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestYAML(Te *testing.T) {
	path := write(Te, "cfg.yaml", `files: [NaCl.cif, water.xyz]
reader: cif
coords: frac
output: json
block: nacl
cache: 4
`)
	c, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(c.Files) != 2 || c.Reader != "cif" || c.Coords != CFrac || c.Output != OJSON || c.Cache != 4 {
		Te.Errorf("Wrong configuration %+v", c)
	}
	if c.Precision != 6 {
		Te.Errorf("The default precision was not set: %d", c.Precision)
	}
	o := asann.NewOptions(c.Options()...)
	if o.Reader != "cif" || o.Block != "nacl" || o.Frame != -1 {
		Te.Errorf("Wrong options %+v", o)
	}
}

func TestTOML(Te *testing.T) {
	path := write(Te, "cfg.toml", `files = ["water_box.pdb"]
format = "pdb"
frame = 2
precision = 3
`)
	c, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Format != "pdb" || c.Frame != 2 || c.Precision != 3 || c.Coords != CAuto || c.Output != OText {
		Te.Errorf("Wrong configuration %+v", c)
	}
	o := asann.NewOptions(c.Options()...)
	if o.Format != "pdb" || o.Frame != 2 {
		Te.Errorf("Wrong options %+v", o)
	}
}

func TestExplicitZero(Te *testing.T) {
	c, err := New(write(Te, "zero.yaml", "precision: 0\nframe: 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if c.Precision != 0 || c.Frame != 0 {
		Te.Errorf("Explicit zeros were replaced by defaults: %+v", c)
	}
	if o := asann.NewOptions(c.Options()...); o.Frame != 0 {
		Te.Errorf("The first frame was not requested: %+v", o)
	}
	c, err = New(write(Te, "zero.toml", "precision = 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if c.Precision != 0 || c.Frame != -1 {
		Te.Errorf("Wrong TOML configuration %+v", c)
	}
}

func TestCheck(Te *testing.T) {
	bad := []Cfg{
		{Coords: "polar", Output: OText},
		{Coords: CAuto, Output: "html"},
		{Coords: CAuto, Output: OText, Precision: 20},
		{Coords: CAuto, Output: OText, Cache: -2},
	}
	for _, c := range bad {
		if err := c.Check(); err == nil {
			Te.Errorf("Check should reject %+v", c)
		}
	}
	if err := Default().Check(); err != nil {
		Te.Errorf("The default configuration should be valid: %v", err)
	}
	if _, err := New(write(Te, "bad.yaml", "coords: polar\n")); err == nil {
		Te.Error("New should check the configuration")
	}
	if _, err := New(filepath.Join(Te.TempDir(), "missing.yaml")); err == nil {
		Te.Error("New should fail for a missing file")
	}
}

func TestFromEnv(Te *testing.T) {
	Te.Setenv("ASANN_READER", "gochem")
	Te.Setenv("ASANN_COORDS", "CART")
	Te.Setenv("ASANN_OUTPUT", "xyz")
	Te.Setenv("ASANN_PRECISION", "4")
	c := Default()
	if err := c.FromEnv(); err != nil {
		Te.Fatal(err)
	}
	if c.Reader != "gochem" || c.Coords != CCart || c.Output != OXYZ || c.Precision != 4 {
		Te.Errorf("Environment not applied: %+v", c)
	}
	Te.Setenv("ASANN_PRECISION", "many")
	if err := c.FromEnv(); err == nil {
		Te.Error("A non-numeric precision should fail")
	}
}
