/*
 * config.go, part of asann.
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

// Package config holds the settings of the structinfo program. They can be
// read from a YAML or TOML file, from the environment (and a .env file) and
// from command line flags, in increasing order of precedence.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RubenStaub/asann"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// CoordsKind is the kind of coordinates to print.
type CoordsKind string

// Accepted coordinate kinds. Auto means fractional coordinates for
// crystals and cartesian ones for molecules.
var (
	CAuto CoordsKind = "auto"
	CFrac CoordsKind = "frac"
	CCart CoordsKind = "cart"
)

// Output is the output format.
type Output string

// Accepted outputs.
var (
	OText Output = "text"
	OJSON Output = "json"
	OXYZ  Output = "xyz"
)

// Cfg is a structure containing the parameters specified in the configuration
// file. It can be instanced through the New function or by "hand". If it is
// instanced by hand, please start from Default, or call Defaults, and then Check.
type Cfg struct {
	// Files are the structure files to read.
	Files []string `yaml:"files" toml:"files"`

	// Reader forces a reader (gochem or cif). Empty means automatic.
	Reader string `yaml:"reader" toml:"reader"`

	// Format overrides the format deduced from the file extensions.
	Format string `yaml:"format" toml:"format"`

	// Frame is the frame to read in multi-frame files, starting from 0.
	// Negative values count from the end. The default, -1, is the last frame.
	Frame int `yaml:"frame" toml:"frame"`

	// Block is the CIF data block to read.
	Block string `yaml:"block" toml:"block"`

	// Coords is the kind of coordinates to print.
	Coords CoordsKind `yaml:"coords" toml:"coords"`

	// Output is the output format.
	Output Output `yaml:"output" toml:"output"`

	// Precision is the number of decimals printed in text and xyz outputs.
	Precision int `yaml:"precision" toml:"precision"`

	// Cache is the number of structures kept in memory, 0 disables the cache.
	Cache int `yaml:"cache" toml:"cache"`
}

// Default returns a Cfg with the default values.
func Default() *Cfg {
	c := &Cfg{Frame: -1, Precision: 6}
	c.Defaults()
	return c
}

// Defaults fills the empty string fields of c that have a default. Numeric
// fields, where 0 is a valid value, only get their defaults from Default.
func (c *Cfg) Defaults() {
	if c.Coords == "" {
		c.Coords = CAuto
	}
	if c.Output == "" {
		c.Output = OText
	}
}

// New opens and decodes the specified configuration file. YAML is assumed
// unless the file has the .toml extension. The file is decoded over Default,
// so missing keys keep their default values. New calls Defaults and Check.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Default()
	r := bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(r).Decode(c)
	default:
		err = yaml.NewDecoder(r).Decode(c)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	c.Defaults()
	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}

	return c, nil
}

// FromEnv loads the .env file in the current directory, if any, and
// overrides the fields of c with the ASANN_* environment variables that
// are set.
func (c *Cfg) FromEnv() error {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("ASANN_READER")); v != "" {
		c.Reader = v
	}
	if v := strings.TrimSpace(os.Getenv("ASANN_FORMAT")); v != "" {
		c.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("ASANN_COORDS")); v != "" {
		c.Coords = CoordsKind(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("ASANN_OUTPUT")); v != "" {
		c.Output = Output(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("ASANN_PRECISION")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ASANN_PRECISION: %w", err)
		}
		c.Precision = p
	}
	return nil
}

// Check checks if Cfg is correct. It returns an error if a field doesn't meet
// the requirements.
func (c *Cfg) Check() error {
	switch c.Coords {
	case CAuto, CFrac, CCart:
	default:
		return fmt.Errorf("coords must be auto, frac or cart, not %q", c.Coords)
	}

	switch c.Output {
	case OText, OJSON, OXYZ:
	default:
		return fmt.Errorf("output must be text, json or xyz, not %q", c.Output)
	}

	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("precision must be between 0 and 12")
	}

	if c.Cache < 0 {
		return fmt.Errorf("cache cannot be lower than 0")
	}

	return nil
}

// Options returns the reading options corresponding to c.
func (c *Cfg) Options() []asann.Option {
	var opts []asann.Option
	if c.Reader != "" {
		opts = append(opts, asann.WithReader(c.Reader))
	}
	if c.Format != "" {
		opts = append(opts, asann.WithFormat(c.Format))
	}
	opts = append(opts, asann.WithFrame(c.Frame))
	if c.Block != "" {
		opts = append(opts, asann.WithBlock(c.Block))
	}
	return opts
}
