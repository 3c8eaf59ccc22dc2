/*
 * main.go, part of asann.
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

// Command structinfo prints the unit cell and atomic coordinates of
// structure files, as read by the asann readers.
//
//	structinfo [-config file] [-reader name] [-coords auto|frac|cart] [-output text|json|xyz] file...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/RubenStaub/asann"
	"github.com/RubenStaub/asann/config"
	_ "github.com/RubenStaub/asann/readers/all"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("structinfo: ")

	cfgfile := flag.String("config", "", "YAML or TOML configuration file")
	reader := flag.String("reader", "", "force a reader (gochem, cif)")
	format := flag.String("format", "", "read the files as this format, regardless of their extension")
	coords := flag.String("coords", "", "coordinates to print: auto, frac or cart")
	output := flag.String("output", "", "output format: text, json or xyz")
	frame := flag.Int("frame", -1, "frame to read from multi-frame files, counting from 0; negative values count from the end")
	block := flag.String("block", "", "CIF data block to read")
	prec := flag.Int("prec", -1, "decimals to print")
	list := flag.Bool("readers", false, "list the available readers and exit")
	flag.Parse()

	if *list {
		for _, r := range asann.Readers() {
			fmt.Println(r.Name(), r.Formats())
		}
		return
	}

	c := config.Default()
	if *cfgfile != "" {
		var err error
		log.Printf("Reading configuration file `%s`\n", *cfgfile)
		c, err = config.New(*cfgfile)
		if err != nil {
			log.Fatal(fmt.Errorf("config.New: %w", err))
		}
	}
	if err := c.FromEnv(); err != nil {
		log.Fatal(err)
	}
	//flags have the last word
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "reader":
			c.Reader = *reader
		case "format":
			c.Format = *format
		case "coords":
			c.Coords = config.CoordsKind(*coords)
		case "output":
			c.Output = config.Output(*output)
		case "frame":
			c.Frame = *frame
		case "block":
			c.Block = *block
		case "prec":
			c.Precision = *prec
		}
	})
	c.Files = append(c.Files, flag.Args()...)
	if err := c.Check(); err != nil {
		log.Fatal(err)
	}
	if len(c.Files) == 0 {
		log.Fatal("At least one structure file must be given")
	}
	if !asann.Available() {
		log.Fatal(asann.ErrNoReader)
	}

	read := asann.FromFile
	if c.Cache > 0 {
		cache, err := asann.NewCache(c.Cache)
		if err != nil {
			log.Fatal(err)
		}
		read = cache.FromFile
	}

	p := newPrinter(os.Stdout, c)
	for _, name := range c.Files {
		s, err := read(name, c.Options()...)
		if err != nil {
			log.Fatal(err)
		}
		if err := p.print(s); err != nil {
			log.Fatal(err)
		}
	}
	if err := p.flush(); err != nil {
		log.Fatal(err)
	}
}
