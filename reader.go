/*
 * reader.go, part of asann.
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

package asann

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Options control how a structure file is read. Use NewOptions to get
// the defaults, which let FromFile pick everything and read the last frame.
type Options struct {
	//Reader forces the use of the reader with that name.
	Reader string

	//Format overrides the format deduced from the file extension.
	Format string

	//Frame is the model/frame to read, for files containing several.
	//Negative values count from the end, so -1 is the last frame.
	Frame int

	//Block is the name of the data block to read, for CIF files.
	Block string
}

// Option sets a field in Options.
type Option func(*Options)

// WithReader forces the reader called name.
func WithReader(name string) Option {
	return func(o *Options) { o.Reader = strings.ToLower(strings.TrimSpace(name)) }
}

// WithFormat makes the file be read as format (a file extension, e.g. "xyz")
// regardless of its name.
func WithFormat(format string) Option {
	return func(o *Options) { o.Format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".") }
}

// WithFrame selects the frame (starting from 0) to read from multi-frame files.
// Negative values count from the last frame, which is -1 and the default.
func WithFrame(i int) Option {
	return func(o *Options) { o.Frame = i }
}

// WithBlock selects the CIF data block to read.
func WithBlock(name string) Option {
	return func(o *Options) { o.Block = name }
}

// NewOptions returns Options with all opts applied.
func NewOptions(opts ...Option) *Options {
	o := &Options{Frame: -1}
	for _, f := range opts {
		if f != nil {
			f(o)
		}
	}
	return o
}

type registered struct {
	priority int
	r        Reader
}

// Registry holds a set of readers sorted by preference. Most programs only
// need the package-level functions, which use a default Registry.
type Registry struct {
	mu      sync.RWMutex
	readers []registered
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return new(Registry)
}

var defaultRegistry = NewRegistry()

// Register adds r to the registry. Readers with lower priority are
// preferred. It panics if r is nil or if a reader with the same name
// is already registered.
func (R *Registry) Register(priority int, r Reader) {
	if r == nil {
		panic("asann: Register reader is nil")
	}
	R.mu.Lock()
	defer R.mu.Unlock()
	for _, v := range R.readers {
		if v.r.Name() == r.Name() {
			panic("asann: Register called twice for reader " + r.Name())
		}
	}
	R.readers = append(R.readers, registered{priority, r})
	sort.SliceStable(R.readers, func(i, j int) bool { return R.readers[i].priority < R.readers[j].priority })
}

// Readers returns the registered readers, the preferred one first.
func (R *Registry) Readers() []Reader {
	R.mu.RLock()
	defer R.mu.RUnlock()
	ret := make([]Reader, 0, len(R.readers))
	for _, v := range R.readers {
		ret = append(ret, v.r)
	}
	return ret
}

// Lookup returns the reader called name, and whether it was found.
func (R *Registry) Lookup(name string) (Reader, bool) {
	for _, r := range R.Readers() {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Available returns true if at least one reader is registered.
func (R *Registry) Available() bool {
	return len(R.Readers()) > 0
}

// FromFile reads filename with the preferred reader able to handle its format.
// Errors from the reader are returned, decorated, as they come.
func (R *Registry) FromFile(filename string, opts ...Option) (Structure, error) {
	o := NewOptions(opts...)
	readers := R.Readers()
	if len(readers) == 0 {
		return nil, NewError(ErrNoReader, filename, "FromFile")
	}
	if o.Reader != "" {
		r, ok := R.Lookup(o.Reader)
		if !ok {
			return nil, NewError(ErrUnknownReader, filename, "FromFile", fmt.Sprintf("reader %q", o.Reader))
		}
		s, err := r.Read(filename, o)
		if err != nil {
			return nil, DecorateError(err, "FromFile")
		}
		return s, nil
	}
	format := o.Format
	if format == "" {
		format, _ = Format(filename)
	}
	for i, r := range readers {
		if !handles(r, format) {
			if i == 0 {
				log.Printf("asann: reader %s can't read %q files, trying other readers", r.Name(), format)
			}
			continue
		}
		s, err := r.Read(filename, o)
		if err != nil {
			return nil, DecorateError(err, "FromFile")
		}
		return s, nil
	}
	return nil, NewError(ErrUnsupportedFormat, filename, "FromFile", fmt.Sprintf("format %q", format))
}

func handles(r Reader, format string) bool {
	for _, v := range r.Formats() {
		if v == format {
			return true
		}
	}
	return false
}

// Register adds r to the default registry. See Registry.Register.
func Register(priority int, r Reader) {
	defaultRegistry.Register(priority, r)
}

// Readers returns the readers in the default registry, the preferred one first.
func Readers() []Reader {
	return defaultRegistry.Readers()
}

// Available returns true if at least one reader was linked into the program.
func Available() bool {
	return defaultRegistry.Available()
}

// FromFile reads the structure in filename using the default registry.
// See Registry.FromFile.
func FromFile(filename string, opts ...Option) (Structure, error) {
	s, err := defaultRegistry.FromFile(filename, opts...)
	return s, err
}
