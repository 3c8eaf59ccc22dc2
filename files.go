/*
 * files.go, part of asann.
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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format returns the format of filename, i.e. its lowercase extension without
// the dot, and the compression, "gz", "zst" or the empty string if the file
// is not compressed. For "NaCl.cif.gz" it returns "cif" and "gz".
func Format(filename string) (format, compression string) {
	name := strings.ToLower(filepath.Base(filename))
	ext := filepath.Ext(name)
	switch ext {
	case ".gz":
		compression = "gz"
	case ".zst", ".zstd":
		compression = "zst"
	}
	if compression != "" {
		name = strings.TrimSuffix(name, ext)
		ext = filepath.Ext(name)
	}
	return strings.TrimPrefix(ext, "."), compression
}

// readCloser closes both the decompressor and the file under it.
type readCloser struct {
	io.Reader
	closeall func() error
}

func (r readCloser) Close() error {
	return r.closeall()
}

// Open opens filename for reading. Gzip (.gz) and zstd (.zst) files are
// decompressed transparently.
func Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, NewError(err, filename, "Open")
	}
	_, compression := Format(filename)
	switch compression {
	case "gz":
		r, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, NewError(err, filename, "Open", "can't read gzip header")
		}
		return readCloser{r, func() error {
			r.Close()
			return f.Close()
		}}, nil
	case "zst":
		r, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, NewError(err, filename, "Open", "can't start zstd decoder")
		}
		return readCloser{r, func() error {
			r.Close() //the zstd decoder doesn't return an error on Close.
			return f.Close()
		}}, nil
	}
	return f, nil
}

// Decompress returns the name of a plain-text version of filename, for
// libraries that can only read from a file name. If filename is not
// compressed, it is returned as it is. Otherwise its contents are
// decompressed to a temporary file that keeps the format extension.
// The returned function removes the temporary file, and must always be called.
func Decompress(filename string) (string, func(), error) {
	format, compression := Format(filename)
	if compression == "" {
		return filename, func() {}, nil
	}
	in, err := Open(filename)
	if err != nil {
		return "", func() {}, DecorateError(err, "Decompress")
	}
	defer in.Close()
	out, err := os.CreateTemp("", "asann-*."+format)
	if err != nil {
		return "", func() {}, NewError(err, filename, "Decompress")
	}
	cleanup := func() { os.Remove(out.Name()) }
	w := bufio.NewWriter(out)
	if _, err = io.Copy(w, in); err == nil {
		err = w.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		cleanup()
		return "", func() {}, NewError(err, filename, "Decompress")
	}
	return out.Name(), cleanup, nil
}
