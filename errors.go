/*
 * errors.go, part of asann.
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
	"errors"
	"fmt"
)

var (
	// ErrNoReader means that no structure reader has been linked into the program.
	ErrNoReader = errors.New("cannot find any suitable library for reading file structures")

	// ErrUnknownReader means that a reader was requested by name, but it is not registered.
	ErrUnknownReader = errors.New("unknown structure reader")

	// ErrUnsupportedFormat means that none of the registered readers handles the file format.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoCell means that a cell-dependent quantity was requested for a structure without PBC.
	ErrNoCell = errors.New("no unit cell defined")

	// ErrBadCell means that the cell is malformed or degenerate.
	ErrBadCell = errors.New("invalid unit cell")

	// ErrNoSites means that the file contains no atomic positions.
	ErrNoSites = errors.New("no atomic positions found")

	// ErrFrame means that the requested frame or block is not in the file.
	ErrFrame = errors.New("frame not found")
)

// Error is the error type returned by this package and by the readers.
// The Decorate method allows to add and retrieve the list of functions the
// error went through, without changing the type of the error. Unwrap gives
// the underlying error, so errors.Is works with the Err* variables above.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

// NewError returns an Error wrapping err, for the file filename, with caller
// as the first decoration.
func NewError(err error, filename, caller string, message ...string) Error {
	msg := err.Error()
	if len(message) > 0 && message[0] != "" {
		msg = message[0] + ": " + msg
	}
	ret := Error{message: msg, filename: filename, critical: true, err: err}
	if caller != "" {
		ret.deco = []string{caller}
	}
	return ret
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("asann: %s", err.message)
	}
	return fmt.Sprintf("asann: %s: %s", err.filename, err.message)
}

// Decorate adds deco to the error, unless deco is empty, and returns
// the resulting decoration slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the name of the file associated with the error.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

// Unwrap returns the underlying error.
func (err Error) Unwrap() error { return err.err }

// DecorateError adds caller to the decoration of err if err is an Error.
// Other errors, and nil, are returned unchanged.
func DecorateError(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	deco := make([]string, len(e.deco), len(e.deco)+1)
	copy(deco, e.deco)
	e.deco = append(deco, caller)
	return e
}
