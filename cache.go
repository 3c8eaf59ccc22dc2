/*
 * cache.go, part of asann.
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
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache keeps the most recently read structures in memory. A cached
// structure is read again if its file changes size or modification time.
// Structures never hand out their internal matrices, so sharing them is safe.
type Cache struct {
	reg *Registry
	lru *lru.Cache[string, Structure]
}

// NewCache returns a Cache holding up to size structures. It reads files
// through the default registry, unless another one is given.
func NewCache(size int, reg ...*Registry) (*Cache, error) {
	l, err := lru.New[string, Structure](size)
	if err != nil {
		return nil, NewError(err, "", "NewCache")
	}
	C := &Cache{reg: defaultRegistry, lru: l}
	if len(reg) > 0 && reg[0] != nil {
		C.reg = reg[0]
	}
	return C, nil
}

func cacheKey(filename string, info os.FileInfo, o *Options) string {
	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	return fmt.Sprintf("%s|%d|%d|%s|%s|%d|%s", abs, info.Size(), info.ModTime().UnixNano(), o.Reader, o.Format, o.Frame, o.Block)
}

// FromFile works like the FromFile function, but returns the cached
// structure if the same file was already read with the same options.
func (C *Cache) FromFile(filename string, opts ...Option) (Structure, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, NewError(err, filename, "Cache.FromFile")
	}
	key := cacheKey(filename, info, NewOptions(opts...))
	if s, ok := C.lru.Get(key); ok {
		return s, nil
	}
	s, err := C.reg.FromFile(filename, opts...)
	if err != nil {
		return nil, DecorateError(err, "Cache.FromFile")
	}
	C.lru.Add(key, s)
	return s, nil
}

// Len returns the number of cached structures.
func (C *Cache) Len() int { return C.lru.Len() }

// Purge removes all the cached structures.
func (C *Cache) Purge() { C.lru.Purge() }
