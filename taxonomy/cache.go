// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import "errors"

// Cache is a Resolver that stores the taxa
// returned by another Resolver.
// Unknown taxa are cached too.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	r       Resolver
	taxa    map[int64]Taxon
	missing map[int64]bool
}

// NewCache returns a cache for a resolver.
func NewCache(r Resolver) *Cache {
	return &Cache{
		r:       r,
		taxa:    make(map[int64]Taxon),
		missing: make(map[int64]bool),
	}
}

// Taxon returns the taxon with the given ID.
func (c *Cache) Taxon(id int64) (Taxon, error) {
	if t, ok := c.taxa[id]; ok {
		return t, nil
	}
	if c.missing[id] {
		return Taxon{}, ErrNotFound
	}

	t, err := c.r.Taxon(id)
	if errors.Is(err, ErrNotFound) {
		c.missing[id] = true
		return Taxon{}, err
	}
	if err != nil {
		return Taxon{}, err
	}
	c.taxa[id] = t
	return t, nil
}
