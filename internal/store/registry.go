// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"

	"github.com/staranto/taxogo/internal/item"
)

// Registry is the set of taxonomies found under the storage root when
// Discover ran.
type Registry struct {
	categories map[string]*Category
}

// Category is a handle on one discovered taxonomy. Its name is the directory
// name and is used as the key without inflection.
type Category struct {
	name  string
	dir   string
	store *Store
}

// Discover lists the immediate subdirectories of the storage root. Nothing is
// loaded until a Category is read.
func (s *Store) Discover() (*Registry, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage root: %w", err)
	}

	r := &Registry{categories: make(map[string]*Category)}
	for _, e := range entries {
		dir := filepath.Join(s.root, e.Name())
		fi, err := os.Stat(dir)
		if err != nil || !fi.IsDir() {
			continue
		}
		r.categories[e.Name()] = &Category{name: e.Name(), dir: dir, store: s}
	}

	log.Debugf("discovered %d taxonomies under %s", len(r.categories), s.root)
	return r, nil
}

// Names returns the discovered taxonomy names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.categories))
	for n := range r.categories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Category(name string) (*Category, bool) {
	c, ok := r.categories[name]
	return c, ok
}

func (r *Registry) Len() int {
	return len(r.categories)
}

func (c *Category) Name() string { return c.name }

func (c *Category) Dir() string { return c.dir }

// Items loads (once) and returns every item of the taxonomy.
func (c *Category) Items() (item.Items, error) {
	return c.store.load(c.name)
}

// Get returns a single item.
func (c *Category) Get(id string) (any, error) {
	items, err := c.store.load(c.name)
	if err != nil {
		return nil, err
	}
	return c.store.pick(c.name, items, id)
}

// Stat counts the regular files in the taxonomy directory and their total
// size without decoding them.
func (c *Category) Stat() (files int, size int64, err error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, 0, &DirectoryNotFoundError{Taxonomy: c.name, Path: c.dir, Err: err}
	}
	for _, e := range entries {
		fi, err := os.Stat(filepath.Join(c.dir, e.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files++
		size += fi.Size()
	}
	return files, size, nil
}
