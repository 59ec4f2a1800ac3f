// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/staranto/taxogo/internal/item"
)

// DefaultSuffixLen is the length of the extension stripped from item
// filenames, e.g. ".yml" or ".hcl".
const DefaultSuffixLen = 4

var errInvalidKey = errors.New("not a taxonomy name")

// Loader reads a complete taxonomy.
type Loader interface {
	Load(key string) (item.Items, error)
}

// DirLoader loads a taxonomy from root/key, decoding each file with Items.
type DirLoader struct {
	Root      string
	SuffixLen int
	Exclude   []string
	Items     item.Loader
}

// Load scans root/key and decodes every regular file in it. The scan is all or
// nothing: the first item that fails aborts the load and no items are
// returned.
func (l *DirLoader) Load(key string) (item.Items, error) {
	dir := filepath.Join(l.Root, key)
	ll := log.WithFields(log.Fields{"taxonomy": key, "dir": dir})

	// A key names one directory directly under the root.
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return nil, &DirectoryNotFoundError{Taxonomy: key, Path: dir, Err: errInvalidKey}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &DirectoryNotFoundError{Taxonomy: key, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &DirectoryNotFoundError{Taxonomy: key, Path: dir, Err: errors.New("not a directory")}
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Taxonomy: key, File: dir, Err: err}
	}

	suffixLen := l.SuffixLen
	if suffixLen <= 0 {
		suffixLen = DefaultSuffixLen
	}

	loader := l.Items
	if loader == nil {
		loader = item.Default()
	}

	items := make(item.Items, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if l.excluded(name) {
			ll.Debugf("excluded %s", name)
			continue
		}

		// Stat follows symlinks, so a link to a regular file is an item.
		fi, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				ll.Debugf("skipping dangling entry %s", name)
				continue
			}
			return nil, &LoadError{Taxonomy: key, File: name, Err: err}
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		if len(name) <= suffixLen {
			ll.Warnf("skipping %s: name too short for a %d character suffix", name, suffixLen)
			continue
		}
		id := name[:len(name)-suffixLen]

		// The identifier rule is positional; an extension of another length
		// leaves part of it in the identifier, or eats into the name.
		if ext := filepath.Ext(name); ext != "" && len(ext) != suffixLen {
			ll.Warnf("%s: extension %s is not %d characters, identifier is %q", name, ext, suffixLen, id)
		}

		value, err := loader.Load(path)
		if err != nil {
			return nil, &LoadError{Taxonomy: key, File: name, Err: err}
		}

		if _, dup := items[id]; dup {
			ll.Warnf("duplicate identifier %s, %s wins", id, name)
		}
		items[id] = value
	}

	ll.Debugf("loaded %d items", len(items))
	return items, nil
}

func (l *DirLoader) excluded(name string) bool {
	for _, pattern := range l.Exclude {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			log.WithError(err).Warnf("bad exclude pattern %q", pattern)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(key string) (item.Items, error)

func (f LoaderFunc) Load(key string) (item.Items, error) {
	return f(key)
}
