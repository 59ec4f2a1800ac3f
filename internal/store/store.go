// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"

	"github.com/staranto/taxogo/internal/cache"
	"github.com/staranto/taxogo/internal/inflector"
	"github.com/staranto/taxogo/internal/item"
)

// getPrefix is the optional marker in front of a lookup name.
const getPrefix = "get"

// Store is the lazy taxonomy accessor. It is safe for concurrent use.
type Store struct {
	root      string
	inflect   inflector.Func
	suffixLen int
	exclude   []string
	items     item.Loader
	loader    Loader

	cache  *cache.Cache
	flight singleflight.Group
}

type Option func(*Store)

// WithInflector installs a custom inflector. A nil f disables inflection.
func WithInflector(f inflector.Func) Option {
	return func(s *Store) {
		s.inflect = f
	}
}

// WithoutInflector uses lookup names verbatim as taxonomy keys.
func WithoutInflector() Option {
	return WithInflector(nil)
}

// WithSuffixLen sets how many trailing characters of a filename are dropped
// to form the item identifier.
func WithSuffixLen(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.suffixLen = n
		}
	}
}

// WithExclude skips item files whose name matches any of the glob patterns.
func WithExclude(patterns ...string) Option {
	return func(s *Store) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// WithItemLoader replaces the extension based item decoders.
func WithItemLoader(l item.Loader) Option {
	return func(s *Store) {
		s.items = l
	}
}

// WithLoader replaces the directory scanner. SuffixLen, Exclude and
// ItemLoader options do not apply to a custom Loader.
func WithLoader(l Loader) Option {
	return func(s *Store) {
		s.loader = l
	}
}

// New returns a Store rooted at root, which must be an existing directory.
// The default inflector is inflector.Underscore.
func New(root string, opts ...Option) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrStorageRoot, abs)
	}

	s := &Store{
		root:      abs,
		inflect:   inflector.Underscore,
		suffixLen: DefaultSuffixLen,
		items:     item.Default(),
		cache:     cache.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		s.loader = &DirLoader{
			Root:      s.root,
			SuffixLen: s.suffixLen,
			Exclude:   s.exclude,
			Items:     s.items,
		}
	}

	log.Debugf("store root=%s suffixLen=%d inflect=%v", s.root, s.suffixLen, s.inflect != nil)
	return s, nil
}

// Root returns the absolute storage root.
func (s *Store) Root() string {
	return s.root
}

// Key resolves a lookup name to its taxonomy key. A leading "get" is dropped
// and the rest is passed through the inflector.
func (s *Store) Key(name string) string {
	return s.inflect.Apply(strings.TrimPrefix(name, getPrefix))
}

// Lookup returns every item of the taxonomy named by name, or a single item
// when an identifier is given. The returned item.Items is shared by all
// callers and must not be modified.
func (s *Store) Lookup(name string, id ...string) (any, error) {
	if len(id) > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyIdentifiers, len(id))
	}

	key := s.Key(name)
	items, err := s.load(key)
	if err != nil {
		return nil, err
	}

	if len(id) == 0 {
		return items, nil
	}
	return s.pick(key, items, id[0])
}

// Taxonomy is Lookup without an identifier.
func (s *Store) Taxonomy(name string) (item.Items, error) {
	return s.load(s.Key(name))
}

// Item is Lookup with an identifier.
func (s *Store) Item(name, id string) (any, error) {
	key := s.Key(name)
	items, err := s.load(key)
	if err != nil {
		return nil, err
	}
	return s.pick(key, items, id)
}

// IsLoaded reports whether the taxonomy named by name is already cached, in
// which case a lookup does not touch the filesystem.
func (s *Store) IsLoaded(name string) bool {
	return s.cache.Has(s.Key(name))
}

// Loaded returns the keys of the taxonomies loaded so far.
func (s *Store) Loaded() []string {
	return s.cache.Keys()
}

func (s *Store) pick(key string, items item.Items, id string) (any, error) {
	v, ok := items[id]
	if !ok {
		return nil, &ItemNotFoundError{Taxonomy: key, Identifier: id}
	}
	return v, nil
}

// load returns the cached items for key, scanning the taxonomy on the first
// call. Concurrent callers for the same key share a single scan; the cache is
// checked again inside the flight so a scan that finished between the first
// check and joining the flight is not repeated.
func (s *Store) load(key string) (item.Items, error) {
	if items, ok := s.cache.Get(key); ok {
		return items, nil
	}

	v, err, shared := s.flight.Do(key, func() (any, error) {
		if items, ok := s.cache.Get(key); ok {
			return items, nil
		}

		log.WithField("taxonomy", key).Debug("loading taxonomy")
		items, err := s.loader.Load(key)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = item.Items{}
		}

		if !s.cache.Store(key, items) {
			items, _ = s.cache.Get(key)
		}
		return items, nil
	})
	if err != nil {
		log.WithError(err).WithField("taxonomy", key).Debug("load failed")
		return nil, err
	}
	if shared {
		log.WithField("taxonomy", key).Debug("joined in-flight load")
	}

	return v.(item.Items), nil
}
