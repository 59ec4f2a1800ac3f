// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package store provides read-only, lazily loaded access to a directory tree of
// taxonomies. Each immediate subdirectory of the storage root is a taxonomy and
// each file in it is an item whose identifier is the filename minus a fixed
// length suffix:
//
//	<root>/magic_place/cueva_del_majanicho.yml
//
// A taxonomy is read from disk the first time it is looked up and then served
// from memory for the life of the Store. Lookups name the taxonomy the way a
// caller would spell an accessor, with an optional "get" prefix, and the name
// is inflected into the on-disk key:
//
//	s.Lookup("getMagicPlace", "cueva_del_majanicho")
package store
