// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryNotFound  = errors.New("taxonomy directory not found")
	ErrItemNotFound       = errors.New("item does not exist")
	ErrLoad               = errors.New("failed to load taxonomy")
	ErrStorageRoot        = errors.New("invalid storage root")
	ErrTooManyIdentifiers = errors.New("at most one item identifier may be given")
)

// DirectoryNotFoundError is returned when a taxonomy has no directory under
// the storage root. It is never cached.
type DirectoryNotFoundError struct {
	Taxonomy string
	Path     string
	Err      error
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrDirectoryNotFound, e.Taxonomy, e.Path)
}

func (e *DirectoryNotFoundError) Is(target error) bool { return target == ErrDirectoryNotFound }

func (e *DirectoryNotFoundError) Unwrap() error { return e.Err }

// LoadError is returned when any item file of a taxonomy fails to load. The
// whole taxonomy is discarded.
type LoadError struct {
	Taxonomy string
	File     string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", ErrLoad, e.Taxonomy, e.File, e.Err)
}

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

func (e *LoadError) Unwrap() error { return e.Err }

// ItemNotFoundError is returned when a loaded taxonomy has no item with the
// requested identifier.
type ItemNotFoundError struct {
	Taxonomy   string
	Identifier string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s %s in %s", ErrItemNotFound, e.Identifier, e.Taxonomy)
}

func (e *ItemNotFoundError) Is(target error) bool { return target == ErrItemNotFound }
