// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package inflector turns the category part of a lookup name into the key
// under which the taxonomy is stored on disk.
package inflector
