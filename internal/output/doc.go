// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders taxonomies and items as text tables, JSON, YAML or
// raw indented JSON.
package output
