// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache holds taxonomies that have been fully loaded from disk. Entries
// are write-once and live for the lifetime of the process.
package cache
