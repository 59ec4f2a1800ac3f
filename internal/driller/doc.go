// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package driller walks item values with bracket indexed paths for the
// query, sort and attrs options.
package driller
