// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package item decodes a single item file into a data value. Item files hold
// declarative data (YAML, JSON, HCL attributes or TOML) and are never executed.
package item
