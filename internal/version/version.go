// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the build version, set with
// -ldflags "-X github.com/staranto/taxogo/internal/version.Version=...".
package version

var Version = "dev"
