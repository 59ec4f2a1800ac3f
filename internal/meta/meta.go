// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/taxogo/internal/config"
)

// Meta are the meta-options that are available on all commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// StorageDir is the storage root resolved at startup from the environment
	// or config file. The --storage-dir flag overrides it.
	StorageDir string
}
