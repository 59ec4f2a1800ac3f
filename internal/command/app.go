// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/config"
	"github.com/staranto/taxogo/internal/meta"
)

// InitApp builds the root command. Output goes to w, or stdout when w is nil.
func InitApp(ctx context.Context, args []string, w io.Writer) (*cli.Command, error) {
	if w == nil {
		w = os.Stdout
	}

	// The arg[1] immediately following the binary (arg[0]) is the taxo
	// subcommand and also represents the namespace key to be used when
	// retrieving config values.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, err := config.Load(ns)
	if err != nil {
		log.WithError(err).Debug("running without a config file")
	}

	storageDir, _ := config.StorageDir()

	meta := meta.Meta{
		Args:       args,
		Config:     cfg,
		Context:    ctx,
		StorageDir: storageDir,
	}

	app := &cli.Command{
		Name:   "taxo",
		Usage:  "read-only taxonomy store",
		Writer: w,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "taxo version info",
				HideDefault: true,
			},
		}, NewStoreFlags(meta)...),
	}

	app.Commands = append(app.Commands,
		GetCommandBuilder(app, meta),
		LsCommandBuilder(app, meta),
		DiffCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
