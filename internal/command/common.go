// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/inflector"
	"github.com/staranto/taxogo/internal/meta"
	"github.com/staranto/taxogo/internal/output"
	"github.com/staranto/taxogo/internal/store"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OpenStore builds a Store from the root flags.
func OpenStore(cmd *cli.Command) (*store.Store, error) {
	inflect, err := inflector.Parse(cmd.String("inflector"))
	if err != nil {
		return nil, err
	}

	opts := []store.Option{
		store.WithInflector(inflect),
		store.WithSuffixLen(cmd.Int("suffix-len")),
		store.WithExclude(cmd.StringSlice("exclude")...),
	}

	log.Debugf("opening store %s", cmd.String("storage-dir"))
	return store.New(cmd.String("storage-dir"), opts...)
}

// OutputOptions collects the rendering flags of cmd.
func OutputOptions(cmd *cli.Command) output.Options {
	opts := output.Options{
		Format: cmd.String("output"),
		Query:  cmd.String("query"),
		Sort:   cmd.String("sort"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
	}

	// Only color a real terminal.
	if w := writer(cmd); w != os.Stdout {
		opts.Color = false
	} else {
		opts.Color = output.ColorEnabled(opts.Color, os.Stdout)
	}
	return opts
}

// writer returns the root command's writer.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
