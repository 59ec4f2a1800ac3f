// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/meta"
	"github.com/staranto/taxogo/internal/output"
)

// LsCommandAction lists the taxonomies under the storage root with their
// file count and size. Nothing is decoded.
func LsCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	r, err := s.Discover()
	if err != nil {
		return err
	}

	var (
		list []any
		rows [][]string
	)
	for _, name := range r.Names() {
		c, _ := r.Category(name)
		files, size, err := c.Stat()
		if err != nil {
			log.WithError(err).Warnf("cannot stat %s", name)
			continue
		}
		list = append(list, map[string]any{"name": name, "items": files, "bytes": size})
		rows = append(rows, []string{name, strconv.Itoa(files), output.Size(size)})
	}

	w := writer(cmd)
	opts := OutputOptions(cmd)
	switch opts.Format {
	case "json", "raw", "yaml":
		if list == nil {
			list = []any{}
		}
		return output.Item(w, "", list, opts)
	default:
		output.TableWriter(w, []string{"TAXONOMY", "ITEMS", "SIZE"}, rows, opts)
	}
	return nil
}

// LsCommandBuilder constructs the cli.Command for "ls".
func LsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list taxonomies",
		UsageText: `taxo ls [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewOutputFlags(meta, "ls"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := LsCommandValidator(ctx, cmd); err != nil {
				return err
			}
			return LsCommandAction(ctx, cmd)
		},
	}
}

func LsCommandValidator(ctx context.Context, cmd *cli.Command) error {
	if err := ArgCountValidator(cmd, 0, 0); err != nil {
		return fmt.Errorf("ls: %w", err)
	}
	return GlobalFlagsValidator(ctx, cmd)
}
