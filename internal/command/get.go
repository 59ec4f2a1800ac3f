// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/attrs"
	"github.com/staranto/taxogo/internal/filters"
	"github.com/staranto/taxogo/internal/item"
	"github.com/staranto/taxogo/internal/meta"
	"github.com/staranto/taxogo/internal/output"
)

// GetCommandAction is the action handler for the "get" subcommand. It looks up
// a whole taxonomy, or one item when an identifier follows the name.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("Executing action for %v", GetMeta(cmd).Args)

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().Get(0)
	ids := cmd.Args().Tail()
	log.Debugf("name=%s key=%s ids=%v", name, s.Key(name), ids)

	v, err := s.Lookup(name, ids...)
	if err != nil {
		return err
	}

	w := writer(cmd)
	opts := OutputOptions(cmd)
	if opts.Attrs, err = attrs.Parse(cmd.String("attrs")); err != nil {
		return err
	}

	switch v := v.(type) {
	case item.Items:
		return output.Category(w, filters.FilterItems(v, cmd.String("filter")), opts)
	default:
		if cmd.String("filter") != "" {
			log.Warn("--filter is ignored for single item lookups")
		}
		return output.Item(w, ids[0], v, opts)
	}
}

// GetCommandBuilder constructs the cli.Command for "get", wiring metadata,
// flags, and action/validator handlers.
func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "look up a taxonomy or one of its items",
		UsageText: `taxo get <name> [id] [options]`,
		Description: `name is the taxonomy in any supported spelling: MagicPlace,
getMagicPlace and magic_place all resolve to the magic_place directory unless
inflection is disabled.`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			newAttrsFlag(meta, "get"),
			newFilterFlag(),
			newQueryFlag(),
			newSortFlag(meta, "get"),
		}, NewOutputFlags(meta, "get")...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GetCommandValidator(ctx, cmd); err != nil {
				return err
			}
			return GetCommandAction(ctx, cmd)
		},
	}
}

// GetCommandValidator performs validation for "get" and delegates to
// GlobalFlagsValidator.
func GetCommandValidator(ctx context.Context, cmd *cli.Command) error {
	if err := ArgCountValidator(cmd, 1, 2); err != nil {
		return fmt.Errorf("get: %w", err)
	}
	return GlobalFlagsValidator(ctx, cmd)
}
