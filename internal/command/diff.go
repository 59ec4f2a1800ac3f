// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/differ"
	"github.com/staranto/taxogo/internal/meta"
	"github.com/staranto/taxogo/internal/output"
)

// ErrItemsDiffer is returned by diff --exit-code when the items differ.
var ErrItemsDiffer = errors.New("items differ")

// DiffCommandAction compares two items of the same taxonomy.
func DiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	name, left, right := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)

	lv, err := s.Item(name, left)
	if err != nil {
		return err
	}
	rv, err := s.Item(name, right)
	if err != nil {
		return err
	}

	w := writer(cmd)
	q := cmd.String("query")
	modified, err := differ.Diff(w, output.Query(lv, q), output.Query(rv, q), OutputOptions(cmd).Color)
	if err != nil {
		return err
	}

	if !modified {
		fmt.Fprintf(w, "%s and %s are identical\n", left, right)
		return nil
	}
	if cmd.Bool("exit-code") {
		return ErrItemsDiffer
	}
	return nil
}

// DiffCommandBuilder constructs the cli.Command for "diff".
func DiffCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two items of a taxonomy",
		UsageText: `taxo diff <name> <id> <id> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolWithInverseFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "fail when the items differ",
			},
			newQueryFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := DiffCommandValidator(ctx, cmd); err != nil {
				return err
			}
			return DiffCommandAction(ctx, cmd)
		},
	}
}

func DiffCommandValidator(ctx context.Context, cmd *cli.Command) error {
	if err := ArgCountValidator(cmd, 3, 3); err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	return GlobalFlagsValidator(ctx, cmd)
}
