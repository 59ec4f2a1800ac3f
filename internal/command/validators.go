// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/inflector"
	"github.com/staranto/taxogo/internal/output"
)

// GlobalFlagsValidator checks the root flags every subcommand relies on.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.String("storage-dir") == "" {
		return errors.New("no storage directory: use --storage-dir, TAXO_STORAGE_DIR or storage_dir in taxo.yaml")
	}
	if _, err := inflector.Parse(c.String("inflector")); err != nil {
		return err
	}
	return nil
}

// ArgCountValidator fails unless the command got between min and max
// positional arguments.
func ArgCountValidator(c *cli.Command, min, max int) error {
	n := c.Args().Len()
	if n < min || n > max {
		if min == max {
			return fmt.Errorf("expected %d arguments, got %d", min, n)
		}
		return fmt.Errorf("expected %d to %d arguments, got %d", min, max, n)
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func PositiveIntValidator(value any) error {
	if n, ok := value.(int); !ok || n <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}
