// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/attrs"
	"github.com/staranto/taxogo/internal/config"
	"github.com/staranto/taxogo/internal/meta"
	"github.com/staranto/taxogo/internal/store"
)

// NewStoreFlags returns the flags that shape how the store is opened. They
// live on the root command and are visible to every subcommand.
func NewStoreFlags(meta meta.Meta) []cli.Flag {
	src := altsrc.StringSourcer(meta.Config.Source)

	// YAML sequences don't map onto a value source, so the config list is the
	// flag default instead.
	exclude, _ := config.GetStringSlice("exclude", nil)

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "storage-dir",
			Aliases: []string{"d"},
			Usage:   "storage root holding one directory per taxonomy",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TAXO_STORAGE_DIR"),
			),
			Value: meta.StorageDir,
		},
		&cli.StringFlag{
			Name:  "inflector",
			Usage: "name inflection: default or none",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TAXO_INFLECTOR"),
				yaml.YAML("inflector", src),
			),
			Value: "default",
		},
		&cli.IntFlag{
			Name:  "suffix-len",
			Usage: "characters stripped from a filename to form the item identifier",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("suffix_len", src),
			),
			Value: store.DefaultSuffixLen,
			Validator: func(n int) error {
				return FlagValidators(n, PositiveIntValidator)
			},
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "glob patterns of item files to ignore",
			Value: exclude,
		},
	}
}

// NewOutputFlags returns the rendering flags shared by the read commands.
// params[0] is the config namespace, normally the command name.
func NewOutputFlags(meta meta.Meta, params ...string) (flags []cli.Flag) {
	src := altsrc.StringSourcer(meta.Config.Source)
	ns := params[0]

	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", src),
				yaml.YAML("color", src),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", src),
				yaml.YAML("output", src),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", src),
				yaml.YAML("titles", src),
			),
			Value: false,
		},
	}

	return
}

func newAttrsFlag(meta meta.Meta, ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "attrs",
		Aliases: []string{"a"},
		Usage:   "comma-separated list of value paths to show as columns (path[:title[:transform]])",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"attrs", altsrc.StringSourcer(meta.Config.Source)),
		),
		Validator: func(value string) error {
			_, err := attrs.Parse(value)
			return err
		},
	}
}

func newQueryFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "query",
		Aliases: []string{"q"},
		Usage:   "gjson path applied to each item value",
	}
}

func newFilterFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "comma-separated list of filters to apply to items",
	}
}

func newSortFlag(meta meta.Meta, ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "comma-separated list of keys to sort items by (id or a value path)",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(meta.Config.Source)),
		),
	}
}
