// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package inflector

import (
	"fmt"
	"strings"
	"unicode"
)

// Func transforms a raw category name into a canonical taxonomy key. A nil Func
// means inflection is disabled and the raw name is used verbatim.
type Func func(raw string) string

// Underscore is the default inflector. The input is split in front of every
// uppercase letter, each segment is lowercased and the segments are joined
// with "_". A leading lowercase run is kept as its own segment.
//
//	MagicPlace -> magic_place
//	magicPlace -> magic_place
func Underscore(raw string) string {
	var (
		parts   []string
		current strings.Builder
	)

	for _, r := range raw {
		if unicode.IsUpper(r) && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return strings.ToLower(strings.Join(parts, "_"))
}

// Apply runs f over raw. A nil f returns raw unchanged.
func (f Func) Apply(raw string) string {
	if f == nil {
		return raw
	}
	return f(raw)
}

// Parse maps a configured inflector name to a Func. "none" and "off" disable
// inflection and return a nil Func.
func Parse(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "underscore":
		return Underscore, nil
	case "none", "off", "false":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown inflector %q", name)
	}
}
