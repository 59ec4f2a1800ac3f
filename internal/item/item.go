// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported item format")

// Items maps item identifiers to their decoded values.
type Items map[string]any

// Keys returns the identifiers in lexicographic order.
func (i Items) Keys() []string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Loader produces the data value held by one item file.
type Loader interface {
	Load(path string) (any, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(path string) (any, error)

func (f LoaderFunc) Load(path string) (any, error) {
	return f(path)
}

// DecodeFunc turns raw file content into a value.
type DecodeFunc func(name string, data []byte) (any, error)

// Decoders is a Loader that picks a DecodeFunc by file extension.
type Decoders map[string]DecodeFunc

// Default returns the decoders used when no other Loader is configured.
func Default() Decoders {
	return Decoders{
		".yml":  decodeYAML,
		".yaml": decodeYAML,
		".json": decodeJSON,
		".jsn":  decodeJSON,
		".hcl":  decodeHCL,
		".toml": decodeTOML,
		".tml":  decodeTOML,
	}
}

// Load reads path and decodes it with the decoder registered for its
// extension.
func (d Decoders) Load(path string) (any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := d[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item: %w", err)
	}

	log.Debugf("decoding %s (%d bytes)", path, len(data))

	value, err := decode(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return value, nil
}

func decodeYAML(_ string, data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return stringKeys(v)
}

// stringKeys rewrites the map[any]any nodes yaml.v3 produces for mappings
// with non-string keys into map[string]any, so every item value can be
// encoded as JSON. Two keys with the same string form are an error.
func stringKeys(v any) (any, error) {
	var err error
	switch v := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			key := fmt.Sprint(k)
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("duplicate mapping key %q", key)
			}
			if m[key], err = stringKeys(e); err != nil {
				return nil, err
			}
		}
		return m, nil
	case map[string]any:
		for k, e := range v {
			if v[k], err = stringKeys(e); err != nil {
				return nil, err
			}
		}
		return v, nil
	case []any:
		for i, e := range v {
			if v[i], err = stringKeys(e); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
	return v, nil
}

func decodeJSON(_ string, data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON document")
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeTOML(_ string, data []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeHCL evaluates the top-level attributes of an HCL file without any
// variables or functions in scope. Blocks are rejected.
func decodeHCL(name string, data []byte) (any, error) {
	f, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := f.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	vals := make(map[string]cty.Value, len(attrs))
	for key, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		vals[key] = v
	}

	obj := cty.ObjectVal(vals)
	raw, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
