// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff writes an annotated view of left with the changes needed to turn it
// into right, and reports whether the two differ. Nothing is written when
// they are equal. Values that are not objects are compared as {"value": v}.
func Diff(w io.Writer, left, right any, color bool) (bool, error) {
	l, err := toDocument(left)
	if err != nil {
		return false, fmt.Errorf("failed to encode left value: %w", err)
	}
	r, err := toDocument(right)
	if err != nil {
		return false, fmt.Errorf("failed to encode right value: %w", err)
	}

	d, err := gojsondiff.New().Compare(l, r)
	if err != nil {
		return false, fmt.Errorf("failed to compare: %w", err)
	}
	if !d.Modified() {
		log.Debug("values are identical")
		return false, nil
	}

	var base map[string]interface{}
	if err := json.Unmarshal(l, &base); err != nil {
		return true, err
	}

	f := formatter.NewAsciiFormatter(base, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err := f.Format(d)
	if err != nil {
		return true, fmt.Errorf("failed to format diff: %w", err)
	}

	_, err = io.WriteString(w, out)
	return true, err
}

func toDocument(v any) ([]byte, error) {
	if _, ok := v.(map[string]any); !ok {
		v = map[string]any{"value": v}
	}
	return json.Marshal(v)
}
