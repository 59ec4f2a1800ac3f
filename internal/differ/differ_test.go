// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name         string
		left, right  any
		wantModified bool
		wantContains []string
	}{
		{
			name:  "identical maps",
			left:  map[string]any{"island": "Tenerife", "height": 3715},
			right: map[string]any{"height": 3715, "island": "Tenerife"},
		},
		{
			name:         "changed value",
			left:         map[string]any{"island": "Tenerife", "height": 3715},
			right:        map[string]any{"island": "Tenerife", "height": 3718},
			wantModified: true,
			wantContains: []string{"-", "+", "3715", "3718"},
		},
		{
			name:         "added key",
			left:         map[string]any{"island": "Tenerife"},
			right:        map[string]any{"island": "Tenerife", "park": true},
			wantModified: true,
			wantContains: []string{"+", "\"park\": true"},
		},
		{
			name:         "scalars",
			left:         "Tenerife",
			right:        "Gran Canaria",
			wantModified: true,
			wantContains: []string{"\"value\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			modified, err := Diff(&buf, tt.left, tt.right, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantModified, modified)

			if !tt.wantModified {
				assert.Empty(t, buf.String())
				return
			}
			for _, s := range tt.wantContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
