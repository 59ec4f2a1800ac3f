// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/taxogo/internal/item"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		delimiter string
		want      []Filter
	}{
		{name: "empty spec", spec: ""},
		{
			name: "exact match",
			spec: "island=Tenerife",
			want: []Filter{{Key: "island", Operand: "=", Target: "Tenerife"}},
		},
		{
			name: "negated prefix",
			spec: "island!^Gran",
			want: []Filter{{Key: "island", Operand: "^", Target: "Gran", Negate: true}},
		},
		{
			name: "multiple filters",
			spec: "island=Tenerife,height>1000",
			want: []Filter{
				{Key: "island", Operand: "=", Target: "Tenerife"},
				{Key: "height", Operand: ">", Target: "1000"},
			},
		},
		{
			name: "invalid filter skipped",
			spec: "island=Tenerife,nonsense,=orphan",
			want: []Filter{{Key: "island", Operand: "=", Target: "Tenerife"}},
		},
		{
			name:      "custom delimiter",
			spec:      "island=Tenerife|id^te",
			delimiter: "|",
			want: []Filter{
				{Key: "island", Operand: "=", Target: "Tenerife"},
				{Key: "id", Operand: "^", Target: "te"},
			},
		},
		{
			name: "nested key",
			spec: "location.lat<29",
			want: []Filter{{Key: "location.lat", Operand: "<", Target: "29"}},
		},
		{
			name: "empty target",
			spec: "name=",
			want: []Filter{{Key: "name", Operand: "=", Target: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delimiter != "" {
				t.Setenv("TAXO_FILTER_DELIM", tt.delimiter)
			}

			got := BuildFilters(tt.spec)
			assert.Len(t, got, len(tt.want))
			for i, filter := range tt.want {
				assert.Equal(t, filter, got[i])
			}
		})
	}
}

func TestFilterItems(t *testing.T) {
	items := item.Items{
		"teide": map[string]any{
			"island": "Tenerife", "height": 3715, "tags": []any{"volcano", "park"},
			"location": map[string]any{"lat": 28.27},
		},
		"roque_nublo": map[string]any{
			"island": "Gran Canaria", "height": 1813, "tags": []any{"rock"},
			"location": map[string]any{"lat": 27.97},
		},
		"cueva_del_majanicho": map[string]any{
			"island": "Fuerteventura", "depth": 12, "tags": []any{"cave"},
		},
	}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{name: "no filter", spec: "", want: []string{"cueva_del_majanicho", "roque_nublo", "teide"}},
		{name: "string equality", spec: "island=Tenerife", want: []string{"teide"}},
		{name: "case insensitive", spec: "island~gran canaria", want: []string{"roque_nublo"}},
		{name: "numeric", spec: "height>2000", want: []string{"teide"}},
		{name: "missing key excludes", spec: "height<5000", want: []string{"roque_nublo", "teide"}},
		{name: "negated missing key includes", spec: "height!>2000", want: []string{"cueva_del_majanicho", "roque_nublo"}},
		{name: "nested path", spec: "location.lat<28", want: []string{"roque_nublo"}},
		{name: "by identifier", spec: "id^roque", want: []string{"roque_nublo"}},
		{name: "array contains", spec: "tags@cave", want: []string{"cueva_del_majanicho"}},
		{name: "regex", spec: "island/^(Tene|Fuer)", want: []string{"cueva_del_majanicho", "teide"}},
		{name: "all must match", spec: "island^G,height>2000", want: []string{}},
		{name: "negated missing key still checks the rest", spec: "depth!>100,island=Tenerife", want: []string{"teide"}},
		{name: "indexed path", spec: "tags[1]=park", want: []string{"teide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterItems(items, tt.spec)
			assert.Equal(t, tt.want, got.Keys())
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		filter Filter
		want   bool
	}{
		{name: "exact match", value: "teide", filter: Filter{Operand: "=", Target: "teide"}, want: true},
		{name: "negated exact", value: "teide", filter: Filter{Operand: "=", Target: "teide", Negate: true}, want: false},
		{name: "prefix", value: "roque_nublo", filter: Filter{Operand: "^", Target: "roque"}, want: true},
		{name: "case insensitive", value: "TEIDE", filter: Filter{Operand: "~", Target: "teide"}, want: true},
		{name: "contains", value: "cueva_del_majanicho", filter: Filter{Operand: "@", Target: "del"}, want: true},
		{name: "greater", value: "z", filter: Filter{Operand: ">", Target: "a"}, want: true},
		{name: "less", value: "z", filter: Filter{Operand: "<", Target: "a"}, want: false},
		{name: "regex", value: "level_v2", filter: Filter{Operand: "/", Target: `_v\d+$`}, want: true},
		{name: "invalid regex", value: "x", filter: Filter{Operand: "/", Target: "[invalid"}, want: false},
		{name: "unsupported operand", value: "x", filter: Filter{Operand: "?", Target: "x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkStringOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filter Filter
		want   bool
	}{
		{name: "equal", value: 42, filter: Filter{Operand: "=", Target: "42"}, want: true},
		{name: "negated equal", value: 42, filter: Filter{Operand: "=", Target: "40", Negate: true}, want: true},
		{name: "greater", value: 42.5, filter: Filter{Operand: ">", Target: "42"}, want: true},
		{name: "less", value: 50, filter: Filter{Operand: "<", Target: "42"}, want: false},
		{name: "invalid target", value: 42, filter: Filter{Operand: "=", Target: "many"}, want: false},
		{name: "unsupported operand", value: 42, filter: Filter{Operand: "^", Target: "42"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkNumericOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckContainsOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		filter Filter
		want   bool
	}{
		{name: "slice hit", value: []any{"a", "b"}, filter: Filter{Operand: "@", Target: "b"}, want: true},
		{name: "slice miss", value: []any{"a", "b"}, filter: Filter{Operand: "@", Target: "c"}, want: false},
		{name: "negated slice miss", value: []any{"a"}, filter: Filter{Operand: "@", Target: "c", Negate: true}, want: true},
		{name: "numbers compare as text", value: []any{1.0, 2.0}, filter: Filter{Operand: "@", Target: "2"}, want: true},
		{name: "map key", value: map[string]any{"k": 1}, filter: Filter{Operand: "@", Target: "k"}, want: true},
		{name: "negated map key", value: map[string]any{"k": 1}, filter: Filter{Operand: "@", Target: "k", Negate: true}, want: false},
		{name: "unsupported", value: 3, filter: Filter{Operand: "@", Target: "3"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkContainsOperand(tt.value, tt.filter))
		})
	}
}
