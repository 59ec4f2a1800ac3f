// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package inflector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnderscore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "camel case", raw: "MagicPlace", want: "magic_place"},
		{name: "single word", raw: "Place", want: "place"},
		{name: "leading lowercase", raw: "magicPlace", want: "magic_place"},
		{name: "already underscored", raw: "magic_place", want: "magic_place"},
		{name: "consecutive capitals", raw: "ABC", want: "a_b_c"},
		{name: "digits stay attached", raw: "Level2Boss", want: "level2_boss"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Underscore(tt.raw))
		})
	}
}

func TestFuncApply(t *testing.T) {
	var disabled Func
	assert.Equal(t, "Magic_Place", disabled.Apply("Magic_Place"))
	assert.Equal(t, "magic_place", Func(Underscore).Apply("MagicPlace"))
}

type upper struct{ prefix string }

func (u upper) transform(raw string) string { return u.prefix + strings.ToUpper(raw) }

func TestFuncApply_MethodValue(t *testing.T) {
	u := upper{prefix: "x_"}
	f := Func(u.transform)
	assert.Equal(t, "x_PLACE", f.Apply("place"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		disabled bool
		wantErr  bool
	}{
		{name: "empty is default", value: ""},
		{name: "default", value: "default"},
		{name: "underscore", value: "Underscore"},
		{name: "none", value: "none", disabled: true},
		{name: "off", value: "off", disabled: true},
		{name: "unknown", value: "kebab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.disabled {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, "magic_place", f("MagicPlace"))
		})
	}
}
