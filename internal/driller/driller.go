// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var indexRe = regexp.MustCompile(`\[(\d+)\]`)

// Driller resolves a dotted path against a JSON document. Array elements are
// addressed as items[2] (or items.2), and a single element array is stepped
// through transparently, so tags.name works on [{"name": ...}].
func Driller(doc string, path string) gjson.Result {
	path = indexRe.ReplaceAllString(path, ".$1")

	result := gjson.Parse(doc)
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if _, err := strconv.Atoi(seg); err != nil {
			result = unwrap(result)
		}
		result = result.Get(seg)
		if !result.Exists() {
			return result
		}
	}

	return unwrap(result)
}

// IsDrillPath reports whether path uses the bracketed index syntax that plain
// gjson paths don't understand.
func IsDrillPath(path string) bool {
	return indexRe.MatchString(path)
}

func unwrap(r gjson.Result) gjson.Result {
	if r.IsArray() {
		if arr := r.Array(); len(arr) == 1 {
			return arr[0]
		}
	}
	return r
}
