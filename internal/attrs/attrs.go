// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package attrs

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
)

var lengthRe = regexp.MustCompile(`-?\d+`)

// Attr is one column of item output. Key is a gjson path into the item value.
type Attr struct {
	// The path to extract from the item value.
	Key string
	// Should this Attr be included in output or is it just
	// intended for filtering and sorting?
	Include bool
	// The key to use in the output. This is also the column title when
	// output=text.
	OutputKey string
	// Transformation spec to apply to the output value.
	TransformSpec string
}

// Transform applies the attr's TransformSpec to a string value. Other values
// pass through untouched.
//
//	t, T   convert an RFC3339 time to TAXO_TZ (or TZ)
//	l, L   lower case
//	u, U   upper case
//	n      truncate to n characters
//	-n     elide the middle down to n characters
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		tz := os.Getenv("TAXO_TZ")
		if tz == "" {
			tz = os.Getenv("TZ")
		}

		// Only convert when we've specifically been told what TZ to use.
		if tz != "" {
			loc, err := time.LoadLocation(tz)
			if err == nil {
				t, err := time.Parse(time.RFC3339, result)
				if err == nil {
					result = t.In(loc).Format("2006-01-02T15:04:05MST")
				} else {
					log.Debugf("not a time: %s", result)
				}
			}
		}
	}

	// The case transformation that appears last wins. A global spec is
	// prepended to the attr's own, so --attrs '*::U,name::l' is lower case.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Same for length. The last number overrides a global one.
	if match := lengthRe.FindAllString(a.TransformSpec, -1); len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		abs := int(math.Abs(float64(l)))
		if abs > 0 && len(result) > abs {
			if l < 0 {
				lr := max(abs/2-1, 1)
				result = result[:lr] + ".." + result[len(result)-lr:]
			} else {
				result = result[:l]
			}
		}
	}

	return result
}

type AttrList []Attr

// String returns the AttrList in the same format --attrs accepts.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Set parses a comma-separated --attrs value and adds each spec to the list.
// A spec is key[:output[:transform]]. A key starting with ! is kept for
// sorting but left out of the output. The key * carries a global transform.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		if strings.TrimSpace(spec) == "" {
			continue
		}

		attr := Attr{Include: true}
		fields := strings.Split(spec, ":")
		if len(fields) > 3 {
			return fmt.Errorf("invalid attr spec %q: too many fields", spec)
		}

		attr.Key = strings.TrimPrefix(strings.TrimSpace(fields[keyIdx]), ".")
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// Without an output field the output key is the last segment of the
		// dotted path.
		if len(fields) == 1 || strings.TrimSpace(fields[outputIdx]) == "" {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		// A repeated key (a config default or a double entry) updates the
		// existing Attr in place.
		for i := range *a {
			if (*a)[i].Key == attr.Key {
				(*a)[i] = attr
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the * attr's transform spec to all attrs
// in the list.
func (alist *AttrList) SetGlobalTransformSpec() error {
	spec := ""

	// If there is more than one, only the first counts.
	for a := range *alist {
		if (*alist)[a].Key == "*" {
			spec = (*alist)[a].TransformSpec
			break
		}
	}

	if spec == "" {
		return nil
	}

	for a := range *alist {
		if (*alist)[a].Key == "*" {
			continue
		}
		(*alist)[a].TransformSpec = spec + "," + (*alist)[a].TransformSpec
	}

	return nil
}

// Included returns the attrs that produce output columns, in order.
func (a AttrList) Included() []Attr {
	var out []Attr
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

func (a *AttrList) Type() string {
	return "list"
}

// Parse builds an AttrList from an --attrs value and folds in the global
// transform.
func Parse(value string) (AttrList, error) {
	var list AttrList
	if err := list.Set(value); err != nil {
		return nil, err
	}
	if err := list.SetGlobalTransformSpec(); err != nil {
		return nil, err
	}
	return list, nil
}
