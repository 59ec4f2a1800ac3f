// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/taxogo/internal/driller"
	"github.com/staranto/taxogo/internal/item"
)

// IDKey is the filter key that matches the item identifier instead of a path
// inside the item value.
const IDKey = "id"

// filterRegex splits an expression into key, operator and target. Operators
// are one of = ^ ~ < > @ or /, optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a --filter value into a slice of Filter.
// Malformed entries are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("TAXO_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil || parts[1] == "" {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		negate := strings.HasPrefix(parts[2], "!")
		filters = append(filters, Filter{
			Key:     parts[1],
			Negate:  negate,
			Operand: strings.TrimPrefix(parts[2], "!"),
			Target:  parts[3],
		})
	}

	return filters
}

// FilterItems returns the subset of items matching every filter in spec. An
// empty spec returns items itself. Keys other than "id" are gjson paths into
// the JSON form of each item value.
func FilterItems(items item.Items, spec string) item.Items {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return items
	}

	result := make(item.Items)
	for id, value := range items {
		doc, err := json.Marshal(value)
		if err != nil {
			log.WithError(err).Warnf("cannot filter item %s", id)
			continue
		}
		if Match(id, doc, filters) {
			result[id] = value
		}
	}
	return result
}

// Match reports whether the item with identifier id and JSON document doc
// satisfies all filters.
func Match(id string, doc []byte, filters []Filter) bool {
	for _, filter := range filters {
		var value any
		if filter.Key == IDKey {
			value = id
		} else {
			var r gjson.Result
			if driller.IsDrillPath(filter.Key) {
				r = driller.Driller(string(doc), filter.Key)
			} else {
				r = gjson.GetBytes(doc, filter.Key)
			}
			// A missing key never matches, so only its negation passes.
			if !r.Exists() {
				if !filter.Negate {
					return false
				}
				continue
			}
			value = r.Value()
		}
		if value == nil {
			return false
		}

		var ok bool
		switch v := value.(type) {
		case string:
			ok = checkStringOperand(v, filter)
		case bool:
			ok = checkStringOperand(strconv.FormatBool(v), filter)
		case float64:
			ok = checkNumericOperand(v, filter)
		default:
			if filter.Operand == "@" {
				ok = checkContainsOperand(value, filter)
			} else {
				log.Errorf("unsupported type %T for filter %s", value, filter.Key)
			}
		}

		if !ok {
			return false
		}
	}

	return true
}

// checkContainsOperand evaluates a membership style filter (operand '@')
// against slice or map values.
func checkContainsOperand(value interface{}, filter Filter) bool {
	switch val := value.(type) {
	case []any:
		for _, e := range val {
			if fmt.Sprint(e) == filter.Target {
				return !filter.Negate
			}
		}
		return filter.Negate
	case map[string]any:
		_, found := val[filter.Target]
		return found == !filter.Negate
	default:
		log.Error(fmt.Sprintf("unsupported type for contains filtering: %T", value))
		return false
	}
}

// checkNumericOperand compares a numeric value against the filter target.
// Supported operands: =, >, <.
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Target), 64)
	if err != nil {
		log.Error("invalid numeric target: " + filter.Target)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison style filter.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
