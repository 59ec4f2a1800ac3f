// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/taxogo/internal/attrs"
	"github.com/staranto/taxogo/internal/config"
	"github.com/staranto/taxogo/internal/driller"
	"github.com/staranto/taxogo/internal/item"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options controls rendering.
type Options struct {
	// Format is one of Formats. Empty means text.
	Format string
	// Query is a gjson path applied to every value before rendering.
	Query string
	// Sort is a comma-separated list of keys. "id" is the item identifier,
	// anything else is a gjson path into the value. A leading '-' reverses.
	Sort string
	// Attrs, when any are included, pick the columns of text output and the
	// keys of structured output.
	Attrs  attrs.AttrList
	Titles bool
	Color  bool
}

// ColorEnabled returns true when color was requested and f is a terminal.
func ColorEnabled(requested bool, f *os.File) bool {
	return requested && f != nil && term.IsTerminal(int(f.Fd()))
}

// Size formats a byte count for humans.
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// Row is one identifier/value pair of a rendered taxonomy.
type Row struct {
	ID    string
	Value any
}

// Category renders every item of a taxonomy.
func Category(w io.Writer, items item.Items, opts Options) error {
	rows := make([]Row, 0, len(items))
	for _, id := range items.Keys() {
		rows = append(rows, Row{ID: id, Value: Query(items[id], opts.Query)})
	}
	SortRows(rows, opts.Sort)

	cols := opts.Attrs.Included()
	if len(cols) > 0 {
		for i := range rows {
			rows[i].Value = project(rows[i].Value, cols)
		}
	}

	switch opts.Format {
	case "json":
		return writeJSON(w, rowsToMap(rows), false)
	case "raw":
		return writeJSON(w, rowsToMap(rows), true)
	case "yaml":
		return writeYAML(w, rowsToMap(rows))
	}

	if len(cols) == 0 {
		var cells [][]string
		for _, r := range rows {
			cells = append(cells, []string{r.ID, InterfaceToString(r.Value, "-")})
		}
		TableWriter(w, []string{"ID", "VALUE"}, cells, opts)
		return nil
	}

	headers := []string{"ID"}
	for _, a := range cols {
		headers = append(headers, strings.ToUpper(a.OutputKey))
	}
	var cells [][]string
	for _, r := range rows {
		m := r.Value.(map[string]any)
		row := []string{r.ID}
		for _, a := range cols {
			row = append(row, InterfaceToString(m[a.OutputKey], "-"))
		}
		cells = append(cells, row)
	}
	TableWriter(w, headers, cells, opts)
	return nil
}

// Item renders a single item. Text output lists the top level keys of a map
// value, one per row, or the scalar value on its own.
func Item(w io.Writer, id string, value any, opts Options) error {
	value = Query(value, opts.Query)
	if cols := opts.Attrs.Included(); len(cols) > 0 {
		value = project(value, cols)
	}

	switch opts.Format {
	case "json":
		return writeJSON(w, value, false)
	case "raw":
		return writeJSON(w, value, true)
	case "yaml":
		return writeYAML(w, value)
	}

	m, ok := value.(map[string]any)
	if !ok {
		_, err := fmt.Fprintln(w, InterfaceToString(value, "-"))
		return err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var cells [][]string
	for _, k := range keys {
		cells = append(cells, []string{k, InterfaceToString(m[k], "-")})
	}
	log.Debugf("rendering item %s with %d keys", id, len(keys))
	TableWriter(w, []string{"KEY", "VALUE"}, cells, opts)
	return nil
}

// Query applies a gjson path to value. An empty path returns value as is and
// a path that matches nothing returns nil.
func Query(value any, path string) any {
	if path == "" {
		return value
	}
	doc, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Warn("cannot query value")
		return nil
	}
	r := lookup(doc, path)
	if !r.Exists() {
		return nil
	}
	return r.Value()
}

// lookup resolves path in doc. Bracketed array indexes go through the
// driller, anything else is a plain gjson path.
func lookup(doc []byte, path string) gjson.Result {
	if driller.IsDrillPath(path) {
		return driller.Driller(string(doc), path)
	}
	return gjson.GetBytes(doc, path)
}

// project extracts the given attrs from value into a map keyed by output
// key. Missing paths become nil.
func project(value any, cols []attrs.Attr) map[string]any {
	doc, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Warn("cannot project value")
	}

	m := make(map[string]any, len(cols))
	for _, a := range cols {
		var v any
		if r := lookup(doc, a.Key); r.Exists() {
			v = r.Value()
		}
		m[a.OutputKey] = a.Transform(v)
	}
	return m
}

// SortRows orders rows in place per spec. Rows are already in identifier
// order, which is kept for ties.
func SortRows(rows []Row, spec string) {
	if spec == "" {
		return
	}

	type key struct {
		path string
		desc bool
	}
	var keys []key
	for _, k := range strings.Split(spec, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		desc := strings.HasPrefix(k, "-")
		keys = append(keys, key{path: strings.TrimPrefix(k, "-"), desc: desc})
	}

	docs := make(map[string][]byte, len(rows))
	for _, r := range rows {
		docs[r.ID], _ = json.Marshal(r.Value)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			var c int
			if k.path == "id" {
				c = strings.Compare(rows[i].ID, rows[j].ID)
			} else {
				c = compareResults(lookup(docs[rows[i].ID], k.path), lookup(docs[rows[j].ID], k.path))
			}
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareResults orders missing values first, numbers numerically and
// everything else by string form.
func compareResults(a, b gjson.Result) int {
	switch {
	case !a.Exists() && !b.Exists():
		return 0
	case !a.Exists():
		return -1
	case !b.Exists():
		return 1
	}
	if a.Type == gjson.Number && b.Type == gjson.Number {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.String(), b.String())
}

func rowsToMap(rows []Row) map[string]any {
	m := make(map[string]any, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Value
	}
	return m
}

func writeJSON(w io.Writer, v any, indent bool) error {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// TableWriter renders rows in a borderless table honoring color, titles and
// padding options.
func TableWriter(w io.Writer, headers []string, rows [][]string, opts Options) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
