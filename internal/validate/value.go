package validate

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"customfields/internal/common"
)

// isEmpty reports whether a value counts as "no answer".
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return common.IsBlank(x)
	case []any:
		return common.IsEmpty(x)
	case []string:
		return common.IsEmpty(x)
	case map[string]any:
		return len(x) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}

// asString returns the value as a string when it is one.
func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}

// scalarString renders strings and numbers, the shapes a choice value can
// take after decoding YAML, JSON or TOML.
func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}

// asList flattens list-shaped values into their elements. A scalar becomes
// a single-element list.
func asList(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}

		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out
	}

	return []any{v}
}

// asNumber coerces a value to a finite float.
func asNumber(v any) (float64, bool) {
	var f float64

	switch x := v.(type) {
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}

		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

var defaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// layoutFromFormat converts a YYYY-MM-DD style pattern into a Go layout.
func layoutFromFormat(format string) string {
	if format == "" {
		return ""
	}

	r := strings.NewReplacer("YYYY", "2006", "yyyy", "2006", "MM", "01", "DD", "02", "dd", "02")

	return r.Replace(format)
}

// asDate parses a value into a calendar date. A declared format accepts
// only that layout and RFC 3339 timestamps.
func asDate(v any, format string) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}

		return *x, !x.IsZero()
	}

	s, ok := asString(v)
	if !ok {
		return time.Time{}, false
	}

	s = strings.TrimSpace(s)

	layouts := defaultDateLayouts
	if layout := layoutFromFormat(format); layout != "" {
		layouts = []string{layout, time.RFC3339Nano, time.RFC3339}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
