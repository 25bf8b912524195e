package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Thunk is a lazily evaluated context value. It is invoked every time a
// path reaches it; whatever state it needs must be captured by the closure.
type Thunk func() any

// Common time parsing formats tried in order
var commonTimeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"2006/01/02",
	"02.01.2006",
}

// Separator used when a sequence is rendered as text.
const sequenceJoinSeparator = ","

// evaluate invokes v when it is a lazy value, otherwise returns v as is.
func evaluate(v any) any {
	switch fn := v.(type) {
	case Thunk:
		if fn == nil {
			return nil
		}
		return fn()
	case func() any:
		if fn == nil {
			return nil
		}
		return fn()
	default:
		return v
	}
}

// Stringify renders a resolved value the way it appears in output.
func Stringify(v any) string {
	return valueToString(v)
}

// valueToString renders a resolved value as template text.
func valueToString(v any) string {
	switch val := v.(type) {
	case nil:
		return StringValueEmpty
	case string:
		return val
	case bool:
		if val {
			return StringValueTrue
		}
		return StringValueFalse
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, IntBase10)
	case int32:
		return strconv.FormatInt(int64(val), IntBase10)
	case uint:
		return strconv.FormatUint(uint64(val), IntBase10)
	case uint64:
		return strconv.FormatUint(val, IntBase10)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case time.Time:
		return val.Format(time.RFC3339)
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = valueToString(rv.Index(i).Interface())
		}
		return strings.Join(parts, sequenceJoinSeparator)
	case reflect.Map, reflect.Struct:
		if s, ok := marshalJSON(v); ok {
			return s
		}
	}
	return fmt.Sprint(v)
}

// formatFloat prints a float the shortest way, without exponent notation.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return StringValueNaN
	case math.IsInf(f, 1):
		return StringValueInf
	case math.IsInf(f, -1):
		return StringValueNInf
	}
	return strconv.FormatFloat(f, FloatFormatFlag, FloatPrecisionAll, FloatBitSize64)
}

// marshalJSON encodes v without HTML escaping and without the trailing newline.
func marshalJSON(v any) (string, bool) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return StringValueEmpty, false
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}

// isNumeric reports whether v holds a Go numeric type.
func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// toNumber converts numeric values and numeric strings to float64.
func toNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), FloatBitSize64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// toInt parses a filter argument as an integer, falling back to def.
func toInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// isTruthy determines the truthiness of a value
// Truthiness rules:
// - nil -> false
// - bool -> value
// - string -> len(s) > 0
// - numbers -> n != 0 and not NaN
// - slice/map -> len(x) > 0
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return len(val) > 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	if f, ok := toNumber(v); ok && isNumeric(v) {
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}

// entry is one element of an iterable source, keyed by index or map key.
type entry struct {
	Key   any
	Value any
}

// iterate flattens a slice, array or string-keyed map into ordered entries.
// Map keys are sorted so rendering stays deterministic.
func iterate(v any) ([]entry, bool) {
	switch val := v.(type) {
	case []any:
		entries := make([]entry, len(val))
		for i, item := range val {
			entries[i] = entry{Key: i, Value: item}
		}
		return entries, true
	case map[string]any:
		keys := sortedKeys(val)
		entries := make([]entry, len(keys))
		for i, k := range keys {
			entries[i] = entry{Key: k, Value: val[k]}
		}
		return entries, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		entries := make([]entry, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			entries[i] = entry{Key: i, Value: rv.Index(i).Interface()}
		}
		return entries, true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		entries := make([]entry, len(keys))
		for i, k := range keys {
			entries[i] = entry{Key: k, Value: rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()}
		}
		return entries, true
	default:
		return nil, false
	}
}

// toTime converts time values, epoch milliseconds and date strings.
func toTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		return parseTimeString(val)
	}
	if isNumeric(v) {
		ms, _ := toNumber(v)
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

// parseTimeString tries common layouts in order.
func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range commonTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
