package internal

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// MergeMaps returns a new map holding base overlaid with overlay. Nested
// map[string]any values present on both sides are merged recursively; every
// other overlay value replaces the base value. Neither input is modified.
func MergeMaps(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if baseMap, ok := out[k].(map[string]any); ok {
			if overlayMap, ok := v.(map[string]any); ok {
				out[k] = MergeMaps(baseMap, overlayMap)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// navigate walks a dot-delimited path through data. Lazy values are
// evaluated at every hop. Empty segments are skipped.
func navigate(data any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := data
	found := false
	for _, part := range strings.Split(path, PathSeparator) {
		if part == "" {
			continue
		}
		next, ok := child(evaluate(current), part)
		if !ok {
			return nil, false
		}
		current = next
		found = true
	}
	if !found {
		return nil, false
	}
	return evaluate(current), true
}

// child looks up a single path segment on a map, slice or struct.
func child(v any, key string) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		res, ok := val[key]
		return res, ok
	case map[string]string:
		res, ok := val[key]
		return res, ok
	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(val) {
			return nil, false
		}
		return val[idx], true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		res := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !res.IsValid() {
			return nil, false
		}
		return res.Interface(), true
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	case reflect.Struct:
		field := rv.FieldByName(key)
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true
	default:
		return nil, false
	}
}

// asStringMap returns v as a map[string]any when it is any string-keyed map.
func asStringMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, s := range val {
			out[k] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
