package internal

import (
	"encoding/json"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Default join separator, matching the textual form of sequences.
const DefaultJoinSeparator = sequenceJoinSeparator

// registerCollectionFilters registers sequence, mapping and fallback filters
func registerCollectionFilters(r *FilterRegistry) {
	// join(separator?) string
	r.MustRegister(&Filter{
		Name: FilterNameJoin,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			rv := reflect.ValueOf(call.Value)
			if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
				return call.Value, nil
			}
			parts := make([]string, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				parts[i] = valueToString(rv.Index(i).Interface())
			}
			return strings.Join(parts, call.Arg(ArgIndexFirst, DefaultJoinSeparator)), nil
		},
	})

	// length int
	r.MustRegister(&Filter{
		Name: FilterNameLength,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			switch val := call.Value.(type) {
			case string:
				return utf8.RuneCountInString(val), nil
			case nil:
				return call.Value, nil
			}
			if isNumeric(call.Value) {
				return len(valueToString(call.Value)), nil
			}
			rv := reflect.ValueOf(call.Value)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array, reflect.Map:
				return rv.Len(), nil
			default:
				return call.Value, nil
			}
		},
	})

	// default(fallback?) any
	r.MustRegister(&Filter{
		Name: FilterNameDefault,
		Fn: func(rd *Renderer, call *FilterCall) (any, error) {
			if isTruthy(call.Value) {
				return call.Value, nil
			}
			if !call.HasArg(ArgIndexFirst) {
				return StringValueEmpty, nil
			}
			fallback := strings.TrimSpace(call.Args[ArgIndexFirst])

			v, ok, err := rd.resolveToken(fallback, call.Data, call.Depth+1)
			if err != nil {
				return nil, err
			}
			if ok {
				return v, nil
			}
			return parseLiteral(fallback), nil
		},
	})
}

// parseLiteral reads s as a JSON literal (number, bool, object, array,
// quoted string); anything else is returned as a plain string.
func parseLiteral(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}
