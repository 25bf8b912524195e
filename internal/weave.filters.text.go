package internal

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
)

// Argument index constants
const (
	ArgIndexFirst  = 0
	ArgIndexSecond = 1
	ArgIndexThird  = 2
)

// hash parameters. The modulus keeps the accumulator exact in a float64
// and its hex form within HashMaxLength digits.
const (
	HashDefaultLength = 6
	HashMaxLength     = 12
	hashMultiplier    = 31
	hashModulus       = 1 << 48
)

// Non-breaking space and typographic characters
const (
	NBSP          = "\u00a0"
	TimesSign     = "×"
	GuillemetOpen = "«"
	GuillemetEnd  = "»"
)

// Typography rules applied by the ft filter, in order.
var ftRules = []struct {
	pattern     *regexp2.Regexp
	replacement string
}{
	// spaced dash or hyphen becomes a non-breaking em dash
	{regexp2.MustCompile(`[ \u00a0]+(?:—|–|-{1,2})[ \u00a0]+`, regexp2.None), NBSP + "— "},
	// 10x20 and 10 х 20 become 10×20
	{regexp2.MustCompile(`(?<=\d)[ \u00a0]*[xх][ \u00a0]*(?=\d)`, regexp2.None), TimesSign},
	// a quoted run right after a tag becomes guillemets
	{regexp2.MustCompile(`(?<=>)"([^"<]*)"`, regexp2.None), GuillemetOpen + "$1" + GuillemetEnd},
	// short words and digit groups stick to what follows
	{regexp2.MustCompile(`(?<=^| |>)([^\s<>]{1,3}) (?=\S)`, regexp2.None), "$1" + NBSP},
}

// HTML escape table. References are emitted without the terminating
// semicolon to stay byte-compatible with existing markup.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp",
	"<", "&lt",
	">", "&gt",
	`"`, "&quot",
	"'", "&apos",
)

// registerTextFilters registers string filters
func registerTextFilters(r *FilterRegistry) {
	// hash(length?) string
	r.MustRegister(&Filter{
		Name: FilterNameHash,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			length := toInt(call.Arg(ArgIndexFirst, StringValueEmpty), HashDefaultLength)
			return hashValue(call.Value, length), nil
		},
	})

	// ft string
	r.MustRegister(&Filter{
		Name: FilterNameFT,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			s, ok := call.Value.(string)
			if !ok {
				return call.Value, nil
			}
			return typograph(s), nil
		},
	})

	// lower string
	r.MustRegister(&Filter{
		Name: FilterNameLower,
		Fn: func(rd *Renderer, call *FilterCall) (any, error) {
			return cases.Lower(rd.langTag).String(valueToString(call.Value)), nil
		},
	})

	// upper string
	r.MustRegister(&Filter{
		Name: FilterNameUpper,
		Fn: func(rd *Renderer, call *FilterCall) (any, error) {
			return cases.Upper(rd.langTag).String(valueToString(call.Value)), nil
		},
	})

	// substr(from, length?) string
	r.MustRegister(&Filter{
		Name: FilterNameSubstr,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			s, ok := call.Value.(string)
			if !ok {
				return call.Value, nil
			}
			from := toInt(call.Arg(ArgIndexFirst, StringValueZero), 0)
			if !call.HasArg(ArgIndexSecond) {
				return substr(s, from, -1), nil
			}
			length := toInt(call.Args[ArgIndexSecond], 0)
			if length <= 0 {
				return StringValueEmpty, nil
			}
			return substr(s, from, length), nil
		},
	})

	// escapeHTML string
	r.MustRegister(&Filter{
		Name: FilterNameEscapeHTML,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			return htmlEscaper.Replace(valueToString(call.Value)), nil
		},
	})

	// json string
	r.MustRegister(&Filter{
		Name: FilterNameJSON,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			s, ok := marshalJSON(call.Value)
			if !ok {
				return call.Value, nil
			}
			return s, nil
		},
	})

	// extra string
	r.MustRegister(&Filter{
		Name: FilterNameExtra,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			m, ok := asStringMap(call.Value)
			if !ok {
				return call.Value, nil
			}
			return attributes(m), nil
		},
	})
}

// hashValue computes a short, stable, non-cryptographic digest.
func hashValue(v any, length int) string {
	if length <= 0 {
		length = HashDefaultLength
	}
	if length > HashMaxLength {
		length = HashMaxLength
	}

	var s string
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		s, _ = marshalJSON(v)
	default:
		s = valueToString(v)
	}

	h := 0.0
	for i, c := range []rune(s) {
		h = math.Mod(h*hashMultiplier+float64(c)*float64(i+1), hashModulus)
	}

	digest := strconv.FormatInt(int64(h), IntBase16)
	if pad := HashMaxLength - len(digest); pad > 0 {
		digest = strings.Repeat(StringValueZero, pad) + digest
	}
	return digest[len(digest)-length:]
}

// typograph applies the ft rules. A rule that fails leaves the text as is.
func typograph(s string) string {
	for _, rule := range ftRules {
		out, err := rule.pattern.Replace(s, rule.replacement, -1, -1)
		if err != nil {
			continue
		}
		s = out
	}
	return s
}

// substr slices s by runes. A negative from counts from the end; a
// negative length means "to the end".
func substr(s string, from, length int) string {
	runes := []rune(s)
	n := len(runes)
	if from < 0 {
		from = n + from
		if from < 0 {
			from = 0
		}
	}
	if from >= n {
		return StringValueEmpty
	}
	end := n
	if length >= 0 {
		end = from + length
		if end > n {
			end = n
		}
	}
	return string(runes[from:end])
}

// attributes renders a flat map as key="value" pairs in key order.
func attributes(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+`="`+valueToString(evaluate(m[k]))+`"`)
	}
	return strings.Join(parts, " ")
}
