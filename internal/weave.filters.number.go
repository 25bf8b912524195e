package internal

import (
	"math"
	"strconv"
	"strings"
)

// Number formatting constants
const (
	DigitGroupSize      = 3
	DigitGroupSeparator = " "
	DecimalSeparator    = ","
	DecimalPoint        = "."
	MinusSign           = "-"
	FixedDefaultDigits  = 1
	ZeroPadLimit        = 10
)

// registerNumberFilters registers numeric formatting filters
func registerNumberFilters(r *FilterRegistry) {
	// plural(one, few?, many?) string
	r.MustRegister(&Filter{
		Name: FilterNamePlural,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			n, ok := toNumber(call.Value)
			if !ok {
				return call.Value, nil
			}
			return pluralForm(n, call.Args), nil
		},
	})

	// digit(fractionDigits?) string
	r.MustRegister(&Filter{
		Name: FilterNameDigit,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			n, ok := toNumber(call.Value)
			if !ok {
				return call.Value, nil
			}
			precision := FloatPrecisionAll
			if call.HasArg(ArgIndexFirst) {
				precision = toInt(call.Args[ArgIndexFirst], FloatPrecisionAll)
			}
			if precision < 0 {
				precision = FloatPrecisionAll
			}
			return groupDigits(n, precision), nil
		},
	})

	// fixed(digits?, strip?) string or number
	r.MustRegister(&Filter{
		Name: FilterNameFixed,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			if !isNumeric(call.Value) {
				return call.Value, nil
			}
			n, _ := toNumber(call.Value)
			digits := toInt(call.Arg(ArgIndexFirst, StringValueEmpty), FixedDefaultDigits)
			if digits < 0 {
				digits = FixedDefaultDigits
			}
			s := strconv.FormatFloat(n, FloatFormatFlag, digits, FloatBitSize64)
			if call.HasArg(ArgIndexSecond) && isFlagSet(call.Args[ArgIndexSecond]) {
				stripped, err := strconv.ParseFloat(s, FloatBitSize64)
				if err == nil {
					return stripped, nil
				}
			}
			return s, nil
		},
	})

	// round number
	r.MustRegister(&Filter{
		Name: FilterNameRound,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			if !isNumeric(call.Value) {
				return call.Value, nil
			}
			n, _ := toNumber(call.Value)
			// halves round towards positive infinity
			return math.Floor(n + 0.5), nil
		},
	})

	// zero string
	r.MustRegister(&Filter{
		Name: FilterNameZero,
		Fn: func(_ *Renderer, call *FilterCall) (any, error) {
			n, ok := toNumber(call.Value)
			if !ok {
				return call.Value, nil
			}
			if n >= 0 && n < ZeroPadLimit {
				return StringValueZero + strings.TrimSpace(valueToString(call.Value)), nil
			}
			return call.Value, nil
		},
	})
}

// pluralForm picks the one/few/many form for a count.
func pluralForm(n float64, forms []string) string {
	form := func(i int) string {
		if i < len(forms) {
			return forms[i]
		}
		return StringValueEmpty
	}

	count := int64(math.Abs(math.Trunc(n)))
	mod10 := count % 10
	mod100 := count % 100

	switch {
	case mod10 == 1 && mod100 != 11:
		return form(ArgIndexFirst)
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return form(ArgIndexSecond)
	case len(forms) > ArgIndexThird:
		return form(ArgIndexThird)
	default:
		return form(ArgIndexSecond)
	}
}

// groupDigits formats n with space-separated thousands and a comma before
// the decimals. precision < 0 keeps the shortest representation.
func groupDigits(n float64, precision int) string {
	sign := StringValueEmpty
	if n < 0 {
		sign = MinusSign
		n = -n
	}

	s := strconv.FormatFloat(n, FloatFormatFlag, precision, FloatBitSize64)
	intPart, decPart, _ := strings.Cut(s, DecimalPoint)

	var groups []string
	for len(intPart) > DigitGroupSize {
		groups = append([]string{intPart[len(intPart)-DigitGroupSize:]}, groups...)
		intPart = intPart[:len(intPart)-DigitGroupSize]
	}
	groups = append([]string{intPart}, groups...)

	out := sign + strings.Join(groups, DigitGroupSeparator)
	if decPart != "" {
		out += DecimalSeparator + decPart
	}
	return out
}

// isFlagSet interprets a filter argument as a boolean switch.
func isFlagSet(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StringValueEmpty, StringValueFalse, StringValueZero:
		return false
	default:
		return true
	}
}
