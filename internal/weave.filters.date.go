package internal

import (
	"strings"
	"time"
)

// DefaultDateFormat is used when the date filter gets no format argument.
const DefaultDateFormat = "Y-m-d"

// Field name used in the one-field context each directive is rendered with.
const dateFieldName = "v"

// Dictionary forms for calendar names
const (
	CalendarFormShort    = "short"
	CalendarFormFull     = "full"
	CalendarFormGenitive = "genitive"
	CalendarKeyMonth     = "month"
	CalendarKeyWeekday   = "weekday"
)

// dateDirective renders one format letter from a time value.
type dateDirective struct {
	template string
	field    func(t time.Time) int
}

func day(t time.Time) int       { return t.Day() }
func month(t time.Time) int     { return int(t.Month()) }
func weekday(t time.Time) int   { return int(t.Weekday()) }
func fullYear(t time.Time) int  { return t.Year() }
func shortYear(t time.Time) int { return t.Year() % 100 }
func hour(t time.Time) int      { return t.Hour() }
func minute(t time.Time) int    { return t.Minute() }
func second(t time.Time) int    { return t.Second() }

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func zeroField() string { return StrValueOpen + dateFieldName + FilterSeparator + FilterNameZero + StrTagClose }
func plainField() string { return StrValueOpen + dateFieldName + StrTagClose }

func calendarName(key, form string) string {
	return StrTextOpen + key + PathSeparator + plainField() + PathSeparator + form + StrTagClose
}

// dateDirectives maps format letters to the template rendering them.
var dateDirectives = map[rune]dateDirective{
	'd': {zeroField(), day},
	'j': {plainField(), day},
	'D': {calendarName(CalendarKeyWeekday, CalendarFormShort), weekday},
	'l': {calendarName(CalendarKeyWeekday, CalendarFormFull), weekday},
	'w': {plainField(), weekday},
	'N': {plainField(), isoWeekday},
	'm': {zeroField(), month},
	'n': {plainField(), month},
	'M': {calendarName(CalendarKeyMonth, CalendarFormShort), month},
	'E': {calendarName(CalendarKeyMonth, CalendarFormGenitive), month},
	'F': {calendarName(CalendarKeyMonth, CalendarFormFull), month},
	'y': {zeroField(), shortYear},
	'Y': {plainField(), fullYear},
	'H': {zeroField(), hour},
	'i': {zeroField(), minute},
	's': {zeroField(), second},
}

// registerDateFilters registers date formatting filters
func registerDateFilters(r *FilterRegistry) {
	// date(format?) string
	r.MustRegister(&Filter{
		Name: FilterNameDate,
		Fn: func(rd *Renderer, call *FilterCall) (any, error) {
			t, ok := toTime(call.Value)
			if !ok {
				return call.Value, nil
			}
			return rd.formatDate(t, call.Arg(ArgIndexFirst, DefaultDateFormat), call.Depth+1)
		},
	})
}

// formatDate expands each directive by rendering its template against a
// one-field context, so names come from the default dictionary. A
// backslash makes the following character literal.
func (r *Renderer) formatDate(t time.Time, format string, depth int) (string, error) {
	var sb strings.Builder
	escaped := false
	for _, c := range format {
		if escaped {
			sb.WriteRune(c)
			escaped = false
			continue
		}
		if c == CharEscape {
			escaped = true
			continue
		}
		directive, ok := dateDirectives[c]
		if !ok {
			sb.WriteRune(c)
			continue
		}
		out, err := r.render(directive.template, map[string]any{dateFieldName: directive.field(t)}, depth)
		if err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}
