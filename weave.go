// Package weave renders small inline text templates against a data map.
//
// Templates mix literal text with four tag families:
//
//	${path|filter(arg)}              value, with an optional filter chain
//	#{for x in items}..#{empty}..#{endfor}   loop over a sequence, mapping or range
//	#{if !flag}..#{else}..#{endif}   conditional
//	_{dictionary.path|fallback.path} localized text
//
// # Basic Usage
//
//	engine := weave.MustNew()
//	out, err := engine.Render("Hello, ${user.name|upper}!", map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//	// out: "Hello, ALICE!"
//
// # Evaluation Order
//
// Render runs four passes in order: values, loops, conditionals and
// localized text. Each pass is re-applied until the text stops changing.
// Loop and conditional bodies are rendered again through all four passes,
// which is how tags nest. Loop bodies see the loop variable and a "loop"
// binding with key, index0, index, isFirst, isLast, isOnly and item.
//
// # Malformed Tags
//
// Rendering never fails on a template typo. Unresolved values, unknown
// filters, malformed headers and unclosed blocks stay verbatim in the
// output and are reported through WithDiagnosticHandler and the logger.
// Two cases are deliberate and differ from each other:
//
//	#{for i in items}X#{endfor}  with no items renders the raw tag
//	#{if flag}X#{endif}          with a false flag renders ""
//
// # Filters
//
// Built-in filters: hash, plural, digit, ft, fixed, round, zero, join,
// extra, default, substr, length, lower, upper, date, json and escapeHTML.
// Extra filters are passed per call under the reserved "filters" key:
//
//	engine.Render("${name|shout}", map[string]any{
//	    "name": "hi",
//	    "filters": map[string]weave.FilterFunc{
//	        "shout": func(v any, args ...string) any { return fmt.Sprint(v) + "!" },
//	    },
//	})
//
// Built-in filters always win over caller filters of the same name.
// Filter arguments are split on commas and cannot contain commas or
// parentheses.
//
// # Localization
//
// The engine holds a default dictionary for one language, assembled from
// the built-in month and weekday names and WithDictionary. A "dictionary"
// key in the render data replaces it for that call.
//
//	engine, _ := weave.New(
//	    weave.WithLanguage("ru"),
//	    weave.WithDictionary(map[string]any{
//	        "greeting": map[string]any{"en": "Hello", "ru": "Привет"},
//	    }),
//	)
//	out, _ := engine.Render("_{greeting}", nil) // "Привет"
package weave
