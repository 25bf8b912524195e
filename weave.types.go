package weave

import "github.com/itsatony/go-weave/internal"

// Thunk is a lazy data value. It is called every time a path reaches it,
// with no receiver; anything it needs must be captured by the closure.
// Plain func() any values are treated the same way.
type Thunk = internal.Thunk

// FilterFunc is a caller-supplied filter, passed under the "filters" data
// key. Arguments arrive as the literal strings written in the template.
type FilterFunc = internal.FilterFunc

// Diagnostic is a non-fatal report produced while rendering.
type Diagnostic = internal.Diagnostic

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind = internal.DiagnosticKind

// DiagnosticHandler receives diagnostics as they are produced.
type DiagnosticHandler = internal.DiagnosticHandler

// Diagnostic kinds
const (
	// DiagnosticLookupMiss reports an unknown filter name.
	DiagnosticLookupMiss = internal.DiagnosticLookupMiss
	// DiagnosticGrammarMismatch reports a malformed or unclosed block tag.
	DiagnosticGrammarMismatch = internal.DiagnosticGrammarMismatch
	// DiagnosticPerformanceAdvisory reports a loop over a large collection.
	DiagnosticPerformanceAdvisory = internal.DiagnosticPerformanceAdvisory
	// DiagnosticArgumentError reports a missing template or dictionary path.
	DiagnosticArgumentError = internal.DiagnosticArgumentError
)

// MergeData returns base deep-merged with overlay: nested maps present on
// both sides are merged, any other overlay value wins. Neither input is
// modified.
func MergeData(base, overlay map[string]any) map[string]any {
	return internal.MergeMaps(base, overlay)
}

// BuiltinFilters returns the names of the built-in filters, sorted.
func BuiltinFilters() []string {
	r := internal.NewFilterRegistry()
	internal.RegisterBuiltinFilters(r)
	return r.List()
}
