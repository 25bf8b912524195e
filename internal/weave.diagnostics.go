package internal

import (
	"go.uber.org/zap"
)

// DiagnosticKind classifies a non-fatal rendering problem.
type DiagnosticKind string

// Diagnostic kinds
const (
	DiagnosticLookupMiss          DiagnosticKind = "lookup_miss"
	DiagnosticGrammarMismatch     DiagnosticKind = "grammar_mismatch"
	DiagnosticPerformanceAdvisory DiagnosticKind = "performance_advisory"
	DiagnosticArgumentError       DiagnosticKind = "argument_error"
)

// Diagnostic is a non-fatal report emitted while rendering. The rendered
// output is unaffected by whether anyone listens.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Tag     string // raw tag text, when the diagnostic concerns a tag
	Filter  string // filter name, for filter lookups
	Path    string // value or dictionary path
	Count   int    // collection size, for performance advisories
}

// DiagnosticHandler receives diagnostics as they are produced.
type DiagnosticHandler func(Diagnostic)

// diagnose logs the diagnostic and forwards it to the configured handler.
func (r *Renderer) diagnose(d Diagnostic) {
	fields := []zap.Field{
		zap.String(LogFieldKind, string(d.Kind)),
		zap.String(LogFieldReason, d.Message),
	}
	if d.Tag != "" {
		fields = append(fields, zap.String(LogFieldTag, d.Tag))
	}
	if d.Filter != "" {
		fields = append(fields, zap.String(LogFieldFilter, d.Filter))
	}
	if d.Path != "" {
		fields = append(fields, zap.String(LogFieldPath, d.Path))
	}
	if d.Count > 0 {
		fields = append(fields, zap.Int(LogFieldCount, d.Count))
	}
	r.logger.Warn(LogMsgDiagnostic, fields...)

	if r.handler != nil {
		r.handler(d)
	}
}

// Report emits a diagnostic raised outside of rendering.
func (r *Renderer) Report(d Diagnostic) {
	r.diagnose(d)
}
