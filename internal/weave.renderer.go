package internal

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// RendererConfig holds renderer configuration options.
type RendererConfig struct {
	Language              string         // active 2-3 letter language code
	Dictionary            map[string]any // default dictionary, already collapsed
	MaxDepth              int            // maximum nesting depth (0 = unlimited)
	MaxIterations         int            // fixpoint cap per pass (0 = unlimited)
	LoopAdvisoryThreshold int            // loop size that triggers an advisory (0 = never)
	MaxRangeSize          int            // largest integer range a loop may expand (0 = unlimited)
}

// DefaultRendererConfig returns the default renderer configuration.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Language:              DefaultLanguage,
		Dictionary:            map[string]any{},
		MaxDepth:              DefaultMaxDepth,
		MaxIterations:         DefaultMaxIterations,
		LoopAdvisoryThreshold: DefaultLoopAdvisoryThreshold,
		MaxRangeSize:          DefaultMaxRangeSize,
	}
}

// Renderer expands templates against data. It holds no per-call state and
// is safe for concurrent use.
type Renderer struct {
	config  RendererConfig
	filters *FilterRegistry
	langTag language.Tag
	logger  *zap.Logger
	handler DiagnosticHandler
}

// NewRenderer creates a renderer with the built-in filters registered.
func NewRenderer(config RendererConfig, logger *zap.Logger, handler DiagnosticHandler) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Dictionary == nil {
		config.Dictionary = map[string]any{}
	}
	logger.Debug(LogMsgRendererCreated, zap.String(LogFieldLanguage, config.Language))

	filters := NewFilterRegistry()
	RegisterBuiltinFilters(filters)

	return &Renderer{
		config:  config,
		filters: filters,
		langTag: language.Make(config.Language),
		logger:  logger,
		handler: handler,
	}
}

// Filters returns the built-in filter registry.
func (r *Renderer) Filters() *FilterRegistry {
	return r.filters
}

// Config returns the renderer configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// Render expands template against data. An empty template is an argument
// error; exceeding the depth or iteration limits is a hard error. Every
// other problem leaves the offending tag in place and is reported as a
// diagnostic.
func (r *Renderer) Render(template string, data map[string]any) (string, error) {
	if template == "" {
		err := NewArgumentError(ErrMsgEmptyTemplate, StringValueEmpty)
		r.diagnose(Diagnostic{Kind: DiagnosticArgumentError, Message: err.Error()})
		return StringValueEmpty, err
	}
	if data == nil {
		data = map[string]any{}
	}

	r.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldLength, len(template)))
	out, err := r.render(template, data, 0)
	if err != nil {
		return StringValueEmpty, err
	}
	r.logger.Debug(LogMsgRenderEnd)
	return out, nil
}

// render runs the four passes in order: values, loops, conditionals and
// dictionary text. Loop and conditional bodies come back here with depth+1.
func (r *Renderer) render(template string, data map[string]any, depth int) (string, error) {
	if r.config.MaxDepth > 0 && depth > r.config.MaxDepth {
		return StringValueEmpty, NewDepthError(r.config.MaxDepth)
	}
	if template == "" {
		return template, nil
	}

	passes := []struct {
		name string
		fn   func(s string, data map[string]any, depth, iteration int) (string, error)
	}{
		{PassValues, r.substituteValues},
		{PassLoops, r.expandLoops},
		{PassConditionals, r.expandConditionals},
		{PassText, r.substituteText},
	}

	out := template
	for _, pass := range passes {
		var err error
		out, err = r.fixpoint(pass.name, out, data, depth, pass.fn)
		if err != nil {
			return StringValueEmpty, err
		}
	}
	return out, nil
}

// fixpoint re-applies fn until the text stops changing.
func (r *Renderer) fixpoint(
	pass string,
	s string,
	data map[string]any,
	depth int,
	fn func(s string, data map[string]any, depth, iteration int) (string, error),
) (string, error) {
	for iteration := 0; ; iteration++ {
		if r.config.MaxIterations > 0 && iteration >= r.config.MaxIterations {
			return StringValueEmpty, NewIterationError(pass, r.config.MaxIterations)
		}
		out, err := fn(s, data, depth, iteration)
		if err != nil {
			return StringValueEmpty, err
		}
		if out == s {
			if ce := r.logger.Check(zap.DebugLevel, LogMsgPassComplete); ce != nil {
				ce.Write(zap.String(LogFieldPass, pass), zap.Int(LogFieldIterations, iteration+1), zap.Int(LogFieldDepth, depth))
			}
			return out, nil
		}
		s = out
	}
}

// substituteValues replaces resolvable ${...} tokens outside loop bodies.
// Loop bodies are left for the per-iteration render, where loop bindings
// are visible.
func (r *Renderer) substituteValues(s string, data map[string]any, depth, _ int) (string, error) {
	if !strings.Contains(s, StrValueOpen) {
		return s, nil
	}

	var sb strings.Builder
	pos := 0
	for _, b := range loopFamily.scan(s).Blocks {
		if err := r.substituteSegment(&sb, s[pos:b.HeaderEnd], data, depth); err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(s[b.HeaderEnd:b.End])
		pos = b.End
	}
	if err := r.substituteSegment(&sb, s[pos:], data, depth); err != nil {
		return StringValueEmpty, err
	}
	return sb.String(), nil
}

// substituteSegment writes seg to sb with every resolvable innermost ${...}
// token replaced by its value. Unresolved tokens stay verbatim.
func (r *Renderer) substituteSegment(sb *strings.Builder, seg string, data map[string]any, depth int) error {
	return replaceTokens(sb, seg, StrValueOpen, func(token string) (string, bool, error) {
		v, ok, err := r.resolveToken(token, data, depth)
		if err != nil {
			return StringValueEmpty, false, err
		}
		if !ok {
			r.logger.Debug(LogMsgValueUnresolved, zap.String(LogFieldPath, token))
			return StringValueEmpty, false, nil
		}
		return valueToString(v), true, nil
	})
}

// substituteText replaces resolvable _{path|fallback} tokens.
func (r *Renderer) substituteText(s string, data map[string]any, _, _ int) (string, error) {
	if !strings.Contains(s, StrTextOpen) {
		return s, nil
	}

	dict := r.dictionaryFor(data)
	var sb strings.Builder
	err := replaceTokens(&sb, s, StrTextOpen, func(token string) (string, bool, error) {
		path, fallback, _ := strings.Cut(token, FilterSeparator)
		v, ok := r.Lookup(strings.TrimSpace(path), strings.TrimSpace(fallback), dict)
		if !ok {
			r.logger.Debug(LogMsgTextUnresolved, zap.String(LogFieldPath, token))
			return StringValueEmpty, false, nil
		}
		return valueToString(v), true, nil
	})
	if err != nil {
		return StringValueEmpty, err
	}
	return sb.String(), nil
}

// replaceTokens scans s for open...} tokens containing no braces and writes
// s to sb with each token replaced by resolve's result when it reports ok.
// A token whose content contains "{" is skipped so the innermost token is
// replaced first.
func replaceTokens(sb *strings.Builder, s, open string, resolve func(token string) (string, bool, error)) error {
	pos := 0
	for {
		idx := strings.Index(s[pos:], open)
		if idx < 0 {
			sb.WriteString(s[pos:])
			return nil
		}
		start := pos + idx
		contentStart := start + len(open)
		end := strings.IndexAny(s[contentStart:], StrTagClose+string(CharOpenBrace))
		if end < 0 {
			sb.WriteString(s[pos:])
			return nil
		}
		end += contentStart
		if s[end] == CharOpenBrace {
			// a nested token follows; emit the outer opener's first byte
			// and let the next search find the inner token
			sb.WriteString(s[pos : start+1])
			pos = start + 1
			continue
		}

		sb.WriteString(s[pos:start])
		replacement, ok, err := resolve(s[contentStart:end])
		if err != nil {
			return err
		}
		if ok {
			sb.WriteString(replacement)
		} else {
			sb.WriteString(s[start : end+1])
		}
		pos = end + 1
	}
}

// dictionaryFor returns data["dictionary"] when present, else the default.
func (r *Renderer) dictionaryFor(data map[string]any) map[string]any {
	if raw, ok := data[DataKeyDictionary]; ok {
		if dict, ok := asStringMap(evaluate(raw)); ok {
			return dict
		}
	}
	return r.config.Dictionary
}

// expandBlocks replaces every top-level block of family in s with the
// output of expand. Unclosed openers stay verbatim and are reported on the
// first iteration of the pass only.
func (r *Renderer) expandBlocks(
	s string,
	family blockFamily,
	iteration int,
	expand func(raw string, b block) (string, error),
) (string, error) {
	if !strings.Contains(s, StrBlockOpen) {
		return s, nil
	}

	result := family.scan(s)
	if iteration == 0 {
		for _, tag := range result.Unclosed {
			r.diagnose(Diagnostic{Kind: DiagnosticGrammarMismatch, Message: ErrMsgUnclosedBlock, Tag: tag})
		}
	}
	if len(result.Blocks) == 0 {
		return s, nil
	}

	var sb strings.Builder
	pos := 0
	for _, b := range result.Blocks {
		sb.WriteString(s[pos:b.Start])
		out, err := expand(s[b.Start:b.End], b)
		if err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(out)
		pos = b.End
	}
	sb.WriteString(s[pos:])
	return sb.String(), nil
}
