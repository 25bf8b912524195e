package internal

import (
	"strings"

	"go.uber.org/zap"
)

// ResolveToken resolves "path|filter(args)|..." against data. The bool is
// false when the path does not resolve; filters never run in that case.
func (r *Renderer) ResolveToken(token string, data map[string]any) (any, bool, error) {
	if data == nil {
		data = map[string]any{}
	}
	return r.resolveToken(token, data, 0)
}

// resolveToken navigates the path and applies the filter chain left to
// right. Built-in filters win over data["filters"]; an unknown filter is
// reported and the value passes through unchanged.
func (r *Renderer) resolveToken(token string, data map[string]any, depth int) (any, bool, error) {
	parts := strings.Split(token, FilterSeparator)
	path := strings.TrimSpace(parts[0])

	value, ok := navigate(data, path)
	if !ok {
		return nil, false, nil
	}

	for _, spec := range parts[1:] {
		name, args, ok := parseFilterSpec(spec)
		if !ok {
			r.diagnose(Diagnostic{
				Kind:    DiagnosticLookupMiss,
				Message: ErrMsgFilterSpecInvalid,
				Filter:  strings.TrimSpace(spec),
				Path:    path,
			})
			continue
		}

		if f, ok := r.filters.Get(name); ok {
			out, err := f.Fn(r, &FilterCall{
				Name:  name,
				Value: value,
				Args:  args,
				Data:  data,
				Depth: depth,
			})
			if err != nil {
				return nil, false, err
			}
			value = out
		} else if fn, ok := customFilter(data, name); ok {
			value = fn(value, args...)
		} else {
			r.diagnose(Diagnostic{
				Kind:    DiagnosticLookupMiss,
				Message: ErrMsgFilterNotFound,
				Filter:  name,
				Path:    path,
			})
			continue
		}

		if ce := r.logger.Check(zap.DebugLevel, LogMsgFilterApplied); ce != nil {
			ce.Write(zap.String(LogFieldFilter, name), zap.String(LogFieldPath, path))
		}
	}
	return value, true, nil
}

// Lookup resolves a dictionary path. When it misses, fallback is tried
// the same way; a fallback may itself carry a further "|fallback".
// A nil dict means the default dictionary.
func (r *Renderer) Lookup(path, fallback string, dict map[string]any) (any, bool) {
	if dict == nil {
		dict = r.config.Dictionary
	}
	if v, ok := r.lookupText(path, dict); ok {
		return v, true
	}
	if fallback == "" {
		return nil, false
	}
	next, rest, _ := strings.Cut(fallback, FilterSeparator)
	return r.Lookup(strings.TrimSpace(next), strings.TrimSpace(rest), dict)
}

// lookupText walks dict and collapses a language-keyed node it lands on.
// Any other mapping is not text and counts as a miss.
func (r *Renderer) lookupText(path string, dict map[string]any) (any, bool) {
	v, ok := navigate(dict, path)
	if !ok {
		return nil, false
	}
	m, isMap := asStringMap(v)
	if !isMap {
		return v, true
	}
	leaf, ok := languageLeaf(m, r.config.Language)
	if !ok {
		return nil, false
	}
	return leaf, true
}

// languageLeaf returns m[lang] when m is a language-keyed leaf, meaning
// the entry for lang exists and is not itself a mapping.
func languageLeaf(m map[string]any, lang string) (any, bool) {
	raw, ok := m[lang]
	if !ok {
		return nil, false
	}
	v := evaluate(raw)
	if _, isMap := asStringMap(v); isMap {
		return nil, false
	}
	return v, true
}

// Translate collapses every language-keyed leaf of dict to its entry for
// lang. Nodes without an entry for lang are kept and their children are
// translated instead. The input is never modified.
func Translate(dict map[string]any, lang string) map[string]any {
	if dict == nil {
		return nil
	}
	out := make(map[string]any, len(dict))
	for k, v := range dict {
		out[k] = translateNode(v, lang)
	}
	return out
}

func translateNode(node any, lang string) any {
	switch val := node.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = translateNode(item, lang)
		}
		return out
	case map[string]string:
		if leaf, ok := val[lang]; ok {
			return leaf
		}
		return val
	}

	m, ok := asStringMap(node)
	if !ok {
		return node
	}
	if leaf, ok := languageLeaf(m, lang); ok {
		return leaf
	}
	return Translate(m, lang)
}
