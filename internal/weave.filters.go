package internal

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// FilterFunc is the signature of caller-supplied filters passed under the
// reserved "filters" data key.
type FilterFunc func(value any, args ...string) any

// FilterCall carries one filter invocation.
type FilterCall struct {
	Name  string
	Value any
	Args  []string
	Data  map[string]any // data the token is being resolved against
	Depth int
}

// Arg returns the i-th argument, or def when it was not supplied.
func (c *FilterCall) Arg(i int, def string) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return def
}

// HasArg reports whether the i-th argument was supplied.
func (c *FilterCall) HasArg(i int) bool {
	return i < len(c.Args)
}

// Filter is a built-in filter. Fn may return an error only for hard render
// limits raised by nested rendering; lookup problems degrade to pass-through.
type Filter struct {
	Name string
	Fn   func(r *Renderer, call *FilterCall) (any, error)
}

// FilterRegistry manages registered filters
type FilterRegistry struct {
	filters map[string]*Filter
	mu      sync.RWMutex
}

// NewFilterRegistry creates a new filter registry
func NewFilterRegistry() *FilterRegistry {
	return &FilterRegistry{
		filters: make(map[string]*Filter),
	}
}

// Register adds a filter to the registry
func (r *FilterRegistry) Register(f *Filter) error {
	if f == nil || f.Fn == nil {
		return NewFilterRegistryError(ErrMsgFilterNilFilter, "")
	}
	if f.Name == "" {
		return NewFilterRegistryError(ErrMsgFilterEmptyName, "")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.filters[f.Name]; exists {
		return NewFilterRegistryError(ErrMsgFilterExists, f.Name)
	}

	r.filters[f.Name] = f
	return nil
}

// MustRegister adds a filter and panics on error
func (r *FilterRegistry) MustRegister(f *Filter) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Get retrieves a filter by name
func (r *FilterRegistry) Get(name string) (*Filter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.filters[name]
	return f, ok
}

// List returns all registered filter names in sorted order
func (r *FilterRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Built-in filter names
const (
	FilterNameHash       = "hash"
	FilterNamePlural     = "plural"
	FilterNameDigit      = "digit"
	FilterNameFT         = "ft"
	FilterNameFixed      = "fixed"
	FilterNameRound      = "round"
	FilterNameZero       = "zero"
	FilterNameJoin       = "join"
	FilterNameExtra      = "extra"
	FilterNameDefault    = "default"
	FilterNameSubstr     = "substr"
	FilterNameLength     = "length"
	FilterNameLower      = "lower"
	FilterNameUpper      = "upper"
	FilterNameDate       = "date"
	FilterNameJSON       = "json"
	FilterNameEscapeHTML = "escapeHTML"
)

// RegisterBuiltinFilters registers all built-in filters with the registry
func RegisterBuiltinFilters(r *FilterRegistry) {
	registerTextFilters(r)
	registerNumberFilters(r)
	registerCollectionFilters(r)
	registerDateFilters(r)
}

// filterSpecPattern matches name(args) with optional, non-empty args.
var filterSpecPattern = regexp.MustCompile(`^([^(]+)(?:\(([^)]+)\))?$`)

// filterArgSeparator splits the argument list. Arguments cannot contain
// commas or parentheses.
var filterArgSeparator = regexp.MustCompile(`,\s*`)

// parseFilterSpec splits "name(a, b)" into its name and arguments.
func parseFilterSpec(spec string) (string, []string, bool) {
	m := filterSpecPattern.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil {
		return StringValueEmpty, nil, false
	}
	name := strings.TrimSpace(m[1])
	if m[2] == "" {
		return name, nil, true
	}
	return name, filterArgSeparator.Split(m[2], -1), true
}

// customFilter finds a caller-supplied filter in data["filters"].
func customFilter(data map[string]any, name string) (FilterFunc, bool) {
	raw, ok := data[DataKeyFilters]
	if !ok {
		return nil, false
	}

	var candidate any
	switch filters := raw.(type) {
	case map[string]FilterFunc:
		candidate, ok = filters[name]
	case map[string]func(any, ...string) any:
		candidate, ok = filters[name]
	case map[string]any:
		candidate, ok = filters[name]
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}

	switch fn := candidate.(type) {
	case FilterFunc:
		return fn, fn != nil
	case func(any, ...string) any:
		return fn, fn != nil
	default:
		return nil, false
	}
}
