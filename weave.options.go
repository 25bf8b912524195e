package weave

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	language              string
	dictionary            map[string]any
	maxDepth              int
	maxIterations         int
	loopAdvisoryThreshold int
	maxRangeSize          int
	logger                *zap.Logger
	diagnosticHandler     DiagnosticHandler
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		language:              DefaultLanguage,
		maxDepth:              DefaultMaxDepth,
		maxIterations:         DefaultMaxIterations,
		loopAdvisoryThreshold: DefaultLoopAdvisoryThreshold,
		maxRangeSize:          DefaultMaxRangeSize,
		logger:                nil,
	}
}

// WithLanguage sets the active language used to collapse dictionaries
// and to case-fold in the lower and upper filters. Any BCP 47 tag is
// accepted and reduced to its base language.
// Default: "en"
func WithLanguage(code string) Option {
	return func(c *engineConfig) {
		if code != "" {
			c.language = code
		}
	}
}

// WithDictionary sets the default dictionary. Language-keyed leaves are
// collapsed to the active language when the engine is created. Calling it
// more than once merges the dictionaries, later ones winning.
func WithDictionary(dict map[string]any) Option {
	return func(c *engineConfig) {
		if c.dictionary == nil {
			c.dictionary = dict
			return
		}
		c.dictionary = MergeData(c.dictionary, dict)
	}
}

// WithMaxDepth sets the maximum nesting depth of loop and conditional
// bodies. Use 0 for unlimited depth.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithMaxIterations caps how often a single pass is re-applied before
// rendering fails. Use 0 for no cap.
// Default: 1000
func WithMaxIterations(n int) Option {
	return func(c *engineConfig) {
		c.maxIterations = n
	}
}

// WithLoopAdvisoryThreshold sets the collection size above which a loop
// emits a performance advisory. Use 0 to disable.
// Default: 5000
func WithLoopAdvisoryThreshold(n int) Option {
	return func(c *engineConfig) {
		c.loopAdvisoryThreshold = n
	}
}

// WithMaxRangeSize caps how many integers a start..end loop source may
// produce. Larger ranges stay unexpanded and are reported. Use 0 for no cap.
// Default: 1000000
func WithMaxRangeSize(n int) Option {
	return func(c *engineConfig) {
		c.maxRangeSize = n
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithDiagnosticHandler sets a callback receiving every diagnostic.
// The handler runs synchronously during Render.
func WithDiagnosticHandler(h DiagnosticHandler) Option {
	return func(c *engineConfig) {
		c.diagnosticHandler = h
	}
}
