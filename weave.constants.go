package weave

import "github.com/itsatony/go-weave/internal"

// Version of the weave module
const Version = "1.0.0"

// Reserved data keys
const (
	DataKeyFilters    = internal.DataKeyFilters
	DataKeyDictionary = internal.DataKeyDictionary
	DataKeyLoop       = internal.DataKeyLoop
)

// Defaults
const (
	DefaultLanguage              = internal.DefaultLanguage
	DefaultMaxDepth              = internal.DefaultMaxDepth
	DefaultMaxIterations         = internal.DefaultMaxIterations
	DefaultLoopAdvisoryThreshold = internal.DefaultLoopAdvisoryThreshold
	DefaultMaxRangeSize          = internal.DefaultMaxRangeSize
	DefaultDateFormat            = internal.DefaultDateFormat
)

// Fallback language for the built-in calendar names
const calendarFallbackLanguage = internal.LanguageEnglish

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyArgument = "argument"
	MetaKeyPath     = "path"
	MetaKeyFallback = "fallback"
	MetaKeyLanguage = "language"
	MetaKeyPass     = "pass"
	MetaKeyMaxDepth = "max_depth"
	MetaKeyMaxIter  = "max_iterations"
	MetaKeyOption   = "option"
	MetaKeyValue    = "value"
	MetaKeyFile     = "file"
)

// Option names used in configuration errors
const (
	OptionLanguage              = "language"
	OptionMaxDepth              = "max_depth"
	OptionMaxIterations         = "max_iterations"
	OptionLoopAdvisoryThreshold = "loop_advisory_threshold"
	OptionMaxRangeSize          = "max_range_size"
)

// Log messages
const (
	LogMsgEngineCreated    = "weave engine created"
	LogMsgDictionaryLoaded = "dictionary loaded"
)

// Log field names
const (
	LogFieldLanguage = "language"
	LogFieldEntries  = "entries"
	LogFieldFile     = "file"
)
