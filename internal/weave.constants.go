package internal

// Tag syntax
const (
	StrValueOpen   = "${"
	StrBlockOpen   = "#{"
	StrTextOpen    = "_{"
	StrTagClose    = "}"
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharNegate     = '!'
	CharEscape     = '\\'
)

// Block tag keywords
const (
	KeywordFor    = "for"
	KeywordEmpty  = "empty"
	KeywordEndFor = "endfor"
	KeywordIf     = "if"
	KeywordElse   = "else"
	KeywordEndIf  = "endif"
	KeywordIn     = "in"
)

// Token separators
const (
	PathSeparator   = "."
	FilterSeparator = "|"
	RangeSeparator  = ".."
)

// Reserved data keys
const (
	DataKeyFilters    = "filters"
	DataKeyDictionary = "dictionary"
	DataKeyLoop       = "loop"
)

// Loop binding field names
const (
	LoopFieldKey     = "key"
	LoopFieldIndex0  = "index0"
	LoopFieldIndex   = "index"
	LoopFieldIsFirst = "isFirst"
	LoopFieldIsLast  = "isLast"
	LoopFieldIsOnly  = "isOnly"
	LoopFieldItem    = "item"
)

// Pass names used in logs and limit errors
const (
	PassValues       = "values"
	PassLoops        = "loops"
	PassConditionals = "conditionals"
	PassText         = "text"
)

// Defaults
const (
	DefaultMaxDepth              = 100
	DefaultMaxIterations         = 1000
	DefaultLoopAdvisoryThreshold = 5000
	DefaultMaxRangeSize          = 1000000
	DefaultLanguage              = "en"
)

// String values
const (
	StringValueEmpty = ""
	StringValueTrue  = "true"
	StringValueFalse = "false"
	StringValueZero  = "0"
	StringValueNaN   = "NaN"
	StringValueInf   = "Infinity"
	StringValueNInf  = "-Infinity"
)

// Numeric formatting
const (
	FloatFormatFlag   = 'f'
	FloatPrecisionAll = -1
	FloatBitSize64    = 64
	IntBase10         = 10
	IntBase16         = 16
)

// Log messages
const (
	LogMsgRendererCreated = "renderer created"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderEnd       = "render complete"
	LogMsgPassComplete    = "pass complete"
	LogMsgDiagnostic      = "template diagnostic"
	LogMsgLoopUnexpanded  = "loop left unexpanded"
	LogMsgLoopExpanded    = "loop expanded"
	LogMsgConditionEval   = "evaluating condition"
	LogMsgFilterApplied   = "filter applied"
	LogMsgTextUnresolved  = "dictionary path unresolved"
	LogMsgValueUnresolved = "value token unresolved"
)

// Log field names
const (
	LogFieldDepth      = "depth"
	LogFieldPass       = "pass"
	LogFieldIterations = "iterations"
	LogFieldKind       = "kind"
	LogFieldTag        = "tag"
	LogFieldFilter     = "filter"
	LogFieldPath       = "path"
	LogFieldCount      = "count"
	LogFieldNegated    = "negated"
	LogFieldResult     = "result"
	LogFieldLength     = "template_length"
	LogFieldLanguage   = "language"
	LogFieldReason     = "reason"
)

// Reasons a loop tag stays verbatim
const (
	ReasonSourceUnresolved = "source unresolved"
	ReasonNotIterable      = "source not iterable"
	ReasonEmptyNoClause    = "empty collection without empty clause"
	ReasonInvalidRange     = "range bound out of range"
	ReasonRangeTooLarge    = "range exceeds size limit"
)
