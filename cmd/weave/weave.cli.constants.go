package main

// Command names
const (
	CmdNameRender    = "render"
	CmdNameTranslate = "translate"
	CmdNameFilters   = "filters"
	CmdNameVersion   = "version"
	CmdNameHelp      = "help"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagData       = "data"
	FlagDataFile   = "data-file"
	FlagDictionary = "dictionary"
	FlagLanguage   = "lang"
	FlagOutput     = "output"
	FlagQuiet      = "quiet"
	FlagStrict     = "strict"
	FlagFormat     = "format"
)

// Flag names - short form
const (
	FlagTemplateShort   = "t"
	FlagDataShort       = "d"
	FlagDataFileShort   = "f"
	FlagDictionaryShort = "D"
	FlagLanguageShort   = "l"
	FlagOutputShort     = "o"
	FlagQuietShort      = "q"
	FlagFormatShort     = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgMissingDictionary   = "dictionary file required"
	ErrMsgInvalidData         = "invalid data"
	ErrMsgInvalidConfig       = "invalid configuration"
	ErrMsgInvalidLogLevel     = "invalid log level"
	ErrMsgInvalidFlags        = "invalid flags"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgEngineFailed        = "failed to create engine"
	ErrMsgRenderFailed        = "template rendering failed"
	ErrMsgLoadDictionary      = "failed to load dictionary"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgYAMLMarshalFailed   = "failed to marshal YAML"
	ErrMsgDiagnosticsReported = "template produced diagnostics"
)

// Help text templates
const (
	HelpMainUsage = `go-weave - inline text template CLI

Usage:
    weave <command> [options]

Commands:
    render      Render a template with data
    translate   Collapse a dictionary file to one language
    filters     List built-in filters
    version     Show version information
    help        Show help for a command

Environment:
    WEAVE_LANG             Default language (default: en)
    WEAVE_DICTIONARY       Default dictionary file
    WEAVE_MAX_DEPTH        Nesting depth limit (default: 100)
    WEAVE_MAX_ITERATIONS   Per-pass iteration cap (default: 1000)
    WEAVE_LOG_LEVEL        debug, info, warn or error (default: warn)

Use "weave help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    weave render [options]

Options:
    -t, --template <file>     Template file (use "-" for stdin)
    -d, --data <json|yaml>    Inline data
    -f, --data-file <file>    JSON or YAML data file
    -D, --dictionary <file>   Dictionary file (JSON or YAML)
    -l, --lang <code>         Active language
    -o, --output <file>       Output file (default: stdout)
    -q, --quiet               Suppress diagnostics
    --strict                  Exit with an error when diagnostics were reported

Examples:
    weave render -t card.tmpl -d '{"name": "Alice"}'
    weave render -t card.tmpl -f data.yaml -D dict.yaml -l ru
    cat card.tmpl | weave render -t - -d 'items: [1, 2, 3]'`

	HelpTranslateUsage = `Collapse a dictionary file to one language

Usage:
    weave translate [options]

Options:
    -D, --dictionary <file>   Dictionary file (JSON or YAML)
    -l, --lang <code>         Target language
    -o, --output <file>       Output file (default: stdout)

Examples:
    weave translate -D dict.yaml -l ru`

	HelpFiltersUsage = `List built-in filters

Usage:
    weave filters [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    weave version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    weave help [command]

Commands:
    render      Show help for render command
    translate   Show help for translate command
    filters     Show help for filters command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-weave version %s\nGo: %s"
)

// CLI metadata
const (
	CLIName        = "weave"
	CLIDescription = "inline text template CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	FmtDiagnosticCount = "%s: %d\n"
)

// JSON output indentation
const (
	JSONIndent = "  "
)
