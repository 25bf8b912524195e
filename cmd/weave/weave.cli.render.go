package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-weave"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath   string
	dataInline     string
	dataFilePath   string
	dictionaryPath string
	language       string
	outputPath     string
	quiet          bool
	strict         bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	envCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeUsageError
	}

	cfg, err := parseRenderFlags(args, envCfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	// Read template
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Parse data
	data, err := loadData(cfg.dataInline, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	logger := newLogger(envCfg.LogLevel, cfg.quiet, stderr)
	defer func() { _ = logger.Sync() }()

	var diagnostics []weave.Diagnostic
	opts := []weave.Option{
		weave.WithLanguage(cfg.language),
		weave.WithMaxDepth(envCfg.MaxDepth),
		weave.WithMaxIterations(envCfg.MaxIterations),
		weave.WithLogger(logger),
		weave.WithDiagnosticHandler(func(d weave.Diagnostic) {
			diagnostics = append(diagnostics, d)
		}),
	}

	if cfg.dictionaryPath != "" {
		dict, err := weave.LoadDictionaryFile(cfg.dictionaryPath)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadDictionary, err)
			return ExitCodeInputError
		}
		opts = append(opts, weave.WithDictionary(dict))
	}

	engine, err := weave.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeUsageError
	}

	result, err := engine.Render(string(templateSource), data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	if cfg.strict && len(diagnostics) > 0 {
		fmt.Fprintf(stderr, FmtDiagnosticCount, ErrMsgDiagnosticsReported, len(diagnostics))
		return ExitCodeValidationError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string, envCfg *cliConfig) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataInline, FlagData, "", "")
	fs.StringVar(&cfg.dataInline, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.dictionaryPath, FlagDictionary, envCfg.DictionaryPath, "")
	fs.StringVar(&cfg.dictionaryPath, FlagDictionaryShort, envCfg.DictionaryPath, "")
	fs.StringVar(&cfg.language, FlagLanguage, envCfg.Language, "")
	fs.StringVar(&cfg.language, FlagLanguageShort, envCfg.Language, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.quiet, FlagQuiet, false, "")
	fs.BoolVar(&cfg.quiet, FlagQuietShort, false, "")
	fs.BoolVar(&cfg.strict, FlagStrict, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}
