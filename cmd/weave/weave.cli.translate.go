package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-weave"
	"gopkg.in/yaml.v3"
)

// translateConfig holds parsed translate command configuration
type translateConfig struct {
	dictionaryPath string
	language       string
	outputPath     string
}

func runTranslate(args []string, stdout, stderr io.Writer) int {
	envCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeUsageError
	}

	cfg, err := parseTranslateFlags(args, envCfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	lang, err := weave.NormalizeLanguage(cfg.language)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	dict, err := weave.LoadDictionaryFile(cfg.dictionaryPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadDictionary, err)
		return ExitCodeInputError
	}

	out, err := yaml.Marshal(weave.Translate(dict, lang))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgYAMLMarshalFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, out, stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseTranslateFlags(args []string, envCfg *cliConfig) (*translateConfig, error) {
	fs := flag.NewFlagSet(CmdNameTranslate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &translateConfig{}

	fs.StringVar(&cfg.dictionaryPath, FlagDictionary, envCfg.DictionaryPath, "")
	fs.StringVar(&cfg.dictionaryPath, FlagDictionaryShort, envCfg.DictionaryPath, "")
	fs.StringVar(&cfg.language, FlagLanguage, envCfg.Language, "")
	fs.StringVar(&cfg.language, FlagLanguageShort, envCfg.Language, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.dictionaryPath == "" {
		return nil, errors.New(ErrMsgMissingDictionary)
	}

	return cfg, nil
}
