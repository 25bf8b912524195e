package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-weave"
)

// filtersOutput represents JSON output for the filters command
type filtersOutput struct {
	Filters []string `json:"filters"`
	Count   int      `json:"count"`
}

func runFilters(args []string, stdout, stderr io.Writer) int {
	format, err := parseFormatFlag(CmdNameFilters, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	names := weave.BuiltinFilters()
	if format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(filtersOutput{Filters: names, Count: len(names)}, "", JSONIndent)
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return ExitCodeSuccess
}

// parseFormatFlag parses the --format flag shared by filters and version.
func parseFormatFlag(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var format string
	fs.StringVar(&format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if format != OutputFormatText && format != OutputFormatJSON {
		return "", errors.New(ErrMsgInvalidFormat)
	}

	return format, nil
}
