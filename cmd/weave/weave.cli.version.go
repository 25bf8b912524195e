package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/itsatony/go-weave"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	format, err := parseFormatFlag(CmdNameVersion, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	if format == OutputFormatJSON {
		output := versionOutput{Version: weave.Version, GoVersion: runtime.Version()}
		jsonBytes, _ := json.MarshalIndent(output, "", JSONIndent)
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline, weave.Version, runtime.Version())
	return ExitCodeSuccess
}
