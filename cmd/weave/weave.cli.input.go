package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/itsatony/go-weave"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData parses inline data and a data file, both JSON or YAML. Inline
// data is merged over file data when both are given.
func loadData(inline, filePath string) (map[string]any, error) {
	data := map[string]any{}

	if filePath != "" {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		fromFile, err := weave.LoadData(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		data = fromFile
	}

	if inline != "" {
		fromFlag, err := weave.LoadData(strings.NewReader(inline))
		if err != nil {
			return nil, err
		}
		data = weave.MergeData(data, fromFlag)
	}

	return data, nil
}
