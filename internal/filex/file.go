// Package filex provides the file-reading capability the CLI uses for
// query and schema sources.
package filex

import (
	"fmt"
	"os"
	"strings"
)

// ReadSource reads a query or schema source file and returns its text with
// surrounding whitespace trimmed.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ReadSources reads several source files, preserving argument order.
func ReadSources(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		text, err := ReadSource(p)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}
