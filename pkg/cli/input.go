package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// readInput loads field values from a YAML or JSON file. JSON documents are
// valid YAML, so one decoder serves both.
func readInput(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingInput, err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, errors.Join(ErrReadingInput, fmt.Errorf("%s: %w", path, err))
	}
	return values, nil
}

// collectInput merges the input file with the flags that were set. Flag
// names use dashes where field ids use underscores.
func collectInput(cmd *cli.Command, ids []string) (map[string]string, error) {
	values, err := readInput(cmd.String("input"))
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		name := strings.ReplaceAll(id, "_", "-")
		if cmd.IsSet(name) {
			values[id] = cmd.String(name)
		}
	}
	return values, nil
}
