package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the report encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func parseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q, valid formats are: yaml, json", ErrUnknownFormat, s)
	}
}

// Report is the result of one validation run.
type Report struct {
	Form     string              `json:"form" yaml:"form"`
	Variant  string              `json:"variant" yaml:"variant"`
	Language string              `json:"language" yaml:"language"`
	Valid    bool                `json:"valid" yaml:"valid"`
	Missing  []string            `json:"missing,omitempty" yaml:"missing,omitempty"`
	Messages map[string]string   `json:"messages,omitempty" yaml:"messages,omitempty"`
	Codes    map[string][]string `json:"codes,omitempty" yaml:"codes,omitempty"`
	Request  any                 `json:"request,omitempty" yaml:"request,omitempty"`
}

func (r *Report) write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
}
