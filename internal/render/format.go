package render

import (
	"fmt"
	"strings"
)

// Format selects how a composed tree is written out.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTemplate Format = "template"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTemplate:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be 'json', 'yaml' or 'template'", s)
	}
}
