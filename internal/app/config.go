package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/datagrid/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataPath  string // directory of content files
	Extension string // only files with this suffix are composed; empty means all

	Format       render.Format
	TemplatePath string // HCL template, required for render.FormatTemplate
	OutputPath   string // empty writes to the App's output writer

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DataPath == "" {
		return nil, errors.New("DataPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = render.FormatJSON
	}
	format, err := render.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	if cfg.Format == render.FormatTemplate && cfg.TemplatePath == "" {
		return nil, errors.New("TemplatePath is required when the output format is 'template'")
	}
	if cfg.Format != render.FormatTemplate && cfg.TemplatePath != "" {
		return nil, fmt.Errorf("TemplatePath is only used with the 'template' format, got format %q", cfg.Format)
	}

	return &cfg, nil
}
