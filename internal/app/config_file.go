package app

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the optional HCL configuration file. Every attribute is
// optional; unknown attributes are rejected.
//
//	data_path = "content"
//	extension = ".txt"
//	format    = "template"
//	template  = "templates/index.tmpl"
//	output    = "public/index.html"
type FileConfig struct {
	DataPath     string `hcl:"data_path,optional"`
	Extension    string `hcl:"extension,optional"`
	Format       string `hcl:"format,optional"`
	TemplatePath string `hcl:"template,optional"`
	OutputPath   string `hcl:"output,optional"`
	LogFormat    string `hcl:"log_format,optional"`
	LogLevel     string `hcl:"log_level,optional"`
}

// LoadConfigFile parses and decodes an HCL configuration file. Relative
// data, template and output paths are resolved against the file's directory.
func LoadConfigFile(path string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var cfg FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	dir := filepath.Dir(path)
	cfg.DataPath = resolvePath(dir, cfg.DataPath)
	cfg.TemplatePath = resolvePath(dir, cfg.TemplatePath)
	cfg.OutputPath = resolvePath(dir, cfg.OutputPath)
	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
