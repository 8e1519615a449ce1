package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sethvargo/go-envconfig"
	"github.com/specialistvlad/datagrid/internal/app"
	"github.com/specialistvlad/datagrid/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Defaults are flag defaults that can be overridden from the environment.
type Defaults struct {
	Format    string `env:"DATAGRID_FORMAT, default=json"`
	Extension string `env:"DATAGRID_EXTENSION"`
	LogFormat string `env:"DATAGRID_LOG_FORMAT, default=text"`
	LogLevel  string `env:"DATAGRID_LOG_LEVEL, default=info"`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(ctx context.Context, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults Defaults
	if err := envconfig.Process(ctx, &defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("datagrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Datagrid - Compose a directory of content files into one nested data tree.

Usage:
  datagrid [options] [DATA_PATH]
  datagrid -config datagrid.hcl [options]

Arguments:
  DATA_PATH
    Directory whose files are composed. Each file's relative path becomes
    its position in the tree; the file extension is dropped.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional HCL config file. Flags override its values.")
	dataFlag := flagSet.String("data", "", "Path to the content directory.")
	dFlag := flagSet.String("d", "", "Path to the content directory (shorthand).")
	formatFlag := flagSet.String("format", defaults.Format, "Output format. Options: 'json', 'yaml', 'template'.")
	templateFlag := flagSet.String("template", "", "Path to an HCL template. Implies -format=template.")
	outFlag := flagSet.String("out", "", "Write output to this file instead of stdout.")
	extFlag := flagSet.String("ext", defaults.Extension, "Only compose files with this extension, e.g. '.txt'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *dataFlag != "" {
		path = *dataFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if *configFlag != "" {
		fileCfg, err := app.LoadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Config file loaded.", "path", *configFlag)

		set := make(map[string]bool)
		flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fromFile := func(name string, target *string, value string) {
			if !set[name] && value != "" {
				*target = value
			}
		}
		if path == "" {
			path = fileCfg.DataPath
		}
		fromFile("format", formatFlag, fileCfg.Format)
		fromFile("template", templateFlag, fileCfg.TemplatePath)
		fromFile("out", outFlag, fileCfg.OutputPath)
		fromFile("ext", extFlag, fileCfg.Extension)
		fromFile("log-format", logFormatFlag, fileCfg.LogFormat)
		fromFile("log-level", logLevelFlag, fileCfg.LogLevel)
	}
	slog.Debug("Data path determined.", "path", path)

	if path == "" {
		slog.Debug("No data path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	format := render.Format(*formatFlag)
	if *templateFlag != "" {
		format = render.FormatTemplate
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DataPath:     path,
		Extension:    *extFlag,
		Format:       format,
		TemplatePath: *templateFlag,
		OutputPath:   *outFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
