package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/datagrid/internal/composer"
	"github.com/specialistvlad/datagrid/internal/content"
	"github.com/specialistvlad/datagrid/internal/ctxlog"
	"github.com/specialistvlad/datagrid/internal/datatree"
	"github.com/specialistvlad/datagrid/internal/render"
)

// Run composes every content file below DataPath and writes the result in
// the configured format. Output is rendered in memory first, so a failed
// render never touches OutputPath.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "data_path", a.config.DataPath)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "format", a.config.Format)

	reader, err := content.NewDirReader(ctx, a.config.DataPath, a.config.Extension)
	if err != nil {
		return err
	}

	root, err := composer.Compose(ctx, reader)
	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}

	var buf bytes.Buffer
	if err := a.render(ctx, &buf, root); err != nil {
		return err
	}
	if err := a.writeOutput(buf.Bytes()); err != nil {
		return err
	}

	logger.Info("Output written.", "format", a.config.Format, "destination", a.destination(), "bytes", buf.Len())
	return nil
}

func (a *App) render(ctx context.Context, w io.Writer, root *datatree.Node) error {
	switch a.config.Format {
	case render.FormatYAML:
		return render.YAML(w, root)
	case render.FormatTemplate:
		src, err := os.ReadFile(a.config.TemplatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		out, err := render.Template(ctx, src, a.config.TemplatePath, root)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return render.JSON(w, root)
	}
}

// writeOutput sends rendered bytes to OutputPath, or to the App's writer.
func (a *App) writeOutput(out []byte) error {
	if a.config.OutputPath == "" {
		if _, err := a.outW.Write(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(a.config.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func (a *App) destination() string {
	if a.config.OutputPath == "" {
		return "stdout"
	}
	return a.config.OutputPath
}
