package render

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/datagrid/internal/ctxlog"
	"github.com/specialistvlad/datagrid/internal/datatree"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// DataVariable is the template variable bound to the tree root.
const DataVariable = "data"

// templateFunctions is the function table available inside templates.
var templateFunctions = map[string]function.Function{
	"upper":     stdlib.UpperFunc,
	"lower":     stdlib.LowerFunc,
	"length":    stdlib.LengthFunc,
	"join":      stdlib.JoinFunc,
	"trimspace": stdlib.TrimSpaceFunc,
	"chomp":     stdlib.ChompFunc,
}

// Template evaluates src as an HCL native template against root.
// filename is used only in diagnostics.
func Template(ctx context.Context, src []byte, filename string, root *datatree.Node) (string, error) {
	logger := ctxlog.FromContext(ctx).With("template", filename)
	logger.Debug("Parsing template.", "bytes", len(src))

	expr, diags := hclsyntax.ParseTemplate(src, filename, hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to parse template %s: %w", filename, diags)
	}

	info := analyzeExpr(expr)
	logger.Debug("Template analyzed.", "references", info.References, "functions", info.Functions)
	if err := info.checkFunctions(filename); err != nil {
		return "", err
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{DataVariable: root.CtyValue()},
		Functions: templateFunctions,
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate template %s: %w", filename, diags)
	}

	out, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("template %s must produce text, got %s: %w", filename, val.Type().FriendlyName(), err)
	}
	if out.IsNull() || !out.IsKnown() {
		return "", fmt.Errorf("template %s produced no text", filename)
	}

	logger.Debug("Template evaluated.", "output_bytes", len(out.AsString()))
	return out.AsString(), nil
}
