package render

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TemplateInfo lists what a template reads from its evaluation context.
type TemplateInfo struct {
	References []string // canonical traversals such as data.posts.__collection, sorted
	Functions  []string // called function names, sorted
}

// TraversalKey generates a stable, canonical string for an hcl.Traversal.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Analyze parses src as a template and reports the variables and functions
// it uses, without evaluating it.
func Analyze(src []byte, filename string) (*TemplateInfo, error) {
	expr, diags := hclsyntax.ParseTemplate(src, filename, hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse template %s: %w", filename, diags)
	}
	return analyzeExpr(expr), nil
}

// checkFunctions reports the first called function missing from the template function table.
func (info *TemplateInfo) checkFunctions(filename string) error {
	for _, name := range info.Functions {
		if _, ok := templateFunctions[name]; !ok {
			return fmt.Errorf("template %s calls unknown function %q", filename, name)
		}
	}
	return nil
}

func analyzeExpr(expr hclsyntax.Expression) *TemplateInfo {
	refs := make(map[string]struct{})
	for _, traversal := range expr.Variables() {
		refs[TraversalKey(traversal)] = struct{}{}
	}
	funcs := make(map[string]struct{})
	walkForFunctions(expr, funcs)

	return &TemplateInfo{
		References: sortedKeys(refs),
		Functions:  sortedKeys(funcs),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// walkForFunctions recursively walks the AST, collecting function call names.
func walkForFunctions(expr hclsyntax.Expression, functions map[string]struct{}) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		functions[e.Name] = struct{}{}
		for _, arg := range e.Args {
			walkForFunctions(arg, functions)
		}
	case *hclsyntax.BinaryOpExpr:
		walkForFunctions(e.LHS, functions)
		walkForFunctions(e.RHS, functions)
	case *hclsyntax.ConditionalExpr:
		walkForFunctions(e.Condition, functions)
		walkForFunctions(e.TrueResult, functions)
		walkForFunctions(e.FalseResult, functions)
	case *hclsyntax.UnaryOpExpr:
		walkForFunctions(e.Val, functions)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			walkForFunctions(part, functions)
		}
	case *hclsyntax.TemplateWrapExpr:
		walkForFunctions(e.Wrapped, functions)
	case *hclsyntax.TemplateJoinExpr:
		walkForFunctions(e.Tuple, functions)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			walkForFunctions(item, functions)
		}
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			walkForFunctions(item.KeyExpr, functions)
			walkForFunctions(item.ValueExpr, functions)
		}
	case *hclsyntax.ForExpr:
		walkForFunctions(e.CollExpr, functions)
		walkForFunctions(e.KeyExpr, functions)
		walkForFunctions(e.ValExpr, functions)
		walkForFunctions(e.CondExpr, functions)
	case *hclsyntax.IndexExpr:
		walkForFunctions(e.Collection, functions)
		walkForFunctions(e.Key, functions)
	case *hclsyntax.RelativeTraversalExpr:
		walkForFunctions(e.Source, functions)
	case *hclsyntax.SplatExpr:
		walkForFunctions(e.Source, functions)
		walkForFunctions(e.Each, functions)
	case *hclsyntax.ParenthesesExpr:
		walkForFunctions(e.Expression, functions)
	}
}
