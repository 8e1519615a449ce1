package render

import (
	"fmt"
	"io"

	"github.com/specialistvlad/datagrid/internal/datatree"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// JSON writes root as a JSON object. Named keys are emitted in lexical
// order; first-appearance order is carried by each `__collection` array.
func JSON(w io.Writer, root *datatree.Node) error {
	val := root.CtyValue()
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode tree as JSON: %w", err)
	}
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}
