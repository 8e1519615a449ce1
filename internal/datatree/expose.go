package datatree

import (
	"github.com/zclconf/go-cty/cty"
)

// CtyValue exposes the node as a cty object with one attribute per child
// name plus CollectionKey, a tuple of the same child values in
// first-appearance order. Nested groups are exposed the same way.
//
// cty normalizes strings to NFC, so leaf text in the returned value may
// differ byte-wise from the stored text; use Entry.Text or Native for the
// exact bytes. Names cannot collide this way because Builder rejects
// siblings that share an NFC form.
func (n *Node) CtyValue() cty.Value {
	attrs := make(map[string]cty.Value, len(n.children)+1)
	elems := make([]cty.Value, len(n.children))
	for i, c := range n.children {
		v := c.entry.CtyValue()
		attrs[c.name] = v
		elems[i] = v
	}
	attrs[CollectionKey] = cty.TupleVal(elems)
	return cty.ObjectVal(attrs)
}

// CtyValue exposes a leaf as a cty string and a group as a cty object.
func (e Entry) CtyValue() cty.Value {
	if e.IsNode() {
		return e.node.CtyValue()
	}
	return cty.StringVal(e.text)
}

// Native exposes the node as plain Go values: a map holding one key per
// child name plus CollectionKey bound to a []any of the same values.
func (n *Node) Native() map[string]any {
	out := make(map[string]any, len(n.children)+1)
	elems := make([]any, len(n.children))
	for i, c := range n.children {
		v := c.entry.Native()
		out[c.name] = v
		elems[i] = v
	}
	out[CollectionKey] = elems
	return out
}

// Native returns the leaf text, or the nested group's Native map.
func (e Entry) Native() any {
	if e.IsNode() {
		return e.node.Native()
	}
	return e.text
}
