package render

import (
	"fmt"
	"io"

	"github.com/specialistvlad/datagrid/internal/datatree"
	"gopkg.in/yaml.v3"
)

// YAML writes root as a YAML mapping whose keys keep first-appearance order.
// The positional view is emitted last under `__collection`.
func YAML(w io.Writer, root *datatree.Node) error {
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{yamlNode(root)}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode tree as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML output: %w", err)
	}
	return nil
}

func yamlNode(n *datatree.Node) *yaml.Node {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i, name := range n.Names() {
		entry, _ := n.At(i)
		value := yamlEntry(entry)
		mapping.Content = append(mapping.Content, yamlString(name), value)
		seq.Content = append(seq.Content, value)
	}
	mapping.Content = append(mapping.Content, yamlString(datatree.CollectionKey), seq)
	return mapping
}

func yamlEntry(e datatree.Entry) *yaml.Node {
	if e.IsNode() {
		return yamlNode(e.Node())
	}
	return yamlString(e.Text())
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
