package datatree

import "golang.org/x/text/unicode/norm"

// CollectionKey is the reserved name under which a node exposes its
// positional view. No child may carry this name.
const CollectionKey = "__collection"

// Entry is a single child value: either a text leaf or a nested group.
type Entry struct {
	text string
	node *Node
}

// TextEntry wraps raw content as a leaf entry.
func TextEntry(text string) Entry {
	return Entry{text: text}
}

// NodeEntry wraps a group node as an entry.
func NodeEntry(n *Node) Entry {
	return Entry{node: n}
}

// IsNode reports whether the entry is a nested group.
func (e Entry) IsNode() bool {
	return e.node != nil
}

// Text returns the leaf content. It is empty for group entries.
func (e Entry) Text() string {
	return e.text
}

// Node returns the nested group, or nil for leaf entries.
func (e Entry) Node() *Node {
	return e.node
}

// child binds an entry to the name it was first inserted under.
type child struct {
	name  string
	entry Entry
}

// Node is one level of the tree.
type Node struct {
	children []child
	index    map[string]int
	nfc      map[string]string // NFC form -> exact child name
}

// NewNode returns an empty group node.
func NewNode() *Node {
	return &Node{index: make(map[string]int), nfc: make(map[string]string)}
}

// Len returns the number of distinct child names.
func (n *Node) Len() int {
	return len(n.children)
}

// Get returns the child bound to name.
func (n *Node) Get(name string) (Entry, bool) {
	i, ok := n.index[name]
	if !ok {
		return Entry{}, false
	}
	return n.children[i].entry, true
}

// At returns the i-th child in first-appearance order.
func (n *Node) At(i int) (Entry, bool) {
	if i < 0 || i >= len(n.children) {
		return Entry{}, false
	}
	return n.children[i].entry, true
}

// Names returns child names in first-appearance order.
func (n *Node) Names() []string {
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.name
	}
	return names
}

// Collection returns the positional view: child entries in first-appearance order.
func (n *Node) Collection() []Entry {
	entries := make([]Entry, len(n.children))
	for i, c := range n.children {
		entries[i] = c.entry
	}
	return entries
}

// Lookup follows path through nested groups and returns the entry at its end.
// An empty path resolves to the node itself.
func (n *Node) Lookup(path ...string) (Entry, bool) {
	current := NodeEntry(n)
	for _, name := range path {
		if !current.IsNode() {
			return Entry{}, false
		}
		next, ok := current.node.Get(name)
		if !ok {
			return Entry{}, false
		}
		current = next
	}
	return current, true
}

// collision returns the existing child name that differs from name but has
// the same NFC form. cty normalizes attribute names to NFC, so two such
// names could not both be exposed.
func (n *Node) collision(name string) (string, bool) {
	if _, ok := n.index[name]; ok {
		return "", false
	}
	existing, ok := n.nfc[norm.NFC.String(name)]
	return existing, ok
}

// set binds entry under name. A new name is appended to the positional
// order; an existing name is rebound in place.
func (n *Node) set(name string, entry Entry) {
	if i, ok := n.index[name]; ok {
		n.children[i].entry = entry
		return
	}
	n.index[name] = len(n.children)
	n.nfc[norm.NFC.String(name)] = name
	n.children = append(n.children, child{name: name, entry: entry})
}
