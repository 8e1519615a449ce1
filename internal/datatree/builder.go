package datatree

// Builder accumulates inserts into a single fresh root. A Builder is not
// safe for concurrent use.
type Builder struct {
	root *Node
}

// NewBuilder returns a builder with an empty root.
func NewBuilder() *Builder {
	return &Builder{root: NewNode()}
}

// Insert places leaf at the position named by segments, creating
// intermediate group nodes on first appearance.
//
// The whole path is checked for the reserved name before the tree is touched,
// so a rejected insert leaves no trace.
func (b *Builder) Insert(segments []string, leaf string) error {
	if len(segments) == 0 {
		return &EmptyPathError{}
	}
	if err := CheckReserved(segments); err != nil {
		return err
	}

	// Walk existing groups first so a shape conflict cannot leave behind
	// freshly created empty groups.
	current := b.root
	depth := 0
	for ; depth < len(segments)-1; depth++ {
		entry, ok := current.Get(segments[depth])
		if !ok {
			break
		}
		if !entry.IsNode() {
			return &ShapeConflictError{Path: segments, Depth: depth}
		}
		current = entry.node
	}

	// segments[depth] is the only name bound inside an already existing
	// node; everything below it is freshly created.
	if existing, ok := current.collision(segments[depth]); ok {
		return &NameCollisionError{Path: segments, Depth: depth, Existing: existing}
	}

	for ; depth < len(segments)-1; depth++ {
		group := NewNode()
		current.set(segments[depth], NodeEntry(group))
		current = group
	}

	current.set(segments[len(segments)-1], TextEntry(leaf))
	return nil
}

// Root returns the tree built so far.
func (b *Builder) Root() *Node {
	return b.root
}
