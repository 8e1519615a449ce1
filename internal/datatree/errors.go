package datatree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReservedName is matched by errors.Is for every *ReservedNameError.
var ErrReservedName = errors.New("reserved name used as segment")

// ReservedNameError reports a segment equal to CollectionKey.
type ReservedNameError struct {
	Path  []string // the full segment path being inserted
	Depth int      // zero-based index of the offending segment
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("segment %d of %q is the reserved name %q", e.Depth, strings.Join(e.Path, "/"), CollectionKey)
}

// Is reports whether target is ErrReservedName.
func (e *ReservedNameError) Is(target error) bool {
	return target == ErrReservedName
}

// EmptyPathError is returned when an item has no segments to insert under.
type EmptyPathError struct{}

func (e *EmptyPathError) Error() string {
	return "cannot insert a value without any path segments"
}

// ShapeConflictError is returned when a path needs to descend through a
// name that is already bound to a text leaf.
type ShapeConflictError struct {
	Path  []string
	Depth int
}

func (e *ShapeConflictError) Error() string {
	return fmt.Sprintf("segment %q of %q is a text value and cannot hold nested entries", e.Path[e.Depth], strings.Join(e.Path, "/"))
}

// NameCollisionError is returned when a segment differs from an existing
// sibling only by Unicode normalization, e.g. a precomposed "é" against
// "e" followed by a combining acute accent.
type NameCollisionError struct {
	Path     []string
	Depth    int
	Existing string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("segment %q of %q has the same normalized form as existing entry %q", e.Path[e.Depth], strings.Join(e.Path, "/"), e.Existing)
}

// CheckReserved returns a *ReservedNameError for the first token equal to
// CollectionKey. It is used for identifier tokens that never become
// segments, such as a stripped extension.
func CheckReserved(tokens []string) error {
	for depth, name := range tokens {
		if name == CollectionKey {
			return &ReservedNameError{Path: tokens, Depth: depth}
		}
	}
	return nil
}
