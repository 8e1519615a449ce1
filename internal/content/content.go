// Package content defines the boundary between a content source and the
// composer: items that know their identifier and raw text, and readers
// that deliver them one at a time.
package content

import (
	"context"

	"github.com/specialistvlad/datagrid/internal/segment"
)

// Item is one piece of content keyed by a path-like identifier.
type Item struct {
	ID  string
	Raw string
}

// Segments returns the normalized name segments of the item's identifier.
func (i Item) Segments() []string {
	return segment.Normalize(i.ID)
}

// Tokens returns every non-empty identifier token, including a trailing
// extension that Segments strips.
func (i Item) Tokens() []string {
	return segment.Tokens(i.ID)
}

// Reader delivers items in a single pass. Next blocks until an item is
// available and returns io.EOF once the source is exhausted.
type Reader interface {
	Next(ctx context.Context) (Item, error)
}
