package content

import (
	"context"
	"io"
)

// SliceReader serves items from memory in slice order.
type SliceReader struct {
	items []Item
	pos   int
}

// NewSliceReader creates a reader over items. The slice is not copied.
func NewSliceReader(items ...Item) *SliceReader {
	return &SliceReader{items: items}
}

// Next returns the next item or io.EOF.
func (r *SliceReader) Next(ctx context.Context) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	if r.pos >= len(r.items) {
		return Item{}, io.EOF
	}
	item := r.items[r.pos]
	r.pos++
	return item, nil
}
