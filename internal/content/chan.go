package content

import (
	"context"
	"io"
)

// ChanReader receives items from an asynchronous producer. The producer
// closes the channel when it is done.
type ChanReader struct {
	items <-chan Item
}

// NewChanReader wraps a producer channel.
func NewChanReader(items <-chan Item) *ChanReader {
	return &ChanReader{items: items}
}

// Next waits for the next item, for the channel to close (io.EOF), or for
// ctx to be cancelled.
func (r *ChanReader) Next(ctx context.Context) (Item, error) {
	select {
	case <-ctx.Done():
		return Item{}, ctx.Err()
	case item, ok := <-r.items:
		if !ok {
			return Item{}, io.EOF
		}
		return item, nil
	}
}
