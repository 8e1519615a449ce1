// Package composer builds a single data tree from every item a content
// reader delivers.
package composer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/datagrid/internal/content"
	"github.com/specialistvlad/datagrid/internal/ctxlog"
	"github.com/specialistvlad/datagrid/internal/datatree"
	"github.com/specialistvlad/datagrid/internal/segment"
)

// Compose drains r in a single pass and inserts every item into a fresh
// tree, in delivery order. Any failure, whether from the reader or from an
// insert, aborts the whole composition and no tree is returned.
func Compose(ctx context.Context, r content.Reader) (*datatree.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Composition started.")

	builder := datatree.NewBuilder()
	count := 0
	for {
		item, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read content item: %w", err)
		}

		// The reserved name is refused even where it would be stripped as
		// an extension, e.g. `folder/__collection`.
		if err := datatree.CheckReserved(item.Tokens()); err != nil {
			return nil, fmt.Errorf("failed to compose content %q: %w", item.ID, err)
		}

		segments := item.Segments()
		logger.Debug("Inserting content item.", "id", item.ID, "path", segment.Join(segments), "bytes", len(item.Raw))
		if err := builder.Insert(segments, item.Raw); err != nil {
			logger.Debug("Content item rejected.", "id", item.ID, "error", err)
			return nil, fmt.Errorf("failed to compose content %q: %w", item.ID, err)
		}
		count++
	}

	root := builder.Root()
	logger.Info("Composition finished.", "items", count, "top_level_entries", root.Len())
	return root, nil
}

// ComposeItems is a convenience wrapper for in-memory item sets.
func ComposeItems(ctx context.Context, items ...content.Item) (*datatree.Node, error) {
	return Compose(ctx, content.NewSliceReader(items...))
}
