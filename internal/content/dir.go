package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/datagrid/internal/ctxlog"
	"github.com/specialistvlad/datagrid/internal/fsutil"
)

// DirReader serves every file below a root directory as an item. The
// identifier is the file's slash path relative to the root.
type DirReader struct {
	root  string
	files []string
	pos   int
}

// NewDirReader lists the files under root up front; contents are read
// lazily by Next. An empty extension selects all files.
func NewDirReader(ctx context.Context, root, extension string) (*DirReader, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error accessing data path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path %s is not a directory", root)
	}

	files, err := fsutil.FindFiles(root, extension)
	if err != nil {
		return nil, fmt.Errorf("failed to list data files in %s: %w", root, err)
	}
	logger.Debug("Discovered content files.", "root", root, "extension", extension, "count", len(files))

	return &DirReader{root: root, files: files}, nil
}

// Len returns the number of files discovered.
func (r *DirReader) Len() int {
	return len(r.files)
}

// Next reads the next file or returns io.EOF.
func (r *DirReader) Next(ctx context.Context) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	if r.pos >= len(r.files) {
		return Item{}, io.EOF
	}
	id := r.files[r.pos]
	r.pos++

	raw, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(id)))
	if err != nil {
		return Item{}, fmt.Errorf("failed to read content %s: %w", id, err)
	}
	return Item{ID: id, Raw: string(raw)}, nil
}
