package content

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads r until io.EOF and returns everything it delivered.
func drain(t *testing.T, r Reader) []Item {
	t.Helper()
	var items []Item
	for {
		item, err := r.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return items
		}
		require.NoError(t, err)
		items = append(items, item)
	}
}

func TestItem_Segments(t *testing.T) {
	item := Item{ID: `f3\s3\i4.txt`, Raw: "4"}
	assert.Equal(t, []string{"f3", "s3", "i4"}, item.Segments())
}

func TestSliceReader(t *testing.T) {
	items := []Item{{ID: "a.txt", Raw: "a"}, {ID: "b.txt", Raw: "b"}}
	r := NewSliceReader(items...)
	assert.Equal(t, items, drain(t, r))

	_, err := r.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF, "reader stays exhausted")
}

func TestSliceReader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSliceReader(Item{ID: "a"}).Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChanReader(t *testing.T) {
	ch := make(chan Item)
	go func() {
		defer close(ch)
		ch <- Item{ID: "one.txt", Raw: "1"}
		ch <- Item{ID: "two.txt", Raw: "2"}
	}()

	items := drain(t, NewChanReader(ch))
	require.Len(t, items, 2)
	assert.Equal(t, "one.txt", items[0].ID)
	assert.Equal(t, "two.txt", items[1].ID)
}

func TestChanReader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewChanReader(make(chan Item)).Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirReader(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "f1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "f1", "i1.txt"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("t"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip.md"), []byte("s"), 0o644))

	r, err := NewDirReader(context.Background(), root, ".txt")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	assert.Equal(t, []Item{
		{ID: "f1/i1.txt", Raw: "1"},
		{ID: "top.txt", Raw: "t"},
	}, drain(t, r))
}

func TestDirReader_InvalidRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewDirReader(context.Background(), filepath.Join(root, "missing"), "")
	require.Error(t, err)

	_, err = NewDirReader(context.Background(), file, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestItem_Tokens(t *testing.T) {
	item := Item{ID: `folder\name`}
	assert.Equal(t, []string{"folder"}, item.Segments())
	assert.Equal(t, []string{"folder", "name"}, item.Tokens())
}
