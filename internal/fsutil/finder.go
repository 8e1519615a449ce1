// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFiles recursively searches rootPath for regular files and returns their
// paths relative to rootPath, slash-separated, in lexical walk order. When
// extension is non-empty only files with that suffix are returned.
func FindFiles(rootPath string, extension string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if extension != "" && !strings.HasSuffix(d.Name(), extension) {
			return nil
		}
		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
