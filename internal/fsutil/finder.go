// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FindFileUnderDir walks the tree rooted at rootPath and returns the first
// file named fileName whose immediate parent directory is named dirName.
// The root is passed explicitly so callers stay testable; matches surface
// in WalkDir's lexical order. fs.ErrNotExist is returned when no such
// file exists under the root.
func FindFileUnderDir(rootPath, dirName, fileName string) (string, error) {
	if dirName == "" || fileName == "" {
		panic("dirName and fileName must not be empty")
	}

	var found string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != fileName {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != dirName {
			return nil
		}
		found = path
		return fs.SkipAll
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fs.ErrNotExist
	}
	return found, nil
}

// CopyFile duplicates src to dst byte for byte, overwriting dst if it
// already exists.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
