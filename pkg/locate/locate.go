// Package locate finds files by exact name inside a directory tree.
package locate

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Find walks root and returns every regular file named name, in lexical
// walk order. The comparison is exact and case-sensitive. An empty result
// is not an error.
func Find(root, name string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}
	return found, nil
}
