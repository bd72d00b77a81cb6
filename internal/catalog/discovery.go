package catalog

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// maxDepth bounds how far below the data root datasets are searched for
const maxDepth = 3

// Discover finds dataset files (*.toml) under root. Hidden directories are
// skipped and the result is sorted so merges are reproducible.
func Discover(ctx context.Context, root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// unreadable root is fatal, anything below it is skipped
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			rel, _ := filepath.Rel(root, path)
			if strings.Count(rel, string(filepath.Separator)) >= maxDepth {
				return fs.SkipDir
			}
			if strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !strings.EqualFold(filepath.Ext(d.Name()), ".toml") {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(found)
	return found, nil
}
