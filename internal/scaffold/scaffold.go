package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/scaffoldgo/internal/ctxlog"
	"github.com/vk/scaffoldgo/internal/layout"
)

// workItem pairs a directory on disk with the layout node to expand there.
type workItem struct {
	dir  string
	node *layout.Node
}

// Materialize writes the description tree beneath dest, which must already
// exist. Directory creation is idempotent and file entries never truncate
// an existing file unless they carry non-empty content, in which case the
// content is written unconditionally.
//
// The traversal is an explicit worklist rather than recursion, so stack
// depth stays constant regardless of how deeply the description nests.
// Sibling order is unspecified; each node is visited exactly once.
func Materialize(ctx context.Context, dest string, root *layout.Node) error {
	logger := ctxlog.FromContext(ctx)

	stack := []workItem{{dir: dest, node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for name, child := range it.node.Entries {
			path := filepath.Join(it.dir, name)
			if child.IsDir() {
				if err := os.MkdirAll(path, 0o755); err != nil {
					return fmt.Errorf("cannot create directory %s: %w", path, err)
				}
				logger.Debug("Directory ensured.", "path", path)
				stack = append(stack, workItem{dir: path, node: child})
				continue
			}
			if err := writeFileEntry(path, child); err != nil {
				return err
			}
			logger.Debug("File materialized.", "path", path)
		}
	}
	return nil
}

// writeFileEntry ensures the file exists and, only when the entry resolves
// to non-empty content, (re)writes its bytes. Touching an existing file
// must not truncate it, so creation and writing are separate steps.
func writeFileEntry(path string, node *layout.Node) error {
	content, err := layout.Render(node.Content)
	if err != nil {
		return fmt.Errorf("entry %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot create file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot create file %s: %w", path, err)
	}

	if len(content) == 0 {
		return nil
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("cannot write file %s: %w", path, err)
	}
	return nil
}
