// Package scaffold writes a starter site workspace.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed starter
var starterFS embed.FS

// Create writes the starter workspace into dir. Existing files are never
// overwritten; the first conflict aborts the scaffold.
func Create(dir string) ([]string, error) {
	var written []string

	err := fs.WalkDir(starterFS, "starter", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel("starter", path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, rel)

		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("%s already exists", dst)
		}

		data, err := starterFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read starter file %s: %w", rel, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("create dir for %s: %w", rel, err)
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}

		written = append(written, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
