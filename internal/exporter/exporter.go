// Package exporter writes catalogs back out in the text catalog format.
package exporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/VoxDroid/mealr/internal/catalog"
)

// Header is written before the items. It fills catalog.HeaderLines lines.
var Header = []string{
	"# mealr food catalog",
	"# format: name: tag1, tag2, ...",
}

// Write writes c to w as a text catalog that catalog.Parse reads back.
func Write(w io.Writer, c *catalog.Catalog) error {
	bw := bufio.NewWriter(w)
	for _, h := range Header {
		if _, err := fmt.Fprintln(bw, h); err != nil {
			return err
		}
	}
	for _, e := range c.Entries() {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", e.Name, strings.Join(e.Tags, ", ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes c to path, creating parent directories as needed.
func WriteFile(path string, c *catalog.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, c); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
