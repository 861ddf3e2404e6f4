// Package fs provides file-based output for harvested articles.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jinhoo5694/newsharvest"
)

// Ensure Writer implements newsharvest.ArticleWriter at compile time.
var _ newsharvest.ArticleWriter = (*Writer)(nil)

// Writer writes a crawl's articles to a single JSON file. The write is
// atomic: content lands in a temp file first and is renamed into place,
// so a crash mid-write never leaves a truncated output file.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteArticles writes articles as a pretty-printed JSON array. A nil
// or empty slice produces an empty array, not JSON null.
func (w *Writer) WriteArticles(ctx context.Context, articles []*newsharvest.Article) error {
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	if articles == nil {
		articles = []*newsharvest.Article{}
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return newsharvest.Errorf(newsharvest.EINTERNAL, "marshal articles: %v", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), w.path)
}
