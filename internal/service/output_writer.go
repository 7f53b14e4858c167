package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"pdf-to-text/internal/domain"
)

// PageSeparator is written on its own line after every page of a .txt output.
var PageSeparator = strings.Repeat("*", 45)

// OutputWriter serializes extracted pages to the converted .txt and .json files.
type OutputWriter struct {
	storage *Storage
	logger  domain.Logger
}

// NewOutputWriter creates a new output writer
func NewOutputWriter(storage *Storage, logger domain.Logger) *OutputWriter {
	return &OutputWriter{
		storage: storage,
		logger:  logger,
	}
}

// Write consumes pages once, streaming them into <converted>/<base>.txt, then
// writes the full mapping to <json>/<base>.json. Both files are staged under
// temporary names and renamed into place only once every page was written and
// ctx is still live, so a failed or cancelled run leaves earlier outputs intact.
func (w *OutputWriter) Write(ctx context.Context, base string, pages iter.Seq2[int, string]) (domain.PageCollection, error) {
	textPath := w.storage.TextPath(base)
	jsonPath := w.storage.JSONPath(base)

	textTmp, err := createStaging(textPath)
	if err != nil {
		return domain.PageCollection{}, err
	}
	defer discardStaging(textTmp)

	buf := bufio.NewWriter(textTmp)
	var texts []string
	for pageNumber, text := range pages {
		w.logger.Debug("Writing page", "file", base, "page", pageNumber)
		texts = append(texts, text)
		buf.WriteString(text)
		buf.WriteByte('\n')
		buf.WriteString(PageSeparator)
		buf.WriteByte('\n')
	}
	if err := buf.Flush(); err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to write %s: %w", textPath, err)
	}
	if err := textTmp.Close(); err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to close %s: %w", textPath, err)
	}
	if err := ctx.Err(); err != nil {
		return domain.PageCollection{}, err
	}

	collection := domain.NewPageCollection(texts...)

	data, err := json.Marshal(collection)
	if err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to encode pages: %w", err)
	}
	jsonTmp, err := createStaging(jsonPath)
	if err != nil {
		return domain.PageCollection{}, err
	}
	defer discardStaging(jsonTmp)

	if _, err := jsonTmp.Write(data); err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}
	if err := jsonTmp.Close(); err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to close %s: %w", jsonPath, err)
	}

	if err := os.Rename(textTmp.Name(), textPath); err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to replace %s: %w", textPath, err)
	}
	if err := os.Rename(jsonTmp.Name(), jsonPath); err != nil {
		return domain.PageCollection{}, fmt.Errorf("failed to replace %s: %w", jsonPath, err)
	}

	return collection, nil
}

// createStaging opens a temporary file next to target.
func createStaging(target string) (*os.File, error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", target, err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to create %s: %w", target, err)
	}
	return f, nil
}

// discardStaging removes a staging file that was never renamed into place.
func discardStaging(f *os.File) {
	_ = f.Close()
	_ = os.Remove(f.Name())
}
