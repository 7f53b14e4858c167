package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage owns the on-disk layout: raw uploads, converted text and JSON output.
type Storage struct {
	uploadDir    string
	convertedDir string
	jsonDir      string
}

// NewStorage creates the three directories if they do not exist yet.
func NewStorage(uploadDir, convertedDir, jsonDir string) (*Storage, error) {
	for _, dir := range []string{uploadDir, convertedDir, jsonDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &Storage{
		uploadDir:    uploadDir,
		convertedDir: convertedDir,
		jsonDir:      jsonDir,
	}, nil
}

// UploadPath returns where an upload with the given sanitized name is stored.
func (s *Storage) UploadPath(filename string) string {
	return filepath.Join(s.uploadDir, filename)
}

// TextPath returns the .txt output path for a base name.
func (s *Storage) TextPath(base string) string {
	return filepath.Join(s.convertedDir, base+".txt")
}

// JSONPath returns the .json output path for a base name.
func (s *Storage) JSONPath(base string) string {
	return filepath.Join(s.jsonDir, base+".json")
}

// SaveUpload writes content to the uploads directory, replacing any file of the same name.
// A partially written file is removed on failure.
func (s *Storage) SaveUpload(filename string, content io.Reader) (string, int64, error) {
	path := s.UploadPath(filename)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("failed to save %s: %w", path, err)
	}

	return path, n, nil
}
