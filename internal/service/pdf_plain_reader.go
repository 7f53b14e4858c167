package service

import (
	"context"
	"fmt"
	"iter"
	"os"

	"pdf-to-text/internal/domain"

	"github.com/ledongthuc/pdf"
)

// PlainExtractor extracts page text with the pure-Go ledongthuc/pdf reader.
// It needs no cgo, at the cost of weaker layout reconstruction.
type PlainExtractor struct {
	logger domain.Logger
}

// NewPlainExtractor creates a new pure-Go extractor
func NewPlainExtractor(logger domain.Logger) *PlainExtractor {
	return &PlainExtractor{
		logger: logger,
	}
}

// Name implements domain.TextExtractor.
func (e *PlainExtractor) Name() string {
	return EnginePlain
}

// Open implements domain.TextExtractor.
func (e *PlainExtractor) Open(path string) (src domain.PageSource, err error) {
	// The reader panics on some malformed trailers instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("failed to open PDF: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &plainSource{file: f, reader: reader, path: path, logger: e.logger}, nil
}

type plainSource struct {
	file   *os.File
	reader *pdf.Reader
	path   string
	logger domain.Logger
}

func (s *plainSource) PageCount() int {
	return s.reader.NumPage()
}

func (s *plainSource) Pages(ctx context.Context) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		numPages := s.reader.NumPage()
		for i := 1; i <= numPages; i++ {
			if ctx.Err() != nil {
				return
			}
			s.logger.Debug("PDF processing page", "page", i, "total", numPages)
			if !yield(i, s.pageText(i)) {
				return
			}
		}
	}
}

func (s *plainSource) pageText(i int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Failed to extract text from page", "path", s.path, "page_num", i, "error", r)
			text = ""
		}
	}()

	p := s.reader.Page(i)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		s.logger.Warn("Failed to extract text from page", "path", s.path, "page_num", i, "error", err)
		return ""
	}
	return cleanPageText(text)
}

func (s *plainSource) Close() error {
	return s.file.Close()
}
