package service

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"pdf-to-text/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// Engine names accepted by NewTextExtractor.
const (
	EngineFitz  = "fitz"
	EnginePlain = "plain"
)

// NewTextExtractor returns the extraction engine registered under name.
func NewTextExtractor(name string, logger domain.Logger) (domain.TextExtractor, error) {
	switch name {
	case EngineFitz, "":
		return NewFitzExtractor(logger), nil
	case EnginePlain:
		return NewPlainExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q (want %q or %q)", name, EngineFitz, EnginePlain)
	}
}

// FitzExtractor extracts page text with MuPDF.
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new MuPDF-backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// Name implements domain.TextExtractor.
func (e *FitzExtractor) Name() string {
	return EngineFitz
}

// Open implements domain.TextExtractor.
func (e *FitzExtractor) Open(path string) (domain.PageSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &fitzSource{doc: doc, path: path, logger: e.logger}, nil
}

type fitzSource struct {
	doc    *fitz.Document
	path   string
	logger domain.Logger
}

func (s *fitzSource) PageCount() int {
	return s.doc.NumPage()
}

func (s *fitzSource) Pages(ctx context.Context) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		numPages := s.doc.NumPage()
		for pageNum := 0; pageNum < numPages; pageNum++ {
			if ctx.Err() != nil {
				return
			}
			s.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

			text, err := s.doc.Text(pageNum)
			if err != nil {
				s.logger.Warn("Failed to extract text from page", "path", s.path, "page_num", pageNum+1, "total", numPages, "error", err)
				text = ""
			}
			if !yield(pageNum+1, cleanPageText(text)) {
				return
			}
		}
	}
}

func (s *fitzSource) Close() error {
	return s.doc.Close()
}

// cleanPageText drops NUL bytes and trailing whitespace that engines append after the last line.
func cleanPageText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.TrimRight(text, " \t\r\n\f")
}
