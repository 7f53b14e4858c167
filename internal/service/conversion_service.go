package service

import (
	"context"
	"errors"
	"time"

	"pdf-to-text/internal/domain"
	apperrors "pdf-to-text/pkg/errors"
)

// ConversionService turns one uploaded PDF into its .txt and .json artifacts.
type ConversionService struct {
	storage   *Storage
	inspector domain.PDFInspector
	extractor domain.TextExtractor
	writer    *OutputWriter
	logger    domain.Logger
	locks     *keyedMutex
}

// NewConversionService creates a new conversion service
func NewConversionService(
	storage *Storage,
	inspector domain.PDFInspector,
	extractor domain.TextExtractor,
	logger domain.Logger,
) *ConversionService {
	return &ConversionService{
		storage:   storage,
		inspector: inspector,
		extractor: extractor,
		writer:    NewOutputWriter(storage, logger),
		logger:    logger,
		locks:     newKeyedMutex(),
	}
}

// ValidateFilename checks an uploaded name and returns its sanitized form.
func ValidateFilename(filename string) (string, error) {
	if filename == "" {
		return "", apperrors.NewEmptyFilenameError()
	}
	if !AllowedFile(filename) {
		return "", apperrors.NewUnsupportedTypeError(filename)
	}
	secure := SecureFilename(filename)
	if !AllowedFile(secure) || baseName(secure) == "" {
		return "", apperrors.NewUnsupportedTypeError(filename)
	}
	return secure, nil
}

// Convert validates the upload name, persists the content, extracts every page
// and writes the outputs. Uploads that share an output base name are processed
// one at a time so their files are never interleaved.
func (s *ConversionService) Convert(ctx context.Context, upload *domain.UploadedFile) (*domain.ConversionResult, error) {
	filename, err := ValidateFilename(upload.Filename)
	if err != nil {
		return nil, err
	}
	base := baseName(filename)

	unlock := s.locks.Lock(base)
	defer unlock()

	start := time.Now()

	uploadPath, size, err := s.storage.SaveUpload(filename, upload.Content)
	if err != nil {
		return nil, apperrors.NewWriteError("Failed to save the uploaded file.", err)
	}
	s.logger.Info("Upload saved", "file", filename, "path", uploadPath, "bytes", size)

	src, err := s.extractor.Open(uploadPath)
	if err != nil {
		if s.inspector != nil {
			if _, inspectErr := s.inspector.Inspect(uploadPath); inspectErr != nil {
				err = errors.Join(err, inspectErr)
			}
		}
		return nil, apperrors.NewExtractionError(filename, err)
	}
	defer src.Close()

	// The engine repairs what it can; structural problems are only reported.
	if s.inspector != nil {
		if _, err := s.inspector.Inspect(uploadPath); err != nil {
			s.logger.Warn("PDF failed validation, extracting anyway",
				"file", filename,
				"pages", src.PageCount(),
				"error", err,
			)
		}
	}

	pages, err := s.writer.Write(ctx, base, src.Pages(ctx))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, apperrors.NewWriteError("Failed to write the converted text.", err)
	}

	s.logger.Info("PDF converted",
		"file", filename,
		"engine", s.extractor.Name(),
		"pages", src.PageCount(),
		"written", pages.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.ConversionResult{
		Filename:   filename,
		UploadPath: uploadPath,
		TextPath:   s.storage.TextPath(base),
		JSONPath:   s.storage.JSONPath(base),
		Pages:      pages,
	}, nil
}
