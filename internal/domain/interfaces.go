package domain

import (
	"context"
	"iter"
)

// PageSource is an opened PDF document.
// Pages yields (pageNumber, text) pairs in document order, starting at 1.
// The sequence is single-pass; a second range over it is not supported.
type PageSource interface {
	PageCount() int
	Pages(ctx context.Context) iter.Seq2[int, string]
	Close() error
}

// TextExtractor defines the strategy interface for text extraction
type TextExtractor interface {
	Name() string
	Open(path string) (PageSource, error)
}

// PDFInspector reports structural problems and the page count of a persisted PDF.
type PDFInspector interface {
	Inspect(path string) (pageCount int, err error)
}

// ConversionService runs one upload through persist, extract and write.
type ConversionService interface {
	Convert(ctx context.Context, upload *UploadedFile) (*ConversionResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetConvertedPath() string
	GetJSONOutputPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetPDFEngine() string
	GetAllowedOrigins() []string
}
