package handler

import (
	"context"
	"iter"
	"sync"

	"pdf-to-text/internal/domain"
)

type MockHandlerLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{
		messages: []string{},
	}
}

func (m *MockHandlerLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockHandlerLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockHandlerLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockHandlerLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockHandlerLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

// MockTextExtractor returns the same page texts for every document.
type MockTextExtractor struct {
	texts   []string
	openErr error
}

func (m *MockTextExtractor) Name() string { return "mock" }

func (m *MockTextExtractor) Open(path string) (domain.PageSource, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return mockPages(m.texts), nil
}

type mockPages []string

func (p mockPages) PageCount() int { return len(p) }

func (p mockPages) Pages(ctx context.Context) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, text := range p {
			if !yield(i+1, text) {
				return
			}
		}
	}
}

func (p mockPages) Close() error { return nil }

// MockConversionService returns a canned result or error.
type MockConversionService struct {
	result   *domain.ConversionResult
	err      error
	received []string
}

func (m *MockConversionService) Convert(ctx context.Context, upload *domain.UploadedFile) (*domain.ConversionResult, error) {
	m.received = append(m.received, upload.Filename)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
