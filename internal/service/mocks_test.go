package service

import (
	"context"
	"iter"
	"sync"
	"time"

	"pdf-to-text/internal/domain"
	apperrors "pdf-to-text/pkg/errors"
)

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

// MockExtractor serves fixed page texts for any path.
type MockExtractor struct {
	mu      sync.Mutex
	texts   []string
	openErr error
	opened  []string
}

func NewMockExtractor(texts ...string) *MockExtractor {
	return &MockExtractor{texts: texts}
}

func (m *MockExtractor) Name() string { return "mock" }

func (m *MockExtractor) Open(path string) (domain.PageSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, path)
	if m.openErr != nil {
		return nil, m.openErr
	}
	return &mockPageSource{texts: m.texts}, nil
}

type mockPageSource struct {
	texts  []string
	closed bool
}

func (s *mockPageSource) PageCount() int { return len(s.texts) }

func (s *mockPageSource) Pages(ctx context.Context) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, text := range s.texts {
			if ctx.Err() != nil {
				return
			}
			if !yield(i+1, text) {
				return
			}
		}
	}
}

func (s *mockPageSource) Close() error {
	s.closed = true
	return nil
}

// MockInspector accepts every file unless err is set.
type MockInspector struct {
	pageCount int
	err       error
}

func (m *MockInspector) Inspect(path string) (int, error) {
	return m.pageCount, m.err
}

// TrackingExtractor serves one slow page per document and records how many
// documents were open at the same time.
type TrackingExtractor struct {
	delay time.Duration

	mu        sync.Mutex
	active    int
	maxActive int
}

func (e *TrackingExtractor) Name() string { return "tracking" }

func (e *TrackingExtractor) Open(path string) (domain.PageSource, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active++
	if e.active > e.maxActive {
		e.maxActive = e.active
	}
	return &trackingSource{extractor: e}, nil
}

func (e *TrackingExtractor) peak() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxActive
}

type trackingSource struct {
	extractor *TrackingExtractor
}

func (s *trackingSource) PageCount() int { return 1 }

func (s *trackingSource) Pages(ctx context.Context) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		time.Sleep(s.extractor.delay)
		yield(1, "page")
	}
}

func (s *trackingSource) Close() error {
	s.extractor.mu.Lock()
	defer s.extractor.mu.Unlock()
	s.extractor.active--
	return nil
}

func isErrorType(err error, errorType apperrors.ErrorType) bool {
	appErr, ok := apperrors.As(err)
	return ok && appErr.Type == errorType
}
