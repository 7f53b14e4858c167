package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// UploadedFile represents one file received from a client.
// Filename is the name as sent, before sanitizing.
type UploadedFile struct {
	Filename string
	Content  io.Reader
}

// ConversionResult describes the artifacts produced for one PDF.
type ConversionResult struct {
	Filename   string         `json:"filename"`
	UploadPath string         `json:"upload_path"`
	TextPath   string         `json:"text_path"`
	JSONPath   string         `json:"json_path"`
	Pages      PageCollection `json:"contents"`
}

const pageLabelPrefix = "page "

// PageLabel returns the mapping key for a 1-based page number.
func PageLabel(pageNumber int) string {
	return pageLabelPrefix + strconv.Itoa(pageNumber)
}

// PageCollection is the ordered "page N" -> text mapping for one document.
// JSON encoding keeps document order, so "page 2" precedes "page 10".
type PageCollection struct {
	texts []string
}

// NewPageCollection builds a collection from page texts in document order.
func NewPageCollection(texts ...string) PageCollection {
	return PageCollection{texts: append([]string(nil), texts...)}
}

// Len returns the number of pages.
func (p PageCollection) Len() int {
	return len(p.texts)
}

// Text returns the text of a 1-based page.
func (p PageCollection) Text(pageNumber int) (string, bool) {
	if pageNumber < 1 || pageNumber > len(p.texts) {
		return "", false
	}
	return p.texts[pageNumber-1], true
}

// All yields label/text pairs in page order.
func (p PageCollection) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i, text := range p.texts {
			if !yield(PageLabel(i+1), text) {
				return
			}
		}
	}
}

// Map returns an unordered copy keyed by page label.
func (p PageCollection) Map() map[string]string {
	m := make(map[string]string, len(p.texts))
	for label, text := range p.All() {
		m[label] = text
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (p PageCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for label, text := range p.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(text)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// Keys may arrive in any order but must cover pages 1..N exactly once.
// A null value decodes as an empty page.
func (p *PageCollection) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	texts := make([]string, len(raw))
	seen := make([]bool, len(raw))
	for key, value := range raw {
		n, err := parsePageLabel(key)
		if err != nil {
			return err
		}
		if n > len(raw) || seen[n-1] {
			return fmt.Errorf("page collection: %q is out of sequence", key)
		}
		seen[n-1] = true
		if value != nil {
			texts[n-1] = *value
		}
	}

	p.texts = texts
	return nil
}

func parsePageLabel(label string) (int, error) {
	num, ok := strings.CutPrefix(label, pageLabelPrefix)
	if !ok {
		return 0, fmt.Errorf("page collection: invalid key %q", label)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("page collection: invalid page number in %q", label)
	}
	return n, nil
}
