package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestPageCollection_MarshalJSON tests that pages are encoded in document order.
// It tests:
// - "page N" keys starting at 1
// - numeric ordering past page 9 (map encoding would sort "page 10" first)
// - an empty collection encodes as {}
func TestPageCollection_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		pages PageCollection
		want  string
	}{
		{
			name:  "Empty collection",
			pages: NewPageCollection(),
			want:  `{}`,
		},
		{
			name:  "Three pages",
			pages: NewPageCollection("T1", "T2", "T3"),
			want:  `{"page 1":"T1","page 2":"T2","page 3":"T3"}`,
		},
		{
			// An image-only page yields no text but keeps its slot
			name:  "Empty page preserved",
			pages: NewPageCollection("first", "", "third"),
			want:  `{"page 1":"first","page 2":"","page 3":"third"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.pages)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPageCollection_MarshalJSON_NumericOrder(t *testing.T) {
	texts := make([]string, 12)
	for i := range texts {
		texts[i] = "text"
	}

	got, err := json.Marshal(NewPageCollection(texts...))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	s := string(got)
	if strings.Index(s, `"page 2"`) > strings.Index(s, `"page 10"`) {
		t.Fatalf("expected page 2 before page 10, got %s", s)
	}
	if !strings.HasSuffix(s, `"page 12":"text"}`) {
		t.Fatalf("expected page 12 last, got %s", s)
	}
}

// TestPageCollection_UnmarshalJSON tests decoding of a page mapping.
// It tests:
// - keys in arbitrary order land on the right page
// - null values decode as empty text
// - malformed keys and gaps are rejected
func TestPageCollection_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "Ordered keys",
			input: `{"page 1":"a","page 2":"b"}`,
			want:  []string{"a", "b"},
		},
		{
			name:  "Unordered keys",
			input: `{"page 2":"b","page 1":"a"}`,
			want:  []string{"a", "b"},
		},
		{
			name:  "Null page",
			input: `{"page 1":null}`,
			want:  []string{""},
		},
		{
			name:    "Invalid key",
			input:   `{"p1":"a"}`,
			wantErr: true,
		},
		{
			name:    "Zero page",
			input:   `{"page 0":"a"}`,
			wantErr: true,
		},
		{
			name:    "Gap in pages",
			input:   `{"page 1":"a","page 3":"c"}`,
			wantErr: true,
		},
		{
			name:    "Not an object",
			input:   `["a"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pages PageCollection
			err := json.Unmarshal([]byte(tt.input), &pages)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if pages.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", pages.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				got, ok := pages.Text(i + 1)
				if !ok || got != want {
					t.Errorf("Text(%d) = %q, %v; want %q", i+1, got, ok, want)
				}
			}
		})
	}
}

func TestPageCollection_RoundTrip(t *testing.T) {
	original := NewPageCollection("Line one\nLine two", "", `quotes "and" <tags> & unicode: café`)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded PageCollection
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := original.Map()
	got := decoded.Map()
	if len(got) != len(want) {
		t.Fatalf("decoded %d pages, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("page %q = %q, want %q", k, got[k], v)
		}
	}
}

func TestPageCollection_Text_OutOfRange(t *testing.T) {
	pages := NewPageCollection("only")

	if _, ok := pages.Text(0); ok {
		t.Error("Text(0) should not be found")
	}
	if _, ok := pages.Text(2); ok {
		t.Error("Text(2) should not be found")
	}
	if got, ok := pages.Text(1); !ok || got != "only" {
		t.Errorf("Text(1) = %q, %v", got, ok)
	}
}
