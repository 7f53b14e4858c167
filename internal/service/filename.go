package service

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AllowedExtensions is the set of accepted upload extensions, lower-case, without the dot.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// AllowedFile reports whether filename has an extension in AllowedExtensions.
// The extension is whatever follows the last '.', compared case-insensitively.
func AllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := AllowedExtensions[strings.ToLower(filename[idx+1:])]
	return ok
}

// SecureFilename returns a version of filename that is safe to use as a single
// path component. Accented characters are folded to ASCII, path separators and
// whitespace become underscores, anything else outside [A-Za-z0-9_.-] is dropped,
// and leading or trailing dots and underscores are trimmed. The result may be empty.
func SecureFilename(filename string) string {
	decomposed := norm.NFKD.String(filename)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		b.WriteRune(r)
	}

	name := strings.Join(strings.Fields(b.String()), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// baseName strips the extension from a sanitized filename.
func baseName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
