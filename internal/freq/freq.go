package freq

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when an input file contains bytes that are not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 data")

// Table maps a Unicode code point to the number of times it occurs in a text.
type Table map[rune]int

// FromFile reads the file at path and builds its character frequency table.
// The file must be valid UTF-8. An empty file yields an empty table.
func FromFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("decoding %s: %w", path, ErrInvalidUTF8)
	}
	return Count(string(data)), nil
}

// Count builds a frequency table for text. Line endings are normalized
// first: "\r\n" and a lone "\r" each count as a single "\n", so the same
// logical text produces the same table regardless of line-ending convention.
// Every character of the normalized sequence is counted, whitespace and
// newlines included.
func Count(text string) Table {
	t := make(Table)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\r' {
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			r = '\n'
		}
		t[r]++
	}
	return t
}
