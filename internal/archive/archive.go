package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound indicates the input path does not resolve to a readable file.
	ErrNotFound = errors.New("archive not found")
	// ErrMalformed indicates the input is not a JSON array of conversation objects.
	ErrMalformed = errors.New("malformed archive")
	// ErrWriteFailed indicates an I/O failure while writing output.
	ErrWriteFailed = errors.New("write failed")
)

// Load reads and parses a conversation archive from path.
func Load(path string) (Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	arc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return arc, nil
}

// Parse decodes a JSON array of conversation records.
func Parse(data []byte) (Archive, error) {
	var arc Archive
	if err := json.Unmarshal(data, &arc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return arc, nil
}

// Save serializes the archive to path as a JSON array with two-space
// indentation. Non-ASCII characters and HTML-significant characters are
// written literally, and records loaded from a source archive keep their
// original key order.
func Save(path string, arc Archive) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(arc); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrWriteFailed, path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
