// Package sarif reads SARIF-like analyzer output and normalizes its results
// into report findings. Documents are kept as generic JSON trees; every field
// is optional and read through the Lookup accessors.
package sarif

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Document is a decoded top-level SARIF object.
type Document map[string]interface{}

// gzipMagic is the header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile reads and decodes the document at path. Gzip-compressed files are
// detected by their header and decompressed transparently.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a document from r.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("failed to decompress input: %w", err)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if doc == nil {
		// a literal null decodes without error
		doc = Document{}
	}
	return doc, nil
}

// Version returns the log's declared SARIF version, if any.
func (d Document) Version() (string, bool) {
	v, ok := Lookup(d, "version")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
