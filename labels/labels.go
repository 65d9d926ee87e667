// Package labels extracts class label names that exporters embed in model
// files, such as the "names" entry Ultralytics writes into IR rt_info and
// ONNX metadata.
//
// Extraction is best-effort: Reader.Read never fails and returns nil when a
// file carries no labels.
package labels

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNoLabels is returned when a model file carries no label metadata.
var ErrNoLabels = errors.New("no label metadata")

// Extractor pulls the serialized label list out of one model format.
type Extractor interface {
	// Extract returns the raw label string, e.g. "{0: 'person', 1: 'bicycle'}".
	Extract(r io.Reader) (string, error)
}

// Reader dispatches label extraction by file extension.
type Reader struct {
	extractors map[string]Extractor
}

// NewReader returns a Reader with no registered formats.
func NewReader() *Reader {
	return &Reader{extractors: make(map[string]Extractor)}
}

// DefaultReader handles OpenVINO IR (.xml) and ONNX (.onnx) files.
var DefaultReader = func() *Reader {
	r := NewReader()
	r.Register(".xml", XMLExtractor{})
	r.Register(".onnx", ONNXExtractor{})
	return r
}()

// Register associates ext (with leading dot, case-insensitive) with e.
func (r *Reader) Register(ext string, e Extractor) {
	r.extractors[strings.ToLower(ext)] = e
}

// ReadFile extracts and parses the labels of the model at path.
func (r *Reader) ReadFile(path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.extractors[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported model format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := e.Extract(f)
	if err != nil {
		return nil, fmt.Errorf("failed to extract labels from %s: %w", path, err)
	}
	return Parse(raw), nil
}

// Read is ReadFile with every failure, including a panicking Extractor,
// reported as nil.
func (r *Reader) Read(path string) (names []string) {
	defer func() {
		if recover() != nil {
			names = nil
		}
	}()

	names, err := r.ReadFile(path)
	if err != nil {
		return nil
	}
	return names
}

var quotedToken = regexp.MustCompile(`'([^'\d]+)'`)

// Parse returns the single-quoted, digit-free tokens of a serialized label
// list in order: "{0: 'person', 1: 'bicycle'}" yields [person bicycle].
// The result is non-nil even when nothing matches.
func Parse(serialized string) []string {
	matches := quotedToken.FindAllStringSubmatch(serialized, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
