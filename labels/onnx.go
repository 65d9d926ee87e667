package labels

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ONNX ModelProto field numbers.
const (
	modelMetadataPropsField protowire.Number = 14
	entryKeyField           protowire.Number = 1
	entryValueField         protowire.Number = 2
)

// ONNXExtractor reads labels from the "names" entry of an ONNX model's metadata_props.
type ONNXExtractor struct {
	// Key overrides the metadata key; empty means "names".
	Key string
}

func (e ONNXExtractor) key() string {
	if e.Key != "" {
		return e.Key
	}
	return "names"
}

// maxMetadataEntry bounds a single metadata_props entry read into memory.
const maxMetadataEntry = 16 << 20

// Extract implements Extractor. The model is streamed: fields other than
// metadata_props, such as the graph and its initializers, are skipped
// without being buffered, and reading stops at the matching entry.
func (e ONNXExtractor) Extract(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	want := e.key()
	for {
		tag, err := binary.ReadUvarint(br)
		if errors.Is(err, io.EOF) {
			return "", ErrNoLabels
		}
		if err != nil {
			return "", fmt.Errorf("invalid model proto: %w", err)
		}
		num, typ := protowire.DecodeTag(tag)
		if num < protowire.MinValidNumber {
			return "", fmt.Errorf("invalid model proto: field number %d", num)
		}

		if num == modelMetadataPropsField && typ == protowire.BytesType {
			entry, err := readBytesField(br)
			if err != nil {
				return "", fmt.Errorf("invalid metadata entry: %w", err)
			}
			key, value, err := parseStringStringEntry(entry)
			if err != nil {
				return "", err
			}
			if key == want {
				return value, nil
			}
			continue
		}

		if err := skipField(br, typ); err != nil {
			return "", fmt.Errorf("invalid model proto: field %d: %w", num, err)
		}
	}
}

func readBytesField(br *bufio.Reader) ([]byte, error) {
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, unexpectedEOF(err)
	}
	if n > maxMetadataEntry {
		return nil, fmt.Errorf("entry of %d bytes exceeds %d", n, maxMetadataEntry)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br, b); err != nil {
		return nil, unexpectedEOF(err)
	}
	return b, nil
}

func skipField(br *bufio.Reader, typ protowire.Type) error {
	var err error
	switch typ {
	case protowire.VarintType:
		_, err = binary.ReadUvarint(br)
	case protowire.Fixed32Type:
		_, err = br.Discard(4)
	case protowire.Fixed64Type:
		_, err = br.Discard(8)
	case protowire.BytesType:
		var n uint64
		n, err = binary.ReadUvarint(br)
		if err == nil {
			if n > math.MaxInt64 {
				return fmt.Errorf("length %d out of range", n)
			}
			_, err = io.CopyN(io.Discard, br, int64(n))
		}
	default:
		return fmt.Errorf("unsupported wire type %d", typ)
	}
	return unexpectedEOF(err)
}

// unexpectedEOF reports io.EOF inside a field as io.ErrUnexpectedEOF.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func parseStringStringEntry(b []byte) (key, value string, err error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", "", fmt.Errorf("invalid metadata entry: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if typ == protowire.BytesType && (num == entryKeyField || num == entryValueField) {
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return "", "", fmt.Errorf("invalid metadata entry: %w", protowire.ParseError(n))
			}
			b = b[n:]
			if num == entryKeyField {
				key = s
			} else {
				value = s
			}
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return "", "", fmt.Errorf("invalid metadata entry: %w", protowire.ParseError(n))
		}
		b = b[n:]
	}
	return key, value, nil
}
