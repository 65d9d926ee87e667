// Package cstrings converts between Go strings and NUL-terminated C strings.
package cstrings

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// ErrEmbeddedNUL is returned for strings that C would silently truncate.
var ErrEmbeddedNUL = errors.New("string contains NUL byte")

// CStringToString converts a C-style null-terminated string to a Go string.
func CStringToString(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var length int
	for {
		if *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(ptr)) + uintptr(length))) == 0 {
			break
		}
		length++
	}
	return string(unsafe.Slice(ptr, length))
}

// StringToBytes returns s as a NUL-terminated byte slice suitable for
// passing &b[0] to a C function expecting const char*.
// It fails with ErrEmbeddedNUL if s itself contains a NUL byte.
func StringToBytes(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%q: %w", s, ErrEmbeddedNUL)
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// CStringArrayToStrings copies n strings from a C char** array.
// It always returns a non-nil slice.
func CStringArrayToStrings(arr **byte, n int) []string {
	out := make([]string, 0, n)
	if arr == nil || n <= 0 {
		return out
	}
	for _, p := range unsafe.Slice(arr, n) {
		out = append(out, CStringToString(p))
	}
	return out
}
