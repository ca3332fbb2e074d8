// Package testutil provides test helpers for building OCS fixtures and
// identifier list chains.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"unicode/utf16"
)

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "ocsview-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			// Ignore cleanup errors in tests
		}
	})
	return dir
}

// WriteOCSFile writes an OCS document into dir and returns its path.
func WriteOCSFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write OCS file: %v", err)
	}

	return path
}

// WS encodes s as an OCS ws: value: comma-separated decimal UTF-16 code units.
func WS(s string) string {
	units := utf16.Encode([]rune(s))

	parts := make([]string, 0, len(units))
	for _, u := range units {
		parts = append(parts, strconv.Itoa(int(u)))
	}

	return "ws:" + strings.Join(parts, ",")
}

// BN encodes b as an OCS bn: value: comma-separated decimal byte values.
func BN(b []byte) string {
	parts := make([]string, 0, len(b))
	for _, v := range b {
		parts = append(parts, strconv.Itoa(int(v)))
	}

	return "bn:" + strings.Join(parts, ",")
}
