package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestArchive writes a minimal big-endian archive with the given
// (name, payload) pairs and returns its path.
func writeTestArchive(t *testing.T, files map[string][]byte) string {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	// Deterministic table order for assertions.
	sortStrings(names)

	n := len(names)
	tableEnd := 0x20 + n*0x10
	namesOffset := tableEnd + 8

	var nameTable []byte
	wordOffsets := make([]int, n)
	for i, name := range names {
		wordOffsets[i] = len(nameTable) / 4
		nameTable = append(nameTable, name...)
		nameTable = append(nameTable, 0)
		for len(nameTable)%4 != 0 {
			nameTable = append(nameTable, 0)
		}
	}

	dataOffset := namesOffset + len(nameTable)
	for dataOffset%4 != 0 {
		dataOffset++
	}
	if dataOffset < 0x40 {
		dataOffset = 0x40
	}

	starts := make([]int, n)
	ends := make([]int, n)
	cursor := 0
	for i, name := range names {
		for cursor%4 != 0 {
			cursor++
		}
		starts[i] = cursor
		cursor += len(files[name])
		ends[i] = cursor
	}

	total := dataOffset + cursor
	if total < 0x40 {
		total = 0x40
	}
	b := make([]byte, total)

	copy(b, "SARC")
	binary.BigEndian.PutUint16(b[0x04:], 0x14)
	b[0x06], b[0x07] = 0xFE, 0xFF
	binary.BigEndian.PutUint32(b[0x08:], uint32(total))
	binary.BigEndian.PutUint32(b[0x0C:], uint32(dataOffset))
	binary.BigEndian.PutUint16(b[0x10:], 0x0100)

	copy(b[0x14:], "SFAT")
	binary.BigEndian.PutUint16(b[0x18:], 0x0C)
	binary.BigEndian.PutUint16(b[0x1A:], uint16(n))
	binary.BigEndian.PutUint32(b[0x1C:], 0x65)

	for i, name := range names {
		off := 0x20 + i*0x10
		var hash uint32
		for j := 0; j < len(name); j++ {
			hash = hash*0x65 + uint32(name[j])
		}
		binary.BigEndian.PutUint32(b[off:], hash)
		binary.BigEndian.PutUint32(b[off+0x04:], 0x01000000|uint32(wordOffsets[i]))
		binary.BigEndian.PutUint32(b[off+0x08:], uint32(starts[i]))
		binary.BigEndian.PutUint32(b[off+0x0C:], uint32(ends[i]))
	}

	copy(b[tableEnd:], "SFNT")
	binary.BigEndian.PutUint16(b[tableEnd+0x04:], 0x08)
	copy(b[namesOffset:], nameTable)

	for i, name := range names {
		copy(b[dataOffset+starts[i]:], files[name])
	}

	path := filepath.Join(t.TempDir(), "test.pack")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("failed to write test archive: %v", err)
	}
	return path
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
}

// assertContains checks that output contains each wanted substring
func assertContains(t *testing.T, output string, want []string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(output, s) {
			t.Errorf("output missing %q:\n%s", s, output)
		}
	}
}
