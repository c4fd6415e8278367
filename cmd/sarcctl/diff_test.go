package main

import "testing"

func TestDiffCommandEqual(t *testing.T) {
	files := map[string][]byte{
		"a.bin": {0x01, 0x02},
		"b.bin": {0x03},
	}
	left := writeTestArchive(t, files)
	right := writeTestArchive(t, files)

	quiet = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runDiff(newDiffCmd(), []string{left, right})
	})
	if err != nil {
		t.Fatalf("runDiff() error = %v", err)
	}
	assertContains(t, output, []string{"same files"})
}

func TestDiffCommandDiffers(t *testing.T) {
	left := writeTestArchive(t, map[string][]byte{"a.bin": {0x01}})
	right := writeTestArchive(t, map[string][]byte{"a.bin": {0x02}})

	quiet = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runDiff(newDiffCmd(), []string{left, right})
	})
	if err == nil {
		t.Fatalf("expected non-nil error for differing archives")
	}
	assertContains(t, output, []string{"differ"})
}
