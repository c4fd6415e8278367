package format

import (
	"errors"
	"testing"

	"github.com/packfile/sarckit/internal/buf"
)

// minimalHeaders returns a buffer holding valid SARC and SFAT headers plus an
// SFNT header directly after (zero files) in the given order.
func minimalHeaders(order buf.Order) []byte {
	b := make([]byte, MinArchiveSize)
	copy(b, SARCSignature)
	order.PutU16(b[SARCHeaderSizeOffset:], HeaderSize)
	if order == buf.BigEndian {
		b[SARCByteOrderOffset] = 0xFE
		b[SARCByteOrderOffset+1] = 0xFF
	} else {
		b[SARCByteOrderOffset] = 0xFF
		b[SARCByteOrderOffset+1] = 0xFE
	}
	order.PutU32(b[SARCFileSizeOffset:], MinArchiveSize)
	order.PutU32(b[SARCDataOffsetOffset:], MinArchiveSize)
	order.PutU16(b[SARCVersionOffset:], Version)

	copy(b[SFATSignatureOffset:], SFATSignature)
	order.PutU16(b[SFATHeaderSizeOffset:], SFATHeaderSize)
	order.PutU16(b[SFATFileCountOffset:], 0)
	order.PutU32(b[SFATHashMultiplierOffset:], DefaultHashMultiplier)

	copy(b[EntryTableOffset:], SFNTSignature)
	order.PutU16(b[EntryTableOffset+SFNTHeaderSizeRelOffset:], SFNTHeaderSize)
	return b
}

func TestParseHeaderSuccess(t *testing.T) {
	for _, order := range []buf.Order{buf.BigEndian, buf.LittleEndian} {
		b := minimalHeaders(order)
		hdr, err := ParseHeader(b)
		if err != nil {
			t.Fatalf("%v: ParseHeader: %v", order, err)
		}
		if hdr.Order != order {
			t.Fatalf("order mismatch: got %v want %v", hdr.Order, order)
		}
		if hdr.HeaderSize != HeaderSize || hdr.Version != Version {
			t.Fatalf("header fields mismatch: %+v", hdr)
		}
		if hdr.DataOffset != MinArchiveSize {
			t.Fatalf("data offset mismatch: %+v", hdr)
		}
	}
}

func TestParseHeaderErrors(t *testing.T) {
	b := minimalHeaders(buf.BigEndian)

	if _, err := ParseHeader(b[:10]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}

	bad := minimalHeaders(buf.BigEndian)
	copy(bad, []byte{'B', 'A', 'D', '!'})
	if _, err := ParseHeader(bad); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected signature error, got %v", err)
	}

	bad = minimalHeaders(buf.BigEndian)
	bad[SARCByteOrderOffset] = 0x00
	if _, err := ParseHeader(bad); !errors.Is(err, ErrBadByteOrderMark) {
		t.Fatalf("expected BOM error, got %v", err)
	}

	bad = minimalHeaders(buf.BigEndian)
	buf.BigEndian.PutU16(bad[SARCVersionOffset:], 0x0200)
	if _, err := ParseHeader(bad); !errors.Is(err, ErrBadFieldValue) {
		t.Fatalf("expected version error, got %v", err)
	}

	bad = minimalHeaders(buf.BigEndian)
	buf.BigEndian.PutU16(bad[SARCHeaderSizeOffset:], 0x18)
	if _, err := ParseHeader(bad); !errors.Is(err, ErrBadFieldValue) {
		t.Fatalf("expected header size error, got %v", err)
	}
}

func TestParseFATHeader(t *testing.T) {
	b := minimalHeaders(buf.LittleEndian)
	fat, err := ParseFATHeader(b, buf.LittleEndian)
	if err != nil {
		t.Fatalf("ParseFATHeader: %v", err)
	}
	if fat.FileCount != 0 || fat.HashMultiplier != DefaultHashMultiplier {
		t.Fatalf("fat fields mismatch: %+v", fat)
	}

	bad := minimalHeaders(buf.LittleEndian)
	copy(bad[SFATSignatureOffset:], []byte{'X', 'X', 'X', 'X'})
	if _, err := ParseFATHeader(bad, buf.LittleEndian); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected signature error, got %v", err)
	}

	bad = minimalHeaders(buf.LittleEndian)
	buf.LittleEndian.PutU16(bad[SFATHeaderSizeOffset:], 0x10)
	if _, err := ParseFATHeader(bad, buf.LittleEndian); !errors.Is(err, ErrBadFieldValue) {
		t.Fatalf("expected header size error, got %v", err)
	}
}

func TestParseFNTHeader(t *testing.T) {
	b := minimalHeaders(buf.BigEndian)
	if _, err := ParseFNTHeader(b, EntryTableOffset, buf.BigEndian); err != nil {
		t.Fatalf("ParseFNTHeader: %v", err)
	}
	if _, err := ParseFNTHeader(b, len(b)-2, buf.BigEndian); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
	if _, err := ParseFNTHeader(b, 0, buf.BigEndian); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected signature error, got %v", err)
	}
}

func TestParseEntry(t *testing.T) {
	b := make([]byte, EntrySize)
	buf.BigEndian.PutU32(b[EntryNameHashOffset:], 0xDEADBEEF)
	buf.BigEndian.PutU32(b[EntryNameAttrsOffset:], 0x01000002)
	buf.BigEndian.PutU32(b[EntryDataStartOffset:], 0x10)
	buf.BigEndian.PutU32(b[EntryDataEndOffset:], 0x18)

	e, err := ParseEntry(b, 0, buf.BigEndian)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if e.NameHash != 0xDEADBEEF || e.DataStart != 0x10 || e.DataEnd != 0x18 {
		t.Fatalf("entry fields mismatch: %+v", e)
	}
	if !e.Named() {
		t.Fatalf("entry with attrs should be named")
	}
	if e.NameOffset() != 8 {
		t.Fatalf("NameOffset = %d, want 8", e.NameOffset())
	}

	if _, err := ParseEntry(b, 4, buf.BigEndian); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}

	var unnamed Entry
	if unnamed.Named() {
		t.Fatalf("zero attrs should mean hash-only")
	}
}
