package sarc

import (
	"testing"

	"github.com/packfile/sarckit/internal/buf"
	"github.com/packfile/sarckit/internal/format"
)

// testFile describes one entry for buildArchive.
type testFile struct {
	name    string // empty means hash-only
	hash    uint32 // stored hash for hash-only entries; ignored when named
	payload []byte
}

// buildArchive synthesizes a well-formed archive with the given byte order
// and payload alignment. Entries land in the file table in the order given.
func buildArchive(t *testing.T, order buf.Order, align int, files []testFile) []byte {
	t.Helper()

	n := len(files)
	tableEnd := format.EntryTableOffset + n*format.EntrySize
	namesOffset := tableEnd + format.SFNTHeaderSize

	// Name table layout: null-terminated names padded to 4 bytes, offsets
	// stored in 4-byte units.
	nameWordOffsets := make([]int, n)
	var nameBytes []byte
	for i, f := range files {
		if f.name == "" {
			nameWordOffsets[i] = -1
			continue
		}
		nameWordOffsets[i] = len(nameBytes) / format.NameAlignment
		nameBytes = append(nameBytes, f.name...)
		nameBytes = append(nameBytes, 0)
		for len(nameBytes)%format.NameAlignment != 0 {
			nameBytes = append(nameBytes, 0)
		}
	}

	dataOffset := format.AlignUp(namesOffset+len(nameBytes), align)
	if dataOffset < format.MinArchiveSize {
		dataOffset = format.MinArchiveSize
	}

	// Data section layout: payloads in table order, each aligned.
	starts := make([]int, n)
	ends := make([]int, n)
	cursor := 0
	for i, f := range files {
		cursor = format.AlignUp(cursor, align)
		starts[i] = cursor
		cursor += len(f.payload)
		ends[i] = cursor
	}

	total := dataOffset + cursor
	if total < format.MinArchiveSize {
		total = format.MinArchiveSize
	}
	b := make([]byte, total)

	copy(b, format.SARCSignature)
	order.PutU16(b[format.SARCHeaderSizeOffset:], format.HeaderSize)
	if order == buf.BigEndian {
		b[format.SARCByteOrderOffset], b[format.SARCByteOrderOffset+1] = 0xFE, 0xFF
	} else {
		b[format.SARCByteOrderOffset], b[format.SARCByteOrderOffset+1] = 0xFF, 0xFE
	}
	order.PutU32(b[format.SARCFileSizeOffset:], uint32(total))
	order.PutU32(b[format.SARCDataOffsetOffset:], uint32(dataOffset))
	order.PutU16(b[format.SARCVersionOffset:], format.Version)

	copy(b[format.SFATSignatureOffset:], format.SFATSignature)
	order.PutU16(b[format.SFATHeaderSizeOffset:], format.SFATHeaderSize)
	order.PutU16(b[format.SFATFileCountOffset:], uint16(n))
	order.PutU32(b[format.SFATHashMultiplierOffset:], format.DefaultHashMultiplier)

	for i, f := range files {
		off := format.EntryTableOffset + i*format.EntrySize
		hash := f.hash
		var attrs uint32
		if f.name != "" {
			hash = format.NameHash(format.DefaultHashMultiplier, f.name)
			attrs = 0x01000000 | uint32(nameWordOffsets[i])
		}
		order.PutU32(b[off+format.EntryNameHashOffset:], hash)
		order.PutU32(b[off+format.EntryNameAttrsOffset:], attrs)
		order.PutU32(b[off+format.EntryDataStartOffset:], uint32(starts[i]))
		order.PutU32(b[off+format.EntryDataEndOffset:], uint32(ends[i]))
	}

	copy(b[tableEnd:], format.SFNTSignature)
	order.PutU16(b[tableEnd+format.SFNTHeaderSizeRelOffset:], format.SFNTHeaderSize)
	copy(b[namesOffset:], nameBytes)

	for i, f := range files {
		copy(b[dataOffset+starts[i]:], f.payload)
	}
	return b
}
