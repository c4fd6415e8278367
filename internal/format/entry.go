package format

import (
	"fmt"

	"github.com/packfile/sarckit/internal/buf"
)

// Entry is one raw file table record.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 +0x00   4    Name hash
//	 +0x04   4    Name attrs (0 when the entry is hash-only)
//	 +0x08   4    Payload start, relative to the data section
//	 +0x0C   4    Payload end (exclusive), relative to the data section
type Entry struct {
	NameHash  uint32
	NameAttrs uint32
	DataStart uint32
	DataEnd   uint32
}

// ParseEntry extracts the file table entry at absolute offset off.
func ParseEntry(b []byte, off int, order buf.Order) (Entry, error) {
	e, ok := buf.Slice(b, off, EntrySize)
	if !ok {
		return Entry{}, fmt.Errorf("file table entry: %w", ErrTruncated)
	}
	return Entry{
		NameHash:  order.U32(e[EntryNameHashOffset:]),
		NameAttrs: order.U32(e[EntryNameAttrsOffset:]),
		DataStart: order.U32(e[EntryDataStartOffset:]),
		DataEnd:   order.U32(e[EntryDataEndOffset:]),
	}, nil
}

// Named reports whether the entry references a name table string. Hash-only
// entries store 0 in the attrs field and are reachable only by index.
func (e Entry) Named() bool {
	return e.NameAttrs != 0
}

// NameOffset returns the entry's byte offset into the name table. Only
// meaningful when Named reports true.
func (e Entry) NameOffset() int {
	return int(e.NameAttrs&NameOffsetMask) * NameAlignment
}
