package sarc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/packfile/sarckit/internal/buf"
	"github.com/packfile/sarckit/internal/format"
)

// Archive is a parsed SARC container. It borrows the source buffer for its
// entire lifetime: every payload and name it exposes is a view into that
// buffer, never a copy. An Archive is immutable after Parse and safe for
// concurrent readers, provided the caller keeps the buffer alive and
// unmodified while the Archive or any derived slice is in use.
type Archive struct {
	data           []byte
	order          buf.Order
	dataOffset     uint32
	hashMultiplier uint32
	alignment      int
	files          []File

	// cleanup releases the mapping for Open-backed archives.
	cleanup func() error
}

// Parse reads the archive in data. Parsing is fail-fast: any violated
// invariant aborts construction and no Archive is produced. Construction
// errors wrap ErrMalformedHeader or ErrInvalidTable.
func Parse(data []byte) (*Archive, error) {
	if len(data) < format.MinArchiveSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %#x", ErrMalformedHeader, len(data), format.MinArchiveSize)
	}

	hdr, err := format.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	order := hdr.Order

	fat, err := format.ParseFATHeader(data, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if fat.FileCount > format.FileCountMax {
		return nil, fmt.Errorf("%w: file count %d exceeds %#x", ErrInvalidTable, fat.FileCount, format.FileCountMax)
	}

	tableEnd, err := buf.CheckListBounds(len(data), format.EntryTableOffset, int(fat.FileCount), format.EntrySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	if _, err := format.ParseFNTHeader(data, tableEnd, order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	namesOffset := tableEnd + format.SFNTHeaderSize

	if int64(hdr.DataOffset) < int64(namesOffset) {
		return nil, fmt.Errorf("%w: data section at %#x overlaps metadata ending at %#x", ErrInvalidTable, hdr.DataOffset, namesOffset)
	}
	if int64(hdr.DataOffset) > int64(len(data)) {
		return nil, fmt.Errorf("%w: data section at %#x beyond buffer of %d bytes", ErrInvalidTable, hdr.DataOffset, len(data))
	}

	files := make([]File, 0, fat.FileCount)
	var gcd uint32
	for i := 0; i < int(fat.FileCount); i++ {
		e, err := format.ParseEntry(data, format.EntryTableOffset+i*format.EntrySize, order)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidTable, i, err)
		}
		if e.DataEnd < e.DataStart {
			return nil, fmt.Errorf("%w: entry %d: start %#x after end %#x", ErrInvalidTable, i, e.DataStart, e.DataEnd)
		}
		start := int64(hdr.DataOffset) + int64(e.DataStart)
		end := int64(hdr.DataOffset) + int64(e.DataEnd)
		if end > int64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d: range [%#x, %#x) beyond buffer of %d bytes", ErrInvalidTable, i, start, end, len(data))
		}

		f := File{
			Index: i,
			Hash:  e.NameHash,
			Data:  data[start:end],
		}
		if e.Named() {
			name, err := resolveName(data, namesOffset+e.NameOffset())
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidTable, i, err)
			}
			f.Name = name
			f.Named = true
		}
		files = append(files, f)
		gcd = format.GCD(gcd, e.DataStart)
	}

	alignment := int(format.LargestPow2Divisor(gcd))
	if alignment == 0 {
		// Empty archive, or every payload at relative offset 0: no evidence
		// of any padding scheme.
		alignment = 1
	}

	return &Archive{
		data:           data,
		order:          order,
		dataOffset:     hdr.DataOffset,
		hashMultiplier: fat.HashMultiplier,
		alignment:      alignment,
		files:          files,
	}, nil
}

// resolveName reads the null-terminated UTF-8 name at absolute offset off.
func resolveName(data []byte, off int) (string, error) {
	if off < 0 || off >= len(data) {
		return "", fmt.Errorf("name offset %#x out of bounds", off)
	}
	i := bytes.IndexByte(data[off:], 0)
	if i < 0 {
		return "", fmt.Errorf("unterminated name at %#x", off)
	}
	name := data[off : off+i]
	if !utf8.Valid(name) {
		return "", fmt.Errorf("name at %#x is not valid UTF-8", off)
	}
	return string(name), nil
}

// DataOffset returns the absolute offset of the data section, the region
// holding raw payload bytes after the header, file table, and name table.
func (a *Archive) DataOffset() uint32 {
	return a.dataOffset
}

// GuessAlignment returns the inferred payload alignment: the greatest
// power-of-two divisor of every payload's start offset relative to the data
// section. Archives with no alignment evidence report 1.
func (a *Archive) GuessAlignment() int {
	return a.alignment
}

// NumFiles returns the archive's declared file count.
func (a *Archive) NumFiles() uint16 {
	return uint16(len(a.files))
}

// Len returns the file count as an int, for ranging.
func (a *Archive) Len() int {
	return len(a.files)
}

// IsEmpty reports whether the archive contains no files.
func (a *Archive) IsEmpty() bool {
	return len(a.files) == 0
}

// BigEndian reports whether the archive's multi-byte fields are big-endian.
func (a *Archive) BigEndian() bool {
	return a.order == buf.BigEndian
}

// Order returns the detected byte order.
func (a *Archive) Order() buf.Order {
	return a.order
}

// HashMultiplier returns the name hash multiplier declared by the file
// table header.
func (a *Archive) HashMultiplier() uint32 {
	return a.hashMultiplier
}
