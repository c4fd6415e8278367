// Package format houses low-level decoders for the SARC archive container
// format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

var (
	// SARCSignature is the four-byte signature at the start of every archive.
	// Layout:
	//   0x00  'S' 'A' 'R' 'C'
	SARCSignature = []byte{'S', 'A', 'R', 'C'}

	// SFATSignature identifies the file allocation table header that
	// immediately follows the archive header.
	SFATSignature = []byte{'S', 'F', 'A', 'T'}

	// SFNTSignature identifies the file name table header that follows the
	// entry table.
	SFNTSignature = []byte{'S', 'F', 'N', 'T'}
)

const (
	// HeaderSize is the size of the SARC header in bytes, including the
	// signature. The header declares this value at SARCHeaderSizeOffset and
	// all known archives use 0x14.
	HeaderSize = 0x14

	// SFATHeaderSize is the size of the SFAT header in bytes, including its
	// signature. Declared in the header itself; always 0x0C.
	SFATHeaderSize = 0x0C

	// SFNTHeaderSize is the size of the SFNT header in bytes, including its
	// signature. Declared in the header itself; always 0x08.
	SFNTHeaderSize = 0x08

	// EntrySize is the size of one file table entry in bytes.
	EntrySize = 0x10

	// MinArchiveSize is the smallest buffer that can hold the fixed headers
	// of a well-formed archive.
	MinArchiveSize = 0x40

	// Version is the only supported SARC format version.
	Version = 0x0100

	// SignatureSize is the length of each of the three section signatures.
	SignatureSize = 4

	// SARC header field offsets.
	SARCSignatureOffset  = 0x00 // 4 bytes
	SARCHeaderSizeOffset = 0x04 // 2
	SARCByteOrderOffset  = 0x06 // 2, byte-order mark
	SARCFileSizeOffset   = 0x08 // 4
	SARCDataOffsetOffset = 0x0C // 4, absolute offset of the data section
	SARCVersionOffset    = 0x10 // 2
	SARCReservedOffset   = 0x12 // 2

	// SFAT header field offsets (absolute, SFAT always follows the header).
	SFATSignatureOffset      = 0x14 // 4 bytes
	SFATHeaderSizeOffset     = 0x18 // 2
	SFATFileCountOffset      = 0x1A // 2
	SFATHashMultiplierOffset = 0x1C // 4

	// EntryTableOffset is the absolute offset of the first file table entry.
	EntryTableOffset = 0x20

	// File table entry field offsets, relative to the entry start.
	EntryNameHashOffset  = 0x00 // 4 bytes
	EntryNameAttrsOffset = 0x04 // 4
	EntryDataStartOffset = 0x08 // 4, relative to the data section
	EntryDataEndOffset   = 0x0C // 4, exclusive, relative to the data section

	// SFNT header field offsets, relative to the SFNT start.
	SFNTHeaderSizeRelOffset = 0x04 // 2
	SFNTReservedRelOffset   = 0x06 // 2

	// NameOffsetMask extracts the name table word offset from an entry's
	// name attrs field. The offset is stored in 4-byte units.
	NameOffsetMask = 0x00FFFFFF

	// NameAlignment is the boundary names are padded to in the name table,
	// and the unit of the stored name offsets.
	NameAlignment = 4

	// FileCountMax is the largest representable file count. The top two bits
	// of the 16-bit count field are reserved and must be clear.
	FileCountMax = 0x3FFF

	// DefaultHashMultiplier is the multiplier every known packer uses for
	// the SFAT name hash.
	DefaultHashMultiplier = 0x65
)
