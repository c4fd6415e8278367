package format

import (
	"bytes"
	"fmt"

	"github.com/packfile/sarckit/internal/buf"
)

// Header captures the fields of the SARC header required to locate the file
// table and the data section. The diagram below shows the layout; all
// multi-byte fields after the BOM use the order the BOM declares.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x00    4    'S' 'A' 'R' 'C'
//	 0x04    2    Header size (0x14)
//	 0x06    2    Byte-order mark
//	 0x08    4    Total file size
//	 0x0C    4    Data section offset (absolute)
//	 0x10    2    Version (0x0100)
//	 0x12    2    Reserved
type Header struct {
	Order      buf.Order
	HeaderSize uint16
	FileSize   uint32
	DataOffset uint32
	Version    uint16
}

// ParseHeader validates and extracts the SARC header from the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("sarc header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], SARCSignature) {
		return Header{}, fmt.Errorf("sarc header: %w", ErrSignatureMismatch)
	}
	order, err := DetectOrder(b[SARCByteOrderOffset:])
	if err != nil {
		return Header{}, fmt.Errorf("sarc header: %w", err)
	}
	hdr := Header{
		Order:      order,
		HeaderSize: order.U16(b[SARCHeaderSizeOffset:]),
		FileSize:   order.U32(b[SARCFileSizeOffset:]),
		DataOffset: order.U32(b[SARCDataOffsetOffset:]),
		Version:    order.U16(b[SARCVersionOffset:]),
	}
	if hdr.HeaderSize != HeaderSize {
		return Header{}, fmt.Errorf("sarc header: %w: header size 0x%x", ErrBadFieldValue, hdr.HeaderSize)
	}
	if hdr.Version != Version {
		return Header{}, fmt.Errorf("sarc header: %w: version 0x%x", ErrBadFieldValue, hdr.Version)
	}
	return hdr, nil
}

// FATHeader is the SFAT header describing the file table.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x14    4    'S' 'F' 'A' 'T'
//	 0x18    2    Header size (0x0C)
//	 0x1A    2    File count
//	 0x1C    4    Name hash multiplier
type FATHeader struct {
	HeaderSize     uint16
	FileCount      uint16
	HashMultiplier uint32
}

// ParseFATHeader validates and extracts the SFAT header. b is the whole
// archive buffer; the SFAT header always sits right after the SARC header.
func ParseFATHeader(b []byte, order buf.Order) (FATHeader, error) {
	if !buf.Has(b, SFATSignatureOffset, SFATHeaderSize) {
		return FATHeader{}, fmt.Errorf("sfat header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[SFATSignatureOffset:SFATSignatureOffset+SignatureSize], SFATSignature) {
		return FATHeader{}, fmt.Errorf("sfat header: %w", ErrSignatureMismatch)
	}
	hdr := FATHeader{
		HeaderSize:     order.U16(b[SFATHeaderSizeOffset:]),
		FileCount:      order.U16(b[SFATFileCountOffset:]),
		HashMultiplier: order.U32(b[SFATHashMultiplierOffset:]),
	}
	if hdr.HeaderSize != SFATHeaderSize {
		return FATHeader{}, fmt.Errorf("sfat header: %w: header size 0x%x", ErrBadFieldValue, hdr.HeaderSize)
	}
	return hdr, nil
}

// FNTHeader is the SFNT header preceding the name table.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 +0x00   4    'S' 'F' 'N' 'T'
//	 +0x04   2    Header size (0x08)
//	 +0x06   2    Reserved
type FNTHeader struct {
	HeaderSize uint16
}

// ParseFNTHeader validates and extracts the SFNT header at offset off, which
// varies with the file count.
func ParseFNTHeader(b []byte, off int, order buf.Order) (FNTHeader, error) {
	sig, ok := buf.Slice(b, off, SFNTHeaderSize)
	if !ok {
		return FNTHeader{}, fmt.Errorf("sfnt header: %w", ErrTruncated)
	}
	if !bytes.Equal(sig[:SignatureSize], SFNTSignature) {
		return FNTHeader{}, fmt.Errorf("sfnt header: %w", ErrSignatureMismatch)
	}
	hdr := FNTHeader{HeaderSize: order.U16(sig[SFNTHeaderSizeRelOffset:])}
	if hdr.HeaderSize != SFNTHeaderSize {
		return FNTHeader{}, fmt.Errorf("sfnt header: %w: header size 0x%x", ErrBadFieldValue, hdr.HeaderSize)
	}
	return hdr, nil
}
