// Package buf contains helpers for bounds-checked, endian-safe decoding
// routines.
package buf

import "encoding/binary"

// Order selects the byte order used to decode multi-byte fields. SARC
// archives declare their order per file, so decoders take an Order rather
// than hard-coding one.
type Order int

const (
	// LittleEndian decodes fields least-significant byte first.
	LittleEndian Order = iota
	// BigEndian decodes fields most-significant byte first.
	BigEndian
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// U16 reads a uint16 from b in this order. Returns 0 when b is too short.
func (o Order) U16(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	if o == BigEndian {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

// U32 reads a uint32 from b in this order. Returns 0 when b is too short.
func (o Order) U32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	if o == BigEndian {
		return binary.BigEndian.Uint32(b)
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU16 writes v to b in this order. No-op when b is too short.
func (o Order) PutU16(b []byte, v uint16) {
	if len(b) < 2 {
		return
	}
	if o == BigEndian {
		binary.BigEndian.PutUint16(b, v)
		return
	}
	binary.LittleEndian.PutUint16(b, v)
}

// PutU32 writes v to b in this order. No-op when b is too short.
func (o Order) PutU32(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}
	if o == BigEndian {
		binary.BigEndian.PutUint32(b, v)
		return
	}
	binary.LittleEndian.PutUint32(b, v)
}
