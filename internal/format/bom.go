package format

import (
	"fmt"

	"github.com/packfile/sarckit/internal/buf"
)

// DetectOrder decodes the two-byte byte-order mark found at
// SARCByteOrderOffset. The mark is the value 0xFEFF written in the producing
// platform's native order, so the byte sequence itself identifies that order:
//
//	FE FF  big-endian
//	FF FE  little-endian
//
// Any other sequence is rejected.
func DetectOrder(bom []byte) (buf.Order, error) {
	if len(bom) < 2 {
		return 0, fmt.Errorf("byte-order mark: %w", ErrTruncated)
	}
	switch {
	case bom[0] == 0xFE && bom[1] == 0xFF:
		return buf.BigEndian, nil
	case bom[0] == 0xFF && bom[1] == 0xFE:
		return buf.LittleEndian, nil
	default:
		return 0, fmt.Errorf("%w: % x", ErrBadByteOrderMark, bom[:2])
	}
}
