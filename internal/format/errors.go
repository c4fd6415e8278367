package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadByteOrderMark indicates the BOM field matched neither byte order.
	ErrBadByteOrderMark = errors.New("format: bad byte-order mark")
	// ErrBadFieldValue indicates a declared header field held an unsupported value.
	ErrBadFieldValue = errors.New("format: unexpected header field value")
)
