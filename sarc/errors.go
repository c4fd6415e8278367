package sarc

import "errors"

var (
	// ErrMalformedHeader indicates the buffer was too short or a fixed
	// header carried a bad signature, byte-order mark, size, or version.
	ErrMalformedHeader = errors.New("sarc: malformed header")

	// ErrInvalidTable indicates the file table or name table was
	// inconsistent with the declared file count or exceeded the buffer.
	ErrInvalidTable = errors.New("sarc: invalid file table")

	// ErrNameNotFound indicates a name lookup matched no entry.
	ErrNameNotFound = errors.New("sarc: name not found")

	// ErrIndexOutOfRange indicates an index lookup at or beyond the file count.
	ErrIndexOutOfRange = errors.New("sarc: index out of range")
)
