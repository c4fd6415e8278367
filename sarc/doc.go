// Package sarc provides read-only, zero-copy access to SARC archive files.
//
// # Overview
//
// SARC is a binary container used by game asset pipelines to pack a named
// set of files into a single contiguous blob. This package parses the
// container's header and file table and hands back views into the source
// buffer without copying payload data, making it suitable for tools that
// slice large archives on the hot path.
//
// # File Structure
//
// An archive consists of a fixed header, a file allocation table (SFAT), a
// name table (SFNT), and a data section:
//
//	[SARC header] [SFAT header] [entry 0..n-1] [SFNT header] [names] [data]
//
// Multi-byte fields use the byte order declared by the header's byte-order
// mark; archives produced for different platforms differ here, so both
// orders are supported and detected automatically.
//
// # Opening an Archive
//
// Archives already resident in memory are parsed with Parse:
//
//	a, err := sarc.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	payload, err := a.FileData("Actor/Pack/Enemy.sbactorpack")
//
// Files on disk can be memory-mapped instead:
//
//	a, err := sarc.Open("/path/to/Dungeon119.pack")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
// # Zero-Copy Design
//
// An Archive borrows its source buffer for its entire lifetime. Every slice
// it returns, payloads and resolved names alike, aliases that buffer. The
// caller must keep the buffer alive and unmodified while the Archive or any
// derived slice is in use. As the Archive is immutable after Parse, it is
// safe for concurrent readers without locking.
//
// # Compressed Payloads
//
// Some payloads are themselves compressed (commonly Yaz0, recognizable by a
// magic at the start of the returned slice). Decompression is deliberately
// outside this package; callers detect and apply the companion transform
// themselves.
package sarc
