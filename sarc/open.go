package sarc

import (
	"fmt"

	"github.com/packfile/sarckit/internal/mmfile"
)

// Open memory-maps the archive at path read-only and parses it. The mapping
// backs every slice the Archive hands out, so the caller must Close the
// Archive only after all derived slices are out of use.
//
// On platforms without mmap support the file is read into memory instead.
func Open(path string) (*Archive, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("sarc: open %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	a.cleanup = cleanup
	return a, nil
}

// Close releases the mapping behind an archive returned by Open. Close is a
// no-op for archives constructed with Parse, whose buffers belong to the
// caller. After Close every slice previously derived from the archive is
// invalid.
func (a *Archive) Close() error {
	if a == nil || a.cleanup == nil {
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	a.data = nil
	a.files = nil
	return err
}
