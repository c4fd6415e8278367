package sarc

import "fmt"

// FileData returns the payload of the first entry whose name exactly equals
// name, scanning in table order. Matching is case-sensitive with no
// normalization; archives may carry duplicate names, and the first match is
// authoritative. Returns ErrNameNotFound when no entry matches.
func (a *Archive) FileData(name string) ([]byte, error) {
	for i := range a.files {
		if a.files[i].Named && a.files[i].Name == name {
			return a.files[i].Data, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNameNotFound, name)
}

// Get returns the first entry named name, with the same first-match
// semantics as FileData.
func (a *Archive) Get(name string) (File, bool) {
	for i := range a.files {
		if a.files[i].Named && a.files[i].Name == name {
			return a.files[i], true
		}
	}
	return File{}, false
}

// FileAt returns the entry at the zero-based table-order index i. Returns
// ErrIndexOutOfRange when i is at or beyond the file count.
func (a *Archive) FileAt(i uint16) (File, error) {
	if int(i) >= len(a.files) {
		return File{}, fmt.Errorf("%w: index %d, file count %d", ErrIndexOutOfRange, i, len(a.files))
	}
	return a.files[i], nil
}

// FileDataAt returns the payload of the entry at index i.
func (a *Archive) FileDataAt(i uint16) ([]byte, error) {
	f, err := a.FileAt(i)
	if err != nil {
		return nil, err
	}
	return f.Data, nil
}

// FileNameAt returns the name of the entry at index i. Hash-only entries
// report an empty name; use FileAt when the distinction matters.
func (a *Archive) FileNameAt(i uint16) (string, error) {
	f, err := a.FileAt(i)
	if err != nil {
		return "", err
	}
	return f.Name, nil
}
