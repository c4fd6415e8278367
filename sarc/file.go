package sarc

// File is one entry in an archive's file table. Data aliases the archive's
// source buffer; it remains valid exactly as long as that buffer does.
type File struct {
	// Index is the zero-based table-order position of the entry.
	Index int

	// Name is the entry's resolved name. Some archives carry hash-only
	// entries with no name string; for those Name is empty and Named is
	// false, which distinguishes them from a legitimately empty name.
	Name  string
	Named bool

	// Hash is the name hash stored in the file table.
	Hash uint32

	// Data is the payload, a half-open view into the source buffer.
	Data []byte
}

// Files returns the archive's entries in table order. The File values share
// the archive's buffer; the returned slice is the caller's to keep.
func (a *Archive) Files() []File {
	out := make([]File, len(a.files))
	copy(out, a.files)
	return out
}
