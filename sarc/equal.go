package sarc

import "bytes"

// fileKey is an entry's identity for file-set comparison: its name when one
// is present, otherwise its stored name hash.
type fileKey struct {
	named bool
	name  string
	hash  uint32
}

func keyOf(f File) fileKey {
	if f.Named {
		return fileKey{named: true, name: f.Name}
	}
	return fileKey{hash: f.Hash}
}

// FilesEqual reports whether a and other hold the same file set: equal
// multisets of (name, payload) pairs, compared byte for byte. Table order,
// byte order, and alignment metadata do not participate, so two archives
// repacked with different physical layouts compare equal.
func (a *Archive) FilesEqual(other *Archive) bool {
	if len(a.files) != len(other.files) {
		return false
	}

	remaining := make(map[fileKey][][]byte, len(a.files))
	for _, f := range a.files {
		k := keyOf(f)
		remaining[k] = append(remaining[k], f.Data)
	}

	for _, f := range other.files {
		k := keyOf(f)
		candidates := remaining[k]
		matched := -1
		for i, payload := range candidates {
			if bytes.Equal(payload, f.Data) {
				matched = i
				break
			}
		}
		if matched < 0 {
			return false
		}
		candidates[matched] = candidates[len(candidates)-1]
		remaining[k] = candidates[:len(candidates)-1]
	}
	return true
}
