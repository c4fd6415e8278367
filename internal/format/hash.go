package format

// NameHash computes the SFAT hash of name under the archive's declared
// multiplier. Every known packer uses DefaultHashMultiplier, but the value
// in the SFAT header is authoritative.
func NameHash(multiplier uint32, name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*multiplier + uint32(name[i])
	}
	return h
}
