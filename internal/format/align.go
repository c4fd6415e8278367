package format

// Alignment utilities for the SARC container. Names in the name table are
// padded to 4-byte boundaries, and file payloads are padded within the data
// section to whatever boundary the packer chose.

// AlignUp returns n aligned up to the next multiple of align, which must be
// a power of two.
//
// Example:
//
//	AlignUp(1, 4) = 4
//	AlignUp(4, 4) = 4
//	AlignUp(5, 4) = 8
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// GCD returns the greatest common divisor of a and b. GCD(0, x) = x.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LargestPow2Divisor returns the greatest power of two that divides n, or 0
// when n is 0 (every power of two divides 0).
func LargestPow2Divisor(n uint32) uint32 {
	return n & -n
}
