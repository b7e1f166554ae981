// Package mask provides operations to extract and manipulate ranges of bits
// from a byte.
//
// All byteIndex values are 1-indexed from the most significant bit, and ranges
// must be inclusive. BitAt and AssignBit instead take a zero-indexed position
// counted from the least significant bit.

package mask

import (
	_bits "math/bits"
)

// A byteIndex provides compile-time safety when indexing into a byte.
type byteIndex byte

const (
	I1 byteIndex = iota + 1
	I2
	I3
	I4
	I5
	I6
	I7
	I8
)

// https://pkg.go.dev/golang.org/x/text/internal/gen/bitfield
// https://cs.opensource.google/go/x/text/+/refs/tags/v0.18.0:internal/gen/bitfield/bitfield_test.go;l=16

// func checkByteIndex(n byteIndex) {
// 	// https://github.com/golang/go/issues/29649#issuecomment-454585328
// 	// https://github.com/golang/go/issues/29649#issuecomment-454820179
// 	//
// 	// Go does not allow us to model a constrained int with a type, hence
// 	// this helper func
// 	if n < 1 || n > 8 {
// 		panic("Invalid byte index provided -- must fall in the range [1,8].")
// 	}
// }

func checkByteRange(start byteIndex, end byteIndex) {
	if start > end {
		panic("Invalid range provided -- start must <= end.")
	}
}

// IsSet reports whether the bit at pos is 1.
func IsSet(b byte, pos byteIndex) bool {
	return b&(1<<(8-pos)) != 0
}

// Set ORs new bits into b, placing the highest 1 bit of bits at pos
// (1-indexed). Bits already set in b stay set.
//
// If the new bits are zero, b is returned unchanged; Unset should be used to
// clear bits.
//
// If the new bits cannot fit at the desired pos, the new bits will be
// truncated.
func Set(b byte, pos byteIndex, bits byte) byte {
	if bits == 0 {
		return b
	}
	bitlen := byte(_bits.LeadingZeros8(bits))
	bits <<= bitlen
	bits >>= pos - 1
	return b | bits
}

// Unset clears the existing bits of b in the inclusive range [start:end].
func Unset(b byte, start byteIndex, end byteIndex) byte {
	checkByteRange(start, end)
	for ; start <= end; start++ {
		// hole := byte(math.MaxUint8 - 1<<(8-start))
		hole := byte(^(1 << byte(8-start))) // a full byte, with 1 bit unset
		b &= hole
	}
	return b
}

// Word composes a 16-bit address from a high byte and a low byte, matching
// the 6502's little-endian memory layout.
func Word(hi byte, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// lsbPos converts a zero-indexed bit position counted from the least
// significant bit (lsb 0 == bit 0) into the 1-indexed, most-significant-first
// byteIndex used by IsSet/Set/Unset.
func lsbPos(lsb int) byteIndex {
	return byteIndex(8 - lsb)
}

// BitAt reports whether the bit at the given zero-indexed LSB position is
// set.
func BitAt(b byte, lsb int) bool {
	return IsSet(b, lsbPos(lsb))
}

// AssignBit sets or clears the bit at the given zero-indexed LSB position.
func AssignBit(b byte, lsb int, v bool) byte {
	pos := lsbPos(lsb)
	if v {
		return Set(b, pos, 1)
	}
	return Unset(b, pos, pos)
}
