package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, 1))
	assert.True(t, IsSet(0b1101_1000, 2))
	assert.False(t, IsSet(0b1101_1000, 3))
	assert.True(t, IsSet(0b1101_1000, 4))

	assert.Equal(t, Set(0b0000_0000, 1, 0b0000_0010), byte(0b1000_0000))
	assert.Equal(t, Set(0b0000_0000, 1, 0b0000_0101), byte(0b1010_0000))
	assert.Equal(t, Set(0b0000_0000, 1, 0b0000_0111), byte(0b1110_0000))
	assert.Equal(t, Set(0b0000_0000, 2, 0b0000_0011), byte(0b0110_0000))
	assert.Equal(t, Set(0b0000_0000, 2, 0b0000_0111), byte(0b0111_0000))
	assert.Equal(t, Set(0b0000_0000, 5, 0b0000_1111), byte(0b0000_1111))
	assert.Equal(t, Set(0b0000_0000, 7, 0b0000_1000), byte(0b0000_0010))
	assert.Equal(t, Set(0b0000_0000, 7, 0b0000_1111), byte(0b0000_0011))
	assert.Equal(t, Set(0b1111_1111, 1, 0), byte(0b1111_1111))

	assert.Equal(t, Unset(0b1111_0000, 5, 8), byte(0b1111_0000))
	assert.Equal(t, Unset(0b1111_1111, 5, 8), byte(0b1111_0000))
}

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x12, 0x34), uint16(0x1234))
	assert.Equal(t, Word(0x00, 0xff), uint16(0x00ff))
	assert.Equal(t, Word(0xff, 0x00), uint16(0xff00))
}

func TestBitAt(t *testing.T) {
	assert.True(t, BitAt(0b0000_0001, 0))
	assert.False(t, BitAt(0b0000_0001, 1))
	assert.True(t, BitAt(0b1000_0000, 7))
	assert.False(t, BitAt(0b1000_0000, 0))
}

func TestAssignBit(t *testing.T) {
	assert.Equal(t, AssignBit(0, 0, true), byte(0b0000_0001))
	assert.Equal(t, AssignBit(0, 7, true), byte(0b1000_0000))
	assert.Equal(t, AssignBit(0b1111_1111, 3, false), byte(0b1111_0111))
	assert.Equal(t, AssignBit(0b1111_1111, 0, false), byte(0b1111_1110))
}
