package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlugInRejectsOverlap(t *testing.T) {
	b := NewBus()
	assert.NoError(t, b.PlugIn(0x0000, 0x00ff, NewRam()))
	err := b.PlugIn(0x0080, 0x0100, NewRam())
	assert.Error(t, err)
}

func TestPlugInRejectsInvalidRange(t *testing.T) {
	b := NewBus()
	err := b.PlugIn(0x0100, 0x0000, NewRam())
	assert.Error(t, err)
}

func TestPlugInAcceptsAdjacentRanges(t *testing.T) {
	b := NewBus()
	assert.NoError(t, b.PlugIn(0x0000, 0x00ff, NewRam()))
	assert.NoError(t, b.PlugIn(0x0100, 0x01ff, NewRam()))
}

func TestReadWriteForwardsToMappedDevice(t *testing.T) {
	b := NewBus()
	r := NewRam()
	assert.NoError(t, b.PlugIn(0x1000, 0x1fff, r))

	b.Write(0x1005, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x1005))
	assert.Equal(t, byte(0x42), r.Read(0x0005), "device should see a local offset, not the bus address")
}

func TestUnmappedReadReturnsZero(t *testing.T) {
	b := NewBus()
	assert.Equal(t, byte(0x00), b.Read(0x4000))
}

func TestUnmappedWriteIsDropped(t *testing.T) {
	b := NewBus()
	r := NewRam()
	assert.NoError(t, b.PlugIn(0x0000, 0x00ff, r))
	b.Write(0x5000, 0xff) // outside any mapping; must not panic
	assert.Equal(t, byte(0x00), b.Read(0x5000))
}
