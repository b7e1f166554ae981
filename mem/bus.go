// Package mem implements the memory-mapped address space the Cpu executes
// against: a Bus that dispatches reads and writes to whichever Device is
// mapped at a given address, plus a couple of concrete Device
// implementations (Ram, Stdout).
package mem

import "fmt"

// A Device is anything that can be mapped onto a Bus. addr passed to Read and
// Write is always local to the device's own mapping, not the Bus's global
// address space; a device mapped at (0x0200, 0x02ff) sees addr 0x00 for the
// byte the Bus knows as 0x0200.
type Device interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// a mapping associates a Device with the inclusive range of Bus addresses it
// answers for.
type mapping struct {
	lo, hi uint16
	device Device
}

func (m mapping) contains(addr uint16) bool {
	return addr >= m.lo && addr <= m.hi
}

func (m mapping) overlaps(lo, hi uint16) bool {
	return lo <= m.hi && m.lo <= hi
}

// A Bus is the central object that connects one or more Devices together,
// giving the Cpu a single uniform 16-bit address space to read and write.
// Unlike the NES's two independent buses, this Bus covers the Cpu's full
// 64 kB range; separate Bus instances are independent.
type Bus struct {
	mappings []mapping
}

// NewBus returns an empty Bus with nothing mapped.
func NewBus() *Bus {
	return &Bus{}
}

// PlugIn maps device onto the inclusive range [lo, hi]. It fails if the
// range is empty (lo > hi) or overlaps any range already mapped; in both
// cases the Bus is left unchanged.
func (b *Bus) PlugIn(lo, hi uint16, device Device) error {
	if lo > hi {
		return fmt.Errorf("mem: invalid range [%#04x, %#04x]: lo > hi", lo, hi)
	}
	for _, m := range b.mappings {
		if m.overlaps(lo, hi) {
			return fmt.Errorf("mem: range [%#04x, %#04x] overlaps existing mapping [%#04x, %#04x]", lo, hi, m.lo, m.hi)
		}
	}
	b.mappings = append(b.mappings, mapping{lo: lo, hi: hi, device: device})
	return nil
}

// Read returns the byte at addr from whichever device is mapped there, or
// 0x00 if nothing is mapped at addr.
func (b *Bus) Read(addr uint16) byte {
	if m, ok := b.find(addr); ok {
		return m.device.Read(addr - m.lo)
	}
	return 0x00
}

// Write forwards data to whichever device is mapped at addr. Writes to an
// unmapped address are silently dropped.
func (b *Bus) Write(addr uint16, data byte) {
	if m, ok := b.find(addr); ok {
		m.device.Write(addr-m.lo, data)
	}
}

func (b *Bus) find(addr uint16) (mapping, bool) {
	for _, m := range b.mappings {
		if m.contains(addr) {
			return m, true
		}
	}
	return mapping{}, false
}
