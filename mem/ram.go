package mem

// Ram is a flat byte-addressable memory device, the stand-in for the 6502's
// physical RAM chip(s). It has no notion of mirroring or banking; mapping it
// onto a narrower range than its own size simply leaves the rest of the
// backing array unreachable through the Bus.
type Ram struct {
	cells [64 * 1024]byte
}

// NewRam returns a zeroed 64 kB Ram device.
func NewRam() *Ram {
	return &Ram{}
}

func (r *Ram) Read(addr uint16) byte {
	return r.cells[addr]
}

func (r *Ram) Write(addr uint16, data byte) {
	r.cells[addr] = data
}

// Load copies program into the Ram starting at addr, wrapping around the
// address space if program runs past 0xffff.
func (r *Ram) Load(program []byte, addr uint16) {
	for i, b := range program {
		r.cells[addr+uint16(i)] = b
	}
}
