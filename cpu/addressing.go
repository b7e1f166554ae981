package cpu

import (
	"m6502vm/mask"
	"m6502vm/mem"
)

// An AddressingMode tells the Cpu where to find the operand of an
// instruction. There are thirteen of them. Most can index the full 64 kB
// address space; ZeroPage and its indexed variants are confined to the
// first 256 bytes.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP only
	IndirectX
	IndirectY
	Relative // branches only
)

// An Operand is the result of resolving an AddressingMode: the effective
// address (where relevant), the byte found there, whether the effective
// address computation crossed a page boundary, and the mode itself, so an
// Instruction can tell an Accumulator target from a memory target.
type Operand struct {
	Mode      AddressingMode
	Addr      uint16
	Value     byte
	PageCross bool
}

// fetch resolves mode against bus, advancing c.ProgramCounter past however
// many operand bytes the mode consumes (zero to two).
func (c *Cpu) fetch(bus *mem.Bus, mode AddressingMode) Operand {
	switch mode {

	case Implied:
		return Operand{Mode: mode}

	case Accumulator:
		return Operand{Mode: mode, Value: c.Accumulator}

	case Immediate:
		addr := c.ProgramCounter
		c.ProgramCounter++
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case ZeroPage:
		addr := uint16(bus.Read(c.ProgramCounter))
		c.ProgramCounter++
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case ZeroPageX:
		addr := uint16(bus.Read(c.ProgramCounter)+c.X) & 0x00ff
		c.ProgramCounter++
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case ZeroPageY:
		addr := uint16(bus.Read(c.ProgramCounter)+c.Y) & 0x00ff
		c.ProgramCounter++
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case Absolute:
		addr := c.readWord(bus, c.ProgramCounter)
		c.ProgramCounter += 2
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case AbsoluteX:
		base := c.readWord(bus, c.ProgramCounter)
		c.ProgramCounter += 2
		addr := base + uint16(c.X)
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr), PageCross: pageCross(base, addr)}

	case AbsoluteY:
		base := c.readWord(bus, c.ProgramCounter)
		c.ProgramCounter += 2
		addr := base + uint16(c.Y)
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr), PageCross: pageCross(base, addr)}

	case Indirect:
		ptr := c.readWord(bus, c.ProgramCounter)
		c.ProgramCounter += 2
		lo := bus.Read(ptr)
		var hi byte
		if ptr&0x00ff == 0x00ff {
			// the original 6502's JMP (indirect) bug: the high byte is
			// fetched from the start of the same page, not the next page
			hi = bus.Read(ptr & 0xff00)
		} else {
			hi = bus.Read(ptr + 1)
		}
		addr := mask.Word(hi, lo)
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case IndirectX:
		ptr := uint16(bus.Read(c.ProgramCounter)+c.X) & 0x00ff
		c.ProgramCounter++
		lo := bus.Read(ptr)
		hi := bus.Read((ptr + 1) & 0x00ff)
		addr := mask.Word(hi, lo)
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr)}

	case IndirectY:
		ptr := uint16(bus.Read(c.ProgramCounter))
		c.ProgramCounter++
		lo := bus.Read(ptr)
		hi := bus.Read((ptr + 1) & 0x00ff)
		base := mask.Word(hi, lo)
		addr := base + uint16(c.Y)
		return Operand{Mode: mode, Addr: addr, Value: bus.Read(addr), PageCross: pageCross(base, addr)}

	case Relative:
		offset := bus.Read(c.ProgramCounter)
		c.ProgramCounter++
		pcAfter := c.ProgramCounter
		target := pcAfter + uint16(int16(int8(offset)))
		return Operand{Mode: mode, Addr: target, PageCross: pageCross(pcAfter, target)}

	default:
		return Operand{Mode: mode}
	}
}

func (c *Cpu) readWord(bus *mem.Bus, addr uint16) uint16 {
	lo := bus.Read(addr)
	hi := bus.Read(addr + 1)
	return mask.Word(hi, lo)
}

// pageCross reports whether base and addr fall in different 256-byte pages.
func pageCross(base, addr uint16) bool {
	return base&0xff00 != addr&0xff00
}
