package cpu

import "m6502vm/mem"

// An opcodeEntry associates a single opcode byte with the addressing mode it
// uses, the base cycle cost, whether a page-crossing read earns a bonus
// cycle, and the func that actually performs the instruction.
//
// Exec returns any cycles beyond Cycles (plus the page-cross bonus, if
// applicable) that this particular execution consumed -- nonzero only for
// the branch family, where the bonus depends on whether the branch was
// taken and, if so, whether it crossed a page.
type opcodeEntry struct {
	Name           string
	Mode           AddressingMode
	Cycles         byte
	PageCrossBonus bool
	Exec           func(c *Cpu, bus *mem.Bus, operand Operand) byte
}

// opcodes is the instruction dispatch table: one entry per implemented
// opcode byte, out of 256 possible. Bytes absent from this table -- every
// undocumented opcode, plus BRK (0x00) and RTI (0x40), which only exist to
// drive interrupt handling -- are fatal (see Cpu.Tick).
var opcodes = map[byte]opcodeEntry{
	0x69: {Name: "ADC", Mode: Immediate, Cycles: 2, Exec: adc},
	0x65: {Name: "ADC", Mode: ZeroPage, Cycles: 3, Exec: adc},
	0x75: {Name: "ADC", Mode: ZeroPageX, Cycles: 4, Exec: adc},
	0x6D: {Name: "ADC", Mode: Absolute, Cycles: 4, Exec: adc},
	0x7D: {Name: "ADC", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: adc},
	0x79: {Name: "ADC", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: adc},
	0x61: {Name: "ADC", Mode: IndirectX, Cycles: 6, Exec: adc},
	0x71: {Name: "ADC", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: adc},

	0x29: {Name: "AND", Mode: Immediate, Cycles: 2, Exec: and},
	0x25: {Name: "AND", Mode: ZeroPage, Cycles: 3, Exec: and},
	0x35: {Name: "AND", Mode: ZeroPageX, Cycles: 4, Exec: and},
	0x2D: {Name: "AND", Mode: Absolute, Cycles: 4, Exec: and},
	0x3D: {Name: "AND", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: and},
	0x39: {Name: "AND", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: and},
	0x21: {Name: "AND", Mode: IndirectX, Cycles: 6, Exec: and},
	0x31: {Name: "AND", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: and},

	0x0A: {Name: "ASL", Mode: Accumulator, Cycles: 2, Exec: asl},
	0x06: {Name: "ASL", Mode: ZeroPage, Cycles: 5, Exec: asl},
	0x16: {Name: "ASL", Mode: ZeroPageX, Cycles: 6, Exec: asl},
	0x0E: {Name: "ASL", Mode: Absolute, Cycles: 6, Exec: asl},
	0x1E: {Name: "ASL", Mode: AbsoluteX, Cycles: 7, Exec: asl},

	0x24: {Name: "BIT", Mode: ZeroPage, Cycles: 3, Exec: bit},
	0x2C: {Name: "BIT", Mode: Absolute, Cycles: 4, Exec: bit},

	0xC9: {Name: "CMP", Mode: Immediate, Cycles: 2, Exec: cmp},
	0xC5: {Name: "CMP", Mode: ZeroPage, Cycles: 3, Exec: cmp},
	0xD5: {Name: "CMP", Mode: ZeroPageX, Cycles: 4, Exec: cmp},
	0xCD: {Name: "CMP", Mode: Absolute, Cycles: 4, Exec: cmp},
	0xDD: {Name: "CMP", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: cmp},
	0xD9: {Name: "CMP", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: cmp},
	0xC1: {Name: "CMP", Mode: IndirectX, Cycles: 6, Exec: cmp},
	0xD1: {Name: "CMP", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: cmp},

	0xE0: {Name: "CPX", Mode: Immediate, Cycles: 2, Exec: cpx},
	0xE4: {Name: "CPX", Mode: ZeroPage, Cycles: 3, Exec: cpx},
	0xEC: {Name: "CPX", Mode: Absolute, Cycles: 4, Exec: cpx},

	0xC0: {Name: "CPY", Mode: Immediate, Cycles: 2, Exec: cpy},
	0xC4: {Name: "CPY", Mode: ZeroPage, Cycles: 3, Exec: cpy},
	0xCC: {Name: "CPY", Mode: Absolute, Cycles: 4, Exec: cpy},

	0xC6: {Name: "DEC", Mode: ZeroPage, Cycles: 5, Exec: dec},
	0xD6: {Name: "DEC", Mode: ZeroPageX, Cycles: 6, Exec: dec},
	0xCE: {Name: "DEC", Mode: Absolute, Cycles: 6, Exec: dec},
	0xDE: {Name: "DEC", Mode: AbsoluteX, Cycles: 7, Exec: dec},

	0xCA: {Name: "DEX", Mode: Implied, Cycles: 2, Exec: dex},
	0x88: {Name: "DEY", Mode: Implied, Cycles: 2, Exec: dey},

	0x49: {Name: "EOR", Mode: Immediate, Cycles: 2, Exec: eor},
	0x45: {Name: "EOR", Mode: ZeroPage, Cycles: 3, Exec: eor},
	0x55: {Name: "EOR", Mode: ZeroPageX, Cycles: 4, Exec: eor},
	0x4D: {Name: "EOR", Mode: Absolute, Cycles: 4, Exec: eor},
	0x5D: {Name: "EOR", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: eor},
	0x59: {Name: "EOR", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: eor},
	0x41: {Name: "EOR", Mode: IndirectX, Cycles: 6, Exec: eor},
	0x51: {Name: "EOR", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: eor},

	0xE6: {Name: "INC", Mode: ZeroPage, Cycles: 5, Exec: inc},
	0xF6: {Name: "INC", Mode: ZeroPageX, Cycles: 6, Exec: inc},
	0xEE: {Name: "INC", Mode: Absolute, Cycles: 6, Exec: inc},
	0xFE: {Name: "INC", Mode: AbsoluteX, Cycles: 7, Exec: inc},

	0xE8: {Name: "INX", Mode: Implied, Cycles: 2, Exec: inx},
	0xC8: {Name: "INY", Mode: Implied, Cycles: 2, Exec: iny},

	0x4C: {Name: "JMP", Mode: Absolute, Cycles: 3, Exec: jmp},
	0x6C: {Name: "JMP", Mode: Indirect, Cycles: 5, Exec: jmp},
	0x20: {Name: "JSR", Mode: Absolute, Cycles: 6, Exec: jsr},

	0xA9: {Name: "LDA", Mode: Immediate, Cycles: 2, Exec: lda},
	0xA5: {Name: "LDA", Mode: ZeroPage, Cycles: 3, Exec: lda},
	0xB5: {Name: "LDA", Mode: ZeroPageX, Cycles: 4, Exec: lda},
	0xAD: {Name: "LDA", Mode: Absolute, Cycles: 4, Exec: lda},
	0xBD: {Name: "LDA", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: lda},
	0xB9: {Name: "LDA", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: lda},
	0xA1: {Name: "LDA", Mode: IndirectX, Cycles: 6, Exec: lda},
	0xB1: {Name: "LDA", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: lda},

	0xA2: {Name: "LDX", Mode: Immediate, Cycles: 2, Exec: ldx},
	0xA6: {Name: "LDX", Mode: ZeroPage, Cycles: 3, Exec: ldx},
	0xB6: {Name: "LDX", Mode: ZeroPageY, Cycles: 4, Exec: ldx},
	0xAE: {Name: "LDX", Mode: Absolute, Cycles: 4, Exec: ldx},
	0xBE: {Name: "LDX", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: ldx},

	0xA0: {Name: "LDY", Mode: Immediate, Cycles: 2, Exec: ldy},
	0xA4: {Name: "LDY", Mode: ZeroPage, Cycles: 3, Exec: ldy},
	0xB4: {Name: "LDY", Mode: ZeroPageX, Cycles: 4, Exec: ldy},
	0xAC: {Name: "LDY", Mode: Absolute, Cycles: 4, Exec: ldy},
	0xBC: {Name: "LDY", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: ldy},

	0x4A: {Name: "LSR", Mode: Accumulator, Cycles: 2, Exec: lsr},
	0x46: {Name: "LSR", Mode: ZeroPage, Cycles: 5, Exec: lsr},
	0x56: {Name: "LSR", Mode: ZeroPageX, Cycles: 6, Exec: lsr},
	0x4E: {Name: "LSR", Mode: Absolute, Cycles: 6, Exec: lsr},
	0x5E: {Name: "LSR", Mode: AbsoluteX, Cycles: 7, Exec: lsr},

	0xEA: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: nop},

	0x09: {Name: "ORA", Mode: Immediate, Cycles: 2, Exec: ora},
	0x05: {Name: "ORA", Mode: ZeroPage, Cycles: 3, Exec: ora},
	0x15: {Name: "ORA", Mode: ZeroPageX, Cycles: 4, Exec: ora},
	0x0D: {Name: "ORA", Mode: Absolute, Cycles: 4, Exec: ora},
	0x1D: {Name: "ORA", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: ora},
	0x19: {Name: "ORA", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: ora},
	0x01: {Name: "ORA", Mode: IndirectX, Cycles: 6, Exec: ora},
	0x11: {Name: "ORA", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: ora},

	0x2A: {Name: "ROL", Mode: Accumulator, Cycles: 2, Exec: rol},
	0x26: {Name: "ROL", Mode: ZeroPage, Cycles: 5, Exec: rol},
	0x36: {Name: "ROL", Mode: ZeroPageX, Cycles: 6, Exec: rol},
	0x2E: {Name: "ROL", Mode: Absolute, Cycles: 6, Exec: rol},
	0x3E: {Name: "ROL", Mode: AbsoluteX, Cycles: 7, Exec: rol},

	0x6A: {Name: "ROR", Mode: Accumulator, Cycles: 2, Exec: ror},
	0x66: {Name: "ROR", Mode: ZeroPage, Cycles: 5, Exec: ror},
	0x76: {Name: "ROR", Mode: ZeroPageX, Cycles: 6, Exec: ror},
	0x6E: {Name: "ROR", Mode: Absolute, Cycles: 6, Exec: ror},
	0x7E: {Name: "ROR", Mode: AbsoluteX, Cycles: 7, Exec: ror},

	0x60: {Name: "RTS", Mode: Implied, Cycles: 6, Exec: rts},

	0xE9: {Name: "SBC", Mode: Immediate, Cycles: 2, Exec: sbc},
	0xE5: {Name: "SBC", Mode: ZeroPage, Cycles: 3, Exec: sbc},
	0xF5: {Name: "SBC", Mode: ZeroPageX, Cycles: 4, Exec: sbc},
	0xED: {Name: "SBC", Mode: Absolute, Cycles: 4, Exec: sbc},
	0xFD: {Name: "SBC", Mode: AbsoluteX, Cycles: 4, PageCrossBonus: true, Exec: sbc},
	0xF9: {Name: "SBC", Mode: AbsoluteY, Cycles: 4, PageCrossBonus: true, Exec: sbc},
	0xE1: {Name: "SBC", Mode: IndirectX, Cycles: 6, Exec: sbc},
	0xF1: {Name: "SBC", Mode: IndirectY, Cycles: 5, PageCrossBonus: true, Exec: sbc},

	0x85: {Name: "STA", Mode: ZeroPage, Cycles: 3, Exec: sta},
	0x95: {Name: "STA", Mode: ZeroPageX, Cycles: 4, Exec: sta},
	0x8D: {Name: "STA", Mode: Absolute, Cycles: 4, Exec: sta},
	0x9D: {Name: "STA", Mode: AbsoluteX, Cycles: 5, Exec: sta},
	0x99: {Name: "STA", Mode: AbsoluteY, Cycles: 5, Exec: sta},
	0x81: {Name: "STA", Mode: IndirectX, Cycles: 6, Exec: sta},
	0x91: {Name: "STA", Mode: IndirectY, Cycles: 6, Exec: sta},

	0x86: {Name: "STX", Mode: ZeroPage, Cycles: 3, Exec: stx},
	0x96: {Name: "STX", Mode: ZeroPageY, Cycles: 4, Exec: stx},
	0x8E: {Name: "STX", Mode: Absolute, Cycles: 4, Exec: stx},

	0x84: {Name: "STY", Mode: ZeroPage, Cycles: 3, Exec: sty},
	0x94: {Name: "STY", Mode: ZeroPageX, Cycles: 4, Exec: sty},
	0x8C: {Name: "STY", Mode: Absolute, Cycles: 4, Exec: sty},

	// flag clear/set
	0x18: {Name: "CLC", Mode: Implied, Cycles: 2, Exec: clc},
	0x38: {Name: "SEC", Mode: Implied, Cycles: 2, Exec: sec},
	0x58: {Name: "CLI", Mode: Implied, Cycles: 2, Exec: cli},
	0x78: {Name: "SEI", Mode: Implied, Cycles: 2, Exec: sei},
	0xB8: {Name: "CLV", Mode: Implied, Cycles: 2, Exec: clv},
	0xD8: {Name: "CLD", Mode: Implied, Cycles: 2, Exec: cld},
	0xF8: {Name: "SED", Mode: Implied, Cycles: 2, Exec: sed},

	// transfers
	0xAA: {Name: "TAX", Mode: Implied, Cycles: 2, Exec: tax},
	0x8A: {Name: "TXA", Mode: Implied, Cycles: 2, Exec: txa},
	0xA8: {Name: "TAY", Mode: Implied, Cycles: 2, Exec: tay},
	0x98: {Name: "TYA", Mode: Implied, Cycles: 2, Exec: tya},
	0x9A: {Name: "TXS", Mode: Implied, Cycles: 2, Exec: txs},
	0xBA: {Name: "TSX", Mode: Implied, Cycles: 2, Exec: tsx},

	// branches; base Cycles is 2, bumped by the Exec func itself when taken
	0x10: {Name: "BPL", Mode: Relative, Cycles: 2, Exec: bpl},
	0x30: {Name: "BMI", Mode: Relative, Cycles: 2, Exec: bmi},
	0x50: {Name: "BVC", Mode: Relative, Cycles: 2, Exec: bvc},
	0x70: {Name: "BVS", Mode: Relative, Cycles: 2, Exec: bvs},
	0x90: {Name: "BCC", Mode: Relative, Cycles: 2, Exec: bcc},
	0xB0: {Name: "BCS", Mode: Relative, Cycles: 2, Exec: bcs},
	0xD0: {Name: "BNE", Mode: Relative, Cycles: 2, Exec: bne},
	0xF0: {Name: "BEQ", Mode: Relative, Cycles: 2, Exec: beq},

	// stack
	0x48: {Name: "PHA", Mode: Implied, Cycles: 3, Exec: pha},
	0x68: {Name: "PLA", Mode: Implied, Cycles: 4, Exec: pla},
	0x08: {Name: "PHP", Mode: Implied, Cycles: 3, Exec: php},
	0x28: {Name: "PLP", Mode: Implied, Cycles: 4, Exec: plp},
}
