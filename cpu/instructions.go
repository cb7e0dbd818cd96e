package cpu

// Opdef describes one opcode byte: its mnemonic, its addressing mode
// and the handler implementing the operation. An Opdef with a nil
// Handler is an undocumented opcode.
type Opdef struct {
	Name    string
	Mode    Mode
	Handler func(*CPU, *DecodedInstruction) error
}

// Length returns the full instruction length in bytes.
func (d Opdef) Length() uint16 {
	return 1 + d.Mode.OperandLength()
}

// Opcodes is the dense opcode table, indexed directly by the opcode
// byte. All 151 documented opcodes are present; the remaining entries
// are zero and decode as illegal.
var Opcodes = [256]Opdef{
	// Arithmetic
	0x69: {"adc", ModeImmediate, (*CPU).opADC},
	0x65: {"adc", ModeZeroPage, (*CPU).opADC},
	0x75: {"adc", ModeZeroPageX, (*CPU).opADC},
	0x6D: {"adc", ModeAbsolute, (*CPU).opADC},
	0x7D: {"adc", ModeAbsoluteX, (*CPU).opADC},
	0x79: {"adc", ModeAbsoluteY, (*CPU).opADC},
	0x61: {"adc", ModeIndirectX, (*CPU).opADC},
	0x71: {"adc", ModeIndirectY, (*CPU).opADC},

	0xE9: {"sbc", ModeImmediate, (*CPU).opSBC},
	0xE5: {"sbc", ModeZeroPage, (*CPU).opSBC},
	0xF5: {"sbc", ModeZeroPageX, (*CPU).opSBC},
	0xED: {"sbc", ModeAbsolute, (*CPU).opSBC},
	0xFD: {"sbc", ModeAbsoluteX, (*CPU).opSBC},
	0xF9: {"sbc", ModeAbsoluteY, (*CPU).opSBC},
	0xE1: {"sbc", ModeIndirectX, (*CPU).opSBC},
	0xF1: {"sbc", ModeIndirectY, (*CPU).opSBC},

	// Comparisons
	0xC9: {"cmp", ModeImmediate, (*CPU).opCMP},
	0xC5: {"cmp", ModeZeroPage, (*CPU).opCMP},
	0xD5: {"cmp", ModeZeroPageX, (*CPU).opCMP},
	0xCD: {"cmp", ModeAbsolute, (*CPU).opCMP},
	0xDD: {"cmp", ModeAbsoluteX, (*CPU).opCMP},
	0xD9: {"cmp", ModeAbsoluteY, (*CPU).opCMP},
	0xC1: {"cmp", ModeIndirectX, (*CPU).opCMP},
	0xD1: {"cmp", ModeIndirectY, (*CPU).opCMP},

	0xE0: {"cpx", ModeImmediate, (*CPU).opCPX},
	0xE4: {"cpx", ModeZeroPage, (*CPU).opCPX},
	0xEC: {"cpx", ModeAbsolute, (*CPU).opCPX},

	0xC0: {"cpy", ModeImmediate, (*CPU).opCPY},
	0xC4: {"cpy", ModeZeroPage, (*CPU).opCPY},
	0xCC: {"cpy", ModeAbsolute, (*CPU).opCPY},

	// Increments and decrements
	0xE6: {"inc", ModeZeroPage, (*CPU).opINC},
	0xF6: {"inc", ModeZeroPageX, (*CPU).opINC},
	0xEE: {"inc", ModeAbsolute, (*CPU).opINC},
	0xFE: {"inc", ModeAbsoluteX, (*CPU).opINC},

	0xC6: {"dec", ModeZeroPage, (*CPU).opDEC},
	0xD6: {"dec", ModeZeroPageX, (*CPU).opDEC},
	0xCE: {"dec", ModeAbsolute, (*CPU).opDEC},
	0xDE: {"dec", ModeAbsoluteX, (*CPU).opDEC},

	0xE8: {"inx", ModeImplied, (*CPU).opINX},
	0xC8: {"iny", ModeImplied, (*CPU).opINY},
	0xCA: {"dex", ModeImplied, (*CPU).opDEX},
	0x88: {"dey", ModeImplied, (*CPU).opDEY},

	// Logical
	0x29: {"and", ModeImmediate, (*CPU).opAND},
	0x25: {"and", ModeZeroPage, (*CPU).opAND},
	0x35: {"and", ModeZeroPageX, (*CPU).opAND},
	0x2D: {"and", ModeAbsolute, (*CPU).opAND},
	0x3D: {"and", ModeAbsoluteX, (*CPU).opAND},
	0x39: {"and", ModeAbsoluteY, (*CPU).opAND},
	0x21: {"and", ModeIndirectX, (*CPU).opAND},
	0x31: {"and", ModeIndirectY, (*CPU).opAND},

	0x09: {"ora", ModeImmediate, (*CPU).opORA},
	0x05: {"ora", ModeZeroPage, (*CPU).opORA},
	0x15: {"ora", ModeZeroPageX, (*CPU).opORA},
	0x0D: {"ora", ModeAbsolute, (*CPU).opORA},
	0x1D: {"ora", ModeAbsoluteX, (*CPU).opORA},
	0x19: {"ora", ModeAbsoluteY, (*CPU).opORA},
	0x01: {"ora", ModeIndirectX, (*CPU).opORA},
	0x11: {"ora", ModeIndirectY, (*CPU).opORA},

	0x49: {"eor", ModeImmediate, (*CPU).opEOR},
	0x45: {"eor", ModeZeroPage, (*CPU).opEOR},
	0x55: {"eor", ModeZeroPageX, (*CPU).opEOR},
	0x4D: {"eor", ModeAbsolute, (*CPU).opEOR},
	0x5D: {"eor", ModeAbsoluteX, (*CPU).opEOR},
	0x59: {"eor", ModeAbsoluteY, (*CPU).opEOR},
	0x41: {"eor", ModeIndirectX, (*CPU).opEOR},
	0x51: {"eor", ModeIndirectY, (*CPU).opEOR},

	0x24: {"bit", ModeZeroPage, (*CPU).opBIT},
	0x2C: {"bit", ModeAbsolute, (*CPU).opBIT},

	// Shifts and rotates
	0x0A: {"asl", ModeAccumulator, (*CPU).opASL},
	0x06: {"asl", ModeZeroPage, (*CPU).opASL},
	0x16: {"asl", ModeZeroPageX, (*CPU).opASL},
	0x0E: {"asl", ModeAbsolute, (*CPU).opASL},
	0x1E: {"asl", ModeAbsoluteX, (*CPU).opASL},

	0x4A: {"lsr", ModeAccumulator, (*CPU).opLSR},
	0x46: {"lsr", ModeZeroPage, (*CPU).opLSR},
	0x56: {"lsr", ModeZeroPageX, (*CPU).opLSR},
	0x4E: {"lsr", ModeAbsolute, (*CPU).opLSR},
	0x5E: {"lsr", ModeAbsoluteX, (*CPU).opLSR},

	0x2A: {"rol", ModeAccumulator, (*CPU).opROL},
	0x26: {"rol", ModeZeroPage, (*CPU).opROL},
	0x36: {"rol", ModeZeroPageX, (*CPU).opROL},
	0x2E: {"rol", ModeAbsolute, (*CPU).opROL},
	0x3E: {"rol", ModeAbsoluteX, (*CPU).opROL},

	0x6A: {"ror", ModeAccumulator, (*CPU).opROR},
	0x66: {"ror", ModeZeroPage, (*CPU).opROR},
	0x76: {"ror", ModeZeroPageX, (*CPU).opROR},
	0x6E: {"ror", ModeAbsolute, (*CPU).opROR},
	0x7E: {"ror", ModeAbsoluteX, (*CPU).opROR},

	// Loads
	0xA9: {"lda", ModeImmediate, (*CPU).opLDA},
	0xA5: {"lda", ModeZeroPage, (*CPU).opLDA},
	0xB5: {"lda", ModeZeroPageX, (*CPU).opLDA},
	0xAD: {"lda", ModeAbsolute, (*CPU).opLDA},
	0xBD: {"lda", ModeAbsoluteX, (*CPU).opLDA},
	0xB9: {"lda", ModeAbsoluteY, (*CPU).opLDA},
	0xA1: {"lda", ModeIndirectX, (*CPU).opLDA},
	0xB1: {"lda", ModeIndirectY, (*CPU).opLDA},

	0xA2: {"ldx", ModeImmediate, (*CPU).opLDX},
	0xA6: {"ldx", ModeZeroPage, (*CPU).opLDX},
	0xB6: {"ldx", ModeZeroPageY, (*CPU).opLDX},
	0xAE: {"ldx", ModeAbsolute, (*CPU).opLDX},
	0xBE: {"ldx", ModeAbsoluteY, (*CPU).opLDX},

	0xA0: {"ldy", ModeImmediate, (*CPU).opLDY},
	0xA4: {"ldy", ModeZeroPage, (*CPU).opLDY},
	0xB4: {"ldy", ModeZeroPageX, (*CPU).opLDY},
	0xAC: {"ldy", ModeAbsolute, (*CPU).opLDY},
	0xBC: {"ldy", ModeAbsoluteX, (*CPU).opLDY},

	// Stores
	0x85: {"sta", ModeZeroPage, (*CPU).opSTA},
	0x95: {"sta", ModeZeroPageX, (*CPU).opSTA},
	0x8D: {"sta", ModeAbsolute, (*CPU).opSTA},
	0x9D: {"sta", ModeAbsoluteX, (*CPU).opSTA},
	0x99: {"sta", ModeAbsoluteY, (*CPU).opSTA},
	0x81: {"sta", ModeIndirectX, (*CPU).opSTA},
	0x91: {"sta", ModeIndirectY, (*CPU).opSTA},

	0x86: {"stx", ModeZeroPage, (*CPU).opSTX},
	0x96: {"stx", ModeZeroPageY, (*CPU).opSTX},
	0x8E: {"stx", ModeAbsolute, (*CPU).opSTX},

	0x84: {"sty", ModeZeroPage, (*CPU).opSTY},
	0x94: {"sty", ModeZeroPageX, (*CPU).opSTY},
	0x8C: {"sty", ModeAbsolute, (*CPU).opSTY},

	// Transfers
	0xAA: {"tax", ModeImplied, (*CPU).opTAX},
	0x8A: {"txa", ModeImplied, (*CPU).opTXA},
	0xA8: {"tay", ModeImplied, (*CPU).opTAY},
	0x98: {"tya", ModeImplied, (*CPU).opTYA},
	0xBA: {"tsx", ModeImplied, (*CPU).opTSX},
	0x9A: {"txs", ModeImplied, (*CPU).opTXS},

	// Stack operations
	0x48: {"pha", ModeImplied, (*CPU).opPHA},
	0x68: {"pla", ModeImplied, (*CPU).opPLA},
	0x08: {"php", ModeImplied, (*CPU).opPHP},
	0x28: {"plp", ModeImplied, (*CPU).opPLP},

	// Jumps and subroutines
	0x4C: {"jmp", ModeAbsolute, (*CPU).opJMP},
	0x6C: {"jmp", ModeIndirect, (*CPU).opJMP},
	0x20: {"jsr", ModeAbsolute, (*CPU).opJSR},
	0x60: {"rts", ModeImplied, (*CPU).opRTS},

	// Branches
	0x90: {"bcc", ModeRelative, (*CPU).opBCC},
	0xB0: {"bcs", ModeRelative, (*CPU).opBCS},
	0xF0: {"beq", ModeRelative, (*CPU).opBEQ},
	0xD0: {"bne", ModeRelative, (*CPU).opBNE},
	0x30: {"bmi", ModeRelative, (*CPU).opBMI},
	0x10: {"bpl", ModeRelative, (*CPU).opBPL},
	0x50: {"bvc", ModeRelative, (*CPU).opBVC},
	0x70: {"bvs", ModeRelative, (*CPU).opBVS},

	// Interrupts
	0x00: {"brk", ModeImplied, (*CPU).opBRK},
	0x40: {"rti", ModeImplied, (*CPU).opRTI},

	// Flag operations
	0x18: {"clc", ModeImplied, (*CPU).opCLC},
	0x38: {"sec", ModeImplied, (*CPU).opSEC},
	0x58: {"cli", ModeImplied, (*CPU).opCLI},
	0x78: {"sei", ModeImplied, (*CPU).opSEI},
	0xB8: {"clv", ModeImplied, (*CPU).opCLV},
	0xD8: {"cld", ModeImplied, (*CPU).opCLD},
	0xF8: {"sed", ModeImplied, (*CPU).opSED},

	0xEA: {"nop", ModeImplied, (*CPU).opNOP},
}

// Lookup returns the definition for an opcode byte. The second return
// value is false for undocumented opcodes.
func Lookup(opcode uint8) (Opdef, bool) {
	def := Opcodes[opcode]
	return def, def.Handler != nil
}
