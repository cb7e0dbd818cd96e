package cpu

// Mode is an addressing mode.
type Mode int

// Addressing modes. The operand bytes following the opcode are
// interpreted according to the mode; the instruction length is the
// opcode byte plus the mode's operand length.
const (
	// ModeImplied — no operand: CLC, RTS
	ModeImplied Mode = iota

	// ModeAccumulator — operand is the A register: ASL A
	ModeAccumulator

	// ModeImmediate — operand is the literal next byte: LDA #$10
	ModeImmediate

	// ModeZeroPage — one-byte address into page 0: LDA $42
	ModeZeroPage

	// ModeZeroPageX — zero-page address plus X, wrapping within page 0: LDA $42,X
	ModeZeroPageX

	// ModeZeroPageY — zero-page address plus Y, wrapping within page 0: LDX $42,Y
	ModeZeroPageY

	// ModeRelative — signed byte offset from the following instruction: BNE loop
	ModeRelative

	// ModeAbsolute — little-endian 16-bit address: LDA $1234
	ModeAbsolute

	// ModeAbsoluteX — absolute address plus X: LDA $1234,X
	ModeAbsoluteX

	// ModeAbsoluteY — absolute address plus Y: LDA $1234,Y
	ModeAbsoluteY

	// ModeIndirect — 16-bit pointer fetched from an absolute address, JMP only: JMP ($1234)
	ModeIndirect

	// ModeIndirectX — pointer fetched from page 0 at operand+X: LDA ($42,X)
	ModeIndirectX

	// ModeIndirectY — pointer fetched from page 0 at operand, plus Y: LDA ($42),Y
	ModeIndirectY
)

// operandLength is the number of operand bytes for each mode.
var operandLength = [...]uint16{
	ModeImplied:     0,
	ModeAccumulator: 0,
	ModeImmediate:   1,
	ModeZeroPage:    1,
	ModeZeroPageX:   1,
	ModeZeroPageY:   1,
	ModeRelative:    1,
	ModeAbsolute:    2,
	ModeAbsoluteX:   2,
	ModeAbsoluteY:   2,
	ModeIndirect:    2,
	ModeIndirectX:   1,
	ModeIndirectY:   1,
}

// OperandLength returns the number of operand bytes following the
// opcode for a mode. The full instruction length is this plus one.
func (m Mode) OperandLength() uint16 {
	return operandLength[m]
}

// HasAddress reports whether the mode resolves to a memory address.
// Implied and accumulator operands live in registers; relative
// operands resolve to a branch target rather than an operand address.
func (m Mode) HasAddress() bool {
	switch m {
	case ModeImplied, ModeAccumulator:
		return false
	}
	return true
}

var modeNames = [...]string{
	ModeImplied:     "implied",
	ModeAccumulator: "accumulator",
	ModeImmediate:   "immediate",
	ModeZeroPage:    "zeropage",
	ModeZeroPageX:   "zeropage,x",
	ModeZeroPageY:   "zeropage,y",
	ModeRelative:    "relative",
	ModeAbsolute:    "absolute",
	ModeAbsoluteX:   "absolute,x",
	ModeAbsoluteY:   "absolute,y",
	ModeIndirect:    "indirect",
	ModeIndirectX:   "(indirect,x)",
	ModeIndirectY:   "(indirect),y",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "invalid"
	}
	return modeNames[m]
}
