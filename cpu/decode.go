package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode is returned by Step when the opcode byte at PC has
// no documented mapping and AllowIllegal is off.
var ErrIllegalOpcode = errors.New("illegal opcode")

// DecodedInstruction holds the transient result of decoding one
// instruction. It lives only for the duration of a single Step.
type DecodedInstruction struct {
	Handler func(*CPU, *DecodedInstruction) error
	// Opcode is the raw opcode byte.
	Opcode uint8
	// Name is the lower-case mnemonic.
	Name string
	// Mode is the addressing mode.
	Mode Mode
	// Length is the full instruction length in bytes (1-3).
	Length uint16
	// Addr is the resolved effective address. For immediate operands
	// it points at the literal byte; for relative operands it is the
	// branch target. Only valid when Mode.HasAddress() is true.
	Addr uint16
	// Jumped is set by handlers that write PC themselves, which
	// suppresses the default PC advance.
	Jumped bool
}

// Decode maps an opcode byte to its operation and addressing mode.
// Undocumented opcodes return ErrIllegalOpcode unless AllowIllegal is
// set, in which case they decode as one-byte NOPs.
func (c *CPU) Decode(opcode uint8) (*DecodedInstruction, error) {
	def, ok := Lookup(opcode)
	if !ok {
		if !c.AllowIllegal {
			return nil, fmt.Errorf("%w: $%02X", ErrIllegalOpcode, opcode)
		}
		def = Opdef{Name: "nop", Mode: ModeImplied, Handler: (*CPU).opNOP}
	}

	return &DecodedInstruction{
		Handler: def.Handler,
		Opcode:  opcode,
		Name:    def.Name,
		Mode:    def.Mode,
		Length:  def.Length(),
	}, nil
}
