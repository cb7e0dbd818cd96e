package cpu

import "fmt"

// Resolve computes the effective operand address for a decoded
// instruction from the bytes following the opcode at PC. It reads
// memory but never writes, and never moves PC; the PC advance is
// committed by Step after the handler runs.
//
// All address arithmetic wraps: zero-page indexing stays within page
// 0, absolute indexing wraps modulo 64K.
func (c *CPU) Resolve(inst *DecodedInstruction) error {
	switch inst.Mode {
	case ModeImplied, ModeAccumulator:
		// No operand to resolve.
		return nil

	case ModeImmediate:
		// The operand is the literal byte after the opcode.
		inst.Addr = c.PC + 1

	case ModeZeroPage:
		inst.Addr = uint16(c.Read(c.PC + 1))

	case ModeZeroPageX:
		inst.Addr = uint16(c.Read(c.PC+1) + c.X)

	case ModeZeroPageY:
		inst.Addr = uint16(c.Read(c.PC+1) + c.Y)

	case ModeRelative:
		// Signed offset from the address of the next instruction.
		offset := int8(c.Read(c.PC + 1))
		inst.Addr = c.PC + 2 + uint16(int16(offset))

	case ModeAbsolute:
		inst.Addr = c.ReadWord(c.PC + 1)

	case ModeAbsoluteX:
		inst.Addr = c.ReadWord(c.PC+1) + uint16(c.X)

	case ModeAbsoluteY:
		inst.Addr = c.ReadWord(c.PC+1) + uint16(c.Y)

	case ModeIndirect:
		// JMP only. The hardware fetches the high pointer byte from
		// the start of the same page when the pointer sits on a page
		// boundary; this quirk is load-bearing for real programs, so
		// it is reproduced here.
		ptr := c.ReadWord(c.PC + 1)
		inst.Addr = c.ReadWordBug(ptr)

	case ModeIndirectX:
		zp := c.Read(c.PC+1) + c.X
		inst.Addr = uint16(c.Read(uint16(zp))) | uint16(c.Read(uint16(zp+1)))<<8

	case ModeIndirectY:
		zp := c.Read(c.PC + 1)
		base := uint16(c.Read(uint16(zp))) | uint16(c.Read(uint16(zp+1)))<<8
		inst.Addr = base + uint16(c.Y)

	default:
		return fmt.Errorf("unimplemented addressing mode %d", inst.Mode)
	}
	return nil
}

// Operand reads the instruction's operand byte: the accumulator for
// accumulator mode, memory at the effective address otherwise.
func (c *CPU) Operand(inst *DecodedInstruction) uint8 {
	if inst.Mode == ModeAccumulator {
		return c.A
	}
	return c.Read(inst.Addr)
}

// WriteOperand stores a byte back to the instruction's operand
// location. Used by read-modify-write operations (shifts, INC/DEC).
func (c *CPU) WriteOperand(inst *DecodedInstruction, v uint8) {
	if inst.Mode == ModeAccumulator {
		c.A = v
		return
	}
	c.Write(inst.Addr, v)
}
