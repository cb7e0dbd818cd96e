package cpu

// addWithCarry adds a value and the carry flag into the accumulator
// and sets C, V, N and Z. Carry is set when the unsigned sum exceeds
// 255; overflow when both operands share a sign the result lacks.
//
// Decimal mode is not implemented: the D flag is stored and restored
// faithfully but does not alter the arithmetic, as in the NES variant
// of the chip.
func (c *CPU) addWithCarry(v uint8) {
	var carry uint16
	if c.getFlag(SRC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := uint8(sum)

	c.setFlag(SRC, sum > 0xFF)
	c.setFlag(SRV, (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setNZ(result)
}

// opADC handles ADC (add with carry).
func (c *CPU) opADC(inst *DecodedInstruction) error {
	c.addWithCarry(c.Operand(inst))
	return nil
}

// opSBC handles SBC (subtract with borrow). Subtraction is addition
// of the operand's complement, with the carry flag acting as the
// inverted borrow.
func (c *CPU) opSBC(inst *DecodedInstruction) error {
	c.addWithCarry(^c.Operand(inst))
	return nil
}

// compare sets C, N and Z from reg-v without storing the result.
// Carry is set when the register is greater than or equal to the
// operand. The overflow flag is not touched by comparisons.
func (c *CPU) compare(reg, v uint8) {
	c.setFlag(SRC, reg >= v)
	c.setNZ(reg - v)
}

// opCMP handles CMP (compare accumulator).
func (c *CPU) opCMP(inst *DecodedInstruction) error {
	c.compare(c.A, c.Operand(inst))
	return nil
}

// opCPX handles CPX (compare X register).
func (c *CPU) opCPX(inst *DecodedInstruction) error {
	c.compare(c.X, c.Operand(inst))
	return nil
}

// opCPY handles CPY (compare Y register).
func (c *CPU) opCPY(inst *DecodedInstruction) error {
	c.compare(c.Y, c.Operand(inst))
	return nil
}

// opINC handles INC (increment memory). Wraps from $FF to $00 and
// affects only N and Z; INC never sets carry.
func (c *CPU) opINC(inst *DecodedInstruction) error {
	v := c.Operand(inst) + 1
	c.WriteOperand(inst, v)
	c.setNZ(v)
	return nil
}

// opDEC handles DEC (decrement memory).
func (c *CPU) opDEC(inst *DecodedInstruction) error {
	v := c.Operand(inst) - 1
	c.WriteOperand(inst, v)
	c.setNZ(v)
	return nil
}

// opINX handles INX (increment X).
func (c *CPU) opINX(inst *DecodedInstruction) error {
	c.X++
	c.setNZ(c.X)
	return nil
}

// opINY handles INY (increment Y).
func (c *CPU) opINY(inst *DecodedInstruction) error {
	c.Y++
	c.setNZ(c.Y)
	return nil
}

// opDEX handles DEX (decrement X).
func (c *CPU) opDEX(inst *DecodedInstruction) error {
	c.X--
	c.setNZ(c.X)
	return nil
}

// opDEY handles DEY (decrement Y).
func (c *CPU) opDEY(inst *DecodedInstruction) error {
	c.Y--
	c.setNZ(c.Y)
	return nil
}
