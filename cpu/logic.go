package cpu

// opAND handles AND (bitwise AND with accumulator).
func (c *CPU) opAND(inst *DecodedInstruction) error {
	c.A &= c.Operand(inst)
	c.setNZ(c.A)
	return nil
}

// opORA handles ORA (bitwise OR with accumulator).
func (c *CPU) opORA(inst *DecodedInstruction) error {
	c.A |= c.Operand(inst)
	c.setNZ(c.A)
	return nil
}

// opEOR handles EOR (bitwise exclusive OR with accumulator).
func (c *CPU) opEOR(inst *DecodedInstruction) error {
	c.A ^= c.Operand(inst)
	c.setNZ(c.A)
	return nil
}

// opBIT handles BIT (bit test). Z comes from A AND the operand; N and
// V are copied straight from bits 7 and 6 of the operand itself.
func (c *CPU) opBIT(inst *DecodedInstruction) error {
	v := c.Operand(inst)
	c.setFlag(SRZ, c.A&v == 0)
	c.setFlag(SRN, v&0x80 != 0)
	c.setFlag(SRV, v&0x40 != 0)
	return nil
}

// opASL handles ASL (arithmetic shift left). The bit shifted out
// lands in the carry flag.
func (c *CPU) opASL(inst *DecodedInstruction) error {
	v := c.Operand(inst)
	c.setFlag(SRC, v&0x80 != 0)
	v <<= 1
	c.WriteOperand(inst, v)
	c.setNZ(v)
	return nil
}

// opLSR handles LSR (logical shift right).
func (c *CPU) opLSR(inst *DecodedInstruction) error {
	v := c.Operand(inst)
	c.setFlag(SRC, v&0x01 != 0)
	v >>= 1
	c.WriteOperand(inst, v)
	c.setNZ(v)
	return nil
}

// opROL handles ROL (rotate left through carry).
func (c *CPU) opROL(inst *DecodedInstruction) error {
	v := c.Operand(inst)
	out := v&0x80 != 0
	v <<= 1
	if c.getFlag(SRC) {
		v |= 0x01
	}
	c.setFlag(SRC, out)
	c.WriteOperand(inst, v)
	c.setNZ(v)
	return nil
}

// opROR handles ROR (rotate right through carry).
func (c *CPU) opROR(inst *DecodedInstruction) error {
	v := c.Operand(inst)
	out := v&0x01 != 0
	v >>= 1
	if c.getFlag(SRC) {
		v |= 0x80
	}
	c.setFlag(SRC, out)
	c.WriteOperand(inst, v)
	c.setNZ(v)
	return nil
}
