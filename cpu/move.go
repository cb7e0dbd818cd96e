package cpu

// Loads, stores, register transfers and stack operations. Loads and
// transfers set only N and Z; stores and TXS touch no flags at all.

// opLDA handles LDA (load accumulator).
func (c *CPU) opLDA(inst *DecodedInstruction) error {
	c.A = c.Operand(inst)
	c.setNZ(c.A)
	return nil
}

// opLDX handles LDX (load X register).
func (c *CPU) opLDX(inst *DecodedInstruction) error {
	c.X = c.Operand(inst)
	c.setNZ(c.X)
	return nil
}

// opLDY handles LDY (load Y register).
func (c *CPU) opLDY(inst *DecodedInstruction) error {
	c.Y = c.Operand(inst)
	c.setNZ(c.Y)
	return nil
}

// opSTA handles STA (store accumulator).
func (c *CPU) opSTA(inst *DecodedInstruction) error {
	c.Write(inst.Addr, c.A)
	return nil
}

// opSTX handles STX (store X register).
func (c *CPU) opSTX(inst *DecodedInstruction) error {
	c.Write(inst.Addr, c.X)
	return nil
}

// opSTY handles STY (store Y register).
func (c *CPU) opSTY(inst *DecodedInstruction) error {
	c.Write(inst.Addr, c.Y)
	return nil
}

// opTAX handles TAX (transfer A to X).
func (c *CPU) opTAX(inst *DecodedInstruction) error {
	c.X = c.A
	c.setNZ(c.X)
	return nil
}

// opTXA handles TXA (transfer X to A).
func (c *CPU) opTXA(inst *DecodedInstruction) error {
	c.A = c.X
	c.setNZ(c.A)
	return nil
}

// opTAY handles TAY (transfer A to Y).
func (c *CPU) opTAY(inst *DecodedInstruction) error {
	c.Y = c.A
	c.setNZ(c.Y)
	return nil
}

// opTYA handles TYA (transfer Y to A).
func (c *CPU) opTYA(inst *DecodedInstruction) error {
	c.A = c.Y
	c.setNZ(c.A)
	return nil
}

// opTSX handles TSX (transfer stack pointer to X).
func (c *CPU) opTSX(inst *DecodedInstruction) error {
	c.X = c.SP
	c.setNZ(c.X)
	return nil
}

// opTXS handles TXS (transfer X to stack pointer). The only transfer
// that sets no flags.
func (c *CPU) opTXS(inst *DecodedInstruction) error {
	c.SP = c.X
	return nil
}

// opPHA handles PHA (push accumulator).
func (c *CPU) opPHA(inst *DecodedInstruction) error {
	c.push(c.A)
	return nil
}

// opPLA handles PLA (pull accumulator).
func (c *CPU) opPLA(inst *DecodedInstruction) error {
	c.A = c.pull()
	c.setNZ(c.A)
	return nil
}

// opPHP handles PHP (push processor status). The pushed copy always
// has the break and unused bits set, as on hardware.
func (c *CPU) opPHP(inst *DecodedInstruction) error {
	c.push(c.SR | SRB | SRU)
	return nil
}

// opPLP handles PLP (pull processor status). The break bit is
// discarded and the unused bit forced on: neither exists as real
// state in the flag byte.
func (c *CPU) opPLP(inst *DecodedInstruction) error {
	c.SR = c.pull()&^SRB | SRU
	return nil
}
