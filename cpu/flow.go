package cpu

// Control flow: jumps, subroutines, branches, software interrupts and
// the flag set/clear instructions. Every handler that writes PC marks
// the instruction as jumped so Step skips the default advance.

// opJMP handles JMP. The indirect form has already been resolved,
// page-boundary defect included, by the addressing resolver.
func (c *CPU) opJMP(inst *DecodedInstruction) error {
	c.PC = inst.Addr
	inst.Jumped = true
	return nil
}

// opJSR handles JSR (jump to subroutine). The hardware pushes the
// address of the last byte of the JSR instruction; RTS adds the one
// back.
func (c *CPU) opJSR(inst *DecodedInstruction) error {
	c.pushWord(c.PC + 2)
	c.PC = inst.Addr
	inst.Jumped = true
	return nil
}

// opRTS handles RTS (return from subroutine).
func (c *CPU) opRTS(inst *DecodedInstruction) error {
	c.PC = c.pullWord() + 1
	inst.Jumped = true
	return nil
}

// branchIf takes the branch when the condition holds. An untaken
// branch falls through to the default two-byte advance.
func (c *CPU) branchIf(inst *DecodedInstruction, cond bool) {
	if cond {
		c.PC = inst.Addr
		inst.Jumped = true
	}
}

// opBCC handles BCC (branch if carry clear).
func (c *CPU) opBCC(inst *DecodedInstruction) error {
	c.branchIf(inst, !c.getFlag(SRC))
	return nil
}

// opBCS handles BCS (branch if carry set).
func (c *CPU) opBCS(inst *DecodedInstruction) error {
	c.branchIf(inst, c.getFlag(SRC))
	return nil
}

// opBEQ handles BEQ (branch if equal).
func (c *CPU) opBEQ(inst *DecodedInstruction) error {
	c.branchIf(inst, c.getFlag(SRZ))
	return nil
}

// opBNE handles BNE (branch if not equal).
func (c *CPU) opBNE(inst *DecodedInstruction) error {
	c.branchIf(inst, !c.getFlag(SRZ))
	return nil
}

// opBMI handles BMI (branch if minus).
func (c *CPU) opBMI(inst *DecodedInstruction) error {
	c.branchIf(inst, c.getFlag(SRN))
	return nil
}

// opBPL handles BPL (branch if plus).
func (c *CPU) opBPL(inst *DecodedInstruction) error {
	c.branchIf(inst, !c.getFlag(SRN))
	return nil
}

// opBVS handles BVS (branch if overflow set).
func (c *CPU) opBVS(inst *DecodedInstruction) error {
	c.branchIf(inst, c.getFlag(SRV))
	return nil
}

// opBVC handles BVC (branch if overflow clear).
func (c *CPU) opBVC(inst *DecodedInstruction) error {
	c.branchIf(inst, !c.getFlag(SRV))
	return nil
}

// opBRK handles BRK (software interrupt). BRK is a one-byte opcode
// but pushes the address two bytes past itself, leaving a padding
// byte after the instruction. The pushed status copy has the break
// bit set; the live status register never does.
func (c *CPU) opBRK(inst *DecodedInstruction) error {
	c.pushWord(c.PC + 2)
	c.push(c.SR | SRB | SRU)
	c.setFlag(SRI, true)
	c.PC = c.ReadWord(IRQVector)
	inst.Jumped = true
	return nil
}

// opRTI handles RTI (return from interrupt). Unlike RTS the popped
// address is used as is, with no increment.
func (c *CPU) opRTI(inst *DecodedInstruction) error {
	c.SR = c.pull()&^SRB | SRU
	c.PC = c.pullWord()
	inst.Jumped = true
	return nil
}

// opCLC handles CLC (clear carry).
func (c *CPU) opCLC(inst *DecodedInstruction) error {
	c.setFlag(SRC, false)
	return nil
}

// opSEC handles SEC (set carry).
func (c *CPU) opSEC(inst *DecodedInstruction) error {
	c.setFlag(SRC, true)
	return nil
}

// opCLI handles CLI (clear interrupt disable).
func (c *CPU) opCLI(inst *DecodedInstruction) error {
	c.setFlag(SRI, false)
	return nil
}

// opSEI handles SEI (set interrupt disable).
func (c *CPU) opSEI(inst *DecodedInstruction) error {
	c.setFlag(SRI, true)
	return nil
}

// opCLV handles CLV (clear overflow). There is no matching set
// instruction; only arithmetic and BIT set V.
func (c *CPU) opCLV(inst *DecodedInstruction) error {
	c.setFlag(SRV, false)
	return nil
}

// opCLD handles CLD (clear decimal mode).
func (c *CPU) opCLD(inst *DecodedInstruction) error {
	c.setFlag(SRD, false)
	return nil
}

// opSED handles SED (set decimal mode).
func (c *CPU) opSED(inst *DecodedInstruction) error {
	c.setFlag(SRD, true)
	return nil
}

// opNOP does nothing, completely.
func (c *CPU) opNOP(inst *DecodedInstruction) error {
	return nil
}
