package cpu

// Hardware interrupt entry points. These are host-facing: the
// emulated program triggers interrupts only through BRK, but a host
// wiring up peripherals can assert these between Steps.

// interrupt pushes the return address and status and vectors to the
// handler address stored at vector.
func (c *CPU) interrupt(vector uint16) {
	c.pushWord(c.PC)
	c.push(c.SR&^SRB | SRU)
	c.setFlag(SRI, true)
	c.PC = c.ReadWord(vector)
}

// IRQ services a maskable interrupt request. It is ignored while the
// interrupt disable flag is set. Returns true if the interrupt was
// taken.
func (c *CPU) IRQ() bool {
	if c.getFlag(SRI) {
		return false
	}
	c.interrupt(IRQVector)
	return true
}

// NMI services a non-maskable interrupt. It cannot be ignored.
func (c *CPU) NMI() {
	c.interrupt(NMIVector)
}
