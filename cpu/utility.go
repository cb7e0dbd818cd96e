package cpu

// Read returns the byte at the given address.
func (c *CPU) Read(addr uint16) uint8 {
	return c.Mem[addr]
}

// Write stores a byte at the given address. The whole address space
// is writable, vectors included, exactly as on the original hardware.
func (c *CPU) Write(addr uint16, v uint8) {
	c.Mem[addr] = v
}

// ReadWord reads a little-endian 16-bit word. The high byte address
// wraps modulo 64K, so a read at $FFFF takes its high byte from $0000.
func (c *CPU) ReadWord(addr uint16) uint16 {
	return uint16(c.Mem[addr]) | uint16(c.Mem[addr+1])<<8
}

// WriteWord stores a 16-bit word in little-endian order, wrapping
// modulo 64K like ReadWord.
func (c *CPU) WriteWord(addr uint16, v uint16) {
	c.Mem[addr] = uint8(v)
	c.Mem[addr+1] = uint8(v >> 8)
}

// ReadWordBug reads a 16-bit word without carrying the low address
// byte into the high one, reproducing the indirect-JMP hardware
// defect: a pointer at $xxFF takes its high byte from $xx00.
func (c *CPU) ReadWordBug(addr uint16) uint16 {
	hi := addr&0xFF00 | uint16(uint8(addr)+1)
	return uint16(c.Mem[addr]) | uint16(c.Mem[hi])<<8
}

// push stores a byte at the current stack address and moves the stack
// pointer down. The pointer wraps within page 1; there is no overflow
// detection on the hardware and none here.
func (c *CPU) push(v uint8) {
	c.Mem[StackBase|uint16(c.SP)] = v
	c.SP--
}

// pull moves the stack pointer up and returns the byte there.
func (c *CPU) pull() uint8 {
	c.SP++
	return c.Mem[StackBase|uint16(c.SP)]
}

// pushWord pushes a 16-bit value high byte first, so that it reads
// back in little-endian order from the stack page.
func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

// pullWord pops a 16-bit value pushed by pushWord.
func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// getFlag reports whether a status flag is set.
func (c *CPU) getFlag(mask uint8) bool {
	return c.SR&mask != 0
}

// setFlag sets or clears a single status flag.
func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.SR |= mask
	} else {
		c.SR &^= mask
	}
}

// setNZ updates the zero and negative flags from a result byte,
// leaving every other flag untouched.
func (c *CPU) setNZ(v uint8) {
	c.setFlag(SRZ, v == 0)
	c.setFlag(SRN, v&0x80 != 0)
}
