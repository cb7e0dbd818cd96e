package cpu

// CPU memory and registers.
type CPU struct {
	// A is the accumulator.
	A uint8
	// X and Y are the index registers.
	X uint8
	Y uint8
	// SP is the stack pointer. The stack lives in page 1, so the
	// effective stack address is always 0x0100|SP.
	SP uint8
	// PC is the program counter.
	PC uint16
	// SR is the status register.
	SR uint8

	// Memory. Always 64KB; code, data, stack and the vector table
	// all live in this one array.
	Mem []byte

	// AllowIllegal makes undocumented opcodes execute as NOPs
	// instead of stopping the machine with ErrIllegalOpcode.
	AllowIllegal bool
}

// Status register flags.
const (
	// SRC is carry
	SRC = 1 << 0
	// SRZ is zero
	SRZ = 1 << 1
	// SRI is interrupt disable
	SRI = 1 << 2
	// SRD is decimal mode
	SRD = 1 << 3
	// SRB is break
	SRB = 1 << 4
	// SRU is unused and always reads as set
	SRU = 1 << 5
	// SRV is overflow
	SRV = 1 << 6
	// SRN is negative
	SRN = 1 << 7
)

// Memory map constants.
const (
	// StackBase is the bottom of the stack page.
	StackBase = 0x0100
	// NMIVector holds the non-maskable interrupt handler address.
	NMIVector = 0xFFFA
	// ResetVector holds the power-on program counter.
	ResetVector = 0xFFFC
	// IRQVector holds the IRQ/BRK handler address.
	IRQVector = 0xFFFE
)

// MemSize is the full 6502 address space.
const MemSize = 1 << 16

// New creates a new CPU instance with zeroed registers and memory.
func New() *CPU {
	return &CPU{
		Mem: make([]byte, MemSize),
	}
}

// Boot initialises the stack pointer and status register to their
// post-reset values and loads the program counter from the reset
// vector. The caller must populate memory (including the vector)
// first; Step has no notion of an unbooted machine.
func (c *CPU) Boot() {
	c.SP = 0xFD
	c.SR = SRU | SRI
	c.PC = c.ReadWord(ResetVector)
}

// LoadCode copies a program image to the specified address and points
// the reset vector at it, unless the image itself reaches into the
// vector table.
func (c *CPU) LoadCode(addr uint16, code []byte) {
	c.LoadImage(addr, code)
	if uint32(addr)+uint32(len(code)) <= ResetVector {
		c.WriteWord(ResetVector, addr)
	}
}

// LoadImage copies a memory image to the specified address without
// touching the vectors. Images longer than the remaining address
// space wrap around to address 0.
func (c *CPU) LoadImage(addr uint16, data []byte) {
	for i, b := range data {
		c.Mem[(uint32(addr)+uint32(i))&0xFFFF] = b
	}
}
