package cpu

import "testing"

// resolveAt decodes and resolves the instruction at addr without
// executing it.
func resolveAt(t *testing.T, c *CPU, addr uint16) *DecodedInstruction {
	t.Helper()
	c.PC = addr
	inst, err := c.Decode(c.Read(addr))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := c.Resolve(inst); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return inst
}

func TestAddressingModes(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*CPU)
		code     []uint8
		wantAddr uint16
		wantLen  uint16
	}{
		{
			name:     "Immediate",
			code:     []uint8{0xA9, 0x42}, // lda #$42
			wantAddr: 0x0201,
			wantLen:  2,
		},
		{
			name:     "ZeroPage",
			code:     []uint8{0xA5, 0x42}, // lda $42
			wantAddr: 0x0042,
			wantLen:  2,
		},
		{
			name:     "ZeroPageX",
			setup:    func(c *CPU) { c.X = 0x0F },
			code:     []uint8{0xB5, 0x40}, // lda $40,x
			wantAddr: 0x004F,
			wantLen:  2,
		},
		{
			// Index wrap stays inside page 0, never reaching page 1.
			name:     "ZeroPageXWraps",
			setup:    func(c *CPU) { c.X = 0x02 },
			code:     []uint8{0xB5, 0xFF}, // lda $ff,x
			wantAddr: 0x0001,
			wantLen:  2,
		},
		{
			name:     "ZeroPageYWraps",
			setup:    func(c *CPU) { c.Y = 0x10 },
			code:     []uint8{0xB6, 0xF8}, // ldx $f8,y
			wantAddr: 0x0008,
			wantLen:  2,
		},
		{
			name:     "Absolute",
			code:     []uint8{0xAD, 0x34, 0x12}, // lda $1234
			wantAddr: 0x1234,
			wantLen:  3,
		},
		{
			name:     "AbsoluteXPageCross",
			setup:    func(c *CPU) { c.X = 0x01 },
			code:     []uint8{0xBD, 0xFF, 0x12}, // lda $12ff,x
			wantAddr: 0x1300,
			wantLen:  3,
		},
		{
			name:     "AbsoluteYWrapsTopOfMemory",
			setup:    func(c *CPU) { c.Y = 0x10 },
			code:     []uint8{0xB9, 0xF8, 0xFF}, // lda $fff8,y
			wantAddr: 0x0008,
			wantLen:  3,
		},
		{
			name: "Indirect",
			setup: func(c *CPU) {
				c.WriteWord(0x1000, 0x4080)
			},
			code:     []uint8{0x6C, 0x00, 0x10}, // jmp ($1000)
			wantAddr: 0x4080,
			wantLen:  3,
		},
		{
			// The pointer's high byte comes from the start of the
			// same page when the pointer sits at $xxFF.
			name: "IndirectPageBoundaryBug",
			setup: func(c *CPU) {
				c.Mem[0x10FF] = 0x80
				c.Mem[0x1000] = 0x40
				c.Mem[0x1100] = 0x99
			},
			code:     []uint8{0x6C, 0xFF, 0x10}, // jmp ($10ff)
			wantAddr: 0x4080,
			wantLen:  3,
		},
		{
			name: "IndirectX",
			setup: func(c *CPU) {
				c.X = 0x04
				c.Mem[0x0024] = 0x80
				c.Mem[0x0025] = 0x40
			},
			code:     []uint8{0xA1, 0x20}, // lda ($20,x)
			wantAddr: 0x4080,
			wantLen:  2,
		},
		{
			// The pointer fetch wraps within page 0 both for the
			// index addition and for the high pointer byte.
			name: "IndirectXPointerWraps",
			setup: func(c *CPU) {
				c.X = 0x01
				c.Mem[0x00FF] = 0x80
				c.Mem[0x0000] = 0x40
			},
			code:     []uint8{0xA1, 0xFE}, // lda ($fe,x)
			wantAddr: 0x4080,
			wantLen:  2,
		},
		{
			name: "IndirectY",
			setup: func(c *CPU) {
				c.Y = 0x10
				c.Mem[0x0020] = 0x80
				c.Mem[0x0021] = 0x40
			},
			code:     []uint8{0xB1, 0x20}, // lda ($20),y
			wantAddr: 0x4090,
			wantLen:  2,
		},
		{
			name: "IndirectYPointerHighByteWraps",
			setup: func(c *CPU) {
				c.Y = 0x00
				c.Mem[0x00FF] = 0x80
				c.Mem[0x0000] = 0x40
			},
			code:     []uint8{0xB1, 0xFF}, // lda ($ff),y
			wantAddr: 0x4080,
			wantLen:  2,
		},
		{
			name:     "RelativeForward",
			code:     []uint8{0xD0, 0x10}, // bne +16
			wantAddr: 0x0212,
			wantLen:  2,
		},
		{
			name:     "RelativeBackward",
			code:     []uint8{0xD0, 0xFE}, // bne -2 (self)
			wantAddr: 0x0200,
			wantLen:  2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.LoadImage(0x0200, tc.code)
			if tc.setup != nil {
				tc.setup(c)
			}
			inst := resolveAt(t, c, 0x0200)
			if inst.Addr != tc.wantAddr {
				t.Errorf("effective address = $%04X, want $%04X", inst.Addr, tc.wantAddr)
			}
			if inst.Length != tc.wantLen {
				t.Errorf("length = %d, want %d", inst.Length, tc.wantLen)
			}
		})
	}
}

func TestAccumulatorOperand(t *testing.T) {
	c := New()
	c.LoadImage(0x0200, []uint8{0x0A}) // asl a
	c.A = 0x21
	inst := resolveAt(t, c, 0x0200)
	if got := c.Operand(inst); got != 0x21 {
		t.Errorf("operand = $%02X, want $21", got)
	}
	c.WriteOperand(inst, 0x42)
	if c.A != 0x42 {
		t.Errorf("A = $%02X, want $42 after WriteOperand", c.A)
	}
}
