package cpu

import (
	"strings"
	"testing"
)

// loadAndBoot builds a machine with the program at the given address,
// points the reset vector at it and boots.
func loadAndBoot(t *testing.T, addr uint16, code ...uint8) *CPU {
	t.Helper()
	c := New()
	c.LoadCode(addr, code)
	c.Boot()
	if c.PC != addr {
		t.Fatalf("boot PC = $%04X, want $%04X", c.PC, addr)
	}
	return c
}

// step runs n instructions, failing the test on any error.
func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
	}
}

func TestNewZeroed(t *testing.T) {
	c := New()
	if len(c.Mem) != MemSize {
		t.Fatalf("memory size = %d, want %d", len(c.Mem), MemSize)
	}
	for i, b := range c.Mem {
		if b != 0 {
			t.Fatalf("memory not zeroed at $%04X", i)
		}
	}
	if c.A != 0 || c.X != 0 || c.Y != 0 || c.SP != 0 || c.PC != 0 || c.SR != 0 {
		t.Fatal("registers not zeroed")
	}
}

func TestBoot(t *testing.T) {
	c := New()
	c.WriteWord(ResetVector, 0x0200)
	c.Boot()
	if c.PC != 0x0200 {
		t.Errorf("PC = $%04X, want $0200", c.PC)
	}
	if c.SP != 0xFD {
		t.Errorf("SP = $%02X, want $FD", c.SP)
	}
	if c.SR != SRU|SRI {
		t.Errorf("SR = $%02X, want $%02X", c.SR, SRU|SRI)
	}
}

func TestLoadCodeSetsResetVector(t *testing.T) {
	c := New()
	c.LoadCode(0x0400, []uint8{0xEA})
	if got := c.ReadWord(ResetVector); got != 0x0400 {
		t.Errorf("reset vector = $%04X, want $0400", got)
	}
}

func TestLoadCodeLeavesVectorWhenImageCoversIt(t *testing.T) {
	c := New()
	image := make([]uint8, MemSize)
	image[ResetVector] = 0x34
	image[ResetVector+1] = 0x12
	c.LoadCode(0x0000, image)
	if got := c.ReadWord(ResetVector); got != 0x1234 {
		t.Errorf("reset vector = $%04X, want $1234 from the image", got)
	}
}

func TestReadWordWrapsAtTopOfMemory(t *testing.T) {
	c := New()
	c.Mem[0xFFFF] = 0x34
	c.Mem[0x0000] = 0x12
	if got := c.ReadWord(0xFFFF); got != 0x1234 {
		t.Errorf("ReadWord($FFFF) = $%04X, want $1234", got)
	}
}

func TestWriteWordLittleEndian(t *testing.T) {
	c := New()
	c.WriteWord(0x0300, 0xABCD)
	if c.Mem[0x0300] != 0xCD || c.Mem[0x0301] != 0xAB {
		t.Errorf("bytes = %02X %02X, want CD AB", c.Mem[0x0300], c.Mem[0x0301])
	}
}

func TestReadWordBug(t *testing.T) {
	c := New()
	c.Mem[0x02FF] = 0x80
	c.Mem[0x0200] = 0x40
	c.Mem[0x0300] = 0x99 // must not be used
	if got := c.ReadWordBug(0x02FF); got != 0x4080 {
		t.Errorf("ReadWordBug($02FF) = $%04X, want $4080", got)
	}
}

func TestFlagString(t *testing.T) {
	c := New()
	c.SR = SRN | SRZ | SRU
	if got := c.FlagString(); got != "NvUbdiZc" {
		t.Errorf("FlagString = %q, want %q", got, "NvUbdiZc")
	}
}

func TestDumpRegisters(t *testing.T) {
	c := New()
	c.A = 0x42
	c.PC = 0x1234
	var sb strings.Builder
	c.DumpRegisters(&sb)
	out := sb.String()
	for _, want := range []string{"A:  $42", "PC: $1234"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpPage(t *testing.T) {
	c := New()
	c.Mem[0x0210] = 0xAB
	var sb strings.Builder
	c.DumpPage(&sb, 0x02)
	out := sb.String()
	if !strings.Contains(out, "$0210: AB") {
		t.Errorf("page dump missing marker byte:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 16 {
		t.Errorf("page dump has %d rows, want 16", lines)
	}
}
