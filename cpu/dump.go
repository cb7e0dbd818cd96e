package cpu

import (
	"fmt"
	"io"
)

// DumpRegisters writes the register file to w, one register per line,
// with the status flags spelled out.
func (c *CPU) DumpRegisters(w io.Writer) {
	fmt.Fprintf(w, "A:  $%02X\n", c.A)
	fmt.Fprintf(w, "X:  $%02X\n", c.X)
	fmt.Fprintf(w, "Y:  $%02X\n", c.Y)
	fmt.Fprintf(w, "SP: $%02X\n", c.SP)
	fmt.Fprintf(w, "PC: $%04X\n", c.PC)
	fmt.Fprintf(w, "SR: $%02X [%s]\n", c.SR, c.FlagString())
}

// FlagString renders the status register as NV-BDIZC, upper case for
// set flags.
func (c *CPU) FlagString() string {
	names := []struct {
		mask uint8
		ch   byte
	}{
		{SRN, 'N'}, {SRV, 'V'}, {SRU, 'U'}, {SRB, 'B'},
		{SRD, 'D'}, {SRI, 'I'}, {SRZ, 'Z'}, {SRC, 'C'},
	}
	out := make([]byte, len(names))
	for i, f := range names {
		if c.getFlag(f.mask) {
			out[i] = f.ch
		} else {
			out[i] = f.ch + 'a' - 'A'
		}
	}
	return string(out)
}

// DumpPage writes a 256-byte page of memory to w as a hex grid,
// sixteen bytes per row with the row address in the margin.
func (c *CPU) DumpPage(w io.Writer, page uint8) {
	base := uint16(page) << 8
	for row := 0; row < 16; row++ {
		fmt.Fprintf(w, "$%04X:", base+uint16(row*16))
		for col := 0; col < 16; col++ {
			fmt.Fprintf(w, " %02X", c.Mem[base+uint16(row*16+col)])
		}
		fmt.Fprintln(w)
	}
}
