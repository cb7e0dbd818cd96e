package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Urethramancer/m6502/cpu"
	"github.com/Urethramancer/m6502/disassembler"
)

// runInteractive single-steps the CPU, reading one key per command
// from a raw-mode terminal.
//
//	space, enter  execute one instruction
//	r             dump registers
//	z             dump the zero page
//	s             dump the stack page
//	q, ctrl-c     quit
func runInteractive(c *cpu.CPU) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	out("Single-step mode. space=step r=registers z=zero page s=stack q=quit")
	showNext(c)

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return fmt.Errorf("stdin read failed: %w", err)
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case ' ', '\r', '\n':
			if err := c.Step(); err != nil {
				out("Execution error: %v", err)
				return nil
			}
			showNext(c)
		case 'r':
			var b bytes.Buffer
			c.DumpRegisters(&b)
			out("%s", b.String())
		case 'z':
			var b bytes.Buffer
			c.DumpPage(&b, 0x00)
			out("%s", b.String())
		case 's':
			var b bytes.Buffer
			c.DumpPage(&b, 0x01)
			out("%s", b.String())
		case 'q', 0x03:
			return nil
		}
	}
}

// out prints with explicit carriage returns, which raw mode needs.
func out(format string, args ...any) {
	s := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	for _, line := range strings.Split(s, "\n") {
		fmt.Print(line + "\r\n")
	}
}

// showNext disassembles the instruction the CPU will execute next.
func showNext(c *cpu.CPU) {
	inst := disassembler.DecodeOne(c.Mem[c.PC:], 0, c.PC)
	text := inst.Mnemonic
	if operands := disassembler.FormatOperands(inst); operands != "" {
		text += " " + operands
	}
	out("$%04X: %s", c.PC, text)
}
