package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6502/cpu"
)

// LabelType defines the context of a label.
type LabelType int

const (
	// JumpTarget is for a branch or jmp destination.
	JumpTarget LabelType = iota
	// SubroutineEntry is for a jsr target.
	SubroutineEntry
)

// Instruction represents a single decoded instruction at a specific
// address.
type Instruction struct {
	Address  uint16
	Bytes    []byte
	Mnemonic string
	Mode     cpu.Mode
	// Operand is the raw operand value: a byte, a little-endian word
	// or, for relative mode, the computed branch target.
	Operand uint16
	// Illegal marks a byte with no documented decoding; it renders
	// as a dc.b directive.
	Illegal bool
}

// Disassemble performs a linear sweep over a code image loaded at
// origin, then renders it with labels generated for branch and
// subroutine targets that land inside the image.
func Disassemble(code []byte, origin uint16) (string, error) {
	if len(code) == 0 {
		return "", nil
	}

	// --- Stage 1: linear sweep ---
	var instructions []Instruction
	starts := make(map[uint16]int)
	for pc := 0; pc < len(code); {
		inst := DecodeOne(code, pc, origin)
		starts[inst.Address] = len(instructions)
		instructions = append(instructions, inst)
		pc += len(inst.Bytes)
	}

	// --- Stage 2: collect label targets ---
	labelTargets := make(map[uint16]LabelType)
	for _, inst := range instructions {
		if inst.Illegal {
			continue
		}
		target, ok := controlTarget(inst)
		if !ok {
			continue
		}
		if _, inside := starts[target]; !inside {
			continue
		}
		if inst.Mnemonic == "jsr" {
			labelTargets[target] = SubroutineEntry
		} else if _, exists := labelTargets[target]; !exists {
			labelTargets[target] = JumpTarget
		}
	}

	// --- Stage 3: render ---
	var out strings.Builder
	for _, inst := range instructions {
		if labelType, exists := labelTargets[inst.Address]; exists {
			fmt.Fprintf(&out, "%s:\n", labelName(inst.Address, labelType))
		}

		operands := formatOperands(inst, labelTargets)
		if operands != "" {
			fmt.Fprintf(&out, "    %-8s %s\n", inst.Mnemonic, operands)
		} else {
			fmt.Fprintf(&out, "    %s\n", inst.Mnemonic)
		}
	}
	return out.String(), nil
}

// DecodeOne decodes the single instruction at offset pc in a code
// image loaded at origin. Undocumented opcodes and instructions
// truncated by the end of the image decode as one data byte.
func DecodeOne(code []byte, pc int, origin uint16) Instruction {
	addr := origin + uint16(pc)
	opcode := code[pc]

	def, ok := cpu.Lookup(opcode)
	if !ok || int(def.Length()) > len(code)-pc {
		return Instruction{
			Address:  addr,
			Bytes:    code[pc : pc+1],
			Mnemonic: "dc.b",
			Operand:  uint16(opcode),
			Illegal:  true,
		}
	}

	inst := Instruction{
		Address:  addr,
		Bytes:    code[pc : pc+int(def.Length())],
		Mnemonic: def.Name,
		Mode:     def.Mode,
	}

	switch def.Length() {
	case 2:
		inst.Operand = uint16(code[pc+1])
	case 3:
		inst.Operand = uint16(code[pc+1]) | uint16(code[pc+2])<<8
	}
	if def.Mode == cpu.ModeRelative {
		inst.Operand = addr + 2 + uint16(int16(int8(code[pc+1])))
	}
	return inst
}

// controlTarget returns the destination of a control-flow
// instruction, when it has a statically known one.
func controlTarget(inst Instruction) (uint16, bool) {
	switch inst.Mode {
	case cpu.ModeRelative:
		return inst.Operand, true
	case cpu.ModeAbsolute:
		if inst.Mnemonic == "jmp" || inst.Mnemonic == "jsr" {
			return inst.Operand, true
		}
	}
	return 0, false
}

// labelName renders a label for an address.
func labelName(addr uint16, lt LabelType) string {
	if lt == SubroutineEntry {
		return fmt.Sprintf("sub_%04X", addr)
	}
	return fmt.Sprintf("L_%04X", addr)
}

// FormatOperands renders the operand field of a single instruction
// in assembler syntax, without label substitution.
func FormatOperands(inst Instruction) string {
	return formatOperands(inst, nil)
}

// formatOperands renders the operand field in assembler syntax,
// substituting labels for known control-flow targets.
func formatOperands(inst Instruction, labels map[uint16]LabelType) string {
	if target, ok := controlTarget(inst); ok {
		if lt, exists := labels[target]; exists {
			return labelName(target, lt)
		}
	}

	switch inst.Mode {
	case cpu.ModeImplied:
		if inst.Illegal {
			return fmt.Sprintf("$%02X", inst.Operand)
		}
		return ""
	case cpu.ModeAccumulator:
		return "a"
	case cpu.ModeImmediate:
		return fmt.Sprintf("#$%02X", inst.Operand)
	case cpu.ModeZeroPage:
		return fmt.Sprintf("$%02X", inst.Operand)
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("$%02X,x", inst.Operand)
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("$%02X,y", inst.Operand)
	case cpu.ModeRelative:
		return fmt.Sprintf("$%04X", inst.Operand)
	case cpu.ModeAbsolute:
		return fmt.Sprintf("$%04X", inst.Operand)
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("$%04X,x", inst.Operand)
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("$%04X,y", inst.Operand)
	case cpu.ModeIndirect:
		return fmt.Sprintf("($%04X)", inst.Operand)
	case cpu.ModeIndirectX:
		return fmt.Sprintf("($%02X,x)", inst.Operand)
	case cpu.ModeIndirectY:
		return fmt.Sprintf("($%02X),y", inst.Operand)
	}
	return ""
}
