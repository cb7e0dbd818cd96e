package assembler

import (
	"fmt"

	"github.com/Urethramancer/m6502/cpu"
)

// The encoder is driven by the cpu package's opcode table, so the
// assembler can never emit an encoding the engine will not execute.

type opcodeKey struct {
	name string
	mode cpu.Mode
}

var (
	opcodeIndex = make(map[opcodeKey]uint8)
	mnemonics   = make(map[string]bool)
)

func init() {
	for op := 0; op < 256; op++ {
		def, ok := cpu.Lookup(uint8(op))
		if !ok {
			continue
		}
		opcodeIndex[opcodeKey{def.Name, def.Mode}] = uint8(op)
		mnemonics[def.Name] = true
	}
}

// opcodeFor returns the opcode byte for a mnemonic/mode pair.
func opcodeFor(name string, mode cpu.Mode) (uint8, bool) {
	op, ok := opcodeIndex[opcodeKey{name, mode}]
	return op, ok
}

// knownMnemonic reports whether a mnemonic exists in the opcode table.
func knownMnemonic(name string) bool {
	return mnemonics[name]
}

// chooseMode picks the addressing mode for an instruction node. The
// operand's syntactic form narrows the choice; the mnemonic and the
// resolved value settle zero page versus absolute and address versus
// branch target. Unresolved labels assemble as absolute so sizes
// stay stable for forward references.
func (asm *Assembler) chooseMode(n *Node, pc uint16) (cpu.Mode, int64, error) {
	val, known := asm.resolve(n.Operand)

	switch n.Operand.Form {
	case FormNone:
		if _, ok := opcodeFor(n.Mnemonic, cpu.ModeImplied); ok {
			return cpu.ModeImplied, 0, nil
		}
		// Shifts may be written without the explicit "a".
		if _, ok := opcodeFor(n.Mnemonic, cpu.ModeAccumulator); ok {
			return cpu.ModeAccumulator, 0, nil
		}
		return 0, 0, fmt.Errorf("%s requires an operand", n.Mnemonic)

	case FormAccumulator:
		return cpu.ModeAccumulator, 0, nil

	case FormImmediate:
		return cpu.ModeImmediate, val, nil

	case FormIndirect:
		return cpu.ModeIndirect, val, nil

	case FormIndirectX:
		return cpu.ModeIndirectX, val, nil

	case FormIndirectY:
		return cpu.ModeIndirectY, val, nil

	case FormAddress:
		if _, ok := opcodeFor(n.Mnemonic, cpu.ModeRelative); ok {
			return cpu.ModeRelative, val, nil
		}
		if mode, ok := asm.zeroPageFit(n.Mnemonic, cpu.ModeZeroPage, val, known); ok {
			return mode, val, nil
		}
		return cpu.ModeAbsolute, val, nil

	case FormAddressX:
		if mode, ok := asm.zeroPageFit(n.Mnemonic, cpu.ModeZeroPageX, val, known); ok {
			return mode, val, nil
		}
		return cpu.ModeAbsoluteX, val, nil

	case FormAddressY:
		if mode, ok := asm.zeroPageFit(n.Mnemonic, cpu.ModeZeroPageY, val, known); ok {
			return mode, val, nil
		}
		return cpu.ModeAbsoluteY, val, nil
	}
	return 0, 0, fmt.Errorf("unknown operand form for %s", n.Mnemonic)
}

// zeroPageFit reports whether a resolved address fits in page 0 and
// the mnemonic has a zero-page encoding for the given mode.
func (asm *Assembler) zeroPageFit(name string, mode cpu.Mode, val int64, known bool) (cpu.Mode, bool) {
	if !known || val < 0 || val > 0xFF {
		return 0, false
	}
	if _, ok := opcodeFor(name, mode); !ok {
		return 0, false
	}
	return mode, true
}

// generateInstructionCode encodes one instruction at the given
// address.
func (asm *Assembler) generateInstructionCode(n *Node, pc uint16) ([]byte, error) {
	if n.Operand.Label != "" {
		if _, ok := asm.resolve(n.Operand); !ok {
			return nil, fmt.Errorf("undefined label: %s", n.Operand.Label)
		}
	}

	mode, val, err := asm.chooseMode(n, pc)
	if err != nil {
		return nil, err
	}

	opcode, ok := opcodeFor(n.Mnemonic, mode)
	if !ok {
		return nil, fmt.Errorf("%s does not support %s addressing", n.Mnemonic, mode)
	}

	out := []byte{opcode}
	switch mode.OperandLength() {
	case 0:
		// Opcode only.
	case 1:
		if mode == cpu.ModeRelative {
			offset := val - int64(pc) - 2
			if offset < -128 || offset > 127 {
				return nil, fmt.Errorf("branch target out of range: %d bytes", offset)
			}
			out = append(out, byte(int8(offset)))
			break
		}
		if val < -128 || val > 0xFF {
			return nil, fmt.Errorf("operand out of byte range: %d", val)
		}
		out = append(out, byte(val))
	case 2:
		if val < 0 || val > 0xFFFF {
			return nil, fmt.Errorf("operand out of address range: %d", val)
		}
		out = append(out, byte(val), byte(val>>8))
	}
	return out, nil
}
