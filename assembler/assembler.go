package assembler

import (
	"fmt"
	"strings"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols map[string]int64
	labels  map[string]uint16
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{
		symbols: make(map[string]int64),
		labels:  make(map[string]uint16),
	}
}

// Assemble takes 6502 assembly code and returns the machine code,
// with the first emitted byte located at baseAddress.
func (asm *Assembler) Assemble(src string, baseAddress uint16) ([]byte, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	nodes, err := asm.parseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	// Pass: resolve label addresses and node sizes until stable.
	// Forward-referenced labels size as absolute on the first sweep
	// and may shrink to zero page once known, so iterate.
	for {
		pc := baseAddress
		changed := false
		for _, n := range nodes {
			if n.Type == NodeLabel {
				if addr, ok := asm.labels[n.Label]; !ok || addr != pc {
					asm.labels[n.Label] = pc
					changed = true
				}
				continue
			}
			if n.Type == NodeDirective && isOrg(n) {
				addr, err := asm.parseConstant(n.Parts[1])
				if err != nil {
					return nil, err
				}
				pc = uint16(addr)
				continue
			}

			oldSize := n.Size
			size, err := asm.nodeSize(n, pc)
			if err != nil {
				return nil, fmt.Errorf("line %d: error calculating size for '%v': %w", n.Line, n.Parts, err)
			}
			if oldSize != size {
				changed = true
			}
			n.Size = size
			pc += size
		}
		if !changed {
			break
		}
	}

	// Generate machine code.
	var machineCode []byte
	pc := baseAddress
	for _, n := range nodes {
		var code []byte
		var err error

		switch n.Type {
		case NodeLabel:
			// Labels do not emit code.
			continue
		case NodeDirective:
			if isOrg(n) {
				addr, _ := asm.parseConstant(n.Parts[1])
				pc = uint16(addr)
				continue
			}
			code, err = asm.generateDirectiveCode(n)
		case NodeInstruction:
			code, err = asm.generateInstructionCode(n, pc)
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: error generating code for '%v': %w", n.Line, n.Parts, err)
		}
		machineCode = append(machineCode, code...)
		pc += n.Size
	}

	return machineCode, nil
}

// nodeSize returns the byte size a node will occupy.
func (asm *Assembler) nodeSize(n *Node, pc uint16) (uint16, error) {
	switch n.Type {
	case NodeDirective:
		return asm.getDirectiveSize(n)
	case NodeInstruction:
		mode, _, err := asm.chooseMode(n, pc)
		if err != nil {
			return 0, err
		}
		return 1 + mode.OperandLength(), nil
	}
	return 0, nil
}

// parseLines converts raw source lines into a slice of Node objects.
func (asm *Assembler) parseLines(lines []string) ([]*Node, error) {
	var nodes []*Node
	for i, line := range lines {
		if commentIndex := strings.IndexRune(line, ';'); commentIndex != -1 {
			line = line[:commentIndex]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			label := strings.TrimSpace(parts[0])
			if !strings.ContainsAny(label, " \t") {
				nodes = append(nodes, &Node{Type: NodeLabel, Label: strings.ToLower(label), Parts: []string{label + ":"}, Line: i + 1})
				line = strings.TrimSpace(parts[1])
			}
		}

		if line == "" {
			continue
		}

		var mnemonic, operandStr string
		firstSpace := strings.IndexAny(line, " \t")
		if firstSpace == -1 {
			mnemonic = line
		} else {
			mnemonic = line[:firstSpace]
			operandStr = strings.TrimSpace(line[firstSpace:])
		}

		// Symbol definition: "name equ value".
		if fields := strings.Fields(operandStr); len(fields) == 2 && strings.EqualFold(fields[0], "equ") {
			val, err := asm.parseConstant(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad equ value: %w", i+1, err)
			}
			asm.symbols[strings.ToLower(mnemonic)] = val
			continue
		}

		nodeParts := []string{mnemonic}
		if operandStr != "" {
			nodeParts = append(nodeParts, operandStr)
		}

		directiveCheck := strings.TrimPrefix(strings.ToLower(mnemonic), ".")
		switch directiveCheck {
		case "dc.b", "dc.w", "ds.b", "org":
			nodes = append(nodes, &Node{Type: NodeDirective, Parts: nodeParts, Line: i + 1})
			continue
		}

		name := strings.ToLower(mnemonic)
		if !knownMnemonic(name) {
			return nil, fmt.Errorf("line %d: unknown instruction: %s", i+1, name)
		}

		op, err := parseOperand(operandStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		nodes = append(nodes, &Node{Type: NodeInstruction, Mnemonic: name, Operand: op, Parts: nodeParts, Line: i + 1})
	}
	return nodes, nil
}

func isOrg(n *Node) bool {
	return len(n.Parts) > 1 && strings.TrimPrefix(strings.ToLower(n.Parts[0]), ".") == "org"
}
