package assembler

import (
	"fmt"
	"strings"
)

// getDirectiveSize calculates the byte size of a directive for the
// sizing pass.
func (asm *Assembler) getDirectiveSize(n *Node) (uint16, error) {
	dir := strings.TrimPrefix(strings.ToLower(n.Parts[0]), ".")

	switch dir {
	case "org":
		return 0, nil

	case "dc.b", "dc.w":
		if len(n.Parts) < 2 {
			return 0, fmt.Errorf("%s requires at least one value", n.Parts[0])
		}
		values := strings.Join(n.Parts[1:], " ")
		return asm.calculateDcSize(dir, values)

	case "ds.b":
		if len(n.Parts) != 2 {
			return 0, fmt.Errorf("%s requires a single count argument", n.Parts[0])
		}
		count, err := asm.parseConstant(n.Parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid count for %s: %w", n.Parts[0], err)
		}
		return uint16(count), nil

	default:
		return 0, fmt.Errorf("unknown directive: %s", n.Parts[0])
	}
}

// generateDirectiveCode generates the binary data for assembler
// directives.
func (asm *Assembler) generateDirectiveCode(n *Node) ([]byte, error) {
	dir := strings.TrimPrefix(strings.ToLower(n.Parts[0]), ".")

	switch dir {
	case "org":
		return nil, nil

	case "dc.b", "dc.w":
		if len(n.Parts) < 2 {
			return nil, fmt.Errorf("%s requires at least one value", n.Parts[0])
		}
		values := strings.Join(n.Parts[1:], " ")
		return asm.assembleDc(dir, values)

	case "ds.b":
		if len(n.Parts) != 2 {
			return nil, fmt.Errorf("%s requires a single count argument", n.Parts[0])
		}
		count, err := asm.parseConstant(n.Parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid count for %s: %w", n.Parts[0], err)
		}
		return make([]byte, count), nil

	default:
		return nil, fmt.Errorf("unknown directive: %s", n.Parts[0])
	}
}

// calculateDcSize determines the byte size of a dc directive's data.
func (asm *Assembler) calculateDcSize(directive, values string) (uint16, error) {
	elementSize := getElementSize(directive)
	var size uint16

	for _, tok := range splitDcValues(values) {
		if tok.Quoted {
			size += uint16(len(tok.Value))
		} else {
			size += elementSize
		}
	}
	return size, nil
}

// assembleDc generates data for dc.b and dc.w. Words are stored in
// the 6502's little-endian byte order; quoted strings are written in
// natural order.
func (asm *Assembler) assembleDc(directive, values string) ([]byte, error) {
	elementSize := getElementSize(directive)
	var out []byte

	for _, tok := range splitDcValues(values) {
		if tok.Quoted {
			out = append(out, []byte(tok.Value)...)
			continue
		}

		val, err := asm.parseConstantOrLabel(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid constant '%s': %w", tok.Value, err)
		}

		switch elementSize {
		case 1:
			out = append(out, byte(val))
		case 2:
			out = append(out, byte(val), byte(val>>8))
		}
	}
	return out, nil
}

// parseConstantOrLabel resolves a dc value, allowing label references
// so vector tables can be built with dc.w.
func (asm *Assembler) parseConstantOrLabel(s string) (int64, error) {
	if addr, ok := asm.labels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return int64(addr), nil
	}
	return asm.parseConstant(s)
}

// dcToken is one comma-separated element of a dc directive.
type dcToken struct {
	Value  string
	Quoted bool
}

// splitDcValues handles mixed quoted strings and numbers correctly.
func splitDcValues(s string) []dcToken {
	var tokens []dcToken
	inQuote := false
	var quoteChar rune
	var cur strings.Builder
	for _, c := range s {
		switch c {
		case '\'', '"':
			if inQuote && c == quoteChar {
				tokens = append(tokens, dcToken{Value: cur.String(), Quoted: true})
				cur.Reset()
				inQuote = false
			} else if !inQuote {
				inQuote = true
				quoteChar = c
			} else {
				cur.WriteRune(c)
			}
		case ',':
			if !inQuote {
				if val := strings.TrimSpace(cur.String()); val != "" {
					tokens = append(tokens, dcToken{Value: val})
				}
				cur.Reset()
			} else {
				cur.WriteRune(c)
			}
		default:
			cur.WriteRune(c)
		}
	}
	if val := strings.TrimSpace(cur.String()); val != "" && !inQuote {
		tokens = append(tokens, dcToken{Value: val})
	}
	return tokens
}

// getElementSize returns element size in bytes for data directives.
func getElementSize(directive string) uint16 {
	switch strings.TrimPrefix(strings.ToLower(directive), ".") {
	case "dc.w":
		return 2
	default:
		return 1
	}
}
