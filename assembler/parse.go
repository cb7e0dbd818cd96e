package assembler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Form is the syntactic shape of an operand. The final addressing
// mode also depends on the mnemonic and the resolved value: "$10"
// is zero page for lda but a relative target for bne.
type Form int

const (
	// FormNone — no operand: rts, inx
	FormNone Form = iota
	// FormAccumulator — the literal register: asl a
	FormAccumulator
	// FormImmediate — #$12
	FormImmediate
	// FormAddress — $12, $1234 or a label
	FormAddress
	// FormAddressX — $12,x or $1234,x
	FormAddressX
	// FormAddressY — $12,y or $1234,y
	FormAddressY
	// FormIndirect — ($1234)
	FormIndirect
	// FormIndirectX — ($12,x)
	FormIndirectX
	// FormIndirectY — ($12),y
	FormIndirectY
)

// Operand represents a parsed instruction operand.
type Operand struct {
	Form  Form
	Value int64
	// Label is set when the expression is a symbol to be resolved
	// against the label table.
	Label string
	Raw   string
}

var (
	reIndirectX = regexp.MustCompile(`(?i)^\((.+),x\)$`)
	reIndirectY = regexp.MustCompile(`(?i)^\((.+)\),y$`)
	reIndirect  = regexp.MustCompile(`^\((.+)\)$`)
	reIndexedX  = regexp.MustCompile(`(?i)^(.+),x$`)
	reIndexedY  = regexp.MustCompile(`(?i)^(.+),y$`)
	reLabel     = regexp.MustCompile(`(?i)^[a-z_][a-z0-9_]*$`)
)

// parseOperand converts an operand string into a structured Operand.
// Indirect forms are matched before indexed ones so that "($12),y"
// is not mistaken for an indexed expression starting with "(".
func parseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	op := Operand{Raw: s}

	if s == "" {
		op.Form = FormNone
		return op, nil
	}
	if strings.EqualFold(s, "a") {
		op.Form = FormAccumulator
		return op, nil
	}
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		op.Form = FormImmediate
		return fillExpression(op, rest)
	}
	if m := reIndirectX.FindStringSubmatch(s); m != nil {
		op.Form = FormIndirectX
		return fillExpression(op, m[1])
	}
	if m := reIndirectY.FindStringSubmatch(s); m != nil {
		op.Form = FormIndirectY
		return fillExpression(op, m[1])
	}
	if m := reIndirect.FindStringSubmatch(s); m != nil {
		op.Form = FormIndirect
		return fillExpression(op, m[1])
	}
	if m := reIndexedX.FindStringSubmatch(s); m != nil {
		op.Form = FormAddressX
		return fillExpression(op, m[1])
	}
	if m := reIndexedY.FindStringSubmatch(s); m != nil {
		op.Form = FormAddressY
		return fillExpression(op, m[1])
	}
	op.Form = FormAddress
	return fillExpression(op, s)
}

// fillExpression stores either the numeric value or the label name of
// an operand expression.
func fillExpression(op Operand, expr string) (Operand, error) {
	expr = strings.TrimSpace(expr)
	if val, err := parseNumber(expr); err == nil {
		op.Value = val
		return op, nil
	}
	if reLabel.MatchString(expr) {
		op.Label = strings.ToLower(expr)
		return op, nil
	}
	return op, fmt.Errorf("unknown operand format: %s", op.Raw)
}

// resolve returns the operand's numeric value, consulting the symbol
// and label tables for named expressions. Unknown labels resolve to
// zero during the sizing pass and are reported during generation.
func (asm *Assembler) resolve(op Operand) (int64, bool) {
	if op.Label == "" {
		return op.Value, true
	}
	if val, ok := asm.symbols[op.Label]; ok {
		return val, true
	}
	if addr, ok := asm.labels[op.Label]; ok {
		return int64(addr), true
	}
	return 0, false
}

// parseConstant converts numeric or symbolic expressions to int64.
func (asm *Assembler) parseConstant(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))

	// Character literal ('A')
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return int64(s[1]), nil
	}

	if val, ok := asm.symbols[strings.ToLower(s)]; ok {
		return val, nil
	}

	return parseNumber(s)
}

// parseNumber handles $hex, 0xhex, %binary and decimal notation.
func parseNumber(s string) (int64, error) {
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return int64(s[1]), nil
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "%"):
		s = s[1:]
		base = 2
	}

	val, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number format: %s", s)
	}
	return val, nil
}
