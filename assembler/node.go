package assembler

// NodeType distinguishes the three kinds of source line.
type NodeType int

const (
	// NodeLabel marks a position in the output.
	NodeLabel NodeType = iota
	// NodeDirective is an assembler directive such as org or dc.b.
	NodeDirective
	// NodeInstruction is a CPU instruction.
	NodeInstruction
)

// Node is one parsed element of the source.
type Node struct {
	Type     NodeType
	Label    string
	Mnemonic string
	Operand  Operand
	// Parts preserves the raw tokens for error messages.
	Parts []string
	// Size is the encoded byte size, filled in by the sizing pass.
	Size uint16
	// Line is the 1-based source line.
	Line int
}
