package assembler_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Urethramancer/m6502/assembler"
)

// Assembles source and checks against an expected byte sequence (in
// hex). Automatically validates output length and content.
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	asm := assembler.New()
	code, err := asm.Assemble(src, 0x0200)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if len(code) != len(expected) {
		t.Fatalf("[%s] expected %d bytes, got %d\nexpected: % X\ngot:      % X",
			name, len(expected), len(code), expected, code)
	}
	for i := range code {
		if code[i] != expected[i] {
			t.Errorf("[%s] mismatch at byte %d\nexpected: % X\ngot:      % X",
				name, i, expected, code)
			break
		}
	}
}

// Core instruction encodings
func TestBasicEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"LDA_Immediate", "lda #$42", "A9 42"},
		{"LDA_ZeroPage", "lda $10", "A5 10"},
		{"LDA_ZeroPageX", "lda $10,x", "B5 10"},
		{"LDA_Absolute", "lda $1234", "AD 34 12"},
		{"LDA_AbsoluteX", "lda $1234,x", "BD 34 12"},
		{"LDA_AbsoluteY", "lda $1234,y", "B9 34 12"},
		{"LDA_IndirectX", "lda ($20,x)", "A1 20"},
		{"LDA_IndirectY", "lda ($20),y", "B1 20"},
		{"LDX_ZeroPageY", "ldx $10,y", "B6 10"},
		{"STA_Absolute", "sta $0300", "8D 00 03"},
		{"JMP_Indirect", "jmp ($1000)", "6C 00 10"},
		{"JMP_Absolute", "jmp $1234", "4C 34 12"},
		{"ASL_Accumulator", "asl a", "0A"},
		{"ASL_Bare", "asl", "0A"},
		{"ASL_ZeroPage", "asl $10", "06 10"},
		{"RTS", "rts", "60"},
		{"NOP", "nop", "EA"},
		{"BRK", "brk", "00"},
		{"CPX_Immediate", "cpx #$05", "E0 05"},
		{"Immediate_Decimal", "lda #65", "A9 41"},
		{"Immediate_Binary", "lda #%10000001", "A9 81"},
		{"Immediate_Char", "lda #'A'", "A9 41"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestLabelsAndBranches(t *testing.T) {
	src := `
start:	ldx #$05
loop:	dex
	bne loop
	rts
`
	assembleAndMatchHex(t, "CountdownLoop", src, "A2 05 CA D0 FD 60")
}

func TestForwardBranch(t *testing.T) {
	src := `
	lda #$00
	beq done
	nop
done:	rts
`
	assembleAndMatchHex(t, "ForwardBranch", src, "A9 00 F0 01 EA 60")
}

func TestJumpToLabel(t *testing.T) {
	src := `
start:	nop
	jmp start
`
	assembleAndMatchHex(t, "JumpToLabel", src, "EA 4C 00 02")
}

func TestSubroutineCall(t *testing.T) {
	src := `
	jsr sub
	brk
sub:	lda #$01
	rts
`
	assembleAndMatchHex(t, "SubroutineCall", src, "20 04 02 00 A9 01 60")
}

func TestEquSymbols(t *testing.T) {
	src := `
value	equ $42
ptr	equ $20
	lda #value
	sta ptr
`
	assembleAndMatchHex(t, "EquSymbols", src, "A9 42 85 20")
}

func TestDirectives_Encodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		// dc.b — byte order preserved
		{"DCB", "dc.b $11,$22,$33", "11 22 33"},
		// dc.w — each word stored little-endian
		{"DCW", "dc.w $1122,$3344", "22 11 44 33"},
		// Strings are written naturally (ASCII order)
		{"DCB_String", "dc.b 'ABCD',$00", "41 42 43 44 00"},
		// Mixed ASCII + bytes in correct order
		{"MixedDCB", "dc.b 'A',$42,'B','C',$00", "41 42 42 43 00"},
		// ds.b — filled with zeros
		{"DSB", "ds.b 4", "00 00 00 00"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestDCWWithLabel(t *testing.T) {
	// A vector table entry referring back to a code label.
	src := `
entry:	rts
	dc.w entry
`
	assembleAndMatchHex(t, "DCWLabel", src, "60 00 02")
}

func TestOrgMovesLabels(t *testing.T) {
	src := `
	org $0300
entry:	nop
	jmp entry
`
	assembleAndMatchHex(t, "OrgMovesLabels", src, "EA 4C 00 03")
}

func TestComments(t *testing.T) {
	src := `
; full line comment
	lda #$01 ; trailing comment
* star comment
	rts
`
	assembleAndMatchHex(t, "Comments", src, "A9 01 60")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"UnknownInstruction", "frob $10"},
		{"UndefinedLabel", "jmp nowhere"},
		{"NoXIndexingForLDX", "ldx $10,x"},
		{"ImmediateTooBig", "lda #$1234"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			asm := assembler.New()
			if _, err := asm.Assemble(tc.src, 0x0200); err == nil {
				t.Errorf("expected error for:\n%s", tc.src)
			}
		})
	}
}
