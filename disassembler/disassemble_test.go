package disassembler_test

import (
	"strings"
	"testing"

	"github.com/Urethramancer/m6502/assembler"
	"github.com/Urethramancer/m6502/disassembler"
)

// disassembleAndMatch disassembles code loaded at origin and fails
// unless the output lines match want exactly (ignoring leading and
// trailing whitespace per line).
func disassembleAndMatch(t *testing.T, code []byte, origin uint16, want []string) {
	t.Helper()
	out, err := disassembler.Disassemble(code, origin)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	var got []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			got = append(got, line)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(got), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDisassembleBasic(t *testing.T) {
	code := []byte{
		0xA9, 0x42, // lda #$42
		0x85, 0x10, // sta $10
		0x8D, 0x00, 0x30, // sta $3000
		0x0A,       // asl a
		0xEA,       // nop
		0x60,       // rts
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"lda #$42",
		"sta $10",
		"sta $3000",
		"asl a",
		"nop",
		"rts",
	})
}

func TestDisassembleAddressingModes(t *testing.T) {
	code := []byte{
		0xB5, 0x20, // lda $20,x
		0xB6, 0x20, // ldx $20,y
		0xBD, 0x00, 0x40, // lda $4000,x
		0xB9, 0x00, 0x40, // lda $4000,y
		0x6C, 0x34, 0x12, // jmp ($1234)
		0xA1, 0x40, // lda ($40,x)
		0xB1, 0x40, // lda ($40),y
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"lda $20,x",
		"ldx $20,y",
		"lda $4000,x",
		"lda $4000,y",
		"jmp ($1234)",
		"lda ($40,x)",
		"lda ($40),y",
	})
}

func TestDisassembleBranchLabel(t *testing.T) {
	code := []byte{
		0xA2, 0x05, // ldx #$05
		0xCA,       // dex
		0xD0, 0xFD, // bne back to dex
		0x60, // rts
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"ldx #$05",
		"L_0202:",
		"dex",
		"bne L_0202",
		"rts",
	})
}

func TestDisassembleSubroutineLabel(t *testing.T) {
	code := []byte{
		0x20, 0x04, 0x02, // jsr $0204
		0x00,       // brk
		0xA9, 0x01, // lda #$01
		0x60, // rts
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"jsr sub_0204",
		"brk",
		"sub_0204:",
		"lda #$01",
		"rts",
	})
}

func TestDisassembleJumpOutsideImage(t *testing.T) {
	// A jump target outside the image keeps its numeric form.
	code := []byte{
		0x4C, 0x00, 0x80, // jmp $8000
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"jmp $8000",
	})
}

func TestDisassembleUndocumentedBytes(t *testing.T) {
	code := []byte{
		0xEA,       // nop
		0x02,       // no documented decoding
		0xA9, 0x01, // lda #$01
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"nop",
		"dc.b $02",
		"lda #$01",
	})
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	// An opcode whose operand runs past the end of the image decodes
	// as data.
	code := []byte{
		0xEA, // nop
		0xAD, // lda absolute, missing both operand bytes
	}
	disassembleAndMatch(t, code, 0x0200, []string{
		"nop",
		"dc.b $AD",
	})
}

func TestDisassembleEmpty(t *testing.T) {
	out, err := disassembler.Disassemble(nil, 0x0200)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRoundTrip(t *testing.T) {
	src := `
start:
    ldx #$08
loop:
    lda $1000,x
    sta $2000,x
    dex
    bne loop
    jsr done
    brk
done:
    rts
`
	a := assembler.New()
	code, err := a.Assemble(src, 0x0200)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	out, err := disassembler.Disassemble(code, 0x0200)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}

	b, err := assembler.New().Assemble(out, 0x0200)
	if err != nil {
		t.Fatalf("reassembly failed: %v\n%s", err, out)
	}
	if len(b) != len(code) {
		t.Fatalf("round trip changed size from %d to %d", len(code), len(b))
	}
	for i := range code {
		if b[i] != code[i] {
			t.Errorf("round trip changed byte %d from $%02X to $%02X", i, code[i], b[i])
		}
	}
}
