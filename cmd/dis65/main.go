package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Urethramancer/m6502/disassembler"
)

func main() {
	addr := flag.Uint("addr", 0x0200, "address the binary is loaded at")
	out := flag.String("o", "", "output file (stdout when empty)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <inputfile>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	code, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	text, err := disassembler.Disassemble(code, uint16(*addr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(*out, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", *out)
}
