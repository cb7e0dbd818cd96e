package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Urethramancer/m6502/cpu"
)

func main() {
	addr := flag.Uint("addr", 0x0200, "load address for the binary")
	n := flag.Int("n", 0, "maximum number of instructions to execute (0 = no limit)")
	trace := flag.Bool("trace", false, "dump registers after every instruction")
	step := flag.Bool("step", false, "single-step interactively")
	bench := flag.Duration("bench", 0, "run for the given duration and report throughput")
	illegal := flag.Bool("illegal", false, "treat undocumented opcodes as nop instead of stopping")
	stats := flag.Bool("stats", false, "serve runtime statistics over HTTP (needs the statsview build tag)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <binary>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	code, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading binary: %v\n", err)
		os.Exit(1)
	}

	c := cpu.New()
	c.AllowIllegal = *illegal
	c.LoadCode(uint16(*addr), code)
	c.Boot()

	if *stats {
		if !statsviewAvailable() {
			fmt.Fprintln(os.Stderr, "Statistics server not compiled in; rebuild with the statsview build tag.")
			os.Exit(1)
		}
		statsviewLaunch(os.Stdout)
	}

	switch {
	case *bench > 0:
		if err := runBench(c, *bench); err != nil {
			fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
			os.Exit(1)
		}
	case *step:
		if err := runInteractive(c); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	default:
		if err := run(c, *n, *trace); err != nil {
			fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
			os.Exit(1)
		}
	}
}

// run steps the CPU until it hits an undocumented opcode, the
// instruction limit, or a brk with an unset interrupt vector.
func run(c *cpu.CPU, limit int, trace bool) error {
	for i := 0; limit == 0 || i < limit; i++ {
		if err := c.Step(); err != nil {
			c.DumpRegisters(os.Stdout)
			return err
		}
		if trace {
			c.DumpRegisters(os.Stdout)
			fmt.Println()
		}
		// A brk with no handler installed vectors to $0000; treat
		// that as a halt rather than executing page zero.
		if c.PC == 0 {
			break
		}
	}
	if !trace {
		c.DumpRegisters(os.Stdout)
	}
	return nil
}

// runBench executes as many instructions as possible within d and
// reports throughput.
func runBench(c *cpu.CPU, d time.Duration) error {
	start := time.Now()
	deadline := start.Add(d)
	var count uint64
	for time.Now().Before(deadline) {
		// Check the clock once per batch to keep the loop hot.
		for i := 0; i < 10000; i++ {
			if err := c.Step(); err != nil {
				return err
			}
			count++
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("%d instructions in %v (%.0f instructions/sec)\n",
		count, elapsed.Round(time.Millisecond), float64(count)/elapsed.Seconds())
	return nil
}
