package cpu

import "fmt"

// Step fetches, decodes and executes a single instruction. It is the
// machine's only state transition: one call runs one instruction to
// completion and leaves the CPU ready to fetch at the new PC.
//
// A decode failure is a guest-program condition and is reported as an
// error wrapping ErrIllegalOpcode. Any other error indicates an
// engine defect and should be treated as fatal by the host.
func (c *CPU) Step() error {
	// Fetch
	opcode := c.Read(c.PC)

	// Decode
	inst, err := c.Decode(opcode)
	if err != nil {
		return fmt.Errorf("decode failed at $%04X: %w", c.PC, err)
	}

	// Resolve the operand location
	if err := c.Resolve(inst); err != nil {
		return fmt.Errorf("operand resolution failed for %s at $%04X: %w", inst.Name, c.PC, err)
	}

	// Execute
	if err := inst.Handler(c, inst); err != nil {
		return fmt.Errorf("execution failed for %s at $%04X: %w", inst.Name, c.PC, err)
	}

	// Commit the PC advance unless the handler set PC itself.
	if !inst.Jumped {
		c.PC += inst.Length
	}
	return nil
}
