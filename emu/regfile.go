// Package emu provides the functional model of the control unit.
package emu

// NumRegs is the number of general-purpose registers (R0-R3).
const NumRegs = 4

// RegFile represents the register file.
// All registers are zero when the file is created.
type RegFile struct {
	// R holds the general-purpose registers R0-R3.
	R [NumRegs]float64
}

// NewRegFile creates a register file with all registers zeroed.
func NewRegFile() *RegFile {
	return &RegFile{}
}

// checkReg returns a RegisterError if reg does not name a register.
func checkReg(reg int) error {
	if reg < 0 || reg >= NumRegs {
		return RegisterError{Index: reg}
	}
	return nil
}

// ReadReg reads a register value.
func (r *RegFile) ReadReg(reg int) (float64, error) {
	if err := checkReg(reg); err != nil {
		return 0, err
	}
	return r.R[reg], nil
}

// WriteReg writes a value to a register. An invalid index leaves the
// register file untouched.
func (r *RegFile) WriteReg(reg int, value float64) error {
	if err := checkReg(reg); err != nil {
		return err
	}
	r.R[reg] = value
	return nil
}

// Snapshot returns a copy of all register values.
func (r *RegFile) Snapshot() [NumRegs]float64 {
	return r.R
}

// Reset clears all registers.
func (r *RegFile) Reset() {
	clear(r.R[:])
}
