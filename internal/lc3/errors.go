package lc3

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Step/Run when the guest executes a HALT
// trap. It is the normal termination path, not a fault.
var ErrHalted = errors.New("lc3: halted")

// Sentinels wrapped by FaultError for the two fatal conditions the
// interpreter can hit outside of HALT.
var (
	ErrReservedOpcode = errors.New("lc3: reserved opcode executed")
	ErrUnknownTrap    = errors.New("lc3: unknown trap vector")
)

// FaultError reports a fatal condition that stops the VM: a reserved
// opcode (RTI/RES) or an unrecognized trap vector. Unlike ErrHalted,
// a fault indicates a corrupted image or a privileged operation the
// VM does not implement.
type FaultError struct {
	Err error  // one of ErrReservedOpcode, ErrUnknownTrap
	PC  uint16 // PC at the moment of fault, post-fetch-increment
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s at pc=0x%04X", e.Err, e.PC)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
