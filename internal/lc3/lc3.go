// Package lc3 implements the fetch-decode-execute core of an LC-3
// virtual machine: the 65536-word memory, the ten-register file, the
// sixteen-opcode instruction set, and the six trap service routines
// that bridge the guest to a host terminal.
package lc3

// Register indices into Registers.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RPC   /* program counter */
	RCond /* condition flags */
	RCount
)

// Opcodes, decoded from the top four bits of an instruction word.
const (
	OpBR  = iota /* branch */
	OpADD        /* add */
	OpLD         /* load */
	OpST         /* store */
	OpJSR        /* jump to subroutine (JSR/JSRR) */
	OpAND        /* bitwise and */
	OpLDR        /* load register */
	OpSTR        /* store register */
	OpRTI        /* return from interrupt (reserved) */
	OpNOT        /* bitwise not */
	OpLDI        /* load indirect */
	OpSTI        /* store indirect */
	OpJMP        /* jump */
	OpRES        /* reserved */
	OpLEA        /* load effective address */
	OpTRAP       /* system trap */
)

// Condition flags. Exactly one is set in Registers[RCond] at any time.
const (
	FlPOS uint16 = 1 << 0 /* P */
	FlZRO uint16 = 1 << 1 /* Z */
	FlNEG uint16 = 1 << 2 /* N */
)

// Trap vectors, taken from the low byte of a TRAP instruction.
const (
	TrapGETC  = 0x20 /* read a character, no echo */
	TrapOUT   = 0x21 /* write a character */
	TrapPUTS  = 0x22 /* write a word string */
	TrapIN    = 0x23 /* prompt, read and echo a character */
	TrapPUTSP = 0x24 /* write a packed byte string */
	TrapHALT  = 0x25 /* halt the machine */
)

// PCStart is the address execution begins at. NewInterpreter always
// starts here; the origins of loaded images do not change it.
const PCStart = 0x3000

// Registers holds the eight general-purpose registers plus PC and COND.
type Registers [RCount]uint16

// UpdateFlags sets RCond from the sign of Registers[reg], per the N/Z/P
// discipline in the data model.
func (r *Registers) UpdateFlags(reg uint16) {
	switch {
	case r[reg] == 0:
		r[RCond] = FlZRO
	case (r[reg] >> 15) == 1:
		r[RCond] = FlNEG
	default:
		r[RCond] = FlPOS
	}
}
