package lc3

// Interpreter fetches, decodes and executes LC-3 instructions against
// a Memory and Registers it owns exclusively for the session.
type Interpreter struct {
	Mem *Memory
	Reg Registers
	// Verbose, when set, is invoked with the raw instruction word
	// before it is executed. Used by the CLI's -v flag; nil otherwise.
	Verbose func(pc, inst uint16)
}

// NewInterpreter returns an Interpreter with COND=Z and PC=PCStart, as
// required at the start of a VM session.
func NewInterpreter(mem *Memory) *Interpreter {
	in := &Interpreter{Mem: mem}
	in.Reg[RCond] = FlZRO
	in.Reg[RPC] = PCStart
	return in
}

// Run steps the interpreter until Step returns an error, and returns
// that error: ErrHalted on normal termination, a *FaultError on a
// fault, or the terminal's error if a trap's I/O fails.
func (in *Interpreter) Run() error {
	for {
		if err := in.Step(); err != nil {
			return err
		}
	}
}

// Step fetches, decodes and executes exactly one instruction. It
// returns ErrHalted after executing a HALT trap, a *FaultError for a
// reserved opcode or unknown trap vector, the terminal's error if a
// trap's input or output fails, and nil otherwise.
func (in *Interpreter) Step() error {
	fetchPC := in.Reg[RPC]
	inst := in.Mem.Read(in.Reg[RPC])
	in.Reg[RPC]++

	if in.Verbose != nil {
		in.Verbose(fetchPC, inst)
	}

	op := inst >> 12
	switch op {
	case OpBR:
		condMask := (inst >> 9) & 0x7
		if condMask&in.Reg[RCond] != 0 {
			in.Reg[RPC] += SignExtend(inst&0x1FF, 9)
		}

	case OpADD:
		dr := (inst >> 9) & 0x7
		sr1 := (inst >> 6) & 0x7
		if (inst>>5)&0x1 != 0 {
			imm5 := SignExtend(inst&0x1F, 5)
			in.Reg[dr] = in.Reg[sr1] + imm5
		} else {
			sr2 := inst & 0x7
			in.Reg[dr] = in.Reg[sr1] + in.Reg[sr2]
		}
		in.Reg.UpdateFlags(dr)

	case OpLD:
		dr := (inst >> 9) & 0x7
		in.Reg[dr] = in.Mem.Read(in.Reg[RPC] + SignExtend(inst&0x1FF, 9))
		in.Reg.UpdateFlags(dr)

	case OpST:
		sr := (inst >> 9) & 0x7
		in.Mem.Write(in.Reg[RPC]+SignExtend(inst&0x1FF, 9), in.Reg[sr])

	case OpJSR:
		in.Reg[R7] = in.Reg[RPC]
		if (inst>>11)&0x1 != 0 {
			in.Reg[RPC] += SignExtend(inst&0x7FF, 11)
		} else {
			baseR := (inst >> 6) & 0x7
			in.Reg[RPC] = in.Reg[baseR]
		}

	case OpAND:
		dr := (inst >> 9) & 0x7
		sr1 := (inst >> 6) & 0x7
		if (inst>>5)&0x1 != 0 {
			imm5 := SignExtend(inst&0x1F, 5)
			in.Reg[dr] = in.Reg[sr1] & imm5
		} else {
			sr2 := inst & 0x7
			in.Reg[dr] = in.Reg[sr1] & in.Reg[sr2]
		}
		in.Reg.UpdateFlags(dr)

	case OpLDR:
		dr := (inst >> 9) & 0x7
		baseR := (inst >> 6) & 0x7
		in.Reg[dr] = in.Mem.Read(in.Reg[baseR] + SignExtend(inst&0x3F, 6))
		in.Reg.UpdateFlags(dr)

	case OpSTR:
		sr := (inst >> 9) & 0x7
		baseR := (inst >> 6) & 0x7
		in.Mem.Write(in.Reg[baseR]+SignExtend(inst&0x3F, 6), in.Reg[sr])

	case OpRTI:
		return &FaultError{Err: ErrReservedOpcode, PC: in.Reg[RPC]}

	case OpNOT:
		dr := (inst >> 9) & 0x7
		sr := (inst >> 6) & 0x7
		in.Reg[dr] = ^in.Reg[sr]
		in.Reg.UpdateFlags(dr)

	case OpLDI:
		dr := (inst >> 9) & 0x7
		ptr := in.Mem.Read(in.Reg[RPC] + SignExtend(inst&0x1FF, 9))
		in.Reg[dr] = in.Mem.Read(ptr)
		in.Reg.UpdateFlags(dr)

	case OpSTI:
		sr := (inst >> 9) & 0x7
		ptr := in.Mem.Read(in.Reg[RPC] + SignExtend(inst&0x1FF, 9))
		in.Mem.Write(ptr, in.Reg[sr])

	case OpJMP:
		baseR := (inst >> 6) & 0x7
		in.Reg[RPC] = in.Reg[baseR]

	case OpRES:
		return &FaultError{Err: ErrReservedOpcode, PC: in.Reg[RPC]}

	case OpLEA:
		dr := (inst >> 9) & 0x7
		in.Reg[dr] = in.Reg[RPC] + SignExtend(inst&0x1FF, 9)
		// LEA does not update flags.

	case OpTRAP:
		in.Reg[R7] = in.Reg[RPC]
		return in.trap(inst & 0xFF)
	}

	return nil
}
