package lc3

// trap dispatches a TRAP instruction's low-byte vector to the matching
// host service. R7 has already been set to the post-fetch PC by the
// caller, per the architectural contract.
func (in *Interpreter) trap(vector uint16) error {
	term := in.Mem.term

	switch vector {
	case TrapGETC:
		b, err := term.ReadByte()
		if err != nil {
			return err
		}
		in.Reg[R0] = uint16(b)
		in.Reg.UpdateFlags(R0)

	case TrapOUT:
		if err := term.WriteByte(byte(in.Reg[R0] & 0xFF)); err != nil {
			return err
		}
		return term.Flush()

	case TrapPUTS:
		addr := in.Reg[R0]
		for {
			w := in.Mem.Read(addr)
			if w == 0 {
				break
			}
			if err := term.WriteByte(byte(w & 0xFF)); err != nil {
				return err
			}
			addr++
		}
		return term.Flush()

	case TrapIN:
		for _, c := range "Enter a character: " {
			if err := term.WriteByte(byte(c)); err != nil {
				return err
			}
		}
		if err := term.Flush(); err != nil {
			return err
		}
		b, err := term.ReadByte()
		if err != nil {
			return err
		}
		if err := term.WriteByte(b); err != nil {
			return err
		}
		in.Reg[R0] = uint16(b)
		in.Reg.UpdateFlags(R0)
		return term.Flush()

	case TrapPUTSP:
		addr := in.Reg[R0]
		for {
			w := in.Mem.Read(addr)
			if w == 0 {
				break
			}
			lo := byte(w & 0xFF)
			if err := term.WriteByte(lo); err != nil {
				return err
			}
			if hi := byte(w >> 8); hi != 0 {
				if err := term.WriteByte(hi); err != nil {
					return err
				}
			}
			addr++
		}
		return term.Flush()

	case TrapHALT:
		for _, c := range "HALT\n" {
			if err := term.WriteByte(byte(c)); err != nil {
				return err
			}
		}
		if err := term.Flush(); err != nil {
			return err
		}
		return ErrHalted

	default:
		return &FaultError{Err: ErrUnknownTrap, PC: in.Reg[RPC]}
	}

	return nil
}
