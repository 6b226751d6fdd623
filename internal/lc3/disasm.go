package lc3

import "fmt"

// Disassemble renders inst as an LC-3 assembly mnemonic. It is a pure
// formatter for the CLI's -v flag; it has no effect on VM state and
// does not constitute a debugger (no breakpoints, no stepping control).
func Disassemble(inst uint16) string {
	op := inst >> 12
	dr := (inst >> 9) & 0x7
	sr1 := (inst >> 6) & 0x7
	sr2 := inst & 0x7

	switch op {
	case OpBR:
		n, z, p := "", "", ""
		if inst&0x0800 != 0 {
			n = "n"
		}
		if inst&0x0400 != 0 {
			z = "z"
		}
		if inst&0x0200 != 0 {
			p = "p"
		}
		return fmt.Sprintf("BR%s%s%s #%d", n, z, p, int16(SignExtend(inst&0x1FF, 9)))
	case OpADD:
		if (inst>>5)&0x1 != 0 {
			return fmt.Sprintf("ADD R%d, R%d, #%d", dr, sr1, int16(SignExtend(inst&0x1F, 5)))
		}
		return fmt.Sprintf("ADD R%d, R%d, R%d", dr, sr1, sr2)
	case OpLD:
		return fmt.Sprintf("LD R%d, #%d", dr, int16(SignExtend(inst&0x1FF, 9)))
	case OpST:
		return fmt.Sprintf("ST R%d, #%d", dr, int16(SignExtend(inst&0x1FF, 9)))
	case OpJSR:
		if (inst>>11)&0x1 != 0 {
			return fmt.Sprintf("JSR #%d", int16(SignExtend(inst&0x7FF, 11)))
		}
		return fmt.Sprintf("JSRR R%d", sr1)
	case OpAND:
		if (inst>>5)&0x1 != 0 {
			return fmt.Sprintf("AND R%d, R%d, #%d", dr, sr1, int16(SignExtend(inst&0x1F, 5)))
		}
		return fmt.Sprintf("AND R%d, R%d, R%d", dr, sr1, sr2)
	case OpLDR:
		return fmt.Sprintf("LDR R%d, R%d, #%d", dr, sr1, int16(SignExtend(inst&0x3F, 6)))
	case OpSTR:
		return fmt.Sprintf("STR R%d, R%d, #%d", dr, sr1, int16(SignExtend(inst&0x3F, 6)))
	case OpRTI:
		return "RTI"
	case OpNOT:
		return fmt.Sprintf("NOT R%d, R%d", dr, sr1)
	case OpLDI:
		return fmt.Sprintf("LDI R%d, #%d", dr, int16(SignExtend(inst&0x1FF, 9)))
	case OpSTI:
		return fmt.Sprintf("STI R%d, #%d", dr, int16(SignExtend(inst&0x1FF, 9)))
	case OpJMP:
		if sr1 == R7 {
			return "RET"
		}
		return fmt.Sprintf("JMP R%d", sr1)
	case OpRES:
		return "RES"
	case OpLEA:
		return fmt.Sprintf("LEA R%d, #%d", dr, int16(SignExtend(inst&0x1FF, 9)))
	case OpTRAP:
		return fmt.Sprintf("TRAP x%02X", inst&0xFF)
	default:
		return fmt.Sprintf("?%04X", inst)
	}
}
