package lc3

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToHalt(t *testing.T, interp *Interpreter, maxSteps int) error {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if err := interp.Step(); err != nil {
			return err
		}
	}
	t.Fatalf("did not halt within %d steps", maxSteps)
	return nil
}

func TestScenarioHaltImmediately(t *testing.T) {
	term := newFakeTerminal("")
	mem := NewMemory(term)
	img := []byte{0x30, 0x00, 0xF0, 0x25}
	require.NoError(t, mem.LoadImage(bytes.NewReader(img)))

	interp := NewInterpreter(mem)
	err := runToHalt(t, interp, 10)
	assert.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, "HALT\n", term.output())
	assert.Equal(t, uint16(0x3001), interp.Reg[RPC])
}

func TestScenarioAddImmediateSetsZeroFlag(t *testing.T) {
	term := newFakeTerminal("")
	mem := NewMemory(term)
	// AND R1, R0, #0 (zeroes R1) ; ADD R0, R0, #0 (flags from R0, which
	// starts at zero like every general register) ; HALT
	img := []byte{
		0x30, 0x00,
		0x52, 0x20,
		0x10, 0x20,
		0xF0, 0x25,
	}
	require.NoError(t, mem.LoadImage(bytes.NewReader(img)))

	interp := NewInterpreter(mem)
	err := runToHalt(t, interp, 10)
	assert.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, FlZRO, interp.Reg[RCond])
	assert.Equal(t, uint16(0), interp.Reg[R1])
}

func TestScenarioPuts(t *testing.T) {
	term := newFakeTerminal("")
	mem := NewMemory(term)
	img := []byte{
		0x30, 0x00,
		0xE0, 0x02, // LEA R0, #2
		0xF0, 0x22, // TRAP PUTS
		0xF0, 0x25, // TRAP HALT
		0x00, 0x48, // 'H'
		0x00, 0x69, // 'i'
		0x00, 0x00,
	}
	require.NoError(t, mem.LoadImage(bytes.NewReader(img)))

	interp := NewInterpreter(mem)
	err := runToHalt(t, interp, 10)
	assert.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, "HiHALT\n", term.output())
}

func TestScenarioIndirectLoad(t *testing.T) {
	term := newFakeTerminal("")
	mem := NewMemory(term)
	mem.Write(0x3010, 0xBEEF)
	mem.Write(0x3005, 0x3010)
	mem.Write(0x3000, 0xA404) // LDI R2, #4

	interp := NewInterpreter(mem)
	require.NoError(t, interp.Step())
	assert.Equal(t, uint16(0xBEEF), interp.Reg[R2])
	assert.Equal(t, FlNEG, interp.Reg[RCond])
}

func TestScenarioSubroutineCallAndReturn(t *testing.T) {
	term := newFakeTerminal("")
	mem := NewMemory(term)
	mem.Write(0x3000, 0x4801) // JSR #1
	mem.Write(0x3001, 0xF025) // HALT
	mem.Write(0x3002, 0xC1C0) // RET (JMP R7)

	interp := NewInterpreter(mem)
	require.NoError(t, interp.Step()) // JSR
	haltPC := interp.Reg[R7]
	assert.Equal(t, uint16(0x3001), haltPC)

	require.NoError(t, interp.Step()) // RET
	assert.Equal(t, haltPC, interp.Reg[RPC])

	err := interp.Step() // HALT
	assert.ErrorIs(t, err, ErrHalted)
}

func TestScenarioPutspOddLength(t *testing.T) {
	term := newFakeTerminal("")
	mem := NewMemory(term)
	interp := NewInterpreter(mem)
	mem.Write(0x4000, 0x6948)
	mem.Write(0x4001, 0x0021)
	mem.Write(0x4002, 0x0000)
	interp.Reg[R0] = 0x4000
	interp.Reg[R7] = interp.Reg[RPC]

	err := interp.trap(TrapPUTSP)
	require.NoError(t, err)
	assert.Equal(t, "Hi!", term.output())
}
