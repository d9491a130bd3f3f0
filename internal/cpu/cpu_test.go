package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

// memMock is a flat 64K test memory recording every write, so tests
// can assert both on content and on the absence of stack traffic.
type memMock struct {
	data   [0x10000]uint8
	writes map[uint16]uint8
}

func newMemMock() *memMock {
	return &memMock{writes: make(map[uint16]uint8)}
}

func (m *memMock) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.data[addr] = data
	m.writes[addr] = data
}

func (m *memMock) set(addr uint16, data ...uint8) {
	copy(m.data[addr:], data)
}

func (m *memMock) setVector(vector uint16, target uint16) {
	m.data[vector] = uint8(target)
	m.data[vector+1] = uint8(target >> 8)
}

func (m *memMock) reset() {
	for i := range m.data {
		m.data[i] = 0
	}
	maps.Clear(m.writes)
}

func newTestCPU() (*CPU, *memMock) {
	mem := newMemMock()
	c := NewCPU(mem)
	c.pc = 0x8000
	c.p = flagU
	c.sp = 0xfd
	return c, mem
}

func TestCPU_PowerOn(t *testing.T) {
	mem := newMemMock()
	mem.setVector(resetVector, 0xfc10)

	c := NewCPU(mem)
	c.PowerOn()

	assert.Equal(t, uint16(0xfc10), c.pc, "PC from reset vector")
	assert.Equal(t, uint8(0x34), c.p, "status")
	assert.Equal(t, uint8(0xfd), c.sp, "SP")
	assert.Equal(t, uint8(0), c.a, "A")
	assert.Equal(t, uint8(0), c.x, "X")
	assert.Equal(t, uint8(0), c.y, "Y")
	assert.Equal(t, uint64(7), c.CycleCount(), "power-up cycles")
}

func TestCPU_PowerOn_AfterHistory(t *testing.T) {
	mem := newMemMock()
	mem.setVector(resetVector, 0x8000)
	mem.set(0x8000, 0xa9, 0x42) // LDA #$42

	c := NewCPU(mem)
	c.PowerOn()
	c.SetIRQ()
	_, err := c.Step()
	require.NoError(t, err)

	c.PowerOn()

	assert.Equal(t, uint16(0x8000), c.pc)
	assert.Equal(t, uint8(0x34), c.p)
	assert.Equal(t, uint8(0xfd), c.sp)
	assert.Equal(t, uint8(0), c.a)
	assert.Equal(t, uint64(7), c.CycleCount())
	assert.False(t, c.irqSignal, "pending requests dropped")
}

func TestCPU_Reset_Warm(t *testing.T) {
	c, mem := newTestCPU()
	c.a = 0x12
	c.x = 0x34
	c.y = 0x56
	c.pc = 0xbeef

	c.Reset()

	assert.Equal(t, uint8(0xfa), c.sp, "SP slides down by 3")
	assert.True(t, c.getFlag(flagI), "I forced")
	assert.Equal(t, uint8(0x12), c.a, "A untouched")
	assert.Equal(t, uint8(0x34), c.x, "X untouched")
	assert.Equal(t, uint8(0x56), c.y, "Y untouched")
	assert.Equal(t, uint16(0xbeef), c.pc, "PC untouched")
	assert.Empty(t, mem.writes, "no stack writes")
}

func TestCPU_StatusBit5Pinned(t *testing.T) {
	c, _ := newTestCPU()
	c.p = 0
	assert.NotZero(t, c.Status()&flagU)

	c.setFlag(flagC, false)
	assert.NotZero(t, c.p&flagU, "setFlag keeps bit 5 high")
}

func TestCPU_RegisterAccessors(t *testing.T) {
	c, _ := newTestCPU()

	c.SetA(0x11)
	c.SetX(0x22)
	c.SetY(0x33)
	c.SetSP(0x44)
	c.SetPC(0x5566)

	assert.Equal(t, uint8(0x11), c.A())
	assert.Equal(t, uint8(0x22), c.X())
	assert.Equal(t, uint8(0x33), c.Y())
	assert.Equal(t, uint8(0x44), c.SP())
	assert.Equal(t, uint16(0x5566), c.PC())

	c.SetStatus(0x00)
	assert.Equal(t, flagU, c.Status(), "bit 5 pinned on SetStatus")
}

func TestSetFlag(t *testing.T) {
	c, _ := newTestCPU()

	c.setFlag(flagC, true)
	assert.True(t, c.getFlag(flagC))

	c.setFlag(flagC, false)
	assert.False(t, c.getFlag(flagC))

	c.setFlag(flagC, true)
	c.setFlag(flagZ, true)
	c.setFlag(flagN, true)
	assert.True(t, c.getFlag(flagC) && c.getFlag(flagZ) && c.getFlag(flagN))
}

func TestStack_PushPop(t *testing.T) {
	c, mem := newTestCPU()

	c.stackPush8(0xab)
	assert.Equal(t, uint8(0xab), mem.data[0x01fd])
	assert.Equal(t, uint8(0xfc), c.sp)
	assert.Equal(t, uint8(0xab), c.stackPop8())
	assert.Equal(t, uint8(0xfd), c.sp)

	c.stackPush16(0x1234)
	assert.Equal(t, uint8(0x12), mem.data[0x01fd])
	assert.Equal(t, uint8(0x34), mem.data[0x01fc])
	assert.Equal(t, uint16(0x1234), c.stackPop16())
}

func TestStack_Wraparound(t *testing.T) {
	c, mem := newTestCPU()
	c.sp = 0x00

	c.stackPush8(0x77)
	assert.Equal(t, uint8(0x77), mem.data[0x0100])
	assert.Equal(t, uint8(0xff), c.sp, "SP wraps below 0")

	assert.Equal(t, uint8(0x77), c.stackPop8())
	assert.Equal(t, uint8(0x00), c.sp)
}

func TestRead16(t *testing.T) {
	c, mem := newTestCPU()
	mem.set(0x10ff, 0x55)
	mem.set(0x1100, 0x99)

	assert.Equal(t, uint16(0x9955), c.read16(0x10ff), "no wrap quirk")
	assert.Equal(t, uint16(0x9955), c.read16(0x10ff), "idempotent")
}

func TestRead16Bug(t *testing.T) {
	c, mem := newTestCPU()
	mem.set(0x10ff, 0x55)
	mem.set(0x1000, 0x7d)
	mem.set(0x1100, 0x99)

	assert.Equal(t, uint16(0x7d55), c.read16bug(0x10ff), "high byte wraps within the page")
	assert.Equal(t, uint16(0x7d55), c.read16bug(0x10ff), "idempotent")

	mem.set(0x2040, 0x11)
	mem.set(0x2041, 0x22)
	assert.Equal(t, uint16(0x2211), c.read16bug(0x2040), "plain read off the page edge")
}

func TestCPU_Step_UnknownOpcode(t *testing.T) {
	c, mem := newTestCPU()
	mem.set(0x8000, 0x02)

	_, err := c.Step()

	var opErr *UnknownOpcodeError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, uint8(0x02), opErr.Opcode)
	assert.Equal(t, uint16(0x8000), opErr.PC)
	assert.Equal(t, uint16(0x8000), c.pc, "PC left at the offending byte")
	assert.Equal(t, uint64(0), c.CycleCount(), "no cycles charged")
	assert.Contains(t, opErr.Error(), "02")
}

func TestCPU_Step_CycleCountMonotonic(t *testing.T) {
	c, mem := newTestCPU()
	mem.set(0x8000, 0xea, 0xea, 0xea) // NOP NOP NOP

	var last uint64
	for i := 0; i < 3; i++ {
		consumed, err := c.Step()
		require.NoError(t, err)
		assert.Equal(t, uint64(2), consumed)
		assert.Greater(t, c.CycleCount(), last)
		last = c.CycleCount()
	}
	assert.Equal(t, uint64(6), c.CycleCount())
}

func TestDebugInfo_StatusString(t *testing.T) {
	c, _ := newTestCPU()
	c.p = flagU | flagN | flagC

	info := c.DebugInfo()
	assert.Equal(t, "N.U....C", info.StatusString())
	assert.Equal(t, c.pc, info.PC)
	assert.Equal(t, c.CycleCount(), info.Cycles)
}

func TestMemMockReset(t *testing.T) {
	mem := newMemMock()
	mem.Write8(0x1234, 0x56)
	require.NotEmpty(t, mem.writes)

	mem.reset()
	assert.Empty(t, mem.writes)
	assert.Zero(t, mem.Read8(0x1234))
}
