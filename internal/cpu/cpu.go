// Package cpu emulates the instruction-execution core of a 6502-family
// processor: registers, status flags, addressing-mode resolution, stack
// operations, interrupt servicing and the documented opcode set with
// cycle-accurate costs.
package cpu

import "fmt"

const (
	stackStartAddr = uint16(0x100)

	nmiVector   = uint16(0xfffa)
	resetVector = uint16(0xfffc)
	irqVector   = uint16(0xfffe)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, reads as 1
	flagV                    // Overflow
	flagN                    // Negative
)

// ReadWriter is the memory contract the core consumes. The core never
// owns memory; the embedding system provides a byte-addressable 64K
// space behind this interface.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	mem ReadWriter

	totalCycles uint64

	// interrupt request lines, sampled only at the top of Step
	resetSignal bool
	nmiSignal   bool
	irqSignal   bool

	// transient per-instruction state filled by fetch
	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool
	cycles       uint8 // penalty cycles of the current instruction
}

// UnknownOpcodeError reports a fetched byte the decode table has no
// handler for. The core leaves pc at the offending byte; the driver
// decides whether to halt, substitute a no-op or enter a debugger.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %02X at %04X", e.Opcode, e.PC)
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func NewCPU(mem ReadWriter) *CPU {
	return &CPU{mem: mem}
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

// read16 reads a little-endian word. No wrap quirk.
func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

// read16bug reads a little-endian word reproducing the 6502 pointer
// defect: when addr ends in 0xff the high byte comes from the start of
// the same page instead of the next one.
func (c *CPU) read16bug(addr uint16) uint16 {
	hi := addr + 1
	if addr&0x00ff == 0x00ff {
		hi = addr & 0xff00
	}
	return uint16(c.read8(addr)) | uint16(c.read8(hi))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
	c.p |= flagU
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

// Status returns the packed status register. Bit 5 reads as 1 always.
func (c *CPU) Status() uint8 {
	return c.p | flagU
}

// SetStatus stores a packed status register. Bit 5 is pinned high.
func (c *CPU) SetStatus(p uint8) { c.p = p | flagU }

// Register accessors for drivers and debuggers. Widths are enforced by
// the declared types.
func (c *CPU) A() uint8       { return c.a }
func (c *CPU) SetA(v uint8)   { c.a = v }
func (c *CPU) X() uint8       { return c.x }
func (c *CPU) SetX(v uint8)   { c.x = v }
func (c *CPU) Y() uint8       { return c.y }
func (c *CPU) SetY(v uint8)   { c.y = v }
func (c *CPU) SP() uint8      { return c.sp }
func (c *CPU) SetSP(v uint8)  { c.sp = v }
func (c *CPU) PC() uint16     { return c.pc }
func (c *CPU) SetPC(v uint16) { c.pc = v }

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// PowerOn puts the CPU into its cold-boot state: status $34, cleared
// registers, sp $FD and pc loaded from the reset vector. The cycle
// counter is primed with the 7-cycle power-up sequence.
func (c *CPU) PowerOn() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = flagU | flagB | flagI // $34
	c.sp = 0xfd
	c.pc = c.read16(resetVector)
	c.totalCycles = 7

	c.resetSignal = false
	c.nmiSignal = false
	c.irqSignal = false
	c.clearTransient()
}

// Reset performs a warm reset: the stack pointer slides down by three
// with no actual stack writes and the interrupt disable flag is ORed
// into the status register. A, X, Y, pc and memory are untouched.
func (c *CPU) Reset() {
	c.sp -= 3
	c.p |= flagI
}

// SetReset asserts the reset request line.
func (c *CPU) SetReset() { c.resetSignal = true }

// SetNMI asserts the non-maskable interrupt request line.
func (c *CPU) SetNMI() { c.nmiSignal = true }

// SetIRQ asserts the maskable interrupt request line. The line is
// level-triggered: it stays asserted until ClearIRQ.
func (c *CPU) SetIRQ() { c.irqSignal = true }

// ClearIRQ deasserts the maskable interrupt request line.
func (c *CPU) ClearIRQ() { c.irqSignal = false }

// CycleCount returns the number of cycles elapsed since power-on. It
// only ever grows.
func (c *CPU) CycleCount() uint64 {
	return c.totalCycles
}

func (c *CPU) handleReset() {
	c.pc = c.read16(resetVector)
	c.resetSignal = false
	c.totalCycles += 7
}

func (c *CPU) handleNMI() {
	c.stackPush16(c.pc)
	c.stackPush8((c.p | flagU) & ^flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(nmiVector)
	c.nmiSignal = false
	c.totalCycles += 7
}

func (c *CPU) handleIRQ() {
	c.stackPush16(c.pc)
	c.stackPush8((c.p | flagU) & ^flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(irqVector)
	// level-triggered: the line stays asserted until the external
	// source deasserts it
	c.totalCycles += 7
}

// serviceInterrupts samples the request lines in priority order
// Reset > NMI > IRQ and services at most one. An IRQ masked by the I
// flag is left pending at no cycle cost.
func (c *CPU) serviceInterrupts() bool {
	switch {
	case c.resetSignal:
		c.handleReset()
		return true
	case c.nmiSignal:
		c.handleNMI()
		return true
	case c.irqSignal && !c.getFlag(flagI):
		c.handleIRQ()
		return true
	}
	return false
}

// Step executes one interrupt-service-or-instruction unit and returns
// the cycles it consumed. Interrupt lines are sampled exactly once,
// before the opcode fetch, so an instruction always runs to completion.
func (c *CPU) Step() (uint64, error) {
	before := c.totalCycles
	if c.serviceInterrupts() {
		return c.totalCycles - before, nil
	}

	opcode := c.read8(c.pc)
	op := opcodeTable[opcode]
	if op.mode == 0 {
		return 0, &UnknownOpcodeError{Opcode: opcode, PC: c.pc}
	}
	c.pc++

	c.fetch(op)
	c.exec(opcode)
	c.totalCycles += uint64(op.cycles) + uint64(c.cycles)
	c.clearTransient()
	return c.totalCycles - before, nil
}

func (c *CPU) clearTransient() {
	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
	c.cycles = 0
}

// DebugInfo is a read-only snapshot of the register file for drivers
// and trace output.
type DebugInfo struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	P      uint8
	Cycles uint64
}

func (c *CPU) DebugInfo() DebugInfo {
	return DebugInfo{
		PC:     c.pc,
		A:      c.a,
		X:      c.x,
		Y:      c.y,
		SP:     c.sp,
		P:      c.Status(),
		Cycles: c.totalCycles,
	}
}

// StatusString renders the packed status byte as NV-BDIZC with dots
// for cleared flags.
func (d DebugInfo) StatusString() string {
	names := [8]byte{'C', 'Z', 'I', 'D', 'B', 'U', 'V', 'N'}
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bit := uint8(1) << (7 - i)
		if d.P&bit > 0 {
			out[i] = names[7-i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
