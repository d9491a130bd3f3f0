package cpu

import "fmt"

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page, optionally indexed
	addrModeABS                      // Absolute, optionally indexed
	addrModeIND                      // Indirect
	addrModeINDX                     // Indexed Indirect (zp,X)
	addrModeINDY                     // Indirect Indexed (zp),Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeABS:
		return "ABS"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// indexReg selects the register a zero-page or absolute operand is
// offset by. Other mode families carry indexNone.
type indexReg uint8

const (
	indexNone indexReg = iota
	indexX
	indexY
)

func (c *CPU) indexValue(idx indexReg) uint8 {
	switch idx {
	case indexNone:
		return 0
	case indexX:
		return c.x
	case indexY:
		return c.y
	}
	// the opcode table is a compile-time constant, an unknown selector
	// is table corruption
	panic(fmt.Sprintf("cpu: opcode table defect: unknown index register %d", idx))
}

// fetch resolves the operand of the current instruction: it consumes
// the operand bytes after the opcode, advances pc past them and fills
// operandAddr/operandValue. Indexed absolute and (zp),Y resolution
// records a page crossing; relative resolution records whether the
// branch target sits on a different page than the post-operand pc.
func (c *CPU) fetch(op opInfo) {
	c.addrMode = op.mode
	c.pageCrossed = false
	c.operandAddr = 0
	c.operandValue = 0

	switch op.mode {
	case addrModeZP, addrModeABS:
	default:
		if op.index != indexNone {
			panic(fmt.Sprintf("cpu: opcode table defect: mode %s cannot carry index %d", op.mode, op.index))
		}
	}

	switch op.mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.pc) + c.indexValue(op.index))
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		baseAddr := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = baseAddr + uint16(c.indexValue(op.index))
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeIND:
		addr := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = c.read16bug(addr)

	case addrModeINDX:
		addr := uint16(c.read8(c.pc) + c.x)
		c.pc++
		c.operandAddr = c.read16(addr)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDY:
		addr := c.read16(uint16(c.read8(c.pc)))
		c.pc++
		c.operandAddr = addr + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(addr, c.operandAddr)

	case addrModeREL:
		offset := uint16(c.read8(c.pc))
		c.pc++
		if offset&0x80 > 0 {
			offset |= 0xff00 // add leading 1 s to save the sign
		}
		c.operandAddr = c.pc + offset
		c.pageCrossed = isDiffPage(c.pc, c.operandAddr)

	case addrModeACC:
		c.operandValue = c.a

	case addrModeIMP:

	default:
		panic(fmt.Sprintf("cpu: opcode table defect: unknown addressing mode %d", op.mode))
	}
}
