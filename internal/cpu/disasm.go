package cpu

import "fmt"

// DisassembleAt formats the instruction at addr and returns the text
// together with the address of the next instruction. Unmapped bytes
// render as "???" and are skipped one at a time.
func (c *CPU) DisassembleAt(addr uint16) (string, uint16) {
	opcode := c.read8(addr)
	op := opcodeTable[opcode]
	if op.mode == 0 {
		return fmt.Sprintf("$%04X: ???", addr), addr + 1
	}

	pc := addr + 1
	switch op.mode {
	case addrModeIMM:
		return fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, op.name, c.read8(pc), op.mode), addr + 2
	case addrModeZP:
		operand := c.read8(pc)
		switch op.index {
		case indexX:
			return fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, op.name, operand, op.mode), addr + 2
		case indexY:
			return fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, op.name, operand, op.mode), addr + 2
		}
		return fmt.Sprintf("$%04X: %s $%02X {%s}", addr, op.name, operand, op.mode), addr + 2
	case addrModeABS:
		operand := c.read16(pc)
		switch op.index {
		case indexX:
			return fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, op.name, operand, op.mode), addr + 3
		case indexY:
			return fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, op.name, operand, op.mode), addr + 3
		}
		return fmt.Sprintf("$%04X: %s $%04X {%s}", addr, op.name, operand, op.mode), addr + 3
	case addrModeIND:
		return fmt.Sprintf("$%04X: %s ($%04X) {%s}", addr, op.name, c.read16(pc), op.mode), addr + 3
	case addrModeINDX:
		return fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, op.name, c.read8(pc), op.mode), addr + 2
	case addrModeINDY:
		return fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, op.name, c.read8(pc), op.mode), addr + 2
	case addrModeREL:
		offset := uint16(c.read8(pc))
		if offset&0x80 > 0 {
			offset |= 0xff00 // add leading 1 s to save the sign
		}
		return fmt.Sprintf("$%04X: %s $%04X {%s}", addr, op.name, addr+2+offset, op.mode), addr + 2
	case addrModeACC:
		return fmt.Sprintf("$%04X: %s A {%s}", addr, op.name, op.mode), addr + 1
	}
	return fmt.Sprintf("$%04X: %s {%s}", addr, op.name, op.mode), addr + 1
}
