package cpu

// Handlers operate on the transient operand state filled by fetch.
// Read-type instructions with indexed absolute or (zp),Y operands add
// one cycle when the resolver reported a page crossing; stores carry
// that cycle in their base cost instead.

func (c *CPU) adc() {
	r16 := uint16(c.a) + uint16(c.operandValue)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlagsZN(r8)
	c.setFlag(flagV, isSameSign(c.a, c.operandValue) && !isSameSign(c.a, r8))
	c.a = r8
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) and() {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) asl() {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r8 := c.operandValue << 1
	c.setFlagsZN(r8)
	if c.addrMode == addrModeACC {
		c.a = r8
	} else {
		c.write8(c.operandAddr, r8)
	}
}

// jmpIf takes the branch when the condition holds: one extra cycle on
// the same page, two when the target page differs from the
// post-operand pc.
func (c *CPU) jmpIf(condition bool) {
	if !condition {
		return
	}
	c.cycles++
	if c.pageCrossed {
		c.cycles++
	}
	c.pc = c.operandAddr
}

func (c *CPU) bcc() {
	c.jmpIf(!c.getFlag(flagC))
}

func (c *CPU) bcs() {
	c.jmpIf(c.getFlag(flagC))
}

func (c *CPU) beq() {
	c.jmpIf(c.getFlag(flagZ))
}

func (c *CPU) bit() {
	m := c.a & c.operandValue
	c.setFlag(flagZ, m == 0)
	c.setFlag(flagN, c.operandValue&flagN > 0)
	c.setFlag(flagV, c.operandValue&flagV > 0)
}

func (c *CPU) bmi() {
	c.jmpIf(c.getFlag(flagN))
}

func (c *CPU) bne() {
	c.jmpIf(!c.getFlag(flagZ))
}

func (c *CPU) bpl() {
	c.jmpIf(!c.getFlag(flagN))
}

// brk skips one padding byte and behaves as a software interrupt
// through the IRQ vector, with the Break bit forced into the pushed
// status byte.
func (c *CPU) brk() {
	c.pc++
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagU | flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(irqVector)
}

func (c *CPU) bvc() {
	c.jmpIf(!c.getFlag(flagV))
}

func (c *CPU) bvs() {
	c.jmpIf(c.getFlag(flagV))
}

func (c *CPU) clc() {
	c.setFlag(flagC, false)
}

func (c *CPU) cld() {
	c.setFlag(flagD, false)
}

func (c *CPU) cli() {
	c.setFlag(flagI, false)
}

func (c *CPU) clv() {
	c.setFlag(flagV, false)
}

func (c *CPU) cmp() {
	c.setFlag(flagC, c.a >= c.operandValue)
	c.setFlagsZN(c.a - c.operandValue)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) cpx() {
	c.setFlag(flagC, c.x >= c.operandValue)
	c.setFlagsZN(c.x - c.operandValue)
}

func (c *CPU) cpy() {
	c.setFlag(flagC, c.y >= c.operandValue)
	c.setFlagsZN(c.y - c.operandValue)
}

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

func (c *CPU) jsr() {
	// pc already points past the operand, the 6502 pushes the address
	// of its last byte
	c.pc--
	c.stackPush16(c.pc)
	c.pc = c.operandAddr
}

func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) lsr() {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) nop() {
}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func (c *CPU) pha() {
	c.stackPush8(c.a)
}

func (c *CPU) php() {
	c.stackPush8(c.p | flagU | flagB)
}

func (c *CPU) pla() {
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
}

func (c *CPU) plp() {
	c.p = (c.stackPop8() | flagU) & ^flagB
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) rti() {
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
}

func (c *CPU) rts() {
	c.pc = c.stackPop16()
	c.pc++
}

func (c *CPU) sbc() {
	c.operandValue = ^c.operandValue
	c.adc()
}

func (c *CPU) sec() {
	c.setFlag(flagC, true)
}

func (c *CPU) sed() {
	c.setFlag(flagD, true)
}

func (c *CPU) sei() {
	c.setFlag(flagI, true)
}

func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

func (c *CPU) stx() {
	c.write8(c.operandAddr, c.x)
}

func (c *CPU) sty() {
	c.write8(c.operandAddr, c.y)
}

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

// exec dispatches the opcode byte to its handler. The caller has
// already checked the opcode against the metadata table, an unlisted
// byte cannot reach the default arm.
func (c *CPU) exec(opcode uint8) {
	switch opcode {
	case 0x69, 0x65, 0x75, 0x6d, 0x7d, 0x79, 0x61, 0x71:
		c.adc()
	case 0x29, 0x25, 0x35, 0x2d, 0x3d, 0x39, 0x21, 0x31:
		c.and()
	case 0x0a, 0x06, 0x16, 0x0e, 0x1e:
		c.asl()
	case 0x90:
		c.bcc()
	case 0xb0:
		c.bcs()
	case 0xf0:
		c.beq()
	case 0x24, 0x2c:
		c.bit()
	case 0x30:
		c.bmi()
	case 0xd0:
		c.bne()
	case 0x10:
		c.bpl()
	case 0x00:
		c.brk()
	case 0x50:
		c.bvc()
	case 0x70:
		c.bvs()
	case 0x18:
		c.clc()
	case 0xd8:
		c.cld()
	case 0x58:
		c.cli()
	case 0xb8:
		c.clv()
	case 0xc9, 0xc5, 0xd5, 0xcd, 0xdd, 0xd9, 0xc1, 0xd1:
		c.cmp()
	case 0xe0, 0xe4, 0xec:
		c.cpx()
	case 0xc0, 0xc4, 0xcc:
		c.cpy()
	case 0xc6, 0xd6, 0xce, 0xde:
		c.dec()
	case 0xca:
		c.dex()
	case 0x88:
		c.dey()
	case 0x49, 0x45, 0x55, 0x4d, 0x5d, 0x59, 0x41, 0x51:
		c.eor()
	case 0xe6, 0xf6, 0xee, 0xfe:
		c.inc()
	case 0xe8:
		c.inx()
	case 0xc8:
		c.iny()
	case 0x4c, 0x6c:
		c.jmp()
	case 0x20:
		c.jsr()
	case 0xa9, 0xa5, 0xb5, 0xad, 0xbd, 0xb9, 0xa1, 0xb1:
		c.lda()
	case 0xa2, 0xa6, 0xb6, 0xae, 0xbe:
		c.ldx()
	case 0xa0, 0xa4, 0xb4, 0xac, 0xbc:
		c.ldy()
	case 0x4a, 0x46, 0x56, 0x4e, 0x5e:
		c.lsr()
	case 0xea:
		c.nop()
	case 0x09, 0x05, 0x15, 0x0d, 0x1d, 0x19, 0x01, 0x11:
		c.ora()
	case 0x48:
		c.pha()
	case 0x08:
		c.php()
	case 0x68:
		c.pla()
	case 0x28:
		c.plp()
	case 0x2a, 0x26, 0x36, 0x2e, 0x3e:
		c.rol()
	case 0x6a, 0x66, 0x76, 0x6e, 0x7e:
		c.ror()
	case 0x40:
		c.rti()
	case 0x60:
		c.rts()
	case 0xe9, 0xe5, 0xf5, 0xed, 0xfd, 0xf9, 0xe1, 0xf1:
		c.sbc()
	case 0x38:
		c.sec()
	case 0xf8:
		c.sed()
	case 0x78:
		c.sei()
	case 0x85, 0x95, 0x8d, 0x9d, 0x99, 0x81, 0x91:
		c.sta()
	case 0x86, 0x96, 0x8e:
		c.stx()
	case 0x84, 0x94, 0x8c:
		c.sty()
	case 0xaa:
		c.tax()
	case 0xa8:
		c.tay()
	case 0xba:
		c.tsx()
	case 0x8a:
		c.txa()
	case 0x9a:
		c.txs()
	case 0x98:
		c.tya()
	}
}
