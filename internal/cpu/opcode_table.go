package cpu

// opInfo is the static decode metadata of one opcode: mnemonic,
// addressing-mode family with its index-register selector, and the
// base cycle cost. Page-cross and branch penalties come on top of the
// base cost at run time.
type opInfo struct {
	name   string
	mode   addrMode
	index  indexReg
	cycles uint8
}

// opcodeTable maps every documented opcode byte to its metadata. A
// zero entry (mode 0) marks an unmapped opcode and surfaces as
// UnknownOpcodeError from Step.
var opcodeTable = [0x100]opInfo{
	0x00: {name: "BRK", mode: addrModeIMP, cycles: 7},
	0x01: {name: "ORA", mode: addrModeINDX, cycles: 6},
	0x05: {name: "ORA", mode: addrModeZP, cycles: 3},
	0x06: {name: "ASL", mode: addrModeZP, cycles: 5},
	0x08: {name: "PHP", mode: addrModeIMP, cycles: 3},
	0x09: {name: "ORA", mode: addrModeIMM, cycles: 2},
	0x0a: {name: "ASL", mode: addrModeACC, cycles: 2},
	0x0d: {name: "ORA", mode: addrModeABS, cycles: 4},
	0x0e: {name: "ASL", mode: addrModeABS, cycles: 6},
	0x10: {name: "BPL", mode: addrModeREL, cycles: 2},
	0x11: {name: "ORA", mode: addrModeINDY, cycles: 5},
	0x15: {name: "ORA", mode: addrModeZP, index: indexX, cycles: 4},
	0x16: {name: "ASL", mode: addrModeZP, index: indexX, cycles: 6},
	0x18: {name: "CLC", mode: addrModeIMP, cycles: 2},
	0x19: {name: "ORA", mode: addrModeABS, index: indexY, cycles: 4},
	0x1d: {name: "ORA", mode: addrModeABS, index: indexX, cycles: 4},
	0x1e: {name: "ASL", mode: addrModeABS, index: indexX, cycles: 7},
	0x20: {name: "JSR", mode: addrModeABS, cycles: 6},
	0x21: {name: "AND", mode: addrModeINDX, cycles: 6},
	0x24: {name: "BIT", mode: addrModeZP, cycles: 3},
	0x25: {name: "AND", mode: addrModeZP, cycles: 3},
	0x26: {name: "ROL", mode: addrModeZP, cycles: 5},
	0x28: {name: "PLP", mode: addrModeIMP, cycles: 4},
	0x29: {name: "AND", mode: addrModeIMM, cycles: 2},
	0x2a: {name: "ROL", mode: addrModeACC, cycles: 2},
	0x2c: {name: "BIT", mode: addrModeABS, cycles: 4},
	0x2d: {name: "AND", mode: addrModeABS, cycles: 4},
	0x2e: {name: "ROL", mode: addrModeABS, cycles: 6},
	0x30: {name: "BMI", mode: addrModeREL, cycles: 2},
	0x31: {name: "AND", mode: addrModeINDY, cycles: 5},
	0x35: {name: "AND", mode: addrModeZP, index: indexX, cycles: 4},
	0x36: {name: "ROL", mode: addrModeZP, index: indexX, cycles: 6},
	0x38: {name: "SEC", mode: addrModeIMP, cycles: 2},
	0x39: {name: "AND", mode: addrModeABS, index: indexY, cycles: 4},
	0x3d: {name: "AND", mode: addrModeABS, index: indexX, cycles: 4},
	0x3e: {name: "ROL", mode: addrModeABS, index: indexX, cycles: 7},
	0x40: {name: "RTI", mode: addrModeIMP, cycles: 6},
	0x41: {name: "EOR", mode: addrModeINDX, cycles: 6},
	0x45: {name: "EOR", mode: addrModeZP, cycles: 3},
	0x46: {name: "LSR", mode: addrModeZP, cycles: 5},
	0x48: {name: "PHA", mode: addrModeIMP, cycles: 3},
	0x49: {name: "EOR", mode: addrModeIMM, cycles: 2},
	0x4a: {name: "LSR", mode: addrModeACC, cycles: 2},
	0x4c: {name: "JMP", mode: addrModeABS, cycles: 3},
	0x4d: {name: "EOR", mode: addrModeABS, cycles: 4},
	0x4e: {name: "LSR", mode: addrModeABS, cycles: 6},
	0x50: {name: "BVC", mode: addrModeREL, cycles: 2},
	0x51: {name: "EOR", mode: addrModeINDY, cycles: 5},
	0x55: {name: "EOR", mode: addrModeZP, index: indexX, cycles: 4},
	0x56: {name: "LSR", mode: addrModeZP, index: indexX, cycles: 6},
	0x58: {name: "CLI", mode: addrModeIMP, cycles: 2},
	0x59: {name: "EOR", mode: addrModeABS, index: indexY, cycles: 4},
	0x5d: {name: "EOR", mode: addrModeABS, index: indexX, cycles: 4},
	0x5e: {name: "LSR", mode: addrModeABS, index: indexX, cycles: 7},
	0x60: {name: "RTS", mode: addrModeIMP, cycles: 6},
	0x61: {name: "ADC", mode: addrModeINDX, cycles: 6},
	0x65: {name: "ADC", mode: addrModeZP, cycles: 3},
	0x66: {name: "ROR", mode: addrModeZP, cycles: 5},
	0x68: {name: "PLA", mode: addrModeIMP, cycles: 4},
	0x69: {name: "ADC", mode: addrModeIMM, cycles: 2},
	0x6a: {name: "ROR", mode: addrModeACC, cycles: 2},
	0x6c: {name: "JMP", mode: addrModeIND, cycles: 5},
	0x6d: {name: "ADC", mode: addrModeABS, cycles: 4},
	0x6e: {name: "ROR", mode: addrModeABS, cycles: 6},
	0x70: {name: "BVS", mode: addrModeREL, cycles: 2},
	0x71: {name: "ADC", mode: addrModeINDY, cycles: 5},
	0x75: {name: "ADC", mode: addrModeZP, index: indexX, cycles: 4},
	0x76: {name: "ROR", mode: addrModeZP, index: indexX, cycles: 6},
	0x78: {name: "SEI", mode: addrModeIMP, cycles: 2},
	0x79: {name: "ADC", mode: addrModeABS, index: indexY, cycles: 4},
	0x7d: {name: "ADC", mode: addrModeABS, index: indexX, cycles: 4},
	0x7e: {name: "ROR", mode: addrModeABS, index: indexX, cycles: 7},
	0x81: {name: "STA", mode: addrModeINDX, cycles: 6},
	0x84: {name: "STY", mode: addrModeZP, cycles: 3},
	0x85: {name: "STA", mode: addrModeZP, cycles: 3},
	0x86: {name: "STX", mode: addrModeZP, cycles: 3},
	0x88: {name: "DEY", mode: addrModeIMP, cycles: 2},
	0x8a: {name: "TXA", mode: addrModeIMP, cycles: 2},
	0x8c: {name: "STY", mode: addrModeABS, cycles: 4},
	0x8d: {name: "STA", mode: addrModeABS, cycles: 4},
	0x8e: {name: "STX", mode: addrModeABS, cycles: 4},
	0x90: {name: "BCC", mode: addrModeREL, cycles: 2},
	0x91: {name: "STA", mode: addrModeINDY, cycles: 6},
	0x94: {name: "STY", mode: addrModeZP, index: indexX, cycles: 4},
	0x95: {name: "STA", mode: addrModeZP, index: indexX, cycles: 4},
	0x96: {name: "STX", mode: addrModeZP, index: indexY, cycles: 4},
	0x98: {name: "TYA", mode: addrModeIMP, cycles: 2},
	0x99: {name: "STA", mode: addrModeABS, index: indexY, cycles: 5},
	0x9a: {name: "TXS", mode: addrModeIMP, cycles: 2},
	0x9d: {name: "STA", mode: addrModeABS, index: indexX, cycles: 5},
	0xa0: {name: "LDY", mode: addrModeIMM, cycles: 2},
	0xa1: {name: "LDA", mode: addrModeINDX, cycles: 6},
	0xa2: {name: "LDX", mode: addrModeIMM, cycles: 2},
	0xa4: {name: "LDY", mode: addrModeZP, cycles: 3},
	0xa5: {name: "LDA", mode: addrModeZP, cycles: 3},
	0xa6: {name: "LDX", mode: addrModeZP, cycles: 3},
	0xa8: {name: "TAY", mode: addrModeIMP, cycles: 2},
	0xa9: {name: "LDA", mode: addrModeIMM, cycles: 2},
	0xaa: {name: "TAX", mode: addrModeIMP, cycles: 2},
	0xac: {name: "LDY", mode: addrModeABS, cycles: 4},
	0xad: {name: "LDA", mode: addrModeABS, cycles: 4},
	0xae: {name: "LDX", mode: addrModeABS, cycles: 4},
	0xb0: {name: "BCS", mode: addrModeREL, cycles: 2},
	0xb1: {name: "LDA", mode: addrModeINDY, cycles: 5},
	0xb4: {name: "LDY", mode: addrModeZP, index: indexX, cycles: 4},
	0xb5: {name: "LDA", mode: addrModeZP, index: indexX, cycles: 4},
	0xb6: {name: "LDX", mode: addrModeZP, index: indexY, cycles: 4},
	0xb8: {name: "CLV", mode: addrModeIMP, cycles: 2},
	0xb9: {name: "LDA", mode: addrModeABS, index: indexY, cycles: 4},
	0xba: {name: "TSX", mode: addrModeIMP, cycles: 2},
	0xbc: {name: "LDY", mode: addrModeABS, index: indexX, cycles: 4},
	0xbd: {name: "LDA", mode: addrModeABS, index: indexX, cycles: 4},
	0xbe: {name: "LDX", mode: addrModeABS, index: indexY, cycles: 4},
	0xc0: {name: "CPY", mode: addrModeIMM, cycles: 2},
	0xc1: {name: "CMP", mode: addrModeINDX, cycles: 6},
	0xc4: {name: "CPY", mode: addrModeZP, cycles: 3},
	0xc5: {name: "CMP", mode: addrModeZP, cycles: 3},
	0xc6: {name: "DEC", mode: addrModeZP, cycles: 5},
	0xc8: {name: "INY", mode: addrModeIMP, cycles: 2},
	0xc9: {name: "CMP", mode: addrModeIMM, cycles: 2},
	0xca: {name: "DEX", mode: addrModeIMP, cycles: 2},
	0xcc: {name: "CPY", mode: addrModeABS, cycles: 4},
	0xcd: {name: "CMP", mode: addrModeABS, cycles: 4},
	0xce: {name: "DEC", mode: addrModeABS, cycles: 6},
	0xd0: {name: "BNE", mode: addrModeREL, cycles: 2},
	0xd1: {name: "CMP", mode: addrModeINDY, cycles: 5},
	0xd5: {name: "CMP", mode: addrModeZP, index: indexX, cycles: 4},
	0xd6: {name: "DEC", mode: addrModeZP, index: indexX, cycles: 6},
	0xd8: {name: "CLD", mode: addrModeIMP, cycles: 2},
	0xd9: {name: "CMP", mode: addrModeABS, index: indexY, cycles: 4},
	0xdd: {name: "CMP", mode: addrModeABS, index: indexX, cycles: 4},
	0xde: {name: "DEC", mode: addrModeABS, index: indexX, cycles: 7},
	0xe0: {name: "CPX", mode: addrModeIMM, cycles: 2},
	0xe1: {name: "SBC", mode: addrModeINDX, cycles: 6},
	0xe4: {name: "CPX", mode: addrModeZP, cycles: 3},
	0xe5: {name: "SBC", mode: addrModeZP, cycles: 3},
	0xe6: {name: "INC", mode: addrModeZP, cycles: 5},
	0xe8: {name: "INX", mode: addrModeIMP, cycles: 2},
	0xe9: {name: "SBC", mode: addrModeIMM, cycles: 2},
	0xea: {name: "NOP", mode: addrModeIMP, cycles: 2},
	0xec: {name: "CPX", mode: addrModeABS, cycles: 4},
	0xed: {name: "SBC", mode: addrModeABS, cycles: 4},
	0xee: {name: "INC", mode: addrModeABS, cycles: 6},
	0xf0: {name: "BEQ", mode: addrModeREL, cycles: 2},
	0xf1: {name: "SBC", mode: addrModeINDY, cycles: 5},
	0xf5: {name: "SBC", mode: addrModeZP, index: indexX, cycles: 4},
	0xf6: {name: "INC", mode: addrModeZP, index: indexX, cycles: 6},
	0xf8: {name: "SED", mode: addrModeIMP, cycles: 2},
	0xf9: {name: "SBC", mode: addrModeABS, index: indexY, cycles: 4},
	0xfd: {name: "SBC", mode: addrModeABS, index: indexX, cycles: 4},
	0xfe: {name: "INC", mode: addrModeABS, index: indexX, cycles: 7},
}

func opcodeIsSupported(opcode uint8) bool {
	return opcodeTable[opcode].mode != 0
}
