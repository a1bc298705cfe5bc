package riscv

// Major opcodes of the RV32I base instruction set, bits [6:0].
const (
	OpLoad    = 0x03 // 000_0011
	OpMiscMem = 0x0F // 000_1111
	OpImm     = 0x13 // 001_0011
	OpAUIPC   = 0x17 // 001_0111
	OpStore   = 0x23 // 010_0011
	OpReg     = 0x33 // 011_0011
	OpLUI     = 0x37 // 011_0111
	OpBranch  = 0x63 // 110_0011
	OpJALR    = 0x67 // 110_0111
	OpJAL     = 0x6F // 110_1111
	OpSystem  = 0x73 // 111_0011
)

// funct7 values. Only bit 30 is ever set in RV32I.
const (
	Funct7Zero = 0x00 // 000_0000
	Funct7Alt  = 0x20 // 010_0000 = SUB, SRA, SRAI
)

// Fixed 32-bit encodings that take no operands.
const (
	InsnECALL    = 0x00000073
	InsnEBREAK   = 0x00100073
	InsnFenceTSO = 0x8330000F // fm=1000 pred=RW succ=RW
	InsnPause    = 0x0100000F // fence w,0
)

// Field widths, in bits.
const (
	WidthOpcode = 7
	WidthReg    = 5
	WidthFunct3 = 3
	WidthFunct7 = 7
	WidthInsn   = 32
)

// Immediate limits, inclusive.
const (
	MinImm12 = -(1 << 11)
	MaxImm12 = 1<<11 - 1

	MaxShamt = 1<<5 - 1

	MinImmB = -(1 << 12)
	MaxImmB = 1<<12 - 2

	MaxImmU = 1<<20 - 1

	MinImmJ = -(1 << 20)
	MaxImmJ = 1<<20 - 2

	NumRegisters = 32
)
