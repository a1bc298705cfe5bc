// Package asm encodes single RV32I assembly instructions into 32-bit machine words.
package asm

import (
	"fmt"

	"github.com/ethereum-optimism/rvasm/rvasm/riscv"
)

// Instruction is the result of encoding one line of assembly.
type Instruction struct {
	Text     string
	Mnemonic string
	Format   Format
	// Fields holds the word's fields MSB first, in the order the format lays them out.
	Fields []Field
	Word   Word
}

// String renders the encoding field-delimited, e.g. "0000000 00011 00010 000 00001 0110011".
// Removing the spaces yields Word.Bits().
func (ins *Instruction) String() string {
	return joinFields(ins.Fields)
}

// Encode converts a single RV32I instruction into its machine encoding.
// Encode is a pure function and safe for concurrent use.
func Encode(text string) (*Instruction, error) {
	st, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", text, err)
	}
	ins, err := EncodeStatement(st)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", text, err)
	}
	ins.Text = text
	return ins, nil
}

// EncodeStatement encodes an already parsed statement.
func EncodeStatement(st *Statement) (*Instruction, error) {
	op, err := lookup(st.Mnemonic)
	if err != nil {
		return nil, err
	}
	if want := op.format.Shape(); st.Shape != want {
		return nil, fmt.Errorf("%w: %s expects %q operands, got %q", ErrMalformedOperands, st.Mnemonic, want, st.Shape)
	}
	var fields []Field
	switch op.format {
	case FormatR:
		fields = encodeR(op, st)
	case FormatIArith:
		fields, err = encodeIArith(op, st)
	case FormatILoad:
		fields, err = encodeILoad(op, st)
	case FormatIShift:
		fields, err = encodeIShift(op, st)
	case FormatS:
		fields, err = encodeS(op, st)
	case FormatB:
		fields, err = encodeB(op, st)
	case FormatU:
		fields, err = encodeU(op, st)
	case FormatJ:
		fields, err = encodeJ(op, st)
	case FormatFixed:
		fields = []Field{{Name: "insn", Width: riscv.WidthInsn, Value: uint32(op.fixed)}}
	default:
		panic(fmt.Errorf("unknown format %s", op.format))
	}
	if err != nil {
		return nil, err
	}
	return &Instruction{
		Mnemonic: st.Mnemonic,
		Format:   op.format,
		Fields:   fields,
		Word:     assemble(fields),
	}, nil
}

func regField(name string, r Register) Field {
	return Field{Name: name, Width: riscv.WidthReg, Value: uint32(r)}
}

func funct3Field(op opInfo) Field {
	return Field{Name: "funct3", Width: riscv.WidthFunct3, Value: op.funct3}
}

func funct7Field(op opInfo) Field {
	return Field{Name: "funct7", Width: riscv.WidthFunct7, Value: op.funct7}
}

func opcodeField(op opInfo) Field {
	return Field{Name: "opcode", Width: riscv.WidthOpcode, Value: op.opcode}
}

func immField(name string, width uint, v uint32) Field {
	return Field{Name: name, Width: width, Value: v}
}

func checkRange(v, lo, hi int64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrImmediateOutOfRange, v, lo, hi)
	}
	return nil
}

func checkAligned(v int64) error {
	if v&1 != 0 {
		return fmt.Errorf("%w: %d is not a multiple of 2", ErrMisalignedImmediate, v)
	}
	return nil
}

// encodeR: funct7 rs2 rs1 funct3 rd opcode
func encodeR(op opInfo, st *Statement) []Field {
	rd, rs1, rs2 := st.Regs[0], st.Regs[1], st.Regs[2]
	return []Field{
		funct7Field(op),
		regField("rs2", rs2),
		regField("rs1", rs1),
		funct3Field(op),
		regField("rd", rd),
		opcodeField(op),
	}
}

// encodeIArith: imm[11:0] rs1 funct3 rd opcode
func encodeIArith(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, riscv.MinImm12, riscv.MaxImm12); err != nil {
		return nil, err
	}
	rd, rs1 := st.Regs[0], st.Regs[1]
	return []Field{
		immField("imm[11:0]", 12, twosComplement(st.Imm, 12)),
		regField("rs1", rs1),
		funct3Field(op),
		regField("rd", rd),
		opcodeField(op),
	}, nil
}

// encodeILoad is the I layout written as rd, offset(rs1). The offset is
// masked, offset & 0xFFF, which matches two's complement for in-range values.
func encodeILoad(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, riscv.MinImm12, riscv.MaxImm12); err != nil {
		return nil, err
	}
	rd, rs1 := st.Regs[0], st.Regs[1]
	return []Field{
		immField("imm[11:0]", 12, uint32(st.Imm)&0xFFF),
		regField("rs1", rs1),
		funct3Field(op),
		regField("rd", rd),
		opcodeField(op),
	}, nil
}

// encodeIShift: funct7 shamt rs1 funct3 rd opcode. Bit 30 (funct7) selects
// arithmetic right shift.
func encodeIShift(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, 0, riscv.MaxShamt); err != nil {
		return nil, err
	}
	rd, rs1 := st.Regs[0], st.Regs[1]
	return []Field{
		funct7Field(op),
		immField("shamt", 5, uint32(st.Imm)),
		regField("rs1", rs1),
		funct3Field(op),
		regField("rd", rd),
		opcodeField(op),
	}, nil
}

// encodeS: imm[11:5] rs2 rs1 funct3 imm[4:0] opcode, written as rs2, offset(rs1).
func encodeS(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, riscv.MinImm12, riscv.MaxImm12); err != nil {
		return nil, err
	}
	rs2, rs1 := st.Regs[0], st.Regs[1]
	imm := uint32(st.Imm) & 0xFFF
	return []Field{
		immField("imm[11:5]", 7, slice(imm, 11, 5)),
		regField("rs2", rs2),
		regField("rs1", rs1),
		funct3Field(op),
		immField("imm[4:0]", 5, slice(imm, 4, 0)),
		opcodeField(op),
	}, nil
}

// encodeB: imm[12] imm[10:5] rs2 rs1 funct3 imm[4:1] imm[11] opcode.
// Bit 0 of the offset is implicitly zero and never stored.
func encodeB(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, riscv.MinImmB, riscv.MaxImmB); err != nil {
		return nil, err
	}
	if err := checkAligned(st.Imm); err != nil {
		return nil, err
	}
	rs1, rs2 := st.Regs[0], st.Regs[1]
	imm := twosComplement(st.Imm, 13)
	return []Field{
		immField("imm[12]", 1, slice(imm, 12, 12)),
		immField("imm[10:5]", 6, slice(imm, 10, 5)),
		regField("rs2", rs2),
		regField("rs1", rs1),
		funct3Field(op),
		immField("imm[4:1]", 4, slice(imm, 4, 1)),
		immField("imm[11]", 1, slice(imm, 11, 11)),
		opcodeField(op),
	}, nil
}

// encodeU: imm[31:12] rd opcode. The operand is the raw upper 20 bits.
func encodeU(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, 0, riscv.MaxImmU); err != nil {
		return nil, err
	}
	return []Field{
		immField("imm[31:12]", 20, uint32(st.Imm)),
		regField("rd", st.Regs[0]),
		opcodeField(op),
	}, nil
}

// encodeJ: imm[20] imm[10:1] imm[11] imm[19:12] rd opcode.
// Bit 0 of the offset is implicitly zero and never stored.
func encodeJ(op opInfo, st *Statement) ([]Field, error) {
	if err := checkRange(st.Imm, riscv.MinImmJ, riscv.MaxImmJ); err != nil {
		return nil, err
	}
	if err := checkAligned(st.Imm); err != nil {
		return nil, err
	}
	imm := twosComplement(st.Imm, 21)
	return []Field{
		immField("imm[20]", 1, slice(imm, 20, 20)),
		immField("imm[10:1]", 10, slice(imm, 10, 1)),
		immField("imm[11]", 1, slice(imm, 11, 11)),
		immField("imm[19:12]", 8, slice(imm, 19, 12)),
		regField("rd", st.Regs[0]),
		opcodeField(op),
	}, nil
}
