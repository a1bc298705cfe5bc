package asm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum-optimism/rvasm/rvasm/riscv"
)

// Format is the encoding family of a mnemonic.
type Format uint8

const (
	FormatR Format = iota
	FormatIArith
	FormatILoad // loads and jalr
	FormatIShift
	FormatS
	FormatB
	FormatU
	FormatJ
	FormatFixed
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatIArith:
		return "I"
	case FormatILoad:
		return "I-load"
	case FormatIShift:
		return "I-shift"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	case FormatFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Shape is the operand shape every mnemonic of the format is written with.
func (f Format) Shape() Shape {
	switch f {
	case FormatR:
		return ShapeRegRegReg
	case FormatILoad, FormatS:
		return ShapeRegMem
	case FormatIArith, FormatIShift, FormatB:
		return ShapeRegRegImm
	case FormatU, FormatJ:
		return ShapeRegImm
	default:
		return ShapeNone
	}
}

type opInfo struct {
	format Format
	opcode uint32
	funct3 uint32
	funct7 uint32
	// fixed holds the whole word for FormatFixed.
	fixed Word
}

var instructions = map[string]opInfo{
	"lui":   {format: FormatU, opcode: riscv.OpLUI},
	"auipc": {format: FormatU, opcode: riscv.OpAUIPC},

	"jal":  {format: FormatJ, opcode: riscv.OpJAL},
	"jalr": {format: FormatILoad, opcode: riscv.OpJALR, funct3: 0x0},

	"beq":  {format: FormatB, opcode: riscv.OpBranch, funct3: 0x0},
	"bne":  {format: FormatB, opcode: riscv.OpBranch, funct3: 0x1},
	"blt":  {format: FormatB, opcode: riscv.OpBranch, funct3: 0x4},
	"bge":  {format: FormatB, opcode: riscv.OpBranch, funct3: 0x5},
	"bltu": {format: FormatB, opcode: riscv.OpBranch, funct3: 0x6},
	"bgeu": {format: FormatB, opcode: riscv.OpBranch, funct3: 0x7},

	"lb":  {format: FormatILoad, opcode: riscv.OpLoad, funct3: 0x0},
	"lh":  {format: FormatILoad, opcode: riscv.OpLoad, funct3: 0x1},
	"lw":  {format: FormatILoad, opcode: riscv.OpLoad, funct3: 0x2},
	"lbu": {format: FormatILoad, opcode: riscv.OpLoad, funct3: 0x4},
	"lhu": {format: FormatILoad, opcode: riscv.OpLoad, funct3: 0x5},

	"sb": {format: FormatS, opcode: riscv.OpStore, funct3: 0x0},
	"sh": {format: FormatS, opcode: riscv.OpStore, funct3: 0x1},
	"sw": {format: FormatS, opcode: riscv.OpStore, funct3: 0x2},

	"addi":  {format: FormatIArith, opcode: riscv.OpImm, funct3: 0x0},
	"slti":  {format: FormatIArith, opcode: riscv.OpImm, funct3: 0x2},
	"sltiu": {format: FormatIArith, opcode: riscv.OpImm, funct3: 0x3},
	"xori":  {format: FormatIArith, opcode: riscv.OpImm, funct3: 0x4},
	"ori":   {format: FormatIArith, opcode: riscv.OpImm, funct3: 0x6},
	"andi":  {format: FormatIArith, opcode: riscv.OpImm, funct3: 0x7},

	"slli": {format: FormatIShift, opcode: riscv.OpImm, funct3: 0x1, funct7: riscv.Funct7Zero},
	"srli": {format: FormatIShift, opcode: riscv.OpImm, funct3: 0x5, funct7: riscv.Funct7Zero},
	"srai": {format: FormatIShift, opcode: riscv.OpImm, funct3: 0x5, funct7: riscv.Funct7Alt},

	"add":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x0, funct7: riscv.Funct7Zero},
	"sub":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x0, funct7: riscv.Funct7Alt},
	"sll":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x1, funct7: riscv.Funct7Zero},
	"slt":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x2, funct7: riscv.Funct7Zero},
	"sltu": {format: FormatR, opcode: riscv.OpReg, funct3: 0x3, funct7: riscv.Funct7Zero},
	"xor":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x4, funct7: riscv.Funct7Zero},
	"srl":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x5, funct7: riscv.Funct7Zero},
	"sra":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x5, funct7: riscv.Funct7Alt},
	"or":   {format: FormatR, opcode: riscv.OpReg, funct3: 0x6, funct7: riscv.Funct7Zero},
	"and":  {format: FormatR, opcode: riscv.OpReg, funct3: 0x7, funct7: riscv.Funct7Zero},

	"ecall":     {format: FormatFixed, fixed: riscv.InsnECALL},
	"ebreak":    {format: FormatFixed, fixed: riscv.InsnEBREAK},
	"fence.tso": {format: FormatFixed, fixed: riscv.InsnFenceTSO},
	"pause":     {format: FormatFixed, fixed: riscv.InsnPause},
}

func lookup(mnemonic string) (opInfo, error) {
	op, ok := instructions[strings.ToLower(mnemonic)]
	if !ok {
		return opInfo{}, fmt.Errorf("%w: %q", ErrUnrecognizedMnemonic, mnemonic)
	}
	return op, nil
}

// Classify returns the encoding family of a mnemonic, in any case.
func Classify(mnemonic string) (Format, error) {
	op, err := lookup(mnemonic)
	if err != nil {
		return 0, err
	}
	return op.format, nil
}

// Mnemonics lists every supported mnemonic in lowercase, sorted.
func Mnemonics() []string {
	out := make([]string, 0, len(instructions))
	for m := range instructions {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
