package asm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum-optimism/rvasm/rvasm/riscv"
)

// Word is an encoded 32-bit instruction.
type Word uint32

// Bits renders the word MSB first, without delimiters.
func (w Word) Bits() string {
	return fmt.Sprintf("%032b", uint32(w))
}

func (w Word) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(w))
}

// Bytes returns the word in memory order (little-endian).
func (w Word) Bytes() []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(w))
	return b[:]
}

// Field is one fixed-width slice of an instruction word.
type Field struct {
	Name  string
	Width uint
	Value uint32
}

func (f Field) Bits() string {
	return fmt.Sprintf("%0*b", int(f.Width), f.Value)
}

// assemble concatenates fields MSB first. The field layouts are static, so a
// layout that does not span exactly 32 bits is a programming error.
func assemble(fields []Field) Word {
	var w uint32
	var total uint
	for _, f := range fields {
		if f.Width < riscv.WidthInsn && f.Value>>f.Width != 0 {
			panic(fmt.Errorf("field %s value %#x exceeds %d bits", f.Name, f.Value, f.Width))
		}
		w = w<<f.Width | f.Value
		total += f.Width
	}
	if total != riscv.WidthInsn {
		panic(fmt.Errorf("fields span %d bits, expected %d", total, riscv.WidthInsn))
	}
	return Word(w)
}

// joinFields renders fields MSB first, separated by single spaces.
func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Bits()
	}
	return strings.Join(parts, " ")
}

// slice returns bits [hi:lo] of v, shifted down to bit 0.
func slice(v uint32, hi, lo uint) uint32 {
	return (v >> lo) & (uint32(1)<<(hi-lo+1) - 1)
}

// twosComplement returns the low width bits of the two's complement form of v.
func twosComplement(v int64, width uint) uint32 {
	return uint32(v) & (uint32(1)<<width - 1)
}
