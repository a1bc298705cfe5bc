package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum-optimism/rvasm/rvasm/riscv"
)

// Register is a canonical integer register id in [0, 31].
type Register uint8

func (r Register) String() string {
	return "x" + strconv.Itoa(int(r))
}

// abiNames maps the primary ABI names to canonical registers.
var abiNames = map[string]string{
	"zero": "x0",
	"ra":   "x1",
	"sp":   "x2",
	"gp":   "x3",
	"tp":   "x4",
	"t0":   "x5",
	"t1":   "x6",
	"t2":   "x7",
	"s0":   "x8",
	"s1":   "x9",
	"a0":   "x10",
	"a1":   "x11",
	"a2":   "x12",
	"a3":   "x13",
	"a4":   "x14",
	"a5":   "x15",
	"a6":   "x16",
	"a7":   "x17",
	"s2":   "x18",
	"s3":   "x19",
	"s4":   "x20",
	"s5":   "x21",
	"s6":   "x22",
	"s7":   "x23",
	"s8":   "x24",
	"s9":   "x25",
	"s10":  "x26",
	"s11":  "x27",
	"t3":   "x28",
	"t4":   "x29",
	"t5":   "x30",
	"t6":   "x31",
}

// secondaryNames maps alternative names onto a primary ABI name.
var secondaryNames = map[string]string{
	"fp": "s0",
}

// ResolveAlias maps an ABI register name to its canonical xN spelling.
// Tokens that are not aliases are returned unchanged.
func ResolveAlias(tok string) string {
	if canon, ok := abiNames[tok]; ok {
		return canon
	}
	if primary, ok := secondaryNames[tok]; ok {
		return abiNames[primary]
	}
	return tok
}

// ParseRegister resolves tok and parses the canonical xN form. ok is false when
// tok does not look like a register at all; err is set when it does but names
// a register outside x0..x31.
func ParseRegister(tok string) (reg Register, ok bool, err error) {
	canon := ResolveAlias(strings.ToLower(tok))
	if len(canon) < 2 || canon[0] != 'x' {
		return 0, false, nil
	}
	digits := canon[1:]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false, nil
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n >= riscv.NumRegisters || (len(digits) > 1 && digits[0] == '0') {
		return 0, true, fmt.Errorf("%w: %q", ErrInvalidRegister, tok)
	}
	return Register(n), true, nil
}

// ABINames returns the primary ABI name of every register, indexed by id.
func ABINames() [riscv.NumRegisters]string {
	var out [riscv.NumRegisters]string
	for name, canon := range abiNames {
		reg, _, _ := ParseRegister(canon)
		out[reg] = name
	}
	return out
}
