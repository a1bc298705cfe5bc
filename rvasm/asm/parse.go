package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shape is the structure of an operand list.
type Shape uint8

const (
	ShapeNone      Shape = iota // ecall
	ShapeRegRegReg              // add rd, rs1, rs2
	ShapeRegMem                 // lw rd, imm(rs1)
	ShapeRegRegImm              // addi rd, rs1, imm
	ShapeRegImm                 // lui rd, imm
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "no operands"
	case ShapeRegRegReg:
		return "reg, reg, reg"
	case ShapeRegMem:
		return "reg, imm(reg)"
	case ShapeRegRegImm:
		return "reg, reg, imm"
	case ShapeRegImm:
		return "reg, imm"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// operand patterns, one byte per token: r = register, i = immediate.
var shapePatterns = map[string]Shape{
	"":      ShapeNone,
	"rrr":   ShapeRegRegReg,
	"ri(r)": ShapeRegMem,
	"r(r)":  ShapeRegMem,
	"rri":   ShapeRegRegImm,
	"ri":    ShapeRegImm,
}

// Statement is a single parsed instruction. Registers appear in source order;
// for ShapeRegMem the base register comes last.
type Statement struct {
	Mnemonic string
	Shape    Shape
	Regs     []Register
	Imm      int64
}

// Parse splits text into a lowercased mnemonic and a resolved operand list.
// Commas and whitespace separate operands interchangeably. Mnemonics missing
// from the instruction table are rejected before the operands are read.
func Parse(text string) (*Statement, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty instruction", ErrMalformedOperands)
	}
	mnemonic, rest := text, ""
	if i := strings.IndexAny(text, " \t,"); i >= 0 {
		mnemonic, rest = text[:i], text[i:]
	}
	st := &Statement{Mnemonic: strings.ToLower(mnemonic)}
	// operands are only judged against a known family
	if _, err := lookup(st.Mnemonic); err != nil {
		return nil, err
	}

	toks, err := tokenize(rest)
	if err != nil {
		return nil, err
	}
	var pattern strings.Builder
	for _, tok := range toks {
		if tok == "(" || tok == ")" {
			pattern.WriteString(tok)
			continue
		}
		reg, isReg, err := ParseRegister(tok)
		if err != nil {
			return nil, err
		}
		if isReg {
			st.Regs = append(st.Regs, reg)
			pattern.WriteByte('r')
			continue
		}
		imm, err := parseImmediate(tok)
		if err != nil {
			return nil, err
		}
		st.Imm = imm
		pattern.WriteByte('i')
	}
	shape, ok := shapePatterns[pattern.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedOperands, strings.TrimSpace(rest))
	}
	st.Shape = shape
	return st, nil
}

// tokenize splits operand text into words and parentheses. A comma must sit
// between two tokens: leading, trailing and doubled commas are rejected.
func tokenize(s string) ([]string, error) {
	var toks []string
	start := -1
	comma := false
	push := func(tok string) {
		toks = append(toks, tok)
		comma = false
	}
	flush := func(end int) {
		if start >= 0 {
			push(s[start:end])
			start = -1
		}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ',':
			flush(i)
			if len(toks) == 0 || comma || toks[len(toks)-1] == "(" {
				return nil, fmt.Errorf("%w: stray comma", ErrMalformedOperands)
			}
			comma = true
		case c == ' ' || c == '\t':
			flush(i)
		case c == '(' || c == ')':
			flush(i)
			if c == ')' && comma {
				return nil, fmt.Errorf("%w: stray comma", ErrMalformedOperands)
			}
			push(s[i : i+1])
		case isWordByte(c):
			if start < 0 {
				start = i
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrMalformedOperands, c)
		}
	}
	flush(len(s))
	if comma {
		return nil, fmt.Errorf("%w: trailing comma", ErrMalformedOperands)
	}
	return toks, nil
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '+' || c == '.'
}

// parseImmediate accepts signed decimal, 0x, 0b and 0o literals.
func parseImmediate(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrImmediateOutOfRange, tok)
		}
		return 0, fmt.Errorf("%w: bad operand %q", ErrMalformedOperands, tok)
	}
	return v, nil
}
