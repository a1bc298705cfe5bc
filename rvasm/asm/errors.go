package asm

import "errors"

var (
	// ErrUnrecognizedMnemonic is returned when a mnemonic is not part of RV32I
	// or the fixed-encoding table.
	ErrUnrecognizedMnemonic = errors.New("unrecognized mnemonic")
	// ErrMalformedOperands is returned when the operand text does not have the
	// shape the mnemonic's format expects.
	ErrMalformedOperands = errors.New("malformed operands")
	// ErrInvalidRegister is returned for canonical register references outside x0..x31.
	ErrInvalidRegister = errors.New("invalid register")
	// ErrImmediateOutOfRange is returned when an immediate does not fit its field.
	ErrImmediateOutOfRange = errors.New("immediate out of range")
	// ErrMisalignedImmediate is returned for odd branch and jump offsets.
	ErrMisalignedImmediate = errors.New("misaligned immediate")
)
