package isa

import (
	"strings"
)

const (
	MEMORY_SIZE    = 256 // Bytes of instruction memory.
	PAGE_SIZE      = 32  // Bytes per page of instruction memory.
	REGISTER_COUNT = 4   // General purpose registers, R0-R3.
	ADDRESS_COUNT  = 4   // Data memory cells reachable by MST and MLD.
)

// Page returns the page holding the byte at offset.
func Page(offset int) int {
	return offset / PAGE_SIZE
}

// Opcode is an operation code, encoded in the upper nibble of the opcode byte.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0)  // hlt
	OP_ADD  = Opcode(1)  // add
	OP_SUB  = Opcode(2)  // sub
	OP_OR   = Opcode(3)  // or
	OP_AND  = Opcode(4)  // and
	OP_NAND = Opcode(5)  // nand
	OP_XOR  = Opcode(6)  // xor
	OP_LDI  = Opcode(7)  // ldi
	OP_MST  = Opcode(8)  // mst
	OP_MLD  = Opcode(9)  // mld
	OP_BRC  = Opcode(10) // brc
	OP_PST  = Opcode(11) // pst
	OP_PLD  = Opcode(12) // pld
	OP_CMP  = Opcode(13) // cmp
	OP_MOV  = Opcode(14) // mov

	OPCODE_COUNT = 15
)

// Valid returns true if op is one of the defined opcodes.
func (op Opcode) Valid() bool {
	return op < OPCODE_COUNT
}

// ParseOpcode looks up a mnemonic, ignoring case.
func ParseOpcode(name string) (Opcode, bool) {
	name = strings.ToLower(name)
	for op := range Opcode(OPCODE_COUNT) {
		if op.String() == name {
			return op, true
		}
	}
	return 0, false
}

// Condition is a BRC branch condition.
type Condition uint8

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_EQ   = Condition(0) // eq
	COND_NEQ  = Condition(1) // neq
	COND_LT   = Condition(2) // lt
	COND_GT   = Condition(3) // gt
	COND_GTEQ = Condition(4) // gteq
	COND_LTEQ = Condition(5) // lteq
	COND_EVEN = Condition(6) // even
	COND_JMP  = Condition(7) // jmp

	CONDITION_COUNT = 8
)

// Valid returns true if cond is one of the defined conditions.
func (cond Condition) Valid() bool {
	return cond < CONDITION_COUNT
}

// ParseCondition looks up a condition name, ignoring case.
func ParseCondition(name string) (Condition, bool) {
	name = strings.ToLower(name)
	for cond := range Condition(CONDITION_COUNT) {
		if cond.String() == name {
			return cond, true
		}
	}
	return 0, false
}

// OperandKind is the type of an instruction operand.
type OperandKind uint8

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // register
	OPERAND_IMMEDIATE = OperandKind(1) // immediate
	OPERAND_CONDITION = OperandKind(2) // condition
	OPERAND_ADDRESS   = OperandKind(3) // address
	OPERAND_LABEL     = OperandKind(4) // label
)

// Packed returns true if the operand is encoded inside the opcode byte.
func (kind OperandKind) Packed() bool {
	switch kind {
	case OPERAND_REGISTER, OPERAND_CONDITION, OPERAND_ADDRESS:
		return true
	}
	return false
}

// Bytes returns the number of bytes the operand adds after the opcode byte.
func (kind OperandKind) Bytes() int {
	switch kind {
	case OPERAND_IMMEDIATE, OPERAND_LABEL:
		return 1
	}
	return 0
}

// Limit returns the number of distinct values the operand can encode.
func (kind OperandKind) Limit() int {
	switch kind {
	case OPERAND_REGISTER:
		return REGISTER_COUNT
	case OPERAND_ADDRESS:
		return ADDRESS_COUNT
	case OPERAND_CONDITION:
		return CONDITION_COUNT
	}
	return 256
}
