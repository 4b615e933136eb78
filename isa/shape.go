package isa

import (
	"strings"
)

// Slot is the position of one operand in an encoded instruction.
type Slot struct {
	Kind  OperandKind // Required operand kind.
	Shift uint8       // Bit offset in the opcode byte, for packed kinds.
}

// Pack merges value into an opcode byte. Values that do not fit the slot's
// field are rejected.
func (slot Slot) Pack(word byte, value uint8) (packed byte, ok bool) {
	if !slot.Kind.Packed() || int(value) >= slot.Kind.Limit() {
		return word, false
	}
	return word | (value << slot.Shift), true
}

// Unpack extracts the slot's field from an opcode byte.
func (slot Slot) Unpack(word byte) uint8 {
	return (word >> slot.Shift) & uint8(slot.Kind.Limit()-1)
}

// Shape is the ordered operand list an opcode requires.
type Shape []Slot

// Size returns the encoded size of the instruction, in bytes.
func (shape Shape) Size() (size int) {
	size = 1
	for _, slot := range shape {
		size += slot.Kind.Bytes()
	}
	return
}

// Match returns true if the operand kinds are exactly those of the shape.
func (shape Shape) Match(kinds []OperandKind) bool {
	if len(kinds) != len(shape) {
		return false
	}
	for n, slot := range shape {
		if kinds[n] != slot.Kind {
			return false
		}
	}
	return true
}

func (shape Shape) String() string {
	kinds := make([]string, len(shape))
	for n, slot := range shape {
		kinds[n] = slot.Kind.String()
	}
	return "{" + strings.Join(kinds, ", ") + "}"
}

var (
	shapeNone   = Shape{}
	shapeRegReg = Shape{{OPERAND_REGISTER, 2}, {OPERAND_REGISTER, 0}}
	shapeRegImm = Shape{{OPERAND_REGISTER, 2}, {OPERAND_IMMEDIATE, 0}}
	shapeRegAdr = Shape{{OPERAND_REGISTER, 2}, {OPERAND_ADDRESS, 0}}
	shapeReg    = Shape{{OPERAND_REGISTER, 2}}
	shapeBranch = Shape{{OPERAND_CONDITION, 0}, {OPERAND_LABEL, 0}}
)

// shapes is used both to validate and to encode instructions.
var shapes = [OPCODE_COUNT]Shape{
	OP_HLT:  shapeNone,
	OP_ADD:  shapeRegReg,
	OP_SUB:  shapeRegReg,
	OP_OR:   shapeRegReg,
	OP_AND:  shapeRegReg,
	OP_NAND: shapeRegReg,
	OP_XOR:  shapeRegReg,
	OP_LDI:  shapeRegImm,
	OP_MST:  shapeRegAdr,
	OP_MLD:  shapeRegAdr,
	OP_BRC:  shapeBranch,
	OP_PST:  shapeReg,
	OP_PLD:  shapeReg,
	OP_CMP:  shapeRegReg,
	OP_MOV:  shapeRegReg,
}

// ShapeOf returns the operand shape of an opcode.
func ShapeOf(op Opcode) (shape Shape, ok bool) {
	if !op.Valid() {
		return
	}
	return shapes[op], true
}

// MakeCode returns the opcode byte with all operand fields clear.
func MakeCode(op Opcode) byte {
	return byte(op) << 4
}

// Decode returns the opcode of an opcode byte.
func Decode(word byte) (op Opcode, ok bool) {
	op = Opcode(word >> 4)
	ok = op.Valid()
	return
}
