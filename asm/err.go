package asm

import (
	"errors"

	"github.com/carbonpp/carbonasm/isa"
	"github.com/carbonpp/carbonasm/translate"
)

var f = translate.From

var (
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrImageSize     = errors.New(f("image exceeds instruction memory"))
	ErrBodyInvalid   = errors.New(f("program body invalid"))
)

// ErrLabelUndefined is returned when a label operand has no declaration.
type ErrLabelUndefined string

func (el ErrLabelUndefined) Error() string {
	return f("label %v undefined", string(el))
}

// ErrLabelDuplicate is returned when a label is declared twice.
type ErrLabelDuplicate struct {
	Name     string
	Index    int // Position of the second declaration.
	Previous int // Position of the first declaration.
}

func (err *ErrLabelDuplicate) Error() string {
	return f("label %v at %d duplicates declaration at %d", err.Name, err.Index, err.Previous)
}

// ErrShape is returned when an instruction's operands do not match the
// shape required by its opcode.
type ErrShape struct {
	Opcode isa.Opcode
	Got    []isa.OperandKind
}

func (err *ErrShape) Error() string {
	want, _ := isa.ShapeOf(err.Opcode)
	got := make(isa.Shape, len(err.Got))
	for n, kind := range err.Got {
		got[n].Kind = kind
	}
	return f("%v wants operands %v, got %v", err.Opcode, want, got)
}

// ErrOperandKind is returned by the Operand accessors on a kind mismatch.
type ErrOperandKind struct {
	Want isa.OperandKind
	Got  isa.OperandKind
}

func (err *ErrOperandKind) Error() string {
	return f("operand is %v, not %v", err.Got, err.Want)
}

// ErrOperandRange is returned when a packed operand does not fit its field.
type ErrOperandRange struct {
	Kind  isa.OperandKind
	Value uint8
}

func (err *ErrOperandRange) Error() string {
	return f("%v %d out of range 0..%d", err.Kind, err.Value, err.Kind.Limit()-1)
}

// ErrInstruction locates an error at a position in the program.
type ErrInstruction struct {
	Index       int          // Index of the item in Program.Body.
	LineNo      int          // Source line, if known.
	Instruction *Instruction // Offending instruction.
	Err         error
}

func (err *ErrInstruction) Error() string {
	if err.LineNo > 0 {
		return f("instruction %d line %d '%v' %v", err.Index, err.LineNo, err.Instruction, err.Err)
	}
	return f("instruction %d '%v' %v", err.Index, err.Instruction, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
