package asm

import (
	"fmt"
	"iter"
	"strings"

	"github.com/carbonpp/carbonasm/isa"
)

// Operand is a single instruction argument.
type Operand struct {
	Kind  isa.OperandKind
	Value uint8  // Register index, immediate, condition or address.
	Label string // Label name, for label operands.
}

// Register makes a register operand.
func Register(index uint8) Operand {
	return Operand{Kind: isa.OPERAND_REGISTER, Value: index}
}

// Immediate makes an immediate operand.
func Immediate(value uint8) Operand {
	return Operand{Kind: isa.OPERAND_IMMEDIATE, Value: value}
}

// Cond makes a condition operand.
func Cond(cond isa.Condition) Operand {
	return Operand{Kind: isa.OPERAND_CONDITION, Value: uint8(cond)}
}

// Address makes a data memory address operand.
func Address(addr uint8) Operand {
	return Operand{Kind: isa.OPERAND_ADDRESS, Value: addr}
}

// Label makes a label reference operand.
func Label(name string) Operand {
	return Operand{Kind: isa.OPERAND_LABEL, Label: name}
}

func (op Operand) want(kind isa.OperandKind) error {
	if op.Kind != kind {
		return &ErrOperandKind{Want: kind, Got: op.Kind}
	}
	return nil
}

// Reg returns the register index of a register operand.
func (op Operand) Reg() (index uint8, err error) {
	err = op.want(isa.OPERAND_REGISTER)
	return op.Value, err
}

// Imm returns the value of an immediate operand.
func (op Operand) Imm() (value uint8, err error) {
	err = op.want(isa.OPERAND_IMMEDIATE)
	return op.Value, err
}

// Condition returns the condition of a condition operand.
func (op Operand) Condition() (cond isa.Condition, err error) {
	err = op.want(isa.OPERAND_CONDITION)
	return isa.Condition(op.Value), err
}

// Addr returns the address of an address operand.
func (op Operand) Addr() (addr uint8, err error) {
	err = op.want(isa.OPERAND_ADDRESS)
	return op.Value, err
}

// LabelName returns the name referenced by a label operand.
func (op Operand) LabelName() (name string, err error) {
	err = op.want(isa.OPERAND_LABEL)
	return op.Label, err
}

// String returns the operand in assembly syntax.
func (op Operand) String() string {
	switch op.Kind {
	case isa.OPERAND_REGISTER:
		return fmt.Sprintf("R%d", op.Value)
	case isa.OPERAND_IMMEDIATE:
		return fmt.Sprintf("%d", op.Value)
	case isa.OPERAND_CONDITION:
		return strings.ToUpper(isa.Condition(op.Value).String())
	case isa.OPERAND_ADDRESS:
		return fmt.Sprintf("$%d", op.Value)
	case isa.OPERAND_LABEL:
		return "[" + op.Label + "]"
	}
	return fmt.Sprintf("?%v", op.Kind)
}

// Body is an item of a program: a *LabelDecl or an *Instruction.
type Body interface {
	isBody()
}

// LabelDecl declares a label at its position in the program.
type LabelDecl struct {
	LineNo int
	Name   string
}

func (*LabelDecl) isBody() {}

func (decl *LabelDecl) String() string {
	return decl.Name + ":"
}

// Instruction is an opcode with its operands.
type Instruction struct {
	LineNo   int
	Opcode   isa.Opcode
	Operands []Operand
}

func (*Instruction) isBody() {}

// Kinds returns the kinds of the instruction's operands, in order.
func (inst *Instruction) Kinds() (kinds []isa.OperandKind) {
	kinds = make([]isa.OperandKind, len(inst.Operands))
	for n, op := range inst.Operands {
		kinds[n] = op.Kind
	}
	return
}

// Size returns the number of bytes the instruction occupies, as counted
// from its operands: the opcode byte plus one per immediate or label.
func (inst *Instruction) Size() (size int) {
	size = 1
	for _, op := range inst.Operands {
		size += op.Kind.Bytes()
	}
	return
}

// String returns the instruction in assembly syntax.
func (inst *Instruction) String() string {
	words := make([]string, 0, 1+len(inst.Operands))
	words = append(words, strings.ToUpper(inst.Opcode.String()))
	for _, op := range inst.Operands {
		words = append(words, op.String())
	}
	return strings.Join(words, " ")
}

// Instr makes an instruction with no source line.
func Instr(opcode isa.Opcode, operands ...Operand) *Instruction {
	return &Instruction{Opcode: opcode, Operands: operands}
}

// Program is a single compilation unit.
type Program struct {
	Body []Body
}

// Instructions iterates over the instructions of the program, with their
// index in Body.
func (prog *Program) Instructions() iter.Seq2[int, *Instruction] {
	return func(yield func(index int, inst *Instruction) bool) {
		for n, item := range prog.Body {
			inst, ok := item.(*Instruction)
			if !ok {
				continue
			}
			if !yield(n, inst) {
				return
			}
		}
	}
}

// Size returns the number of bytes the program occupies.
func (prog *Program) Size() (size int) {
	for _, inst := range prog.Instructions() {
		size += inst.Size()
	}
	return
}

// String returns the program in assembly syntax, one item per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, item := range prog.Body {
		fmt.Fprintf(&sb, "%v\n", item)
	}
	return sb.String()
}
