package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbonpp/carbonasm/isa"
)

func TestLower(t *testing.T) {
	assert := assert.New(t)

	// start: LDI R0 5
	//        BRC JMP [start]
	prog := &Program{Body: []Body{
		&LabelDecl{Name: "start"},
		Instr(isa.OP_LDI, Register(0), Immediate(5)),
		Instr(isa.OP_BRC, Cond(isa.COND_JMP), Label("start")),
	}}

	labels, err := BuildLabels(prog)
	assert.NoError(err)
	assert.Equal(LabelMap{"start": 0}, labels)

	image, err := Lower(prog, labels)
	assert.NoError(err)
	assert.Equal([]byte{0x70, 5, 0xa7, 0}, image)

	// Lowering is repeatable.
	again, err := Lower(prog, labels)
	assert.NoError(err)
	assert.Equal(image, again)
}

func TestLower_Empty(t *testing.T) {
	assert := assert.New(t)

	image, err := Lower(&Program{}, LabelMap{})
	assert.NoError(err)
	assert.Empty(image)

	image, err = Lower(&Program{Body: []Body{&LabelDecl{Name: "only"}}}, LabelMap{"only": 0})
	assert.NoError(err)
	assert.Empty(image)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	labels := LabelMap{"here": 0, "there": 5}

	table := []struct {
		inst *Instruction
		code []byte
	}{
		{Instr(isa.OP_HLT), []byte{0x00}},
		{Instr(isa.OP_ADD, Register(1), Register(2)), []byte{0x16}},
		{Instr(isa.OP_SUB, Register(3), Register(0)), []byte{0x2c}},
		{Instr(isa.OP_OR, Register(0), Register(3)), []byte{0x33}},
		{Instr(isa.OP_AND, Register(2), Register(2)), []byte{0x4a}},
		{Instr(isa.OP_NAND, Register(1), Register(1)), []byte{0x55}},
		{Instr(isa.OP_XOR, Register(3), Register(3)), []byte{0x6f}},
		{Instr(isa.OP_LDI, Register(2), Immediate(0xfe)), []byte{0x78, 0xfe}},
		{Instr(isa.OP_MST, Register(1), Address(2)), []byte{0x86}},
		{Instr(isa.OP_MLD, Register(3), Address(3)), []byte{0x9f}},
		{Instr(isa.OP_BRC, Cond(isa.COND_EQ), Label("there")), []byte{0xa0, 5}},
		{Instr(isa.OP_BRC, Cond(isa.COND_EVEN), Label("here")), []byte{0xa6, 0}},
		{Instr(isa.OP_PST, Register(2)), []byte{0xb8}},
		{Instr(isa.OP_PLD, Register(1)), []byte{0xc4}},
		{Instr(isa.OP_CMP, Register(0), Register(1)), []byte{0xd1}},
		{Instr(isa.OP_MOV, Register(2), Register(0)), []byte{0xe8}},
	}

	for _, entry := range table {
		code, err := Encode(entry.inst, labels)
		assert.NoError(err, entry.inst.String())
		assert.Equal(entry.code, code, entry.inst.String())
		assert.Equal(len(code), entry.inst.Size(), entry.inst.String())
	}
}

func TestLower_ForwardReference(t *testing.T) {
	assert := assert.New(t)

	body := []Body{
		Instr(isa.OP_BRC, Cond(isa.COND_JMP), Label("far")),
	}
	body = append(body, repeat(16, Instr(isa.OP_LDI, Register(0), Immediate(0)))...)
	body = append(body, &LabelDecl{Name: "far"}, Instr(isa.OP_HLT))
	prog := &Program{Body: body}

	labels, err := BuildLabels(prog)
	assert.NoError(err)
	assert.Equal(uint8(1), labels["far"])

	image, err := Lower(prog, labels)
	assert.NoError(err)
	assert.Equal(35, len(image))
	assert.Equal([]byte{0xa7, 1}, image[:2])
	assert.Equal(byte(0x00), image[34])
}

func TestLower_LabelUndefined(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Body: []Body{
		&LabelDecl{Name: "start"},
		Instr(isa.OP_HLT),
		&Instruction{LineNo: 7, Opcode: isa.OP_BRC, Operands: []Operand{Cond(isa.COND_LT), Label("nowhere")}},
	}}

	labels, err := BuildLabels(prog)
	assert.NoError(err)

	image, err := Lower(prog, labels)
	assert.Nil(image)

	var undefined ErrLabelUndefined
	assert.True(errors.As(err, &undefined))
	assert.Equal(ErrLabelUndefined("nowhere"), undefined)

	var located *ErrInstruction
	assert.True(errors.As(err, &located))
	assert.Equal(2, located.Index)
	assert.Equal(7, located.LineNo)
	assert.Same(prog.Body[2], located.Instruction)
	assert.Contains(err.Error(), "nowhere")
}

func TestLower_Shape(t *testing.T) {
	assert := assert.New(t)

	table := []*Instruction{
		Instr(isa.OP_ADD, Register(0)),
		Instr(isa.OP_ADD, Register(0), Register(1), Register(2)),
		Instr(isa.OP_ADD, Register(0), Immediate(1)),
		Instr(isa.OP_HLT, Register(0)),
		Instr(isa.OP_LDI, Immediate(1), Register(0)),
		Instr(isa.OP_BRC, Label("x")),
		Instr(isa.OP_BRC, Cond(isa.COND_JMP), Immediate(0)),
		Instr(isa.OP_MST, Register(0), Immediate(1)),
		Instr(isa.OP_PLD),
	}

	for _, inst := range table {
		prog := &Program{Body: []Body{&LabelDecl{Name: "x"}, inst}}
		image, err := Lower(prog, LabelMap{"x": 0})
		assert.Nil(image, inst.String())

		var shape *ErrShape
		if assert.True(errors.As(err, &shape), inst.String()) {
			assert.Equal(inst.Opcode, shape.Opcode)
			assert.Equal(inst.Kinds(), shape.Got)
		}

		var located *ErrInstruction
		if assert.True(errors.As(err, &located), inst.String()) {
			assert.Equal(1, located.Index)
		}
	}
}

func TestLower_Range(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		inst  *Instruction
		kind  isa.OperandKind
		value uint8
	}{
		{Instr(isa.OP_ADD, Register(4), Register(0)), isa.OPERAND_REGISTER, 4},
		{Instr(isa.OP_PST, Register(0xff)), isa.OPERAND_REGISTER, 0xff},
		{Instr(isa.OP_MLD, Register(0), Address(4)), isa.OPERAND_ADDRESS, 4},
		{Instr(isa.OP_BRC, Cond(isa.Condition(8)), Label("x")), isa.OPERAND_CONDITION, 8},
	}

	for _, entry := range table {
		_, err := Encode(entry.inst, LabelMap{"x": 0})
		var bad *ErrOperandRange
		if assert.True(errors.As(err, &bad), entry.inst.String()) {
			assert.Equal(entry.kind, bad.Kind)
			assert.Equal(entry.value, bad.Value)
		}
	}
}

func TestLower_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Lower(&Program{Body: []Body{Instr(isa.Opcode(15))}}, nil)
	assert.ErrorIs(err, ErrOpcodeInvalid)

	_, err = Lower(&Program{Body: []Body{nil}}, nil)
	assert.ErrorIs(err, ErrBodyInvalid)

	body := repeat(257, Instr(isa.OP_HLT))
	_, err = Lower(&Program{Body: body}, nil)
	assert.ErrorIs(err, ErrImageSize)
}

func FuzzEncode(f *testing.F) {
	f.Add(uint8(isa.OP_LDI), uint8(0), uint8(5), uint8(isa.OPERAND_REGISTER), uint8(isa.OPERAND_IMMEDIATE))
	f.Add(uint8(isa.OP_BRC), uint8(7), uint8(0), uint8(isa.OPERAND_CONDITION), uint8(isa.OPERAND_LABEL))
	f.Add(uint8(isa.OP_HLT), uint8(0), uint8(0), uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, opcode, a, b, kind_a, kind_b uint8) {
		assert := assert.New(t)

		inst := Instr(isa.Opcode(opcode),
			Operand{Kind: isa.OperandKind(kind_a % 5), Value: a, Label: "l"},
			Operand{Kind: isa.OperandKind(kind_b % 5), Value: b, Label: "l"},
		)

		code, err := Encode(inst, LabelMap{"l": 3})
		if err != nil {
			assert.Nil(code)
			return
		}

		// Anything that encodes is exactly as long as counted.
		assert.Equal(inst.Size(), len(code))
		op, ok := isa.Decode(code[0])
		assert.True(ok)
		assert.Equal(inst.Opcode, op)
	})
}
