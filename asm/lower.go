package asm

import (
	"github.com/carbonpp/carbonasm/isa"
)

// Encode lowers a single instruction into its opcode byte followed by any
// immediate and label bytes.
func Encode(inst *Instruction, labels LabelMap) (code []byte, err error) {
	shape, ok := isa.ShapeOf(inst.Opcode)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	kinds := inst.Kinds()
	if !shape.Match(kinds) {
		err = &ErrShape{Opcode: inst.Opcode, Got: kinds}
		return
	}

	word := isa.MakeCode(inst.Opcode)
	var follow []byte

	for n, slot := range shape {
		op := inst.Operands[n]

		var value uint8
		switch slot.Kind {
		case isa.OPERAND_REGISTER:
			value, err = op.Reg()
		case isa.OPERAND_IMMEDIATE:
			value, err = op.Imm()
		case isa.OPERAND_CONDITION:
			var cond isa.Condition
			cond, err = op.Condition()
			value = uint8(cond)
		case isa.OPERAND_ADDRESS:
			value, err = op.Addr()
		case isa.OPERAND_LABEL:
			var name string
			name, err = op.LabelName()
			if err != nil {
				break
			}
			var page uint8
			page, ok = labels[name]
			if !ok {
				err = ErrLabelUndefined(name)
			}
			value = page
		}
		if err != nil {
			return nil, err
		}

		if !slot.Kind.Packed() {
			follow = append(follow, value)
			continue
		}

		word, ok = slot.Pack(word, value)
		if !ok {
			err = &ErrOperandRange{Kind: slot.Kind, Value: value}
			return nil, err
		}
	}

	code = append([]byte{word}, follow...)

	return
}

// Lower encodes every instruction of the program, in order, resolving label
// operands through labels. The first error stops lowering and no bytes are
// returned.
func Lower(prog *Program, labels LabelMap) (image []byte, err error) {
	return lower(prog, labels, nil)
}

// lower encodes the program, calling emit with each instruction's span and
// bytes as they are appended to the image.
func lower(prog *Program, labels LabelMap, emit func(span Span, code []byte)) (image []byte, err error) {
	for n, item := range prog.Body {
		switch item := item.(type) {
		case *LabelDecl:
			// Labels take no space.
		case *Instruction:
			var code []byte
			code, err = Encode(item, labels)
			if err != nil {
				return nil, &ErrInstruction{Index: n, LineNo: item.LineNo, Instruction: item, Err: err}
			}
			if emit != nil {
				emit(Span{Index: n, Addr: len(image), Instruction: item}, code)
			}
			image = append(image, code...)
		default:
			return nil, ErrBodyInvalid
		}
	}

	if len(image) > isa.MEMORY_SIZE {
		return nil, ErrImageSize
	}

	return
}
