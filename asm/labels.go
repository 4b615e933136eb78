package asm

import (
	"github.com/carbonpp/carbonasm/isa"
)

// LabelMap maps label names to their resolved page.
type LabelMap map[string]uint8

// BuildLabels assigns each declared label the page of the instruction that
// follows it. A label at the end of the program gets the page the program
// would continue into.
func BuildLabels(prog *Program) (labels LabelMap, err error) {
	labels = make(LabelMap)
	declared := make(map[string]int)

	pc := 0
	for n, item := range prog.Body {
		switch item := item.(type) {
		case *Instruction:
			pc += item.Size()
		case *LabelDecl:
			previous, ok := declared[item.Name]
			if ok {
				err = &ErrLabelDuplicate{Name: item.Name, Index: n, Previous: previous}
				return nil, err
			}
			declared[item.Name] = n
			labels[item.Name] = uint8(isa.Page(pc))
		default:
			return nil, ErrBodyInvalid
		}
	}

	if pc > isa.MEMORY_SIZE {
		return nil, ErrImageSize
	}

	return
}
