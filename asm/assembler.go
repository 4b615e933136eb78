package asm

import (
	"log"
	"maps"
	"slices"
)

// Assembler runs both assembly passes over a program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Assemble resolves the labels of prog and lowers it into an Image.
func (asm *Assembler) Assemble(prog *Program) (img *Image, err error) {
	labels, err := BuildLabels(prog)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, name := range slices.Sorted(maps.Keys(labels)) {
			log.Printf("label %v: page %d\n", name, labels[name])
		}
	}

	img = &Image{Labels: labels}

	img.Bytes, err = lower(prog, labels, func(span Span, code []byte) {
		img.Spans = append(img.Spans, span)
		if asm.Verbose {
			log.Printf("%02x: %-16v % x\n", span.Addr, span.Instruction, code)
		}
	})
	if err != nil {
		return nil, err
	}

	return
}
