package asm

import (
	"fmt"
	"io"

	"github.com/carbonpp/carbonasm/isa"
)

// Span is the part of an image produced by a single instruction.
type Span struct {
	Index       int // Index of the instruction in Program.Body.
	Addr        int // Byte address of the opcode byte.
	Instruction *Instruction
}

// Size returns the number of bytes in the span.
func (span Span) Size() int {
	return span.Instruction.Size()
}

// Image is an assembled instruction memory image.
type Image struct {
	Bytes  []byte   // Encoded instruction memory.
	Labels LabelMap // Resolved labels.
	Spans  []Span   // Spans of each instruction, in address order.
}

// Debug returns the span holding the byte at addr.
func (img *Image) Debug(addr int) (span Span, ok bool) {
	for _, span = range img.Spans {
		if addr >= span.Addr && addr < span.Addr+span.Size() {
			return span, true
		}
	}

	return Span{}, false
}

// Listing writes the image as address, page, bytes and source text.
func (img *Image) Listing(w io.Writer) (err error) {
	for _, span := range img.Spans {
		code := img.Bytes[span.Addr : span.Addr+span.Size()]
		_, err = fmt.Fprintf(w, "%02x %d  %-8v %v\n", span.Addr, isa.Page(span.Addr), fmt.Sprintf("% x", code), span.Instruction)
		if err != nil {
			return
		}
	}

	return
}

// WriteHex writes the image as hexadecimal text, 16 bytes per line.
func (img *Image) WriteHex(w io.Writer) (err error) {
	for base := 0; base < len(img.Bytes); base += 16 {
		line := img.Bytes[base:min(base+16, len(img.Bytes))]
		_, err = fmt.Fprintf(w, "% x\n", line)
		if err != nil {
			return
		}
	}

	return
}
