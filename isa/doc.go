// Package isa describes the Carbon 8-bit instruction set.
//
// Every instruction starts with a single opcode byte. The operation lives in
// the upper nibble, and the register, condition and address operands are
// packed into the lower nibble. Immediate and label operands each follow the
// opcode byte as a full byte of their own.
//
// Branch targets are pages: a label resolves to the 32 byte block of
// instruction memory holding the next instruction, never to a byte offset.
package isa
