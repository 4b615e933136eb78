// Package asm lowers Carbon programs into instruction memory images.
//
// Assembly is done in two passes over a Program. BuildLabels walks the
// program once, simulating the program counter, and assigns each label the
// page of the instruction that follows it. Lower then validates every
// instruction against its opcode's operand shape, resolves label operands
// through the label map, and emits the encoded bytes. Forward references
// work because the label map is complete before lowering starts.
package asm
