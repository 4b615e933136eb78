// Package parser reads Carbon assembly source into an asm.Program.
//
// A source line holds an optional label declaration (`name:`) and an
// optional instruction: a mnemonic followed by its operands.
//
//	start:  LDI R0 5        ; registers are R0-R3
//	        MST R0 $1       ; $n is a data memory address
//	        LDI R1 $(6*7)   ; $(...) is evaluated at assembly time
//	        BRC JMP [start] ; [name] is a label reference
//
// Mnemonics and condition names are not case sensitive.
package parser

import (
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/carbonpp/carbonasm/asm"
	"github.com/carbonpp/carbonasm/isa"
)

// Parser converts assembly source text into programs.
type Parser struct {
	Verbose bool // If set, verbosely logs each parsed item.

	predefine map[string]string // Predefined constants.
}

// Predefine defines a new constant or redefines an existing one.
func (p *Parser) Predefine(name string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{name: value}
	} else {
		p.predefine[name] = value
	}
}

// numberOf parses decimal, 0x hexadecimal or 0b binary text. A leading
// zero does not make a number octal.
func numberOf(word string, bitSize int) (v64 int64, err error) {
	digits, negative := strings.CutPrefix(word, "-")

	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base = 16
			digits = digits[2:]
		case 'b', 'B':
			base = 2
			digits = digits[2:]
		}
	}

	if len(digits) == 0 || digits[0] == '+' || digits[0] == '-' {
		err = ErrParseNumber(word)
		return
	}

	v64, err = strconv.ParseInt(digits, base, bitSize)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if negative {
		v64 = -v64
	}

	return
}

// valueOf parses a word as a byte. Negative values down to -128 are
// stored as two's complement.
func valueOf(word string) (value uint8, err error) {
	v64, err := numberOf(word, 16)
	if err != nil || v64 < -128 || v64 > 0xff {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)
	return
}

// parenEval does compile-time $(...) evaluations.
func (p *Parser) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{Name: "carbonasm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.predefine {
		v64, _err := numberOf(str, 64)
		if _err != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrParseExpression{Expr: expr, Err: err}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrParseExpression{Expr: expr}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < -128 || st_int64 > 0xff {
		err = &ErrParseExpression{Expr: expr, Err: ErrParseNumber(st_int.String())}
		return
	}
	value = uint8(st_int64)
	return
}

// operand converts a parsed operand.
func (p *Parser) operand(src *sourceOperand) (op asm.Operand, err error) {
	switch {
	case src.Register != nil:
		var index uint64
		index, err = strconv.ParseUint((*src.Register)[1:], 10, 8)
		if err != nil {
			err = ErrParseNumber(*src.Register)
			return
		}
		op = asm.Register(uint8(index))
	case src.Address != nil:
		var addr int64
		addr, err = numberOf((*src.Address)[1:], 16)
		if err != nil || addr < 0 || addr > 0xff {
			err = ErrParseNumber(*src.Address)
			return
		}
		op = asm.Address(uint8(addr))
	case src.Label != nil:
		op = asm.Label(*src.Label)
	case src.Expr != nil:
		expr := *src.Expr
		var value uint8
		value, err = p.parenEval(expr[2 : len(expr)-1])
		if err != nil {
			return
		}
		op = asm.Immediate(value)
	case src.Number != nil:
		var value uint8
		value, err = valueOf(*src.Number)
		if err != nil {
			return
		}
		op = asm.Immediate(value)
	case src.Ident != nil:
		word := *src.Ident
		if str, ok := p.predefine[word]; ok {
			var value uint8
			value, err = valueOf(str)
			if err != nil {
				return
			}
			op = asm.Immediate(value)
			return
		}
		cond, ok := isa.ParseCondition(word)
		if !ok {
			err = ErrCondition(word)
			return
		}
		op = asm.Cond(cond)
	default:
		err = ErrOperandInvalid
	}

	return
}

// Parse parses an input stream into a Program.
func (p *Parser) Parse(input io.Reader) (prog *asm.Program, err error) {
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Err: err}
		}
	}()

	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	file, err := sourceParser.ParseBytes("", data)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			lineno = perr.Position().Line
		}
		return
	}

	prog = &asm.Program{}

	for _, item := range file.Items {
		lineno = item.Pos.Line

		var body asm.Body
		switch {
		case item.Label != nil:
			body = &asm.LabelDecl{LineNo: lineno, Name: *item.Label}
		case item.Op != nil:
			opcode, ok := isa.ParseOpcode(item.Op.Mnemonic)
			if !ok {
				err = ErrMnemonic(item.Op.Mnemonic)
				return nil, err
			}
			inst := &asm.Instruction{LineNo: lineno, Opcode: opcode}
			for _, src := range item.Op.Operands {
				var op asm.Operand
				op, err = p.operand(src)
				if err != nil {
					return nil, err
				}
				inst.Operands = append(inst.Operands, op)
			}
			body = inst
		default:
			continue
		}

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, body)
		}

		prog.Body = append(prog.Body, body)
	}

	return
}
