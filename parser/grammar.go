package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// sourceFile is a whole source text.
type sourceFile struct {
	Items []*sourceItem `parser:"( @@ | EOL )*"`
}

// sourceItem is a label declaration or an instruction.
type sourceItem struct {
	Pos lexer.Position

	Label *string   `parser:"  @( Ident | Register ) \":\""`
	Op    *sourceOp `parser:"| @@"`
}

type sourceOp struct {
	Mnemonic string           `parser:"@Ident"`
	Operands []*sourceOperand `parser:"@@*"`
}

type sourceOperand struct {
	Pos lexer.Position

	Register *string `parser:"  @Register"`
	Address  *string `parser:"| @Address"`
	Label    *string `parser:"| \"[\" @( Ident | Register ) \"]\""`
	Expr     *string `parser:"| @Expr"`
	Number   *string `parser:"| @Number"`
	Ident    *string `parser:"| @Ident"`
}

var carbonLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "EOL", Pattern: `\n`},

	{Name: "Expr", Pattern: `\$\((?:[^()\n]|\([^()\n]*\))*\)`},
	{Name: "Address", Pattern: `\$(?:0[xX][0-9a-fA-F]+|0[bB][01]+|[0-9]+)`},
	{Name: "Register", Pattern: `[rR][0-9]+\b`},
	{Name: "Number", Pattern: `-?(?:0[xX][0-9a-fA-F]+|0[bB][01]+|[0-9]+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[:\[\]]`},
})

var sourceParser = participle.MustBuild[sourceFile](
	participle.Lexer(carbonLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)
