package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the lexical structure of layout scripts.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Identifiers may contain hyphens so scheme and shape names such as
	// odd-left or l-shape lex as one token.
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},

	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
})
